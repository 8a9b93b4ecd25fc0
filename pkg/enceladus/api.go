// Package enceladus is the public facade over the hazard library: it
// wires the catalog store to the event-set sampler and the ground
// motion field calculator.
package enceladus

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"enceladus/internal/catalog"
	"enceladus/internal/eventset"
	"enceladus/internal/gmf"
	"enceladus/internal/gsim"
	"enceladus/internal/imt"
	"enceladus/internal/mfd"
	"enceladus/internal/scalerel"
	"enceladus/internal/source"
)

const defaultDBPath = "enceladus.db"

var ErrEventSetNotFound = errors.New("event set not found")

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store catalog.Store
}

// SourceSpec describes one point source of a job: a truncated
// Gutenberg-Richter magnitude-frequency distribution plus the rupture
// geometry every bin inherits.
type SourceSpec struct {
	ID             string
	TectonicRegion string
	MinMag         float64
	MaxMag         float64
	BinWidth       float64
	AVal           float64
	BVal           float64
	Rake           float64
	HypoDepth      float64
}

type EventSetRequest struct {
	Sources  []SourceSpec
	TimeSpan float64
	Seed     int64
}

type EventSetSummary struct {
	EventSetID string
	Events     int
}

// GMFRequest asks for ground motion fields over every event of a
// stored event set. Site conditions and distances are given per site;
// a negative truncation level samples the unbounded residual
// distribution.
type GMFRequest struct {
	EventSetID      string
	Model           string
	IMTs            []string
	TruncationLevel float64
	Realizations    int
	Seed            int64
	Vs30            []float64
	Kappa           []float64
	Rjb             []float64
	Rrup            []float64
	Rhypo           []float64
}

type GMFSummary struct {
	EventSetID  string
	FieldSetIDs []string
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = catalog.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := catalog.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return catalog.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

func (c *Client) Reset(ctx context.Context) error {
	if err := c.store.Init(ctx); err != nil {
		return err
	}
	return c.store.Reset(ctx)
}

// Models lists the registered ground-shaking model names.
func (c *Client) Models() []string {
	return gsim.ListModels()
}

// ScaleRels lists the registered magnitude-area scaling relationships.
func (c *Client) ScaleRels() []string {
	return scalerel.List()
}

// RunEventSet samples one stochastic event set from the request's
// sources and persists it.
func (c *Client) RunEventSet(ctx context.Context, req EventSetRequest) (EventSetSummary, error) {
	if len(req.Sources) == 0 {
		return EventSetSummary{}, errors.New("at least one source is required")
	}
	if err := c.store.Init(ctx); err != nil {
		return EventSetSummary{}, err
	}

	rng := rand.New(rand.NewSource(req.Seed))
	sources := make([]source.Source, 0, len(req.Sources))
	for _, spec := range req.Sources {
		dist, err := mfd.NewModifiedGR(spec.MinMag, spec.MaxMag, spec.BinWidth, spec.AVal, spec.BVal)
		if err != nil {
			return EventSetSummary{}, fmt.Errorf("source %s: %w", spec.ID, err)
		}
		src, err := source.NewPointSource(spec.ID, gsim.TectonicRegion(spec.TectonicRegion),
			dist, spec.Rake, spec.HypoDepth, rng)
		if err != nil {
			return EventSetSummary{}, fmt.Errorf("source %s: %w", spec.ID, err)
		}
		sources = append(sources, src)
	}

	// One sampler, and therefore one occurrence model, covers the whole
	// calculation.
	sampler, err := eventset.NewSampler(sources, req.TimeSpan, eventset.Options{})
	if err != nil {
		return EventSetSummary{}, err
	}
	var events []catalog.Event
	for {
		occ, ok, err := sampler.NextOccurrence()
		if err != nil {
			return EventSetSummary{}, err
		}
		if !ok {
			break
		}
		pr, isProb := occ.Rupture.(*source.ProbabilisticRupture)
		if !isProb {
			return EventSetSummary{}, fmt.Errorf("source %s yielded an unexpected rupture type",
				occ.Source.SourceID())
		}
		events = append(events, catalog.Event{
			SourceID:       occ.Source.SourceID(),
			Mag:            pr.Mag,
			Rake:           pr.Rake,
			HypoDepth:      pr.HypoDepth,
			TectonicRegion: string(pr.TectonicRegion),
		})
	}

	set := catalog.NewEventSet(req.TimeSpan, req.Seed, events)
	if err := c.store.SaveEventSet(ctx, set); err != nil {
		return EventSetSummary{}, err
	}
	return EventSetSummary{EventSetID: set.ID, Events: len(events)}, nil
}

// ComputeGMF samples ground motion fields for every event of a stored
// event set and persists one field set per event and intensity measure.
func (c *Client) ComputeGMF(ctx context.Context, req GMFRequest) (GMFSummary, error) {
	if req.Realizations <= 0 {
		return GMFSummary{}, errors.New("realizations must be positive")
	}
	if err := c.store.Init(ctx); err != nil {
		return GMFSummary{}, err
	}

	set, ok, err := c.store.GetEventSet(ctx, req.EventSetID)
	if err != nil {
		return GMFSummary{}, err
	}
	if !ok {
		return GMFSummary{}, fmt.Errorf("%w: %s", ErrEventSetNotFound, req.EventSetID)
	}

	model, err := gsim.GetModel(req.Model)
	if err != nil {
		return GMFSummary{}, err
	}
	imts := make([]imt.IMT, 0, len(req.IMTs))
	for _, key := range req.IMTs {
		m, err := imt.Parse(key)
		if err != nil {
			return GMFSummary{}, err
		}
		imts = append(imts, m)
	}
	if len(imts) == 0 {
		return GMFSummary{}, errors.New("at least one intensity measure is required")
	}

	truncation := req.TruncationLevel
	if truncation < 0 {
		truncation = gmf.NoTruncation
	}
	sites := &gsim.SitesContext{Vs30: req.Vs30, Kappa: req.Kappa}
	dists := &gsim.DistancesContext{Rjb: req.Rjb, Rrup: req.Rrup, Rhypo: req.Rhypo}
	rng := rand.New(rand.NewSource(req.Seed))

	summary := GMFSummary{EventSetID: set.ID}
	for i, event := range set.Events {
		rup := &gsim.RuptureContext{
			Mag:       event.Mag,
			Rake:      event.Rake,
			HypoDepth: event.HypoDepth,
		}
		fields, err := gmf.GroundMotionFields(model, sites, rup, dists, imts,
			truncation, req.Realizations, rng)
		if err != nil {
			return GMFSummary{}, fmt.Errorf("event %d: %w", i, err)
		}
		for _, m := range imts {
			record := catalog.NewFieldSet(set.ID, i, model.Name(), m.String(),
				req.TruncationLevel, fields[m])
			if err := c.store.SaveFieldSet(ctx, record); err != nil {
				return GMFSummary{}, err
			}
			summary.FieldSetIDs = append(summary.FieldSetIDs, record.ID)
		}
	}
	return summary, nil
}

func (c *Client) GetEventSet(ctx context.Context, id string) (catalog.EventSet, bool, error) {
	if err := c.store.Init(ctx); err != nil {
		return catalog.EventSet{}, false, err
	}
	return c.store.GetEventSet(ctx, id)
}

func (c *Client) ListEventSets(ctx context.Context) ([]string, error) {
	if err := c.store.Init(ctx); err != nil {
		return nil, err
	}
	return c.store.ListEventSets(ctx)
}

func (c *Client) GetFieldSet(ctx context.Context, id string) (catalog.FieldSet, bool, error) {
	if err := c.store.Init(ctx); err != nil {
		return catalog.FieldSet{}, false, err
	}
	return c.store.GetFieldSet(ctx, id)
}

func (c *Client) ListFieldSets(ctx context.Context, eventSetID string) ([]string, error) {
	if err := c.store.Init(ctx); err != nil {
		return nil, err
	}
	return c.store.ListFieldSets(ctx, eventSetID)
}
