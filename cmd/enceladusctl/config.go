package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"enceladus/pkg/enceladus"
)

// JobConfig is the YAML description of a hazard job: the sources and
// time span to sample an event set from, plus an optional ground motion
// field section.
type JobConfig struct {
	TimeSpan float64        `yaml:"time_span"`
	Seed     int64          `yaml:"seed"`
	Sources  []SourceConfig `yaml:"sources"`
	GMF      *GMFConfig     `yaml:"gmf"`
}

type SourceConfig struct {
	ID             string  `yaml:"id"`
	TectonicRegion string  `yaml:"tectonic_region"`
	MinMag         float64 `yaml:"min_mag"`
	MaxMag         float64 `yaml:"max_mag"`
	BinWidth       float64 `yaml:"bin_width"`
	AVal           float64 `yaml:"a_val"`
	BVal           float64 `yaml:"b_val"`
	Rake           float64 `yaml:"rake"`
	HypoDepth      float64 `yaml:"hypo_depth"`
}

type GMFConfig struct {
	Model           string      `yaml:"model"`
	IMTs            []string    `yaml:"imts"`
	TruncationLevel float64     `yaml:"truncation_level"`
	Realizations    int         `yaml:"realizations"`
	Seed            int64       `yaml:"seed"`
	Sites           SitesConfig `yaml:"sites"`
}

type SitesConfig struct {
	Vs30  []float64 `yaml:"vs30"`
	Kappa []float64 `yaml:"kappa"`
	Rjb   []float64 `yaml:"rjb"`
	Rrup  []float64 `yaml:"rrup"`
	Rhypo []float64 `yaml:"rhypo"`
}

func LoadJobConfig(path string) (JobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return JobConfig{}, err
	}
	var cfg JobConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JobConfig{}, fmt.Errorf("parse job config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return JobConfig{}, fmt.Errorf("job config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *JobConfig) validate() error {
	if c.TimeSpan <= 0 {
		return errors.New("time_span must be positive")
	}
	if len(c.Sources) == 0 {
		return errors.New("at least one source is required")
	}
	for i, src := range c.Sources {
		if src.ID == "" {
			return fmt.Errorf("source %d: id is required", i)
		}
		if src.BinWidth <= 0 {
			return fmt.Errorf("source %s: bin_width must be positive", src.ID)
		}
		if src.MaxMag < src.MinMag {
			return fmt.Errorf("source %s: max_mag below min_mag", src.ID)
		}
	}
	if c.GMF != nil {
		if c.GMF.Model == "" {
			return errors.New("gmf: model is required")
		}
		if len(c.GMF.IMTs) == 0 {
			return errors.New("gmf: at least one intensity measure is required")
		}
		if c.GMF.Realizations == 0 {
			c.GMF.Realizations = 1
		}
		if c.GMF.Realizations < 0 {
			return errors.New("gmf: realizations must be positive")
		}
	}
	return nil
}

// EventSetRequest converts the sampling half of the job.
func (c *JobConfig) EventSetRequest() enceladus.EventSetRequest {
	sources := make([]enceladus.SourceSpec, 0, len(c.Sources))
	for _, src := range c.Sources {
		sources = append(sources, enceladus.SourceSpec{
			ID:             src.ID,
			TectonicRegion: src.TectonicRegion,
			MinMag:         src.MinMag,
			MaxMag:         src.MaxMag,
			BinWidth:       src.BinWidth,
			AVal:           src.AVal,
			BVal:           src.BVal,
			Rake:           src.Rake,
			HypoDepth:      src.HypoDepth,
		})
	}
	return enceladus.EventSetRequest{
		Sources:  sources,
		TimeSpan: c.TimeSpan,
		Seed:     c.Seed,
	}
}

// GMFRequest converts the ground motion field half of the job for a
// stored event set. Returns an error when the config has no gmf
// section.
func (c *JobConfig) GMFRequest(eventSetID string) (enceladus.GMFRequest, error) {
	if c.GMF == nil {
		return enceladus.GMFRequest{}, errors.New("job config has no gmf section")
	}
	return enceladus.GMFRequest{
		EventSetID:      eventSetID,
		Model:           c.GMF.Model,
		IMTs:            c.GMF.IMTs,
		TruncationLevel: c.GMF.TruncationLevel,
		Realizations:    c.GMF.Realizations,
		Seed:            c.GMF.Seed,
		Vs30:            c.GMF.Sites.Vs30,
		Kappa:           c.GMF.Sites.Kappa,
		Rjb:             c.GMF.Sites.Rjb,
		Rrup:            c.GMF.Sites.Rrup,
		Rhypo:           c.GMF.Sites.Rhypo,
	}, nil
}
