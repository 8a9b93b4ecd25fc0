// Package catalog persists sampled event sets and computed ground
// motion fields.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// VersionedRecord carries the schema and codec versions a persisted
// record was written with.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Event is one rupture occurrence of a stochastic event set.
type Event struct {
	SourceID       string  `json:"source_id"`
	Mag            float64 `json:"mag"`
	Rake           float64 `json:"rake"`
	HypoDepth      float64 `json:"hypo_depth"`
	TectonicRegion string  `json:"tectonic_region"`
}

// EventSet is one sampled realization of a source model's seismicity
// over a time span.
type EventSet struct {
	VersionedRecord
	ID           string  `json:"id"`
	CreatedAtUTC string  `json:"created_at_utc"`
	TimeSpan     float64 `json:"time_span"`
	Seed         int64   `json:"seed"`
	Events       []Event `json:"events"`
}

// FieldSet holds the ground motion fields computed for one event of an
// event set: one intensity measure, values indexed by site then
// realization.
type FieldSet struct {
	VersionedRecord
	ID              string      `json:"id"`
	EventSetID      string      `json:"event_set_id"`
	EventIndex      int         `json:"event_index"`
	Model           string      `json:"model"`
	IMT             string      `json:"imt"`
	TruncationLevel float64     `json:"truncation_level"`
	Values          [][]float64 `json:"values"`
}

// NewEventSet mints an event set record with a fresh identifier and the
// current schema and codec versions.
func NewEventSet(timeSpan float64, seed int64, events []Event) EventSet {
	return EventSet{
		VersionedRecord: currentVersions(),
		ID:              uuid.NewString(),
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339),
		TimeSpan:        timeSpan,
		Seed:            seed,
		Events:          events,
	}
}

// NewFieldSet mints a field set record bound to one event of an event
// set.
func NewFieldSet(eventSetID string, eventIndex int, model, imt string, truncationLevel float64, values [][]float64) FieldSet {
	return FieldSet{
		VersionedRecord: currentVersions(),
		ID:              uuid.NewString(),
		EventSetID:      eventSetID,
		EventIndex:      eventIndex,
		Model:           model,
		IMT:             imt,
		TruncationLevel: truncationLevel,
		Values:          values,
	}
}

func currentVersions() VersionedRecord {
	return VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}
