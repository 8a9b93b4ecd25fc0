package catalog

import (
	"encoding/json"
	"errors"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeEventSet(s EventSet) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeEventSet(data []byte) (EventSet, error) {
	var set EventSet
	if err := json.Unmarshal(data, &set); err != nil {
		return EventSet{}, err
	}
	if err := checkVersion(set.VersionedRecord); err != nil {
		return EventSet{}, err
	}
	return set, nil
}

func EncodeFieldSet(f FieldSet) ([]byte, error) {
	return json.Marshal(f)
}

func DecodeFieldSet(data []byte) (FieldSet, error) {
	var fields FieldSet
	if err := json.Unmarshal(data, &fields); err != nil {
		return FieldSet{}, err
	}
	if err := checkVersion(fields.VersionedRecord); err != nil {
		return FieldSet{}, err
	}
	return fields, nil
}

func checkVersion(v VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
