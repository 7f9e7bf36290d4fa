package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"parietal.systems/acqview/internal/db"
)

var validate = validator.New()

// Sidecar is the JSON metadata file that accompanies an exported recording.
// Optional acquisition fields stay pointers: absent in the JSON means absent
// on the recording, which the summary renderer relies on.
type Sidecar struct {
	Kind        string         `json:"kind" validate:"required,oneof=raw epochs evoked"`
	AggKind     *string        `json:"agg_kind"`
	Title       string         `json:"title" validate:"required,max=200"`
	Filename    string         `json:"filename" validate:"required,max=255"`
	SubjectCode string         `json:"subject_code" validate:"max=64"`
	Comment     *string        `json:"comment"`
	Nave        *int32         `json:"nave" validate:"omitempty,min=1"`
	TMin        *float64       `json:"tmin"`
	TMax        *float64       `json:"tmax"`
	SFreq       *float64       `json:"sfreq" validate:"omitempty,gt=0"`
	NTimes      *int32         `json:"n_times" validate:"omitempty,min=0"`
	FirstSamp   *int64         `json:"first_samp"`
	BaselineMin *float64       `json:"baseline_min"`
	BaselineMax *float64       `json:"baseline_max"`
	MetaRows    *int32         `json:"meta_rows" validate:"omitempty,min=0"`
	MetaCols    *int32         `json:"meta_cols" validate:"omitempty,min=0"`
	EventCounts map[string]int `json:"event_counts"`
	Notes       string         `json:"notes"`
	Events      []struct {
		Sample int32 `json:"sample"`
		Code   int32 `json:"code"`
	} `json:"events"`
}

// LoadSidecar reads and validates one sidecar file.
func LoadSidecar(path string) (*Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sidecar: %w", err)
	}

	var sc Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse sidecar: %w", err)
	}

	if err := validate.Struct(&sc); err != nil {
		return nil, fmt.Errorf("validate sidecar: %w", err)
	}
	if (sc.BaselineMin == nil) != (sc.BaselineMax == nil) {
		return nil, fmt.Errorf("validate sidecar: baseline_min and baseline_max must be set together")
	}
	if (sc.MetaRows == nil) != (sc.MetaCols == nil) {
		return nil, fmt.Errorf("validate sidecar: meta_rows and meta_cols must be set together")
	}
	if sc.TMin != nil && sc.TMax != nil && *sc.TMax < *sc.TMin {
		return nil, fmt.Errorf("validate sidecar: tmax must be >= tmin")
	}
	if sc.AggKind != nil && sc.Kind != string(db.RecordingKindEvoked) {
		return nil, fmt.Errorf("validate sidecar: agg_kind is only valid for evoked recordings")
	}

	sc.Title = strings.TrimSpace(sc.Title)
	sc.Filename = strings.TrimSpace(sc.Filename)
	sc.SubjectCode = strings.TrimSpace(sc.SubjectCode)

	return &sc, nil
}
