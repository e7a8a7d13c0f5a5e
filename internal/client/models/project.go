package models

import (
	"encoding/json"
	"fmt"
)

// ProjectBase holds the fields shared by projects and trainings. Nil pointer
// fields were absent from the form and are left out of the payload.
type ProjectBase struct {
	ID          int64   `json:"id,omitempty"`
	Status      *string `json:"status,omitempty"`
	UserID      *int64  `json:"user_id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ProjectVariant is the closed set {Project, Training}. Both are stored as
// projects by the backend.
type ProjectVariant interface {
	Record
	Base() ProjectBase
	projectVariant()
}

// Project is a regular project record.
type Project struct {
	ProjectBase
	UserCanEdit *bool           `json:"user_can_edit,omitempty"`
	Date        *string         `json:"date,omitempty"`
	Extra       json.RawMessage `json:"extra,omitempty"`
}

func (p Project) RecordKind() Kind { return KindProject }
func (p Project) RecordID() int64 { return p.ID }
func (p Project) Base() ProjectBase { return p.ProjectBase }
func (Project) projectVariant() {}

// Training is a project tagged with a training payload.
type Training struct {
	ProjectBase
	Extra TrainingExtra `json:"extra"`
}

func (t Training) RecordKind() Kind { return KindTraining }
func (t Training) RecordID() int64 { return t.ID }
func (t Training) Base() ProjectBase { return t.ProjectBase }
func (Training) projectVariant() {}

// Samples records which sample types the trainee will bring.
type Samples struct {
	RT   bool `json:"rt"`
	Cryo bool `json:"cryo"`
}

// TrainingExtra is the fixed-shape payload of a training. On the wire it
// always carries is_training=true and every key, even when empty.
type TrainingExtra struct {
	Resources  []int64
	Samples    Samples
	Experience string
}

type trainingExtraWire struct {
	IsTraining bool    `json:"is_training"`
	Resources  []int64 `json:"resources"`
	Samples    Samples `json:"samples"`
	Experience string  `json:"experience"`
}

func (e TrainingExtra) MarshalJSON() ([]byte, error) {
	resources := e.Resources
	if resources == nil {
		resources = []int64{}
	}
	return json.Marshal(trainingExtraWire{
		IsTraining: true,
		Resources:  resources,
		Samples:    e.Samples,
		Experience: e.Experience,
	})
}

func (e *TrainingExtra) UnmarshalJSON(b []byte) error {
	var w trainingExtraWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	e.Resources = w.Resources
	e.Samples = w.Samples
	e.Experience = w.Experience
	return nil
}

// DecodeProject reads a project record as returned by the backend and
// resolves it to the matching variant using extra.is_training.
func DecodeProject(b []byte) (ProjectVariant, error) {
	var probe struct {
		Extra json.RawMessage `json:"extra"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}

	var tag struct {
		IsTraining bool `json:"is_training"`
	}
	if len(probe.Extra) > 0 && probe.Extra[0] == '{' {
		if err := json.Unmarshal(probe.Extra, &tag); err != nil {
			return nil, fmt.Errorf("decode project extra: %w", err)
		}
	}

	if tag.IsTraining {
		var t Training
		if err := json.Unmarshal(b, &t); err != nil {
			return nil, fmt.Errorf("decode training: %w", err)
		}
		return t, nil
	}

	var p Project
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return p, nil
}
