package models

import "encoding/json"

// Resource is a bookable resource (microscope, room, ...). Its fields are
// whatever the resource form contains, so they are kept generic.
type Resource struct {
	ID          int64
	Fields      map[string]any
	Attachments []Attachment
}

func (r Resource) RecordKind() Kind { return KindResource }
func (r Resource) RecordID() int64 { return r.ID }
func (r Resource) Attached() []Attachment { return r.Attachments }

// MarshalJSON flattens Fields into the top-level object. The id key is
// written only for an existing resource, whatever Fields holds.
func (r Resource) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	delete(out, "id")
	if r.ID > 0 {
		out["id"] = r.ID
	}
	return json.Marshal(out)
}
