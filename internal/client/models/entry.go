package models

// Entry is a logbook entry attached to a project. Dynamic form values go to
// Extra.Data; file inputs of the same form become Attachments.
type Entry struct {
	ID          int64        `json:"id,omitempty"`
	Type        *string      `json:"type,omitempty"`
	ProjectID   *int64       `json:"project_id,omitempty"`
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Date        *string      `json:"date,omitempty"`
	Extra       EntryExtra   `json:"extra"`
	Attachments []Attachment `json:"-"`
}

type EntryExtra struct {
	Data map[string]any `json:"data"`
}

func (e Entry) RecordKind() Kind { return KindEntry }
func (e Entry) RecordID() int64 { return e.ID }
func (e Entry) Attached() []Attachment { return e.Attachments }
