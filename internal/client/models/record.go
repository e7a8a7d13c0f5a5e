package models

// Record is anything a controller can submit. RecordID is zero for a record
// that does not exist on the server yet.
type Record interface {
	RecordKind() Kind
	RecordID() int64
}

// MultipartRecord is a Record that carries attached files and is sent as
// multipart form data.
type MultipartRecord interface {
	Record
	Attached() []Attachment
}

// Attachment is a file picked in a form's file input.
//
// Source is either a local path or an s3://bucket/key locator.
type Attachment struct {
	Field    string `json:"field"`
	FileName string `json:"file_name"`
	Source   string `json:"source"`
}

// DeleteRequest is the body of every delete call.
type DeleteRequest struct {
	ID int64 `json:"id"`
}
