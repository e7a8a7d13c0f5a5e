package forms

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FormState is a snapshot of a form taken at submit time.
type FormState struct {
	Fields map[string]any  `json:"fields"`
	Forms  map[string]Form `json:"forms"`
}

// Form is a named group of inputs. Files maps a file input name to the
// attachment source (local path or s3:// locator).
type Form struct {
	Fields map[string]any    `json:"fields"`
	Files  map[string]string `json:"files"`
}

func NewFormState() *FormState {
	return &FormState{Fields: map[string]any{}, Forms: map[string]Form{}}
}

// Load decodes a FormState from JSON. Numbers keep their literal form.
func Load(r io.Reader) (*FormState, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	s := NewFormState()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("decode form state: %w", err)
	}
	if s.Fields == nil {
		s.Fields = map[string]any{}
	}
	if s.Forms == nil {
		s.Forms = map[string]Form{}
	}
	return s, nil
}

func LoadFile(path string) (*FormState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Set stores an element value and returns s for chaining.
func (s *FormState) Set(id string, v any) *FormState {
	if s.Fields == nil {
		s.Fields = map[string]any{}
	}
	s.Fields[id] = v
	return s
}

// SetForm stores a named form and returns s for chaining.
func (s *FormState) SetForm(id string, f Form) *FormState {
	if s.Forms == nil {
		s.Forms = map[string]Form{}
	}
	s.Forms[id] = f
	return s
}

// Has reports whether the element is present in the form.
func (s *FormState) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.Fields[id]
	return ok
}

// Value returns the element's value as text.
func (s *FormState) Value(id string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.Fields[id]
	if !ok {
		return "", false
	}
	switch list := v.(type) {
	case []any:
		if len(list) == 0 {
			return "", true
		}
		return stringify(list[0]), true
	case []string:
		if len(list) == 0 {
			return "", true
		}
		return list[0], true
	}
	return stringify(v), true
}

// Values returns the selected options of a multi-select.
func (s *FormState) Values(id string) []string {
	if s == nil {
		return nil
	}
	switch v := s.Fields[id].(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringify(item))
		}
		return out
	default:
		str := stringify(v)
		if str == "" {
			return nil
		}
		return []string{str}
	}
}

// Checked reports the state of a checkbox. A missing checkbox is unchecked.
func (s *FormState) Checked(id string) bool {
	if s == nil {
		return false
	}
	switch v := s.Fields[id].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "checked", "yes":
			return true
		}
	}
	return false
}

// Form returns the named dynamic form.
func (s *FormState) Form(id string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	f, ok := s.Forms[id]
	return f, ok
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
