package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/emforms/internal/client/forms"
)

var ErrBadFieldLine = errors.New("expected id=value")

// parseFieldLines turns typed lines into a FormState.
//
//	project-title=Apoferritin     element value
//	project-resources=3           repeated ids collect several values
//	dynamic-form/dose=1.5         field of a named form
//	dynamic-form/@image=/a.png    file input of a named form
func parseFieldLines(lines []string) (*forms.FormState, error) {
	s := forms.NewFormState()
	multi := map[string][]string{}
	order := []string{}
	named := map[string]forms.Form{}

	for _, line := range lines {
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadFieldLine, line)
		}
		value = strings.TrimSpace(value)

		if formID, field, ok := strings.Cut(key, "/"); ok {
			f := named[formID]
			if f.Fields == nil {
				f = forms.Form{Fields: map[string]any{}, Files: map[string]string{}}
			}
			if file, isFile := strings.CutPrefix(field, "@"); isFile {
				f.Files[file] = value
			} else {
				f.Fields[field] = value
			}
			named[formID] = f
			continue
		}

		if _, seen := multi[key]; !seen {
			order = append(order, key)
		}
		multi[key] = append(multi[key], value)
	}

	for _, key := range order {
		if vs := multi[key]; len(vs) == 1 {
			s.Set(key, vs[0])
		} else {
			s.Set(key, vs)
		}
	}
	for id, f := range named {
		s.SetForm(id, f)
	}
	return s, nil
}
