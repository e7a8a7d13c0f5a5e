package forms

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/emforms/internal/client/models"
	"github.com/dmitrijs2005/emforms/internal/common"
)

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidDate = errors.New("invalid date")
)

// isoLayout matches what browsers produce for Date.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z"

var dateLayouts = []string{"2006-01-02", "2006/01/02", "2006-01-02T15:04", "02/01/2006"}

// Build assembles the record for kind from s.
func Build(kind models.Kind, s *FormState) (models.Record, error) {
	switch kind {
	case models.KindProject:
		return BuildProject(s)
	case models.KindTraining:
		return BuildTraining(s)
	case models.KindEntry:
		return BuildEntry(s)
	case models.KindResource:
		return BuildResource(s)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownKind, kind)
	}
}

func BuildProject(s *FormState) (models.Project, error) {
	base, err := projectBase(s)
	if err != nil {
		return models.Project{}, err
	}
	p := models.Project{ProjectBase: base}

	// A non-manager gets a fixed hidden user id and may always edit.
	if s.Has(ProjectUserIDField) {
		uid, err := optID(s, ProjectUserIDField)
		if err != nil {
			return models.Project{}, err
		}
		p.UserID = uid
		p.UserCanEdit = ptr(true)
	} else if s.Has(ProjectCanEditField) {
		p.UserCanEdit = ptr(s.Checked(ProjectCanEditField))
	}

	if p.Date, err = optDate(s, ProjectDateField); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func BuildTraining(s *FormState) (models.Training, error) {
	base, err := projectBase(s)
	if err != nil {
		return models.Training{}, err
	}

	resources := make([]int64, 0)
	for _, v := range s.Values(ProjectResourcesField) {
		id, err := parseID(v)
		if err != nil {
			return models.Training{}, fmt.Errorf("%s: %w", ProjectResourcesField, err)
		}
		if id > 0 {
			resources = append(resources, id)
		}
	}
	experience, _ := s.Value(ProjectExperienceField)

	return models.Training{
		ProjectBase: base,
		Extra: models.TrainingExtra{
			Resources: resources,
			Samples: models.Samples{
				RT:   s.Checked(SamplesRTField),
				Cryo: s.Checked(SamplesCryoField),
			},
			Experience: experience,
		},
	}, nil
}

func projectBase(s *FormState) (models.ProjectBase, error) {
	id, err := recordID(s, ProjectIDField)
	if err != nil {
		return models.ProjectBase{}, err
	}
	uid, err := optID(s, ProjectUserSelectField)
	if err != nil {
		return models.ProjectBase{}, err
	}
	return models.ProjectBase{
		ID:          id,
		Status:      optString(s, ProjectStatusField),
		UserID:      uid,
		Title:       optString(s, ProjectTitleField),
		Description: optString(s, ProjectDescriptionField),
	}, nil
}

func BuildEntry(s *FormState) (models.Entry, error) {
	id, err := recordID(s, EntryIDField)
	if err != nil {
		return models.Entry{}, err
	}
	projectID, err := optID(s, EntryProjectIDField)
	if err != nil {
		return models.Entry{}, err
	}
	date, err := optDate(s, EntryDateField)
	if err != nil {
		return models.Entry{}, err
	}

	form, _ := s.Form(EntryDynamicForm)
	return models.Entry{
		ID:          id,
		Type:        optString(s, EntryTypeField),
		ProjectID:   projectID,
		Title:       optString(s, EntryTitleField),
		Description: optString(s, EntryDescriptionField),
		Date:        date,
		Extra:       models.EntryExtra{Data: formValues(form, false)},
		Attachments: attachments(form),
	}, nil
}

func BuildResource(s *FormState) (models.Resource, error) {
	id, err := recordID(s, ResourceIDField)
	if err != nil {
		return models.Resource{}, err
	}
	form, _ := s.Form(ResourceForm)
	return models.Resource{
		ID:          id,
		Fields:      formValues(form, true),
		Attachments: attachments(form),
	}, nil
}

// IsoDate combines a date input and an hour select into an ISO timestamp.
// Both are read as UTC.
func IsoDate(date, hour string) (string, error) {
	date = strings.TrimSpace(date)
	var (
		t   time.Time
		err error
	)
	for _, layout := range dateLayouts {
		if t, err = time.Parse(layout, date); err == nil {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	if hour = strings.TrimSpace(hour); hour != "" {
		h, err := strconv.Atoi(hour)
		if err != nil || h < 0 || h > 23 {
			return "", fmt.Errorf("%w: hour %q", ErrInvalidDate, hour)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), h, 0, 0, 0, time.UTC)
	}
	return t.UTC().Format(isoLayout), nil
}

func optDate(s *FormState, id string) (*string, error) {
	v, ok := s.Value(id)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	hour, _ := s.Value(HourField)
	iso, err := IsoDate(v, hour)
	if err != nil {
		return nil, err
	}
	return &iso, nil
}

// recordID reads the id of the edited record; empty means a new record.
func recordID(s *FormState, id string) (int64, error) {
	v, _ := s.Value(id)
	n, err := parseID(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", id, err)
	}
	return n, nil
}

func optID(s *FormState, id string) (*int64, error) {
	v, ok := s.Value(id)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	n, err := parseID(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return &n, nil
}

func parseID(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "nan") || v == "null" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, v)
	}
	return n, nil
}

func optString(s *FormState, id string) *string {
	v, ok := s.Value(id)
	if !ok {
		return nil
	}
	return &v
}

func formValues(f Form, skipEmpty bool) map[string]any {
	out := make(map[string]any, len(f.Fields))
	for k, v := range f.Fields {
		if skipEmpty && isEmpty(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	}
	return false
}

func attachments(f Form) []models.Attachment {
	names := make([]string, 0, len(f.Files))
	for name, src := range f.Files {
		if strings.TrimSpace(src) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]models.Attachment, 0, len(names))
	for _, name := range names {
		src := f.Files[name]
		out = append(out, models.Attachment{
			Field:    name,
			FileName: path.Base(filepath.ToSlash(src)),
			Source:   src,
		})
	}
	return out
}

func ptr[T any](v T) *T { return &v }
