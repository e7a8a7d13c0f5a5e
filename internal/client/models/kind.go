// Package models defines the records emforms sends to the backend and the
// shape of the responses it gets back.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/emforms/internal/common"
)

// Kind classifies an editable entity.
type Kind string

const (
	KindProject  Kind = "project"
	KindTraining Kind = "training"
	KindEntry    Kind = "entry"
	KindResource Kind = "resource"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{KindProject, KindTraining, KindEntry, KindResource}

// ParseKind accepts a kind name in any case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrorUnknownKind, s)
}

// Label is the human-facing name used in dialogs.
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// APIKind is the kind the backend stores the record as. A training is a
// project with a training payload, so it shares the project endpoints.
func (k Kind) APIKind() Kind {
	if k == KindTraining {
		return KindProject
	}
	return k
}

// FormContentID names the server-rendered form fragment.
func (k Kind) FormContentID() string {
	return string(k) + "_form"
}

// ModalID is the default dialog the form is displayed in.
func (k Kind) ModalID() string {
	return string(k) + "-modal"
}

// Multipart reports whether records of this kind travel as multipart form
// data rather than a JSON body.
func (k Kind) Multipart() bool {
	return k == KindEntry || k == KindResource
}
