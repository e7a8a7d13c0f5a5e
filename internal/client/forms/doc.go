// Package forms turns the state of an edit form into the record submitted to
// the backend.
//
// # Form state
//
// FormState stands in for the rendered form: a flat map of element id to
// value plus named dynamic forms (their inputs and file pickers). It can be
// built in code or loaded from JSON:
//
//	{
//	  "fields": {
//	    "project-id": "42",
//	    "project-title": "Apoferritin",
//	    "project-resources": ["3", "8"],
//	    "has_samples_rt": true
//	  },
//	  "forms": {
//	    "dynamic-form": {
//	      "fields": {"grid_type": "Quantifoil"},
//	      "files": {"image": "/data/atlas.png"}
//	    }
//	  }
//	}
//
// An element missing from "fields" is treated as absent from the form, and
// the matching record field is left out of the payload.
//
// # Builders
//
// BuildProject, BuildTraining, BuildEntry and BuildResource map element ids
// to record fields for their kind; Build dispatches on models.Kind.
package forms
