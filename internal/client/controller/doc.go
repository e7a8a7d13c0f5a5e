// Package controller binds entity forms to the backend API.
//
// A Controller exists per entity kind and exposes four operations: Open
// shows the server-rendered form, Submit builds a record from a
// forms.FormState and sends it, Delete asks for confirmation and removes a
// record, Done reconciles the View with the outcome of a call. Controllers
// keep no state between calls.
package controller
