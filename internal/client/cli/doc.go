// Package cli provides the interactive emforms command-line client.
//
// It wires configuration, the EMhub API client, the per-kind form
// controllers and a terminal REPL. Opened forms are written as HTML files to
// the configured modal directory; a filled form is submitted from a JSON
// form-state file or typed in as id=value lines.
//
// Commands:
//   - open <kind> [id] [project=N] [type=T] [copy] [modal=ID]
//   - submit <kind> <form.json>
//   - fill <kind>
//   - delete <kind> <id> [label]
//   - report <entry-id>
//   - token
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
