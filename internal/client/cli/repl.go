package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/emforms/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Open(ctx context.Context, args []string) error
	Submit(ctx context.Context, args []string) error
	Fill(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Report(ctx context.Context, args []string) error
	SetToken(ctx context.Context) error
}

const helpText = `Available commands:
  open <kind> [id] [project=N] [type=T] [copy] [modal=ID]
  submit <kind> <form.json>
  fill <kind>
  delete <kind> <id> [label]
  report <entry-id>
  token
  exit
Kinds: project, training, entry, resource`

// runREPL starts a read–eval–print loop for the emforms CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit". Command errors are printed and the loop continues; a
// failed request has already been shown by the view, so only its kind is
// repeated.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("emf %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "open":
			cmdErr = a.Open(ctx, args)

		case "submit":
			cmdErr = a.Submit(ctx, args)

		case "fill":
			cmdErr = a.Fill(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "report":
			cmdErr = a.Report(ctx, args)

		case "token":
			cmdErr = a.SetToken(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		switch {
		case cmdErr == nil:
		case errors.Is(cmdErr, common.ErrRequestFailed):
			printlnFn("Request failed.")
		default:
			printlnFn("Error:", cmdErr)
		}
	}
}
