package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/emforms/internal/client/controller"
	"github.com/dmitrijs2005/emforms/internal/client/forms"
	"github.com/dmitrijs2005/emforms/internal/client/models"
)

var ErrUsage = errors.New("usage")

func usage(format string) error {
	return fmt.Errorf("%w: %s", ErrUsage, format)
}

func (a *App) controllerFor(name string) (controller.Controller, error) {
	kind, err := models.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return a.controllers.For(kind)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseOpenArgs reads "[id] [project=N] [type=T] [copy] [modal=ID]".
func parseOpenArgs(args []string) (controller.OpenParams, error) {
	var p controller.OpenParams
	for i, arg := range args {
		key, value, hasValue := strings.Cut(arg, "=")
		var err error
		switch {
		case i == 0 && !hasValue && arg != "copy":
			p.ID, err = parseID(arg)
		case key == "copy" && !hasValue:
			p.Copy = true
		case key == "project" && hasValue:
			p.ProjectID, err = parseID(value)
		case key == "type" && hasValue:
			p.EntryType = value
		case key == "modal" && hasValue:
			p.ModalID = value
		default:
			err = fmt.Errorf("unknown argument %q", arg)
		}
		if err != nil {
			return controller.OpenParams{}, err
		}
	}
	return p, nil
}

func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("open <kind> [id] [project=N] [type=T] [copy] [modal=ID]")
	}
	c, err := a.controllerFor(args[0])
	if err != nil {
		return err
	}
	p, err := parseOpenArgs(args[1:])
	if err != nil {
		return err
	}
	if err := c.Open(ctx, p); err != nil {
		return err
	}
	if p.ModalID != "" && c.Kind().APIKind() == models.KindProject {
		a.view.Link(c.Kind().ModalID(), p.ModalID)
	}
	return nil
}

func (a *App) Submit(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("submit <kind> <form.json>")
	}
	c, err := a.controllerFor(args[0])
	if err != nil {
		return err
	}
	s, err := forms.LoadFile(args[1])
	if err != nil {
		return err
	}
	return c.Submit(ctx, s)
}

func (a *App) Fill(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("fill <kind>")
	}
	c, err := a.controllerFor(args[0])
	if err != nil {
		return err
	}
	lines, err := GetFieldLines(a.reader, "Enter form values as id=value", a.out)
	if err != nil {
		return err
	}
	s, err := parseFieldLines(lines)
	if err != nil {
		return err
	}
	return c.Submit(ctx, s)
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("delete <kind> <id> [label]")
	}
	c, err := a.controllerFor(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	return c.Delete(ctx, id, strings.Join(args[2:], " "))
}

func (a *App) Report(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("report <entry-id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.controllers.ShowEntryReport(ctx, id)
}

// SetToken reads a new bearer token and reconnects with it.
func (a *App) SetToken(ctx context.Context) error {
	token, err := GetSecret("Bearer token", a.out)
	if err != nil {
		return err
	}
	a.config.Token = token
	return a.connect(ctx)
}
