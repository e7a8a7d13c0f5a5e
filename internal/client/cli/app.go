package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/emforms/internal/client/api"
	"github.com/dmitrijs2005/emforms/internal/client/attachments"
	"github.com/dmitrijs2005/emforms/internal/client/config"
	"github.com/dmitrijs2005/emforms/internal/client/controller"
	"github.com/dmitrijs2005/emforms/internal/filex"
	"github.com/dmitrijs2005/emforms/internal/logging"
)

// newS3Opener is a test seam for attachments.NewS3OpenerFromConfig.
var newS3Opener = func(ctx context.Context, c attachments.S3Config) (attachments.Opener, error) {
	o, err := attachments.NewS3OpenerFromConfig(ctx, c)
	if err != nil {
		return nil, err
	}
	return o, nil
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	view        *TerminalView
	confirmer   controller.Confirmer
	controllers *controller.Set
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	dir, err := filex.EnsureDir(c.ModalDir)
	if err != nil {
		return nil, fmt.Errorf("modal dir: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	a := &App{
		config:    c,
		logger:    logging.New(os.Stderr, c.LogLevel),
		view:      NewTerminalView(dir, os.Stdout),
		confirmer: NewPromptConfirmer(reader, os.Stdout),
		reader:    reader,
		out:       os.Stdout,
	}

	if err := a.connect(context.Background()); err != nil {
		return nil, err
	}
	return a, nil
}

// connect (re)builds the API client and controllers from the current config.
func (a *App) connect(ctx context.Context) error {
	opener := attachments.NewRouter(nil)
	s3, err := newS3Opener(ctx, attachments.S3Config{
		Region:       a.config.S3Region,
		BaseEndpoint: a.config.S3BaseEndpoint,
		AccessKey:    a.config.S3AccessKey,
		SecretKey:    a.config.S3SecretKey,
	})
	if err != nil {
		a.logger.Warn(ctx, "s3 attachments disabled", "error", err)
	} else {
		opener = attachments.NewRouter(s3)
	}

	resolver := api.NewResolver(a.config.ServerURL)

	var client api.Client = api.NewHTTPClient(resolver,
		api.WithToken(a.config.Token),
		api.WithOpener(opener),
		api.WithLogger(a.logger),
		api.WithTimeout(a.config.RequestTimeout),
	)
	if a.config.FragmentCacheTTL > 0 {
		client = api.NewCachingClient(client, a.config.FragmentCacheTTL)
	}

	set, err := controller.NewSet(controller.Deps{
		Client:    client,
		Resolver:  resolver,
		View:      a.view,
		Confirmer: a.confirmer,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}
	a.controllers = set
	return nil
}

func (a *App) getStatus() string {
	open := a.view.OpenModals()
	if len(open) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(open, ", "))
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "emforms connected to %s (type 'help' for commands)\n", a.config.ServerURL)
	runREPL(ctx, a, a.getStatus, a.reader)
}
