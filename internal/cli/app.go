package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ipmark/ipmark/internal/app"
	"github.com/ipmark/ipmark/internal/bookmarks"
	"github.com/ipmark/ipmark/internal/config"
	"github.com/ipmark/ipmark/internal/logging"
	"github.com/ipmark/ipmark/internal/lookup"
)

// App ties the console frontend to the coordinator.
type App struct {
	cfg   *config.Config
	log   logging.Logger
	coord *app.Coordinator
	ui    *ConsoleUI

	in          io.Reader
	out         io.Writer
	lines       chan string
	interactive bool
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	return newApp(cfg, log, os.Stdin, os.Stdout, isTerminal())
}

func newApp(cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer, interactive bool) *App {
	a := &App{
		cfg:         cfg,
		log:         log,
		in:          in,
		out:         out,
		lines:       make(chan string),
		interactive: interactive,
	}

	a.ui = NewConsoleUI(a.out, a.lines)

	store := bookmarks.New(cfg.BookmarksFile)
	if err := store.Load(); err != nil {
		a.ui.Warn(err.Error())
	}

	client := lookup.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	a.coord = app.NewCoordinator(log, a.ui, store, client, cfg)
	return a
}

// Run starts the input reader and drives the UI-owning loop until the user
// exits or ctx is cancelled, then shuts the coordinator down.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "starting", "bookmarks_file", a.cfg.BookmarksFile, "api", a.cfg.APIBaseURL)

	go readLines(a.in, a.lines)

	a.coord.RefreshBookmarks()
	a.ui.SetStatus("Ready")

	runREPL(ctx, a.coord, a.lines, a.coord.Events(), a.prompt)

	a.coord.Shutdown()
	a.log.Info(ctx, "shut down")
}

func (a *App) prompt() {
	if a.interactive {
		fmt.Fprint(a.out, "ipmark> ")
	}
}
