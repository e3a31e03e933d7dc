package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/arifsetiawan/womshop/internal/client/api"
	"github.com/arifsetiawan/womshop/internal/client/config"
	"github.com/arifsetiawan/womshop/internal/client/loaders"
	"github.com/arifsetiawan/womshop/internal/client/session"
	"github.com/arifsetiawan/womshop/internal/client/storage"
	"github.com/arifsetiawan/womshop/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client components together and drives the REPL.
type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	api     api.Client
	session *session.Manager
	list    *loaders.ListLoader
	detail  *loaders.DetailLoader
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp initializes the local store, the API client, and the session
// manager, in that order. Session restore itself happens in Run so the
// caller controls the lifetime context.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tokens := storage.NewRepositoryTokenSource(storage.NewSQLiteRepository(db))
	apiClient := api.NewRESTClient(c.BaseURL, c.RequestTimeout, tokens, logger)

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		api:     apiClient,
		session: session.NewManager(db, apiClient, logger),
		list:    loaders.NewListLoader(apiClient, logger),
		detail:  loaders.NewDetailLoader(apiClient, logger),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores a persisted session and enters the REPL. It returns when the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Restore(ctx)

	snap := a.session.Snapshot()
	if snap.IsLoggedIn {
		fmt.Fprintf(a.out, "Selamat datang, %s\n", snap.User.DisplayName())
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the API client and the database handle.
func (a *App) Close() {
	if a.api != nil {
		_ = a.api.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// status renders the prompt decoration, e.g. "(emilys)".
func (a *App) status() string {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", snap.User.Username)
}
