package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
	"github.com/dmitrijs2005/staffdesk/internal/client/config"
	"github.com/dmitrijs2005/staffdesk/internal/client/localdb"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/staffdesk/internal/client/store"
	"github.com/dmitrijs2005/staffdesk/internal/filex"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
)

// Dashboarder reads the aggregate counters. *api.Client satisfies it.
type Dashboarder interface {
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}

type App struct {
	config    *config.Config
	store     *store.Store
	dashboard Dashboarder
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	closers   []func() error
}

// NewApp opens the state database (unless persistence is disabled), builds
// the REST client and the store, and restores any saved session.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var (
		creds   credentials.Store = credentials.Nop{}
		closers []func() error
	)

	if c.PersistenceEnabled() {
		path, err := filex.EnsureParentDir(c.StatePath)
		if err != nil {
			return nil, err
		}
		db, err := localdb.Open(ctx, path)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", path, "err", err)
			return nil, err
		}
		creds = credentials.NewSQLiteStore(db)
		closers = append(closers, db.Close)
	}

	client := api.NewClient(c.ServerURL, api.WithTimeout(c.RequestTimeout), api.WithLogger(log))

	st := store.New(ctx, store.Deps{
		Auth:        client.Auth(),
		Employees:   client.Employees(),
		Tasks:       client.Tasks(),
		Credentials: creds,
		Logger:      log,
	})
	client.SetTokenSource(st.Auth)

	app := newApp(c, st, client, log, os.Stdin, os.Stdout)
	app.closers = closers
	return app, nil
}

func newApp(c *config.Config, st *store.Store, d Dashboarder, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:    c,
		store:     st,
		dashboard: d,
		log:       log,
		reader:    bufio.NewReader(in),
		out:       &syncWriter{w: out},
	}
}

// Run starts the REPL and releases resources when it returns.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "close failed", "err", err)
		}
	}()
	a.Root(ctx)
}

// Close waits for in-flight operations and closes the state database.
func (a *App) Close() error {
	a.store.Wait()

	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().Auth.Authenticated()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// syncWriter serialises writes from the REPL and from store listeners,
// which run on operation goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
