package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/docflow/internal/config"
	"github.com/dmitrijs2005/docflow/internal/logging"
	"github.com/dmitrijs2005/docflow/internal/repositories/repomanager"
	"github.com/dmitrijs2005/docflow/internal/seed"
	"github.com/dmitrijs2005/docflow/internal/services"
)

// App is the interactive front end. It owns the store for the lifetime of
// the session.
type App struct {
	config *config.Config
	store  *services.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds an in-memory store, seeds it when configured and wires the
// terminal streams.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	return newApp(ctx, c, log, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer, opts ...services.Option) (*App, error) {
	m := repomanager.NewMemoryRepositoryManager()
	st := services.NewStore(m, c, log, opts...)

	if c.SeedDemoData {
		current, err := seed.Load(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("error seeding store: %w", err)
		}
		st.Session().SetUserID(current)
		log.Info(ctx, "demo data loaded", "current_user", current)
	}

	return &App{
		config: c,
		store:  st,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}, nil
}

// Run starts the REPL and returns when the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to docflow (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// getStatus renders the prompt prefix: current user and unread count.
func (a *App) getStatus() string {
	ctx := context.Background()
	u, err := a.store.Users.CurrentUser(ctx)
	if err != nil {
		return "(signed out)"
	}
	s := fmt.Sprintf("(%s, %s", u.Name, u.Role)
	if n, err := a.store.Notifications.UnreadCount(ctx, u.ID); err == nil && n > 0 {
		s += fmt.Sprintf(", %d unread", n)
	}
	return s + ")"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail reports err to the user and hands it back to the caller.
func (a *App) fail(err error) error {
	a.printf("error: %v\n", err)
	return err
}
