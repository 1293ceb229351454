package cli

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/client/store"
)

func (a *App) getStatus() string {
	auth := a.store.Snapshot().Auth
	switch {
	case !auth.Authenticated():
		return ""
	case auth.Principal != nil && auth.Principal.Email != "":
		return " (" + auth.Principal.Email + ")"
	default:
		return " (signed in)"
	}
}

// Root greets the user, asks for a login unless a session was restored and
// runs the REPL until exit.
func (a *App) Root(ctx context.Context) {
	a.println(titleStyle.Render("staffdesk console") + " (type 'help' for commands)")

	stop := a.watchFetchErrors()
	defer stop()

	if a.isLoggedIn() {
		a.println(mutedStyle.Render("Session restored"))
	} else {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// watchFetchErrors prints a collection's fetch error when a fetch settles
// with one. Deliveries are sequential, so prev needs no lock.
func (a *App) watchFetchErrors() func() {
	prev := a.store.Snapshot()
	return a.store.Subscribe(func(s store.Snapshot) {
		if s.Employees.Status == store.CollectionError && prev.Employees.Status != store.CollectionError {
			a.println(renderError("could not load employees: " + s.Employees.LastError))
		}
		if s.Tasks.Status == store.CollectionError && prev.Tasks.Status != store.CollectionError {
			a.println(renderError("could not load tasks: " + s.Tasks.LastError))
		}
		prev = s
	})
}
