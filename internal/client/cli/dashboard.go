package cli

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
	"github.com/dmitrijs2005/staffdesk/internal/client/store"
	"golang.org/x/sync/errgroup"
)

// Dashboard prints the aggregate counters.
func (a *App) Dashboard(ctx context.Context) error {
	stats, err := a.dashboard.Dashboard(ctx)
	if err != nil {
		a.println(renderError(api.Message(err, "Failed to load dashboard")))
		return err
	}
	a.println(renderDashboard(stats))
	return nil
}

// Refresh re-fetches both collections concurrently and prints them. One
// failing fetch does not cancel the other.
func (a *App) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := a.store.Dispatch(ctx, store.FetchEmployees("")).Wait()
		return err
	})
	g.Go(func() error {
		_, err := a.store.Dispatch(ctx, store.FetchTasks("")).Wait()
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	snap := a.store.Snapshot()
	a.println(titleStyle.Render("Employees"))
	a.println(renderEmployees(snap.Employees.Items))
	a.println(titleStyle.Render("Tasks"))
	a.println(renderTasks(snap.Tasks.Items))
	return nil
}
