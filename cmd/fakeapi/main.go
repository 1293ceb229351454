// Command fakeapi serves the in-memory staffdesk service under /api for
// local runs of the console.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/apitest"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
)

func main() {
	addr := flag.String("a", "127.0.0.1:5000", "listen address")
	secret := flag.String("secret", "dev-secret", "token signing secret")
	email := flag.String("email", "admin@example.com", "login email")
	password := flag.String("password", "admin123", "login password")
	seed := flag.Bool("seed", true, "start with demo employees and tasks")
	flag.Parse()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	fake := apitest.New([]byte(*secret))
	fake.AddUser(*email, *password, models.Principal{Name: "Administrator", Role: "admin"})
	if *seed {
		seedDemo(fake)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", fake))

	srv := &http.Server{Addr: *addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "shutdown failed", "err", err)
		}
	}()

	logger.Info(ctx, "fake api listening", "addr", *addr, "base", "http://"+*addr+"/api", "email", *email)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(ctx, "server stopped", "err", err)
		os.Exit(1)
	}
}

func seedDemo(f *apitest.Fake) {
	ann := models.Employee{ID: "e1", Name: "Ann Lee", Email: "ann@example.com", Department: "Operations", Phone: "555-0101", Status: models.EmployeeActive}
	bob := models.Employee{ID: "e2", Name: "Bob Stone", Email: "bob@example.com", Department: "Engineering", Status: models.EmployeeActive}
	f.SeedEmployees(ann, bob)

	deadline := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	f.SeedTasks(
		models.Task{ID: "t1", Title: "Quarterly review", Priority: models.PriorityHigh, Status: models.TaskInProgress,
			AssignedTo: &models.Assignee{ID: ann.ID}, Deadline: &deadline},
		models.Task{ID: "t2", Title: "Onboarding docs", Priority: models.PriorityLow, Status: models.TaskPending},
	)
}
