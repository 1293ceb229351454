package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	ListEmployees(ctx context.Context, query string) error
	AddEmployee(ctx context.Context) error
	EditEmployee(ctx context.Context, id string) error
	RemoveEmployee(ctx context.Context, id string) error
	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	SetTaskStatus(ctx context.Context, id, status string) error
	RemoveTask(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
}

// protectedCommands need a credential.
var protectedCommands = map[string]bool{
	"logout":       true,
	"whoami":       true,
	"dashboard":    true,
	"employees":    true,
	"addemployee":  true,
	"editemployee": true,
	"rmemployee":   true,
	"tasks":        true,
	"addtask":      true,
	"taskstatus":   true,
	"rmtask":       true,
	"refresh":      true,
}

const (
	helpSignedOut = "Available commands: login, help, exit"
	helpSignedIn  = "Available commands: dashboard, employees [query], addemployee, editemployee <id>, " +
		"rmemployee <id>, tasks, addtask, taskstatus <id> <pending|progress|completed>, rmtask <id>, " +
		"refresh, whoami, logout, exit"
)

// runREPL reads commands from reader until EOF, "exit", "quit" or ctx is
// done.
//
// Protected commands are refused while signed out. When a protected command
// fails with api.ErrUnauthorized the session is dropped and the user is asked
// to log in again. Other handler errors are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "staffdesk%s> ", statusFn())

		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}

		if protectedCommands[cmd] && !a.isLoggedIn() {
			fmt.Fprintln(w, "Please log in first (type 'login')")
			continue
		}

		err := execCommand(ctx, a, cmd, args, w)
		if protectedCommands[cmd] && errors.Is(err, api.ErrUnauthorized) {
			_ = a.Logout(ctx)
			fmt.Fprintln(w, "Your session is no longer valid. Please log in again.")
		}

		if readErr != nil {
			return
		}
	}
}

func execCommand(ctx context.Context, a execIface, cmd string, args []string, w io.Writer) error {
	usage := func(s string) error {
		fmt.Fprintln(w, "Usage:", s)
		return nil
	}

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(w, helpSignedIn)
		} else {
			fmt.Fprintln(w, helpSignedOut)
		}
		return nil

	case "login":
		return a.Login(ctx)

	case "logout":
		return a.Logout(ctx)

	case "whoami":
		return a.WhoAmI(ctx)

	case "dashboard":
		return a.Dashboard(ctx)

	case "employees":
		return a.ListEmployees(ctx, strings.Join(args, " "))

	case "addemployee":
		return a.AddEmployee(ctx)

	case "editemployee":
		if len(args) != 1 {
			return usage("editemployee <id>")
		}
		return a.EditEmployee(ctx, args[0])

	case "rmemployee":
		if len(args) != 1 {
			return usage("rmemployee <id>")
		}
		return a.RemoveEmployee(ctx, args[0])

	case "tasks":
		return a.ListTasks(ctx)

	case "addtask":
		return a.AddTask(ctx)

	case "taskstatus":
		if len(args) < 2 {
			return usage("taskstatus <id> <pending|progress|completed>")
		}
		return a.SetTaskStatus(ctx, args[0], strings.Join(args[1:], " "))

	case "rmtask":
		if len(args) != 1 {
			return usage("rmtask <id>")
		}
		return a.RemoveTask(ctx, args[0])

	case "refresh":
		return a.Refresh(ctx)

	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
		return nil
	}
}
