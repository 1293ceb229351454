package cli

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
)

var (
	brand       = lipgloss.Color("#2196F3")
	destructive = lipgloss.Color("#e53935")
	success     = lipgloss.Color("#8BC34A")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(brand)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	errorStyle  = lipgloss.NewStyle().Foreground(destructive)
	okStyle     = lipgloss.NewStyle().Foreground(success)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

// table lays rows out with tabwriter and styles the header row afterwards,
// so escape sequences do not skew column widths.
func table(header []string, rows [][]string) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	lines[0] = headerStyle.Render(strings.TrimRight(lines[0], " "))
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func renderEmployees(items []models.Employee) string {
	if len(items) == 0 {
		return mutedStyle.Render("No employees found.")
	}
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{e.ID, e.Name, e.Email, e.Department, orDash(e.Phone), string(e.Status)})
	}
	return table([]string{"ID", "NAME", "EMAIL", "DEPARTMENT", "PHONE", "STATUS"}, rows)
}

func renderTasks(items []models.Task) string {
	if len(items) == 0 {
		return mutedStyle.Render("No tasks found.")
	}
	rows := make([][]string, 0, len(items))
	for _, t := range items {
		deadline := "-"
		if t.Deadline != nil {
			deadline = t.Deadline.Format(time.DateOnly)
		}
		rows = append(rows, []string{t.ID, t.Title, t.AssigneeLabel(), string(t.Priority), string(t.Status), deadline})
	}
	return table([]string{"ID", "TITLE", "ASSIGNED TO", "PRIORITY", "STATUS", "DEADLINE"}, rows)
}

func renderDashboard(s models.DashboardStats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n")
	if s.Message != "" {
		b.WriteString(mutedStyle.Render(s.Message))
		b.WriteString("\n")
	}
	b.WriteString(table([]string{"METRIC", "VALUE"}, [][]string{
		{"Total employees", fmt.Sprint(s.TotalEmployees)},
		{"Total tasks", fmt.Sprint(s.TotalTasks)},
		{"Completed tasks", fmt.Sprint(s.CompletedTasks)},
		{"Pending tasks", fmt.Sprint(s.PendingTasks)},
	}))
	return b.String()
}

func renderError(msg string) string {
	return errorStyle.Render("Error: " + msg)
}

func renderOK(msg string) string {
	return okStyle.Render(msg)
}
