// Package ui provides optional terminal interfaces.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasks-go/internal/task"
)

// Source is the read side the browser pulls tasks from.
type Source interface {
	All(ctx context.Context) ([]task.Task, error)
	FilterByStatus(ctx context.Context, status task.Status) ([]task.Task, error)
	DueWithin(ctx context.Context, now time.Time, window time.Duration) ([]task.Task, error)
}

// Options configures the browser.
type Options struct {
	DBPath       string
	Window       time.Duration
	TickInterval time.Duration
	Now          func() time.Time
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// RunTUI starts the browser on stdout.
func RunTUI(ctx context.Context, src Source, opts Options) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newTUIModel(ctx, src, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	ctx          context.Context
	src          Source
	dbPath       string
	window       time.Duration
	tickInterval time.Duration
	now          func() time.Time

	loadErr  error
	counts   map[task.Status]int
	total    int
	tasks    []task.Task
	loaded   bool
	filter   task.Status // Filter by status
	dueView  bool        // Show tasks due within the window
	showHelp bool        // Show help screen
}

type tickMsg time.Time

func newTUIModel(ctx context.Context, src Source, opts Options) *tuiModel {
	m := &tuiModel{
		ctx:          ctx,
		src:          src,
		dbPath:       opts.DBPath,
		window:       opts.Window,
		tickInterval: opts.TickInterval,
		now:          opts.Now,
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.tickInterval <= 0 {
		m.tickInterval = 2 * time.Second
	}
	if m.window <= 0 {
		m.window = 24 * time.Hour
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
		case "h", "?":
			m.showHelp = !m.showHelp
		case "1":
			m.filter = task.StatusPending
			m.dueView = false
			m.refresh()
		case "2":
			m.filter = task.StatusCompleted
			m.dueView = false
			m.refresh()
		case "d":
			m.dueView = !m.dueView
			m.filter = ""
			m.refresh()
		case "0":
			m.filter = ""
			m.dueView = false
			m.refresh()
		}
		return m, nil
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading tasks:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}
	if !m.loaded {
		b.WriteString("Loading...\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	writeOverview(&b, m.counts, m.total)
	b.WriteString(headerStyle.Render(m.viewLabel()) + "\n\n")
	writeTasks(&b, m.tasks)
	b.WriteString(dimStyle.Render("Database: "+m.dbPath) + "\n")
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func (m *tuiModel) viewLabel() string {
	switch {
	case m.dueView:
		return fmt.Sprintf("Due within %s (0 to clear)", m.window)
	case m.filter != "":
		return fmt.Sprintf("Filter: %s (0 to clear)", m.filter)
	default:
		return "All tasks"
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) refresh() {
	all, err := m.src.All(m.ctx)
	if err != nil {
		m.loadErr = err
		return
	}

	shown := all
	switch {
	case m.dueView:
		shown, err = m.src.DueWithin(m.ctx, m.now(), m.window)
	case m.filter != "":
		shown, err = m.src.FilterByStatus(m.ctx, m.filter)
	}
	if err != nil {
		m.loadErr = err
		return
	}

	m.loadErr = nil
	m.loaded = true
	m.counts = countByStatus(all)
	m.total = len(all)
	m.tasks = shown
}

func countByStatus(tasks []task.Task) map[task.Status]int {
	counts := map[task.Status]int{
		task.StatusPending:   0,
		task.StatusCompleted: 0,
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

func writeOverview(b *strings.Builder, counts map[task.Status]int, total int) {
	other := total - counts[task.StatusPending] - counts[task.StatusCompleted]
	line := fmt.Sprintf("  Pending: %d  Completed: %d  Total: %d",
		counts[task.StatusPending],
		counts[task.StatusCompleted],
		total,
	)
	if other > 0 {
		line += fmt.Sprintf("  Other: %d", other)
	}
	b.WriteString(line + "\n\n")
}

func writeTasks(b *strings.Builder, tasks []task.Task) {
	if len(tasks) == 0 {
		b.WriteString("  No tasks found.\n\n")
		return
	}
	for i := range tasks {
		b.WriteString(formatTask(&tasks[i]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString(headerStyle.Render("Keyboard Shortcuts") + "\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh data\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Filter by pending\n")
	b.WriteString("  2            Filter by completed\n")
	b.WriteString("  d            Toggle due-soon view\n")
	b.WriteString("  0            Clear filter\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(dimStyle.Render(fmt.Sprintf("Press h for help | q to quit | Refreshing every %s", interval)) + "\n")
}

func formatTask(t *task.Task) string {
	icon := " "
	style := lipgloss.NewStyle()
	switch t.Status {
	case task.StatusCompleted:
		icon = "x"
		style = doneStyle
	case task.StatusPending:
		style = pendingStyle
	default:
		icon = "?"
	}

	line := fmt.Sprintf("  %s [%d] %s", icon, t.ID, t.Description)
	var meta []string
	if t.Deadline != nil {
		meta = append(meta, "due "+*t.Deadline)
	}
	if t.Priority != nil {
		meta = append(meta, *t.Priority)
	}
	if len(meta) > 0 {
		line += " " + dimStyle.Render("("+strings.Join(meta, ", ")+")")
	}
	return style.Render(line)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
