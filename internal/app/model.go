// Package app contains the main application model and TEA implementation.
package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/finboard/internal/clock"
	"github.com/riordanpawley/finboard/internal/config"
	"github.com/riordanpawley/finboard/internal/debounce"
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/services/clipboard"
	"github.com/riordanpawley/finboard/internal/services/editor"
	"github.com/riordanpawley/finboard/internal/services/export"
	"github.com/riordanpawley/finboard/internal/services/ledger"
	"github.com/riordanpawley/finboard/internal/services/navigation"
	"github.com/riordanpawley/finboard/internal/services/notify"
	"github.com/riordanpawley/finboard/internal/services/toast"
	"github.com/riordanpawley/finboard/internal/types"
	"github.com/riordanpawley/finboard/internal/ui/keys"
	"github.com/riordanpawley/finboard/internal/ui/overlay"
	"github.com/riordanpawley/finboard/internal/ui/styles"
)

// statusRefresh is how often the status bar redraws its "updated" time
const statusRefresh = time.Minute

type statusTickMsg struct{}

// Loader provides the transactions shown on the dashboard
type Loader interface {
	Load() ([]domain.Transaction, error)
}

// Model is the dashboard
type Model struct {
	// Core data
	txs      []domain.Transaction
	rows     []domain.Transaction // shown month, filtered and sorted
	loadedAt time.Time

	// Table cursor, tracked by transaction ID
	nav *navigation.Service

	// Editor state (mode, month, filter, sort)
	editor *editor.Service

	// UI state
	overlayStack *overlay.Stack
	keys         keys.KeyMap

	// Background plumbing
	events          *Events
	toasts          *toast.Controller
	search          *debounce.Debouncer[string]
	permissionReply chan<- notify.Permission

	// Services
	loader    Loader
	exporter  *export.Exporter
	clipboard *clipboard.Service
	notifier  *notify.Service

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	clock  clock.Clock
	loc    *time.Location

	// Loading state
	loading bool
	spinner spinner.Model

	// Canceled on quit so blocked commands (the permission prompt) give up
	ctx    context.Context
	cancel context.CancelFunc

	logger *slog.Logger
}

type settings struct {
	clock   clock.Clock
	logger  *slog.Logger
	loader  Loader
	writers []clipboard.Writer
	sender  notify.Sender
}

// Option customizes the services a Model is built with
type Option func(*settings)

// WithClock replaces the wall clock
func WithClock(c clock.Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithLogger sets the logger shared by every service
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithLoader replaces the transactions file loader
func WithLoader(l Loader) Option {
	return func(s *settings) { s.loader = l }
}

// WithClipboard replaces the clipboard writers
func WithClipboard(writers ...clipboard.Writer) Option {
	return func(s *settings) { s.writers = writers }
}

// WithSender replaces the desktop notification sender
func WithSender(sender notify.Sender) Option {
	return func(s *settings) { s.sender = sender }
}

// New creates a new application model with the given config
func New(cfg *config.Config, opts ...Option) Model {
	st := settings{
		clock:  clock.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&st)
	}

	logger := st.logger
	if st.loader == nil {
		st.loader = ledger.NewService(cfg.ResolvePath(cfg.Data.Transactions), logger)
	}
	if st.writers == nil {
		st.writers = []clipboard.Writer{
			clipboard.SystemWriter{},
			clipboard.OSC52Writer{Out: os.Stdout, Tmux: os.Getenv("TMUX") != ""},
		}
	}
	if st.sender == nil {
		st.sender = notify.NewExecSender(&notify.ExecRunner{})
	}

	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	events := NewEvents(eventBuffer, logger)

	toasts := toast.NewController(st.clock,
		toast.WithDefaultDuration(cfg.ToastDuration()),
		toast.WithLogger(logger),
		toast.WithOnChange(func(state types.ToastState) {
			events.Send(toastChangedMsg{state: state})
		}),
	)

	search := debounce.New(st.clock, cfg.SearchDebounce(), func(query string) {
		events.Send(searchAppliedMsg{query: query})
	})

	perm, err := notify.ParsePermission(cfg.Notifications.Permission)
	if err != nil {
		logger.Warn("ignoring stored notification permission", "error", err)
	}
	notifier := notify.NewService(st.sender, &confirmPrompter{events: events}, logger,
		notify.WithPermission(perm),
		notify.WithOnPermission(func(p notify.Permission) {
			events.Send(permissionAnsweredMsg{permission: p})
		}),
	)

	exporter := export.NewExporter(cfg.ResolvePath(cfg.Export.Dir), cfg.Export.Filename, logger)

	loc := cfg.Location()
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		nav:          navigation.NewService(),
		editor:       editor.NewService(domain.MonthOf(st.clock.Now().In(loc))),
		overlayStack: overlay.NewStack(),
		keys:         keys.DefaultKeyMap(),
		events:       events,
		toasts:       toasts,
		search:       search,
		loader:       st.loader,
		exporter:     exporter,
		clipboard:    clipboard.NewService(logger, st.writers...),
		notifier:     notifier,
		styles:       styles.New(),
		config:       cfg,
		clock:        st.clock,
		loc:          loc,
		loading:      true, // Start with loading state
		spinner:      s,
		ctx:          ctx,
		cancel:       cancel,
		logger:       logger,
	}
	return m
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadCmd(),
		m.events.Listen(),
		statusTickCmd(),
	)
}

// statusTickCmd schedules the next status bar redraw
func statusTickCmd() tea.Cmd {
	return tea.Tick(statusRefresh, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		next, cmd := m.Update(msg.msg)
		return next, tea.Batch(cmd, m.events.Listen())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusTickMsg:
		// View reads the clock; this only triggers a redraw
		return m, statusTickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.closeOverlay()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.SearchMsg:
		if msg.Query == "" {
			// Clearing applies at once
			m.search.Cancel()
			m.applySearch("")
			return m, nil
		}
		m.search.Call(msg.Query)
		return m, nil

	// Background events
	case searchAppliedMsg:
		// Late results after the bar closed were already superseded
		if _, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
			m.applySearch(msg.query)
		}
		return m, nil

	case toastChangedMsg:
		// View reads the controller directly; this only triggers a redraw
		return m, nil

	case permissionPromptMsg:
		return m.openPermissionPrompt(msg)

	case permissionAnsweredMsg:
		return m, m.savePermissionCmd(msg.permission)

	// Command results
	case loadedMsg:
		wasLoading := m.loading
		m.txs = msg.txs
		m.loading = false
		m.loadedAt = msg.at
		m.refreshRows()
		if !wasLoading {
			m.toasts.Info(formatCount(len(msg.txs)) + " transaksi dimuat")
		}
		return m, nil

	case loadErrorMsg:
		m.loading = false
		m.toasts.Error(loadErrorText(msg.err))
		return m, nil

	case exportDoneMsg:
		m.handleExportDone(msg)
		return m, nil

	case copyDoneMsg:
		if msg.ok {
			m.toasts.Success("Ringkasan disalin ke clipboard")
		} else {
			m.toasts.Error("Gagal menyalin ke clipboard")
		}
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to save notification permission", "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input: ctrl+c always quits, an open overlay owns
// every other key, and otherwise the key map decides
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}

	action := m.keys.Resolve(msg, m.editor.GetMode())
	return m.runAction(action)
}

// closeOverlay pops the top overlay and returns focus to the table once none is left
func (m *Model) closeOverlay() {
	if so, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
		// The bar's final text wins over anything still debouncing
		m.search.Cancel()
		m.applySearch(so.Query())
	}
	m.overlayStack.Pop()
	if m.overlayStack.IsEmpty() {
		m.editor.EnterNormal()
	}
}

func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	switch msg.Key {
	case permissionKey:
		result, _ := msg.Value.(overlay.ConfirmResult)
		perm := notify.PermissionDenied
		if result.Confirmed {
			perm = notify.PermissionGranted
		}
		if m.permissionReply != nil {
			m.permissionReply <- perm
			m.permissionReply = nil
		}
		m.closeOverlay()
	}
	return m, nil
}

// openPermissionPrompt shows the confirm dialog for a notification prompt
func (m Model) openPermissionPrompt(msg permissionPromptMsg) (tea.Model, tea.Cmd) {
	if m.permissionReply != nil {
		// A dialog is already open; the notifier never asks twice at once
		msg.reply <- notify.PermissionDefault
		return m, nil
	}
	m.permissionReply = msg.reply
	m.editor.EnterDialog()
	dialog := overlay.NewConfirmDialog(permissionKey, "Notifikasi",
		"Izinkan finboard menampilkan notifikasi desktop?")
	return m, m.overlayStack.Push(dialog)
}

// applySearch sets the committed search query and updates the match count
func (m *Model) applySearch(query string) {
	m.editor.SetSearchQuery(query)
	m.refreshRows()
	if so, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
		so.SetMatchCount(len(m.rows))
	}
}

// refreshRows recomputes the visible rows. The cursor follows its
// transaction, or stays at the same row when that one is gone.
func (m *Model) refreshRows() {
	m.rows = m.editor.FilterAndSort(m.txs)
}

// cursor is the selected row of m.rows
func (m Model) cursor() int {
	return max(m.nav.Index(m.rows), 0)
}

// halfPage approximates half the table rows left after the summary and status bar
func (m Model) halfPage() int {
	return max(1, (m.height-10)/2)
}

// monthSummary totals the shown month, ignoring the search filter
func (m Model) monthSummary() domain.Summary {
	return domain.Summarize(m.editor.MonthOnly(m.txs))
}

func (m Model) now() time.Time {
	return m.clock.Now().In(m.loc)
}

// quit stops background work and closes every overlay before exiting
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.search.Cancel()
	m.cancel()
	m.overlayStack.Clear()
	m.permissionReply = nil
	m.editor.EnterNormal()
	return m, tea.Quit
}
