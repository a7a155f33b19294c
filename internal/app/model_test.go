package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/finboard/internal/clock"
	"github.com/riordanpawley/finboard/internal/config"
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/services/notify"
	"github.com/riordanpawley/finboard/internal/types"
	"github.com/riordanpawley/finboard/internal/ui/overlay"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

type fakeLoader struct {
	txs []domain.Transaction
	err error
}

func (l *fakeLoader) Load() ([]domain.Transaction, error) {
	return l.txs, l.err
}

type mockWriter struct {
	mu   sync.Mutex
	err  error
	text []string
}

func (w *mockWriter) WriteAll(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.text = append(w.text, text)
	return nil
}

type fakeSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *fakeSender) Supported() bool { return true }

func (s *fakeSender) Send(ctx context.Context, title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, title+": "+body)
	return nil
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func testTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: 1, Date: "2026-10-19", Type: domain.TypeExpense, Amount: decimal.NewFromInt(25000), Note: "Kopi", CategoryName: "Makanan"},
		{ID: 2, Date: "2026-10-01", Type: domain.TypeIncome, Amount: decimal.NewFromInt(5000000), Note: "Gaji", CategoryName: "Gaji"},
		{ID: 3, Date: "2026-10-05", Type: domain.TypeExpense, Amount: decimal.NewFromInt(150000), Note: "Belanja mingguan", CategoryName: "Belanja"},
		{ID: 4, Date: "2026-09-28", Type: domain.TypeExpense, Amount: decimal.NewFromInt(40000), Note: "Bensin", CategoryName: "Transportasi"},
	}
}

type testEnv struct {
	clock  *clock.Fake
	loader *fakeLoader
	writer *mockWriter
	sender *fakeSender
	cfg    *config.Config
}

// newTestModel creates a loaded model showing October 2026
func newTestModel(t *testing.T) (Model, *testEnv) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Locale.Timezone = "UTC"
	cfg.Export.Dir = t.TempDir()

	env := &testEnv{
		clock:  clock.NewFake(testNow),
		loader: &fakeLoader{txs: testTransactions()},
		writer: &mockWriter{},
		sender: &fakeSender{},
		cfg:    cfg,
	}

	m := New(cfg,
		WithClock(env.clock),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithLoader(env.loader),
		WithClipboard(env.writer),
		WithSender(env.sender),
	)
	m.width = 100
	m.height = 30

	m = update(t, m, m.loadCmd()())
	require.False(t, m.loading)
	return m, env
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := updateCmd(t, m, msg)
	return next
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update must return app.Model")
	return model, cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	return updateCmd(t, m, keyMsg(k))
}

// drainEvents returns every message queued on the bus without blocking
func drainEvents(m Model) []tea.Msg {
	var msgs []tea.Msg
	for {
		select {
		case msg := <-m.events.ch:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

// waitEvent blocks until the bus delivers a message
func waitEvent(t *testing.T, m Model) tea.Msg {
	t.Helper()
	select {
	case msg := <-m.events.ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func rowIDs(m Model) []int {
	ids := make([]int, len(m.rows))
	for i, tx := range m.rows {
		ids[i] = tx.ID
	}
	return ids
}

func TestLoad(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, domain.Month{Year: 2026, Month: time.October}, m.editor.Month())
	assert.Equal(t, []int{1, 3, 2}, rowIDs(m), "October rows sorted newest first")
	assert.Equal(t, testNow, m.loadedAt)
	assert.False(t, m.toasts.State().Visible, "first load is silent")

	sum := m.monthSummary()
	assert.True(t, sum.Income.Equal(decimal.NewFromInt(5000000)))
	assert.True(t, sum.Expense.Equal(decimal.NewFromInt(175000)))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing file", &domain.LedgerError{Op: "open", Err: domain.ErrNotFound}, "File transaksi tidak ditemukan"},
		{"bad json", &domain.LedgerError{Op: "decode", Err: domain.ErrInvalidData}, "File transaksi tidak valid"},
		{"other", errors.New("permission denied"), "Gagal memuat transaksi: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, env := newTestModel(t)
			env.loader.err = tt.err

			_, cmd := press(t, m, "r")
			require.NotNil(t, cmd)
			m = update(t, m, cmd())

			state := m.toasts.State()
			assert.True(t, state.Visible)
			assert.Equal(t, types.SeverityError, state.Severity)
			assert.Equal(t, tt.want, state.Message)
			assert.Equal(t, []int{1, 3, 2}, rowIDs(m), "rows survive a failed reload")
		})
	}
}

func TestRefreshShowsToast(t *testing.T) {
	m, env := newTestModel(t)
	env.loader.txs = env.loader.txs[:2]

	m, cmd := press(t, m, "r")
	m = update(t, m, cmd())

	assert.Equal(t, []int{1, 2}, rowIDs(m))
	assert.Equal(t, "2 transaksi dimuat", m.toasts.State().Message)
}

func TestMonthNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "h")
	assert.Equal(t, "2026-09", m.editor.Month().String())
	assert.Equal(t, []int{4}, rowIDs(m))

	m, _ = press(t, m, "left")
	assert.Equal(t, "2026-08", m.editor.Month().String())
	assert.Empty(t, m.rows)

	m, _ = press(t, m, "right")
	m, _ = press(t, m, "l")
	assert.Equal(t, "2026-10", m.editor.Month().String())

	m, _ = press(t, m, "l")
	m, _ = press(t, m, "t")
	assert.Equal(t, "2026-10", m.editor.Month().String())
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, 0, m.cursor())

	m, _ = press(t, m, "j")
	m, _ = press(t, m, "down")
	assert.Equal(t, 2, m.cursor())

	m, _ = press(t, m, "j")
	assert.Equal(t, 2, m.cursor(), "cursor stops at the last row")

	m, _ = press(t, m, "k")
	m, _ = press(t, m, "up")
	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.cursor())

	m, _ = press(t, m, "G")
	assert.Equal(t, 2, m.cursor())
	m, _ = press(t, m, "g")
	assert.Equal(t, 0, m.cursor())

	m, _ = press(t, m, "ctrl+d")
	assert.Equal(t, 2, m.cursor(), "half page clamps to the last row")
	m, _ = press(t, m, "ctrl+u")
	assert.Equal(t, 0, m.cursor())

	m, _ = press(t, m, "j")
	m, _ = press(t, m, "h")
	assert.Equal(t, 0, m.cursor(), "changing month resets the cursor")
}

func TestCursorFollowsTransaction(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "G")
	tx, ok := m.nav.Current(m.rows)
	require.True(t, ok)
	require.Equal(t, 2, tx.ID)

	m.applySearch("gaji")
	assert.Equal(t, 0, m.cursor())

	m.applySearch("")
	assert.Equal(t, 2, m.cursor(), "selection survives the search")

	m = update(t, m, m.loadCmd()())
	assert.Equal(t, 2, m.cursor(), "selection survives a reload")
}

func TestSearchOpensOverlay(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "/")
	require.Equal(t, 1, m.overlayStack.Len())
	_, ok := m.overlayStack.Current().(*overlay.SearchOverlay)
	assert.True(t, ok)
	assert.Equal(t, types.ModeSearch, m.editor.GetMode())

	// Shortcuts are text while the search bar is open
	m, _ = press(t, m, "q")
	m, _ = press(t, m, "h")
	assert.Equal(t, 1, m.overlayStack.Len())
	assert.Equal(t, "2026-10", m.editor.Month().String())
	assert.NoError(t, m.ctx.Err(), "q typed into the search bar must not quit")
}

func TestSearchIsDebounced(t *testing.T) {
	m, env := newTestModel(t)
	m, _ = press(t, m, "/")

	m = update(t, m, overlay.SearchMsg{Query: "k"})
	env.clock.Advance(100 * time.Millisecond)
	m = update(t, m, overlay.SearchMsg{Query: "ko"})
	env.clock.Advance(100 * time.Millisecond)
	m = update(t, m, overlay.SearchMsg{Query: "kopi"})

	assert.Empty(t, drainEvents(m), "nothing applied while typing")
	assert.Equal(t, []int{1, 3, 2}, rowIDs(m))

	env.clock.Advance(300 * time.Millisecond)
	events := drainEvents(m)
	require.Len(t, events, 1)
	assert.Equal(t, searchAppliedMsg{query: "kopi"}, events[0])

	m, cmd := updateCmd(t, m, eventMsg{msg: events[0]})
	assert.NotNil(t, cmd, "the listener is re-armed")
	assert.Equal(t, []int{1}, rowIDs(m))
	assert.Equal(t, "kopi", m.editor.GetFilter().SearchQuery)
}

func TestSearchEnterKeepsQuery(t *testing.T) {
	m, env := newTestModel(t)
	m, _ = press(t, m, "/")

	// Still debouncing when the bar closes
	m = update(t, m, overlay.SearchMsg{Query: "gaji"})
	so := m.overlayStack.Current().(*overlay.SearchOverlay)
	so.Update(keyMsg("g"))
	so.Update(keyMsg("a"))
	so.Update(keyMsg("j"))
	so.Update(keyMsg("i"))

	m = update(t, m, overlay.CloseOverlayMsg{})
	assert.True(t, m.overlayStack.IsEmpty())
	assert.Equal(t, types.ModeNormal, m.editor.GetMode())
	assert.Equal(t, []int{2}, rowIDs(m))

	env.clock.Advance(time.Second)
	assert.Empty(t, drainEvents(m), "pending search was canceled on close")
}

func TestSearchEscClears(t *testing.T) {
	m, env := newTestModel(t)
	m, _ = press(t, m, "/")

	m = update(t, m, overlay.SearchMsg{Query: "kopi"})
	env.clock.Advance(300 * time.Millisecond)
	for _, msg := range drainEvents(m) {
		m = update(t, m, msg)
	}
	require.Equal(t, []int{1}, rowIDs(m))

	m = update(t, m, overlay.SearchMsg{Query: ""})
	m = update(t, m, overlay.CloseOverlayMsg{})

	assert.Equal(t, []int{1, 3, 2}, rowIDs(m))
	assert.Empty(t, m.editor.GetFilter().SearchQuery)
	assert.True(t, m.overlayStack.IsEmpty())
}

func TestLateSearchResultIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, searchAppliedMsg{query: "kopi"})
	assert.Equal(t, []int{1, 3, 2}, rowIDs(m))
}

func TestEscOnTable(t *testing.T) {
	m, _ := newTestModel(t)
	m.applySearch("gaji")
	m.toasts.Info("halo")

	m, _ = press(t, m, "esc")
	assert.Empty(t, m.editor.GetFilter().SearchQuery, "esc clears the search first")
	assert.True(t, m.toasts.State().Visible)

	m, _ = press(t, m, "esc")
	assert.False(t, m.toasts.State().Visible, "then dismisses the toast")
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "?")
	require.Equal(t, 1, m.overlayStack.Len())
	assert.Equal(t, types.ModeDialog, m.editor.GetMode())

	// Keys go to the overlay, not the table
	m, _ = press(t, m, "h")
	assert.Equal(t, "2026-10", m.editor.Month().String())

	m, cmd := press(t, m, "esc")
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.True(t, m.overlayStack.IsEmpty())
	assert.Equal(t, types.ModeNormal, m.editor.GetMode())
}

func TestCopy(t *testing.T) {
	m, env := newTestModel(t)

	m, cmd := press(t, m, "y")
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	require.Len(t, env.writer.text, 1)
	assert.Equal(t,
		"Ringkasan Oktober 2026\nPemasukan: Rp 5.000.000\nPengeluaran: Rp 175.000\nSaldo: Rp 4.825.000",
		env.writer.text[0])

	state := m.toasts.State()
	assert.Equal(t, types.SeveritySuccess, state.Severity)
	assert.Equal(t, "Ringkasan disalin ke clipboard", state.Message)
}

func TestCopyFailure(t *testing.T) {
	m, env := newTestModel(t)
	env.writer.err = errors.New("no display")

	m, cmd := press(t, m, "y")
	m = update(t, m, cmd())

	state := m.toasts.State()
	assert.Equal(t, types.SeverityError, state.Severity)
	assert.Equal(t, "Gagal menyalin ke clipboard", state.Message)
}

func TestToastAutoHide(t *testing.T) {
	m, env := newTestModel(t)

	m.toasts.Success("tersimpan")
	drainEvents(m)

	env.clock.Advance(2 * time.Second)
	assert.True(t, m.toasts.State().Visible)

	// A newer toast restarts the timer
	m.toasts.Info("lagi")
	env.clock.Advance(2 * time.Second)
	assert.True(t, m.toasts.State().Visible)

	env.clock.Advance(time.Second)
	assert.False(t, m.toasts.State().Visible)

	var last types.ToastState
	for _, msg := range drainEvents(m) {
		if changed, ok := msg.(toastChangedMsg); ok {
			last = changed.state
		}
	}
	assert.False(t, last.Visible, "the bus saw the toast hide")
}

func TestExport(t *testing.T) {
	m, env := newTestModel(t)

	m, cmd := press(t, m, "e")
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	path := filepath.Join(env.cfg.Export.Dir, "export.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,date,type,category,note,amount", lines[0])
	assert.Equal(t, "1,2026-10-19,expense,Makanan,Kopi,-25000", lines[1])

	state := m.toasts.State()
	assert.Equal(t, types.SeveritySuccess, state.Severity)
	assert.Equal(t, "3 transaksi diekspor ke "+path, state.Message)
}

func TestExportEmptyMonth(t *testing.T) {
	m, env := newTestModel(t)
	m, _ = press(t, m, "h")
	m, _ = press(t, m, "h")

	m, cmd := press(t, m, "e")
	m = update(t, m, cmd())

	assert.Equal(t, "Tidak ada transaksi untuk diekspor", m.toasts.State().Message)
	_, err := os.Stat(filepath.Join(env.cfg.Export.Dir, "export.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestExportFailure(t *testing.T) {
	m, env := newTestModel(t)

	// A file where the export directory should be
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	env.cfg.Export.Dir = blocker
	m = New(env.cfg,
		WithClock(env.clock),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithLoader(env.loader),
	)
	m = update(t, m, m.loadCmd()())

	m, cmd := press(t, m, "e")
	m = update(t, m, cmd())

	state := m.toasts.State()
	assert.Equal(t, types.SeverityError, state.Severity)
	assert.True(t, strings.HasPrefix(state.Message, "Ekspor gagal: "))
}

func TestNotifyPermissionPrompt(t *testing.T) {
	m, env := newTestModel(t)
	env.cfg.SourcePath = filepath.Join(t.TempDir(), ".finboard.json")

	m, cmd := press(t, m, "n")
	require.NotNil(t, cmd)

	done := make(chan struct{})
	go func() {
		cmd()
		close(done)
	}()

	prompt, ok := waitEvent(t, m).(permissionPromptMsg)
	require.True(t, ok, "notifier asks through the bus")

	m = update(t, m, prompt)
	require.Equal(t, 1, m.overlayStack.Len())
	assert.Equal(t, types.ModeDialog, m.editor.GetMode())
	assert.Equal(t, 0, env.sender.count(), "nothing sent before the answer")

	m, cmd = press(t, m, "y")
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	assert.True(t, m.overlayStack.IsEmpty())
	assert.Equal(t, types.ModeNormal, m.editor.GetMode())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notify did not finish after the answer")
	}
	assert.Equal(t, 1, env.sender.count())
	assert.Equal(t, notify.PermissionGranted, m.notifier.Permission())

	answered, ok := waitEvent(t, m).(permissionAnsweredMsg)
	require.True(t, ok)
	m, cmd = updateCmd(t, m, answered)
	require.NotNil(t, cmd)
	saved := cmd().(configSavedMsg)
	require.NoError(t, saved.err)

	loaded, err := config.LoadConfig(t.TempDir(), env.cfg.SourcePath)
	require.NoError(t, err)
	assert.Equal(t, "granted", loaded.Notifications.Permission)

	// Granted: the next notification goes straight out
	_, cmd = press(t, m, "n")
	cmd()
	assert.Equal(t, 2, env.sender.count())
}

func TestNotifyPermissionDenied(t *testing.T) {
	m, env := newTestModel(t)

	m, cmd := press(t, m, "n")
	done := make(chan struct{})
	go func() {
		cmd()
		close(done)
	}()

	m = update(t, m, waitEvent(t, m))
	m, cmd = press(t, m, "esc")
	m = update(t, m, cmd())
	<-done

	assert.Equal(t, 0, env.sender.count())
	assert.Equal(t, notify.PermissionDenied, m.notifier.Permission())

	m = update(t, m, waitEvent(t, m))
	assert.Equal(t, "denied", env.cfg.Notifications.Permission)
}

func TestNotifyDisabled(t *testing.T) {
	m, env := newTestModel(t)
	env.cfg.Notifications.Enabled = false

	m, cmd := press(t, m, "n")
	assert.Nil(t, cmd)
	assert.Equal(t, "Notifikasi dinonaktifkan", m.toasts.State().Message)
	assert.Equal(t, 0, env.sender.count())
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name   string
		opener string
		key    string
	}{
		{"q on table", "", "q"},
		{"ctrl+c on table", "", "ctrl+c"},
		{"ctrl+c in search", "/", "ctrl+c"},
		{"ctrl+c in help", "?", "ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			if tt.opener != "" {
				m, _ = press(t, m, tt.opener)
				require.Equal(t, 1, m.overlayStack.Len())
			}

			m, cmd := press(t, m, tt.key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Error(t, m.ctx.Err(), "quitting cancels background work")
			assert.True(t, m.overlayStack.IsEmpty(), "quitting closes every overlay")
			assert.Equal(t, types.ModeNormal, m.editor.GetMode())
		})
	}
}

func TestQuitAbortsPendingPrompt(t *testing.T) {
	m, env := newTestModel(t)

	_, cmd := press(t, m, "n")
	done := make(chan struct{})
	go func() {
		cmd()
		close(done)
	}()
	m = update(t, m, waitEvent(t, m))
	require.Equal(t, 1, m.overlayStack.Len(), "permission dialog is open")

	m, _ = press(t, m, "ctrl+c")
	assert.True(t, m.overlayStack.IsEmpty())
	assert.Nil(t, m.permissionReply)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("prompt did not give up on quit")
	}
	assert.Equal(t, 0, env.sender.count())
	assert.Equal(t, notify.PermissionDefault, m.notifier.Permission())
}
