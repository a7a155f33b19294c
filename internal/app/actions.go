package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/finboard/internal/config"
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/riordanpawley/finboard/internal/format"
	"github.com/riordanpawley/finboard/internal/services/ledger"
	"github.com/riordanpawley/finboard/internal/services/notify"
	"github.com/riordanpawley/finboard/internal/types"
	"github.com/riordanpawley/finboard/internal/ui/keys"
	ledgerview "github.com/riordanpawley/finboard/internal/ui/ledger"
	"github.com/riordanpawley/finboard/internal/ui/overlay"
)

// notificationTitle is the title of every desktop notification
const notificationTitle = "finboard"

// Message types for async operations

type loadedMsg struct {
	txs []domain.Transaction
	at  time.Time
}

type loadErrorMsg struct {
	err error
}

type exportDoneMsg struct {
	path  string
	count int
	err   error
}

type copyDoneMsg struct {
	ok bool
}

type configSavedMsg struct {
	err error
}

type searchAppliedMsg struct {
	query string
}

type toastChangedMsg struct {
	state types.ToastState
}

// runAction performs a resolved keyboard action
func (m Model) runAction(action keys.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keys.ActionQuit:
		return m.quit()

	case keys.ActionHelp:
		m.editor.EnterDialog()
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.keys.Bindings()))

	case keys.ActionSearch:
		m.editor.EnterSearch()
		so := overlay.NewSearchOverlay(m.editor.GetFilter().SearchQuery)
		so.SetMatchCount(len(m.rows))
		return m, m.overlayStack.Push(so)

	case keys.ActionPrevMonth:
		m.editor.PrevMonth()
		m.nav.Reset()
		m.refreshRows()

	case keys.ActionNextMonth:
		m.editor.NextMonth()
		m.nav.Reset()
		m.refreshRows()

	case keys.ActionThisMonth:
		m.editor.SetMonth(domain.MonthOf(m.now()))
		m.nav.Reset()
		m.refreshRows()

	case keys.ActionUp:
		m.nav.MoveUp(m.rows)

	case keys.ActionDown:
		m.nav.MoveDown(m.rows)

	case keys.ActionTop:
		m.nav.GotoTop(m.rows)

	case keys.ActionBottom:
		m.nav.GotoBottom(m.rows)

	case keys.ActionPageUp:
		m.nav.HalfPageUp(m.rows, m.halfPage())

	case keys.ActionPageDown:
		m.nav.HalfPageDown(m.rows, m.halfPage())

	case keys.ActionExport:
		return m, m.exportCmd()

	case keys.ActionCopy:
		return m, m.copyCmd()

	case keys.ActionNotify:
		if !m.config.Notifications.Enabled {
			m.toasts.Info("Notifikasi dinonaktifkan")
			return m, nil
		}
		return m, m.notifyCmd()

	case keys.ActionClose:
		// Esc on the table drops the search first, then the toast
		if m.editor.GetFilter().SearchQuery != "" {
			m.applySearch("")
		} else {
			m.toasts.Dismiss()
		}

	case keys.ActionRefresh:
		return m, m.loadCmd()
	}

	return m, nil
}

// Commands

// loadCmd reads the transactions file
func (m Model) loadCmd() tea.Cmd {
	loader := m.loader
	clk := m.clock
	return func() tea.Msg {
		txs, err := loader.Load()
		if err != nil {
			return loadErrorMsg{err: err}
		}
		return loadedMsg{txs: txs, at: clk.Now()}
	}
}

// exportCmd writes the visible rows to the export directory
func (m Model) exportCmd() tea.Cmd {
	records := ledger.Records(m.rows)
	exporter := m.exporter
	return func() tea.Msg {
		path, err := exporter.Download(records, "")
		return exportDoneMsg{path: path, count: len(records), err: err}
	}
}

func (m Model) handleExportDone(msg exportDoneMsg) {
	switch {
	case msg.err != nil:
		m.logger.Error("export failed", "error", msg.err)
		m.toasts.Error("Ekspor gagal: " + msg.err.Error())
	case msg.path == "":
		m.toasts.Info("Tidak ada transaksi untuk diekspor")
	default:
		m.toasts.Success(fmt.Sprintf("%s transaksi diekspor ke %s", formatCount(msg.count), msg.path))
	}
}

// copyCmd copies the month summary to the clipboard
func (m Model) copyCmd() tea.Cmd {
	text := ledgerview.SummaryText(m.editor.Month(), m.monthSummary())
	cb := m.clipboard
	ctx := m.ctx
	return func() tea.Msg {
		return copyDoneMsg{ok: cb.Copy(ctx, text)}
	}
}

// notifyCmd sends the month summary as a desktop notification. It may block
// on the permission dialog, so it runs off the UI goroutine.
func (m Model) notifyCmd() tea.Cmd {
	body := ledgerview.SummaryText(m.editor.Month(), m.monthSummary())
	notifier := m.notifier
	ctx := m.ctx
	return func() tea.Msg {
		notifier.Notify(ctx, notificationTitle, body)
		return nil
	}
}

// savePermissionCmd stores the notification answer in the config file the
// dashboard was started with
func (m Model) savePermissionCmd(p notify.Permission) tea.Cmd {
	m.config.Notifications.Permission = string(p)
	if m.config.SourcePath == "" {
		m.logger.Debug("no config file, permission kept for this session", "permission", p)
		return nil
	}

	cfg := *m.config
	return func() tea.Msg {
		return configSavedMsg{err: config.SaveConfig(&cfg, cfg.SourcePath)}
	}
}

func loadErrorText(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return "File transaksi tidak ditemukan"
	}
	if errors.Is(err, domain.ErrInvalidData) {
		return "File transaksi tidak valid"
	}
	return "Gagal memuat transaksi: " + err.Error()
}

func formatCount(n int) string {
	return format.FormatNumber(float64(n))
}
