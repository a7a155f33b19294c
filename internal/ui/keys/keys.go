// Package keys maps keystrokes to dashboard actions.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/finboard/internal/types"
)

// Action is what a keystroke asks the dashboard to do
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionHelp
	ActionSearch
	ActionPrevMonth
	ActionNextMonth
	ActionThisMonth
	ActionUp
	ActionDown
	ActionTop
	ActionBottom
	ActionPageUp
	ActionPageDown
	ActionExport
	ActionCopy
	ActionNotify
	ActionClose
	ActionRefresh
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionQuit:      "quit",
	ActionHelp:      "help",
	ActionSearch:    "search",
	ActionPrevMonth: "prev-month",
	ActionNextMonth: "next-month",
	ActionThisMonth: "this-month",
	ActionUp:        "up",
	ActionDown:      "down",
	ActionTop:       "top",
	ActionBottom:    "bottom",
	ActionPageUp:    "page-up",
	ActionPageDown:  "page-down",
	ActionExport:    "export",
	ActionCopy:      "copy",
	ActionNotify:    "notify",
	ActionClose:     "close",
	ActionRefresh:   "refresh",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// KeyMap holds the global shortcuts
type KeyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Search    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	ThisMonth key.Binding
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Export    key.Binding
	Copy      key.Binding
	Notify    key.Binding
	Close     key.Binding
	Refresh   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "keluar")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "bantuan")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "cari transaksi")),
		PrevMonth: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "bulan sebelumnya")),
		NextMonth: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "bulan berikutnya")),
		ThisMonth: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "bulan ini")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "naik")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "turun")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "transaksi pertama")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "transaksi terakhir")),
		PageUp:    key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "setengah halaman naik")),
		PageDown:  key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "setengah halaman turun")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "ekspor CSV")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "salin ringkasan")),
		Notify:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "kirim notifikasi")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "tutup")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "muat ulang")),
	}
}

// entries pairs bindings with actions in match order
func (k KeyMap) entries() []struct {
	binding key.Binding
	action  Action
} {
	return []struct {
		binding key.Binding
		action  Action
	}{
		{k.Quit, ActionQuit},
		{k.Help, ActionHelp},
		{k.Search, ActionSearch},
		{k.PrevMonth, ActionPrevMonth},
		{k.NextMonth, ActionNextMonth},
		{k.ThisMonth, ActionThisMonth},
		{k.Up, ActionUp},
		{k.Down, ActionDown},
		{k.Top, ActionTop},
		{k.Bottom, ActionBottom},
		{k.PageUp, ActionPageUp},
		{k.PageDown, ActionPageDown},
		{k.Export, ActionExport},
		{k.Copy, ActionCopy},
		{k.Notify, ActionNotify},
		{k.Close, ActionClose},
		{k.Refresh, ActionRefresh},
	}
}

// Resolve maps a keystroke to an action. While focus is in a text field every
// key belongs to that field and ActionNone is returned.
func (k KeyMap) Resolve(msg tea.KeyMsg, mode types.Mode) Action {
	if mode.IsTextEntry() {
		return ActionNone
	}
	for _, e := range k.entries() {
		if key.Matches(msg, e.binding) {
			return e.action
		}
	}
	return ActionNone
}

// Bindings returns every binding in display order
func (k KeyMap) Bindings() []key.Binding {
	entries := k.entries()
	out := make([]key.Binding, len(entries))
	for i, e := range entries {
		out[i] = e.binding
	}
	return out
}
