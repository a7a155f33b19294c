package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// HelpStyle is the glamour style used for the help text
var HelpStyle = "dark"

const helpWidth = 56

// HelpOverlay displays the keybinding reference as rendered markdown
type HelpOverlay struct {
	styles     *Styles
	bindings   []key.Binding
	glamStyle  string
	rendered   []string
	scroll     int
	viewHeight int
}

// NewHelpOverlay creates a help overlay listing bindings
func NewHelpOverlay(bindings []key.Binding) *HelpOverlay {
	h := &HelpOverlay{
		styles:     New(),
		bindings:   bindings,
		glamStyle:  HelpStyle,
		viewHeight: 20,
	}
	h.render()
	return h
}

// Markdown returns the help source text
func (h *HelpOverlay) Markdown() string {
	var b strings.Builder
	b.WriteString("# Pintasan keyboard\n\n")
	for _, binding := range h.bindings {
		help := binding.Help()
		if help.Key == "" {
			continue
		}
		fmt.Fprintf(&b, "- `%s` %s\n", help.Key, help.Desc)
	}
	b.WriteString("\n`ctrl+c` keluar dari mana saja. Saat kolom pencarian aktif, " +
		"semua tombol diketik ke kolom tersebut.\n")
	return b.String()
}

func (h *HelpOverlay) render() {
	md := h.Markdown()
	out := md
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(h.glamStyle),
		glamour.WithWordWrap(helpWidth-4),
	)
	if err == nil {
		if s, err := r.Render(md); err == nil {
			out = s
		}
	}
	h.rendered = strings.Split(strings.Trim(out, "\n"), "\n")
	h.scroll = 0
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.rendered)-h.viewHeight)
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return h, Close

		case "j", "down":
			if h.scroll < h.maxScroll() {
				h.scroll++
			}

		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}

		case "g":
			h.scroll = 0

		case "G":
			h.scroll = h.maxScroll()
		}
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	end := min(h.scroll+h.viewHeight, len(h.rendered))
	result := strings.Join(h.rendered[h.scroll:end], "\n")

	if h.maxScroll() > 0 {
		result += "\n" + h.styles.Footer.Render(
			h.styles.MenuKey.Render("j/k")+" gulir, "+h.styles.MenuKey.Render("g/G")+" lompat")
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Bantuan"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return helpWidth, h.viewHeight + 4
}
