package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	key      string
	title    string
	message  string
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult represents the result of a confirmation dialog
type ConfirmResult struct {
	Confirmed bool
}

// NewConfirmDialog creates a new confirmation dialog. key is echoed in the
// SelectionMsg so the app can tell dialogs apart.
func NewConfirmDialog(key, title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		key:      key,
		title:    title,
		message:  message,
		styles:   New(),
		selected: false, // Default to No
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

func (c *ConfirmDialog) answer(yes bool) tea.Cmd {
	return func() tea.Msg {
		return SelectionMsg{
			Key:   c.key,
			Value: ConfirmResult{Confirmed: yes},
		}
	}
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			return c, c.answer(true)

		case "n", "N", "esc":
			return c, c.answer(false)

		case "enter":
			return c, c.answer(c.selected)

		case "left", "h":
			c.selected = false
			return c, nil

		case "right", "l", "tab":
			c.selected = true
			return c, nil
		}
	}

	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.MenuItem
	noStyle := c.styles.MenuItem
	if c.selected {
		yesStyle = c.styles.MenuItemActive
	} else {
		noStyle = c.styles.MenuItemActive
	}

	b.WriteString(yesStyle.Render("[Y] Ya") + "    " + noStyle.Render("[N] Tidak"))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("← → / Tab: pilih • Enter: konfirmasi • Esc: batal"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 60, messageLines + 6
}
