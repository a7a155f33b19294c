package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchMsg is emitted on every change of the query
type SearchMsg struct {
	Query string
}

// SearchOverlay is the search bar. It owns the keyboard while open.
type SearchOverlay struct {
	input      textinput.Model
	styles     *Styles
	matchCount int
}

// NewSearchOverlay creates a focused search bar prefilled with query
func NewSearchOverlay(query string) *SearchOverlay {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "cari catatan atau kategori..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.SetValue(query)
	ti.Focus()

	return &SearchOverlay{
		input:  ti,
		styles: New(),
	}
}

// Query returns the current input
func (s *SearchOverlay) Query() string {
	return s.input.Value()
}

// SetMatchCount updates the match count display
func (s *SearchOverlay) SetMatchCount(count int) {
	s.matchCount = count
}

// Init implements tea.Model
func (s *SearchOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s *SearchOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			// Enter closes overlay but keeps the query
			return s, Close

		case tea.KeyEsc:
			// Esc closes and clears the query
			s.input.SetValue("")
			return s, tea.Batch(
				func() tea.Msg { return SearchMsg{Query: ""} },
				Close,
			)
		}
	}

	var cmd tea.Cmd
	prevValue := s.input.Value()
	s.input, cmd = s.input.Update(msg)

	if value := s.input.Value(); value != prevValue {
		return s, tea.Batch(
			cmd,
			func() tea.Msg { return SearchMsg{Query: value} },
		)
	}

	return s, cmd
}

// View implements tea.Model
func (s *SearchOverlay) View() string {
	inputView := s.input.View()

	if s.input.Value() != "" {
		inputView += s.styles.MatchCount.Render(fmt.Sprintf(" (%d transaksi)", s.matchCount))
	}

	return s.styles.Search.Render(inputView)
}

// Title implements Overlay interface (returns empty for search bar)
func (s *SearchOverlay) Title() string {
	return ""
}

// Size implements Overlay interface (full-width single line)
func (s *SearchOverlay) Size() (width, height int) {
	return 0, 1
}
