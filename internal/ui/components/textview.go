package components

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/ui"
)

// TextView displays readme content, launch instructions or entry-file
// previews inside a scrollable viewport, with optional syntax highlighting.
type TextView struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	// Header info
	Title      string
	Subtitle   string
	TotalLines int

	// Dimensions
	Width  int
	Height int

	lineNumStyle lipgloss.Style
	headerStyle  lipgloss.Style
	infoStyle    lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewTextView creates a TextView with viewport scrolling
func NewTextView() *TextView {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &TextView{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		lineNumStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")).
			Width(5).
			Align(lipgloss.Right),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa")),
		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89b4fa")).
			Padding(0, 1),
	}
}

// SetSize updates the viewport dimensions
func (v *TextView) SetSize(width, height int) {
	v.Width = width
	v.Height = height

	// Account for header (2 lines), separator and border
	contentHeight := height - 5
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	v.viewport.Width = contentWidth
	v.viewport.Height = contentHeight
}

// SetText fills the view with plain text
func (v *TextView) SetText(title, subtitle, text string) {
	v.Title = title
	v.Subtitle = subtitle
	lines := strings.Split(text, "\n")
	v.TotalLines = len(lines)
	v.viewport.SetContent(text)
	v.viewport.GotoTop()
}

// SetHighlighted fills the view with text highlighted as the named file kind
func (v *TextView) SetHighlighted(title, subtitle, text, filename string) {
	v.Title = title
	v.Subtitle = subtitle
	lines := strings.Split(text, "\n")
	v.TotalLines = len(lines)
	v.viewport.SetContent(strings.Join(v.highlighter.HighlightLines(lines, filename), "\n"))
	v.viewport.GotoTop()
}

// LoadFile loads a file from disk with line numbers and highlighting.
// Oversized or binary files degrade to an advisory message.
func (v *TextView) LoadFile(record *models.AppRecord) error {
	path := record.EntryPath

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.Size() > 1024*1024 { // 1MB limit
		v.SetText(record.Name, path, fmt.Sprintf("\n  File is too large to preview (%s).", models.FormatSize(info.Size())))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if isBinaryContent(data) {
		v.SetText(record.Name, path, "\n  Binary file - cannot preview.")
		return nil
	}

	lines := strings.Split(string(data), "\n")
	var b strings.Builder
	for i, line := range lines {
		lineNum := v.lineNumStyle.Render(fmt.Sprintf("%d", i+1))
		b.WriteString(lineNum + " │ " + v.highlighter.HighlightLine(line, path))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	v.Title = record.Name
	v.Subtitle = path
	v.TotalLines = len(lines)
	v.viewport.SetContent(b.String())
	v.viewport.GotoTop()

	return nil
}

// Update handles messages for viewport scrolling
func (v *TextView) Update(msg tea.Msg) (*TextView, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the text view
func (v *TextView) View() string {
	var b strings.Builder

	header := v.headerStyle.Render(v.Title)
	lineInfo := v.infoStyle.Render(fmt.Sprintf("  %d lines", v.TotalLines))
	b.WriteString(header + lineInfo + "\n")
	b.WriteString(v.infoStyle.Render(v.Subtitle) + "\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#313244")).
		Render(strings.Repeat("─", max(1, v.Width-4))) + "\n")

	b.WriteString(v.viewport.View())

	if v.TotalLines > v.viewport.Height {
		scrollInfo := fmt.Sprintf("─── %.0f%% ───", v.viewport.ScrollPercent()*100)
		b.WriteString("\n" + v.infoStyle.Render(scrollInfo))
	}

	return v.borderStyle.Width(v.Width).Height(v.Height).Render(b.String())
}

// ScrollUp scrolls up one line
func (v *TextView) ScrollUp() {
	v.viewport.LineUp(1)
}

// ScrollDown scrolls down one line
func (v *TextView) ScrollDown() {
	v.viewport.LineDown(1)
}

// PageUp scrolls up by a page
func (v *TextView) PageUp() {
	v.viewport.ViewUp()
}

// PageDown scrolls down by a page
func (v *TextView) PageDown() {
	v.viewport.ViewDown()
}

// GoToTop goes to the beginning
func (v *TextView) GoToTop() {
	v.viewport.GotoTop()
}

// GoToBottom goes to the end
func (v *TextView) GoToBottom() {
	v.viewport.GotoBottom()
}

// isBinaryContent checks if content appears to be binary
func isBinaryContent(data []byte) bool {
	checkLen := 512
	if len(data) < checkLen {
		checkLen = len(data)
	}

	nonPrintable := 0
	for i := 0; i < checkLen; i++ {
		if data[i] == 0 {
			return true
		}
		if data[i] < 32 && data[i] != '\n' && data[i] != '\r' && data[i] != '\t' {
			nonPrintable++
		}
	}

	if checkLen == 0 {
		return false
	}
	return float64(nonPrintable)/float64(checkLen) > 0.3
}
