package components

import (
	"fmt"
	"strings"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/ui"
)

// AppList is a scrollable list over the current catalogue
type AppList struct {
	Records []models.AppRecord
	Cursor  int
	Width   int
	Height  int
	Focused bool
	Title   string
}

// NewAppList creates a new app list
func NewAppList(records []models.AppRecord) *AppList {
	return &AppList{
		Records: records,
		Cursor:  0,
		Width:   40,
		Height:  15,
		Focused: true,
		Title:   "Applications",
	}
}

// SetRecords replaces the displayed catalogue. Cursor position is clamped;
// any previous selection is invalid once the catalogue changes.
func (l *AppList) SetRecords(records []models.AppRecord) {
	l.Records = records
	if l.Cursor >= len(records) {
		l.Cursor = max(0, len(records)-1)
	}
}

// MoveUp moves cursor up
func (l *AppList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *AppList) MoveDown() {
	if l.Cursor < len(l.Records)-1 {
		l.Cursor++
	}
}

// PageUp moves cursor up by a page
func (l *AppList) PageUp() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor -= pageSize
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// PageDown moves cursor down by a page
func (l *AppList) PageDown() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor += pageSize
	if l.Cursor >= len(l.Records) {
		l.Cursor = max(0, len(l.Records)-1)
	}
}

// GoToFirst moves cursor to the first item
func (l *AppList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last item
func (l *AppList) GoToLast() {
	if len(l.Records) > 0 {
		l.Cursor = len(l.Records) - 1
	}
}

// Current returns the record under the cursor, or nil when the list is empty
func (l *AppList) Current() *models.AppRecord {
	if len(l.Records) > 0 && l.Cursor < len(l.Records) {
		return &l.Records[l.Cursor]
	}
	return nil
}

// View renders the app list
func (l *AppList) View() string {
	var b strings.Builder

	title := l.Title
	if len(l.Records) > 0 {
		title = fmt.Sprintf("%s (%d)", l.Title, len(l.Records))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", l.Width-2)))
	b.WriteString("\n")

	if len(l.Records) == 0 {
		b.WriteString(ui.ItemStyle.Render("No apps found"))
		return l.wrapInPanel(b.String())
	}

	// Calculate visible range
	visibleHeight := l.Height - 3 // Minus title and divider
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(l.Records))

	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(l.renderItem(&l.Records[i], i == l.Cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(l.Records) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	// Position indicator when scrolling
	if len(l.Records) > visibleHeight {
		position := fmt.Sprintf(" %d/%d ", l.Cursor+1, len(l.Records))
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render(strings.Repeat(" ", max(0, (l.Width-len(position)-4)/2)) + position))
	}

	return l.wrapInPanel(b.String())
}

// renderItem renders a single catalogue entry
func (l *AppList) renderItem(record *models.AppRecord, isCursor bool) string {
	name := record.Name
	maxNameLen := l.Width - 24
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	var badges []string
	if record.HasManifest {
		badges = append(badges, "deps")
	}
	if record.HasReadme {
		badges = append(badges, "readme")
	}
	badge := ""
	if len(badges) > 0 {
		badge = "[" + strings.Join(badges, ",") + "]"
	}

	content := fmt.Sprintf("%s %s %s %s %s",
		record.Type.Icon(),
		name,
		ui.MutedStyle.Render(string(record.Type)),
		ui.SizeStyle.Render(record.SizeHuman()),
		ui.MutedStyle.Render(badge),
	)

	if isCursor && l.Focused {
		return ui.SelectedItemStyle.Width(l.Width - 4).Render(content)
	}
	return ui.ItemStyle.Render(content)
}

// wrapInPanel wraps content in a panel border
func (l *AppList) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if l.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
