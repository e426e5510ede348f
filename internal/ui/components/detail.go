package components

import (
	"fmt"
	"strings"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/ui"
)

// DetailPanel shows the metadata of the record under the cursor
type DetailPanel struct {
	Record *models.AppRecord
	Width  int
	Height int
}

// NewDetailPanel creates an empty detail panel
func NewDetailPanel() *DetailPanel {
	return &DetailPanel{
		Width:  40,
		Height: 15,
	}
}

// SetRecord updates the displayed record; nil clears the panel
func (p *DetailPanel) SetRecord(record *models.AppRecord) {
	p.Record = record
}

// View renders the detail panel
func (p *DetailPanel) View() string {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("Details"))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", p.Width-2)))
	b.WriteString("\n")

	if p.Record == nil {
		b.WriteString(ui.MutedStyle.Render(" Select an app to inspect it"))
		return ui.PanelStyle.Width(p.Width).Height(p.Height).Render(b.String())
	}

	r := p.Record
	yes := ui.LinkedStyle.Render("yes")
	no := ui.MutedStyle.Render("no")

	manifest := no
	if r.HasManifest {
		manifest = yes
	}
	readme := no
	if r.HasReadme {
		readme = yes
	}

	rows := []struct {
		label string
		value string
	}{
		{"Name", ui.NameStyle.Render(r.Name)},
		{"Type", fmt.Sprintf("%s %s", r.Type.Icon(), r.Type)},
		{"Category", ui.CategoryStyle.Render(r.Category.Short())},
		{"Size", ui.SizeStyle.Render(r.SizeHuman())},
		{"Entry file", ui.PathStyle.Render(truncatePath(r.EntryFile(), p.Width-14))},
		{"Directory", ui.PathStyle.Render(truncatePath(r.Dir, p.Width-14))},
		{"Manifest", manifest},
		{"Readme", readme},
	}

	for _, row := range rows {
		fmt.Fprintf(&b, " %-10s %s\n", row.label, row.value)
	}

	return ui.PanelStyle.Width(p.Width).Height(p.Height).Render(b.String())
}

// truncatePath shortens long paths from the left, keeping the informative tail
func truncatePath(path string, maxLen int) string {
	if maxLen < 4 || len(path) <= maxLen {
		return path
	}
	return "…" + path[len(path)-maxLen+1:]
}
