package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/git"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/ui"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/version"
)

func (m *Model) View() string {
	switch m.screen {
	case ScreenSetup:
		return m.renderSetup()
	case ScreenScanning:
		return m.renderBusy("Scanning " + m.cfg.RepoPath + " for apps")
	case ScreenCloning:
		return m.renderBusy("Cloning " + m.cfg.RepoURL)
	case ScreenOrganizing:
		return m.renderBusy("Organizing apps into " + m.cfg.BasePath)
	case ScreenInstalling:
		return m.renderBusy(m.status)
	case ScreenViewer:
		return m.renderViewer()
	case ScreenHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// updatePanelSizes lays out the list/detail split for the current terminal
func (m *Model) updatePanelSizes() {
	contentHeight := m.height - 6 // header, status bar, help bar
	if contentHeight < 5 {
		contentHeight = 5
	}

	listWidth := m.width * 3 / 5
	detailWidth := m.width - listWidth - 2
	if detailWidth < 30 {
		detailWidth = 30
	}

	m.appList.Width = listWidth
	m.appList.Height = contentHeight
	m.detail.Width = detailWidth
	m.detail.Height = contentHeight
	m.textView.SetSize(m.width-2, m.height-4)
}

func (m *Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.appList.View(), m.detail.View())
	b.WriteString(panels)
	b.WriteString("\n")

	if m.searchMode {
		b.WriteString(ui.StatusBarStyle.Width(m.width).Render("Search: " + m.textInput.View()))
	} else {
		b.WriteString(m.renderStatusBar())
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderHeader() string {
	title := ui.TitleStyle.Render("Nokio App Store")
	ver := ui.VersionStyle.Render("v" + version.Version)

	repoInfo := m.cfg.RepoPath
	if repo := git.NewRepo(m.cfg.RepoPath); repo.IsRepo() {
		if branch := repo.CurrentBranch(); branch != "" {
			repoInfo = fmt.Sprintf("%s (%s)", m.cfg.RepoPath, branch)
		}
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", ver)
	right := ui.PathStyle.Render(repoInfo)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	return ui.HeaderStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) renderStatusBar() string {
	status := m.status

	var filters []string
	if m.searchQuery != "" {
		filters = append(filters, fmt.Sprintf("name~%q", m.searchQuery))
	}
	if m.categoryFilter >= 0 {
		filters = append(filters, "cat:"+models.Categories()[m.categoryFilter].Short())
	}
	if m.typeFilter >= 0 {
		filters = append(filters, "type:"+string(filterTypes[m.typeFilter]))
	}
	if len(filters) > 0 {
		status = fmt.Sprintf("%s  [%s]  %d/%d shown",
			status, strings.Join(filters, " "), len(m.filtered), len(m.records))
	}

	return ui.StatusBarStyle.Width(m.width).Render(ui.StatusTextStyle.Render(status))
}

func (m *Model) renderHelpBar() string {
	var items []string
	for _, binding := range m.keys.ShortHelp() {
		items = append(items, ui.RenderHelpItem(binding.Help().Key, binding.Help().Desc))
	}
	return ui.HelpBarStyle.Width(m.width).Render(strings.Join(items, "  "))
}

func (m *Model) renderBusy(message string) string {
	content := fmt.Sprintf("\n\n   %s %s\n\n   %s\n",
		m.spinner.View(),
		message,
		ui.MutedStyle.Render("please wait..."))
	return ui.AppStyle.Render(m.renderHeader() + "\n" + content)
}

func (m *Model) renderViewer() string {
	footer := ui.HelpBarStyle.Width(m.width).Render(
		ui.RenderHelpItem("↑/↓", "scroll") + "  " +
			ui.RenderHelpItem("esc", "back") + "  " +
			ui.RenderHelpItem("q", "close"))
	return ui.AppStyle.Render(m.textView.View() + "\n" + footer)
}

func (m *Model) renderHelp() string {
	title := ui.PanelTitleStyle.Render(" Help ")
	return ui.AppStyle.Render(title + "\n" + ui.PanelStyle.Render(m.helpVP.View()))
}

func (m *Model) renderHelpContent() string {
	var b strings.Builder

	sections := []struct {
		name     string
		bindings int
	}{
		{"Navigation", 0},
		{"Filters", 1},
		{"Catalogue", 2},
		{"Selected app", 3},
		{"General", 4},
	}

	groups := m.keys.FullHelp()
	for _, s := range sections {
		b.WriteString(ui.NameStyle.Render(s.name) + "\n")
		for _, binding := range groups[s.bindings] {
			fmt.Fprintf(&b, "  %-12s %s\n",
				ui.HelpKeyStyle.Render(binding.Help().Key),
				ui.HelpDescStyle.Render(binding.Help().Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(ui.MutedStyle.Render("Apps are classified by filename heuristics; organize (o) places\n"))
	b.WriteString(ui.MutedStyle.Render("each app under its category folder via symlink, copying when the\n"))
	b.WriteString(ui.MutedStyle.Render("filesystem refuses links.\n"))

	return b.String()
}

func (m *Model) renderSetup() string {
	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render("Nokio App Store Setup") + "\n\n")

	switch m.setupStep {
	case SetupWelcome:
		b.WriteString("Welcome! This tool scans a repository of Python apps and notebooks,\n")
		b.WriteString("classifies them by runtime and subject, and organizes them into\n")
		b.WriteString("category folders.\n\n")
		fmt.Fprintf(&b, "Apps repository path: %s\n", ui.PathStyle.Render(m.cfg.RepoPath))
		fmt.Fprintf(&b, "Organized apps path:  %s\n\n", ui.PathStyle.Render(m.cfg.BasePath))
		b.WriteString(ui.MutedStyle.Render("press enter to continue, ctrl+c to quit"))

	case SetupRepoURL:
		b.WriteString("Git URL of the apps repository (leave empty to use an existing\n")
		b.WriteString("local checkout):\n\n")
		b.WriteString(m.textInput.View() + "\n\n")
		b.WriteString(ui.MutedStyle.Render("enter to confirm, esc to go back"))

	case SetupRepoPath:
		b.WriteString("Local path the repository is (or will be) cloned into:\n\n")
		b.WriteString(m.textInput.View() + "\n\n")
		b.WriteString(ui.MutedStyle.Render("enter to confirm, esc to go back"))

	case SetupBasePath:
		b.WriteString("Path for the organized category folders:\n\n")
		b.WriteString(m.textInput.View() + "\n\n")
		b.WriteString(ui.MutedStyle.Render("enter to confirm, esc to go back"))

	case SetupConfirm:
		url := m.cfg.RepoURL
		if url == "" {
			url = "(none, local checkout only)"
		}
		fmt.Fprintf(&b, "Repository URL: %s\n", ui.PathStyle.Render(url))
		fmt.Fprintf(&b, "Repository path: %s\n", ui.PathStyle.Render(m.cfg.RepoPath))
		fmt.Fprintf(&b, "Apps base path:  %s\n\n", ui.PathStyle.Render(m.cfg.BasePath))
		b.WriteString(ui.MutedStyle.Render("enter/y to save and start, esc/n to edit"))
	}

	return ui.AppStyle.Render(ui.DialogStyle.Render(b.String()))
}
