// Package tui is the terminal front-end over the app store core. It holds no
// heuristics of its own: every operation delegates to the scanner, organizer,
// installer, instruction generator or git collaborator.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/config"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/git"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/installer"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/instructions"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/organizer"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/probe"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/scanner"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/ui"
	"github.com/ntruongan356-byte/AppStore-Nokio/internal/ui/components"
)

// Screen represents different screens in the app
type Screen int

const (
	ScreenSetup Screen = iota
	ScreenMain
	ScreenScanning
	ScreenCloning
	ScreenOrganizing
	ScreenInstalling
	ScreenViewer // Readme, instructions, install output, doctor report
	ScreenHelp
)

// SetupStep represents steps in the setup wizard
type SetupStep int

const (
	SetupWelcome SetupStep = iota
	SetupRepoURL
	SetupRepoPath
	SetupBasePath
	SetupConfirm
)

// Model is the bubbletea model for the app store TUI. It owns the catalogue
// for the current scan session; every rescan replaces it wholesale and resets
// cursor and filters derived from it.
type Model struct {
	cfg    *config.Config
	logger hclog.Logger

	// UI components
	appList   *components.AppList
	detail    *components.DetailPanel
	textView  *components.TextView
	spinner   spinner.Model
	helpVP    viewport.Model
	textInput textinput.Model
	keys      ui.KeyMap

	// Catalogue state
	records  []models.AppRecord // full catalogue from the last scan
	filtered []models.AppRecord

	// Filters
	searchMode     bool
	searchQuery    string
	categoryFilter int // index into models.Categories(), -1 = off
	typeFilter     int // index into filterTypes, -1 = off

	// Screen state
	screen    Screen
	setupStep SetupStep
	status    string
	width     int
	height    int
}

// filterTypes is the cycle order for the runtime type filter
var filterTypes = append(models.RuntimeTypes(), models.TypeUnknown)

// Messages
type scanCompleteMsg struct {
	records []models.AppRecord
}

type organizeCompleteMsg struct {
	placements []organizer.Placement
}

type cloneCompleteMsg struct {
	output string
	err    error
}

type installCompleteMsg struct {
	app    string
	output string
}

type configSavedMsg struct {
	err error
}

// New creates the TUI model
func New() *Model {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "nokio",
		Output: os.Stderr,
		Level:  hclog.Warn,
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.ProgressStyle

	ti := textinput.New()
	ti.Placeholder = "https://github.com/user/apps-repo"
	ti.CharLimit = 256
	ti.Width = 50

	m := &Model{
		cfg:            cfg,
		logger:         logger,
		appList:        components.NewAppList(nil),
		detail:         components.NewDetailPanel(),
		textView:       components.NewTextView(),
		spinner:        s,
		textInput:      ti,
		keys:           ui.DefaultKeyMap(),
		categoryFilter: -1,
		typeFilter:     -1,
		screen:         ScreenMain,
		status:         "Ready",
		width:          80,
		height:         24,
		setupStep:      SetupWelcome,
	}

	if cfg.FirstRun {
		m.screen = ScreenSetup
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.screen == ScreenMain {
		m.screen = ScreenScanning
		cmds = append(cmds, m.scanCmd)
	}
	return tea.Batch(cmds...)
}

// scanCmd runs a full repository scan and replaces the catalogue
func (m *Model) scanCmd() tea.Msg {
	s := scanner.New(m.cfg.RepoPath, m.logger.Named("scanner"))
	return scanCompleteMsg{records: s.Scan()}
}

// organizeCmd places the current catalogue into category folders
func (m *Model) organizeCmd() tea.Msg {
	o := organizer.New(m.cfg.BasePath, m.logger.Named("organizer"))
	return organizeCompleteMsg{placements: o.Organize(m.records)}
}

// cloneCmd clones (or re-clones) the apps repository
func (m *Model) cloneCmd() tea.Msg {
	output, err := git.Clone(context.Background(), m.cfg.RepoURL, m.cfg.RepoPath, m.logger.Named("git"))
	return cloneCompleteMsg{output: output, err: err}
}

// installCmd installs dependencies for one app directory
func (m *Model) installCmd(name, dir string) tea.Cmd {
	return func() tea.Msg {
		inst := installer.New(m.logger.Named("installer"))
		return installCompleteMsg{app: name, output: inst.Install(context.Background(), dir)}
	}
}

func (m *Model) saveConfigCmd() tea.Msg {
	err := m.cfg.Save()
	if err == nil {
		err = m.cfg.EnsureDirectories()
	}
	return configSavedMsg{err: err}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updatePanelSizes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.screen == ScreenViewer {
			var cmd tea.Cmd
			m.textView, cmd = m.textView.Update(msg)
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case scanCompleteMsg:
		m.screen = ScreenMain
		m.records = msg.records
		m.clearFilters()
		m.status = fmt.Sprintf("Found %d apps in %s", len(m.records), m.cfg.RepoPath)

	case organizeCompleteMsg:
		m.showOrganizeReport(msg.placements)

	case cloneCompleteMsg:
		if msg.err != nil {
			m.screen = ScreenViewer
			m.textView.SetText("Clone failed", m.cfg.RepoURL, msg.output+"\n"+msg.err.Error())
			m.status = fmt.Sprintf("Clone failed: %v", msg.err)
		} else {
			m.status = "Repository cloned, scanning..."
			m.screen = ScreenScanning
			cmds = append(cmds, m.scanCmd)
		}

	case installCompleteMsg:
		m.screen = ScreenViewer
		m.textView.SetText(fmt.Sprintf("Dependencies: %s", msg.app), "pip install output", msg.output)
		m.status = "Install finished"

	case configSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not save config: %v", msg.err)
		} else {
			m.status = "Configuration saved"
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenSetup:
		return m.handleSetupKeys(msg)
	case ScreenHelp:
		return m.handleHelpKeys(msg)
	case ScreenViewer:
		return m.handleViewerKeys(msg)
	case ScreenScanning, ScreenCloning, ScreenOrganizing, ScreenInstalling:
		// Blocking operations run to completion
		return m, nil
	default:
		return m.handleMainKeys(msg)
	}
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchMode {
		return m.handleSearchKeys(msg)
	}

	switch {
	case matches(msg, m.keys.Quit):
		return m, tea.Quit

	case matches(msg, m.keys.Up):
		m.appList.MoveUp()
		m.syncDetail()

	case matches(msg, m.keys.Down):
		m.appList.MoveDown()
		m.syncDetail()

	case matches(msg, m.keys.PageUp):
		m.appList.PageUp()
		m.syncDetail()

	case matches(msg, m.keys.PageDown):
		m.appList.PageDown()
		m.syncDetail()

	case matches(msg, m.keys.Home):
		m.appList.GoToFirst()
		m.syncDetail()

	case matches(msg, m.keys.End):
		m.appList.GoToLast()
		m.syncDetail()

	case matches(msg, m.keys.Scan):
		m.screen = ScreenScanning
		m.status = "Scanning repository..."
		return m, m.scanCmd

	case matches(msg, m.keys.Organize):
		if len(m.records) == 0 {
			m.status = "Nothing to organize - scan first"
			return m, nil
		}
		m.screen = ScreenOrganizing
		m.status = "Organizing apps into categories..."
		return m, m.organizeCmd

	case matches(msg, m.keys.Clone):
		if m.cfg.RepoURL == "" {
			m.status = "No repository URL configured"
			return m, nil
		}
		m.screen = ScreenCloning
		m.status = "Cloning repository..."
		return m, m.cloneCmd

	case matches(msg, m.keys.Install):
		if app := m.appList.Current(); app != nil {
			m.screen = ScreenInstalling
			m.status = fmt.Sprintf("Installing dependencies for %s...", app.Name)
			return m, m.installCmd(app.Name, app.Dir)
		}

	case matches(msg, m.keys.Instructions):
		if app := m.appList.Current(); app != nil {
			m.screen = ScreenViewer
			text := instructions.For(app.Type, app.Dir)
			m.textView.SetHighlighted(fmt.Sprintf("Run instructions: %s", app.Name), string(app.Type), text, "instructions.md")
		}

	case matches(msg, m.keys.Readme):
		if app := m.appList.Current(); app != nil {
			m.showReadme(app)
		}

	case matches(msg, m.keys.Preview):
		if app := m.appList.Current(); app != nil {
			m.screen = ScreenViewer
			if err := m.textView.LoadFile(app); err != nil {
				m.screen = ScreenMain
				m.status = fmt.Sprintf("Cannot preview %s: %v", app.EntryFile(), err)
			}
		}

	case matches(msg, m.keys.Doctor):
		m.showDoctorReport()

	case matches(msg, m.keys.Search):
		m.searchMode = true
		m.textInput.Placeholder = "Type to filter apps..."
		m.textInput.SetValue(m.searchQuery)
		m.textInput.Focus()

	case matches(msg, m.keys.Category):
		m.cycleCategoryFilter()

	case matches(msg, m.keys.Type):
		m.cycleTypeFilter()

	case matches(msg, m.keys.ClearFilter):
		m.clearFilters()
		m.status = "Filters cleared"

	case matches(msg, m.keys.Help):
		m.openHelp()
	}

	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.textInput.Blur()
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchQuery = ""
		m.textInput.SetValue("")
		m.textInput.Blur()
		m.applyFilters()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.searchQuery = m.textInput.Value()
	m.applyFilters()
	return m, cmd
}

func (m *Model) handleViewerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, m.keys.Escape), matches(msg, m.keys.Quit):
		m.screen = ScreenMain
		return m, nil
	case matches(msg, m.keys.Up):
		m.textView.ScrollUp()
	case matches(msg, m.keys.Down):
		m.textView.ScrollDown()
	case matches(msg, m.keys.PageUp):
		m.textView.PageUp()
	case matches(msg, m.keys.PageDown):
		m.textView.PageDown()
	case matches(msg, m.keys.Home):
		m.textView.GoToTop()
	case matches(msg, m.keys.End):
		m.textView.GoToBottom()
	}
	return m, nil
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matches(msg, m.keys.Escape), matches(msg, m.keys.Help), matches(msg, m.keys.Quit):
		m.screen = ScreenMain
	case matches(msg, m.keys.Up):
		m.helpVP.LineUp(1)
	case matches(msg, m.keys.Down):
		m.helpVP.LineDown(1)
	}
	return m, nil
}

func (m *Model) handleSetupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.setupStep {
	case SetupWelcome:
		if msg.String() == "enter" {
			m.setupStep = SetupRepoURL
			m.textInput.SetValue(m.cfg.RepoURL)
			m.textInput.Focus()
		}

	case SetupRepoURL:
		switch msg.String() {
		case "enter":
			m.cfg.RepoURL = strings.TrimSpace(m.textInput.Value())
			m.setupStep = SetupRepoPath
			m.textInput.SetValue(m.cfg.RepoPath)
		case "esc":
			m.setupStep = SetupWelcome
			m.textInput.Blur()
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}

	case SetupRepoPath:
		switch msg.String() {
		case "enter":
			if v := strings.TrimSpace(m.textInput.Value()); v != "" {
				m.cfg.RepoPath = v
			}
			m.setupStep = SetupBasePath
			m.textInput.SetValue(m.cfg.BasePath)
		case "esc":
			m.setupStep = SetupRepoURL
			m.textInput.SetValue(m.cfg.RepoURL)
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}

	case SetupBasePath:
		switch msg.String() {
		case "enter":
			if v := strings.TrimSpace(m.textInput.Value()); v != "" {
				m.cfg.BasePath = v
			}
			m.textInput.Blur()
			m.setupStep = SetupConfirm
		case "esc":
			m.setupStep = SetupRepoPath
			m.textInput.SetValue(m.cfg.RepoPath)
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}

	case SetupConfirm:
		switch msg.String() {
		case "enter", "y":
			m.cfg.FirstRun = false
			m.screen = ScreenScanning
			m.status = "Scanning repository..."
			return m, tea.Batch(m.saveConfigCmd, m.scanCmd)
		case "esc", "n":
			m.setupStep = SetupBasePath
			m.textInput.SetValue(m.cfg.BasePath)
			m.textInput.Focus()
		}
	}

	return m, nil
}

// syncDetail keeps the detail panel on the record under the cursor
func (m *Model) syncDetail() {
	m.detail.SetRecord(m.appList.Current())
}

// applyFilters recomputes the visible slice from the full catalogue
func (m *Model) applyFilters() {
	var categories map[models.Category]bool
	if m.categoryFilter >= 0 {
		categories = map[models.Category]bool{models.Categories()[m.categoryFilter]: true}
	}
	var types map[models.RuntimeType]bool
	if m.typeFilter >= 0 {
		types = map[models.RuntimeType]bool{filterTypes[m.typeFilter]: true}
	}

	m.filtered = m.filtered[:0]
	for _, r := range m.records {
		if r.Matches(m.searchQuery, categories, types) {
			m.filtered = append(m.filtered, r)
		}
	}

	m.appList.SetRecords(m.filtered)
	m.syncDetail()
}

func (m *Model) clearFilters() {
	m.searchQuery = ""
	m.searchMode = false
	m.categoryFilter = -1
	m.typeFilter = -1
	m.textInput.SetValue("")
	m.applyFilters()
}

func (m *Model) cycleCategoryFilter() {
	m.categoryFilter++
	if m.categoryFilter >= len(models.Categories()) {
		m.categoryFilter = -1
	}
	m.applyFilters()
	if m.categoryFilter >= 0 {
		m.status = fmt.Sprintf("Category: %s", models.Categories()[m.categoryFilter])
	} else {
		m.status = "Category filter off"
	}
}

func (m *Model) cycleTypeFilter() {
	m.typeFilter++
	if m.typeFilter >= len(filterTypes) {
		m.typeFilter = -1
	}
	m.applyFilters()
	if m.typeFilter >= 0 {
		m.status = fmt.Sprintf("Type: %s", filterTypes[m.typeFilter])
	} else {
		m.status = "Type filter off"
	}
}

// showReadme loads the selected app's readme into the viewer verbatim
func (m *Model) showReadme(app *models.AppRecord) {
	content, err := probe.ReadReadme(app.Dir)
	if err != nil {
		m.status = fmt.Sprintf("Error reading README: %v", err)
		return
	}
	m.screen = ScreenViewer
	filename := "README.md"
	if path := probe.FindReadme(app.Dir); path != "" {
		filename = filepath.Base(path)
	}
	m.textView.SetHighlighted(fmt.Sprintf("README: %s", app.Name), filename, content, filename)
}

// showOrganizeReport renders per-app placement outcomes into the viewer
func (m *Model) showOrganizeReport(placements []organizer.Placement) {
	var b strings.Builder
	counts := map[organizer.Method]int{}

	for _, p := range placements {
		counts[p.Method]++
		switch {
		case p.Err != nil:
			fmt.Fprintf(&b, "%s %s: %v\n", ui.FailedStyle.Render("✗"), p.App.Name, p.Err)
		case p.Method == organizer.MethodCopy:
			fmt.Fprintf(&b, "%s %s → %s (copied)\n", ui.CopiedStyle.Render("●"), p.App.Name, p.Target)
		default:
			fmt.Fprintf(&b, "%s %s → %s\n", ui.LinkedStyle.Render("✓"), p.App.Name, p.Target)
		}
	}

	failed := organizer.Failed(placements)
	summary := fmt.Sprintf("%d apps placed under %s (%d linked, %d copied, %d failed)",
		len(placements)-failed, m.cfg.BasePath, counts[organizer.MethodLink], counts[organizer.MethodCopy], failed)

	m.screen = ScreenViewer
	m.textView.SetText("Organize report", summary, b.String())
	m.status = summary
}

// showDoctorReport renders environment tool checks into the viewer
func (m *Model) showDoctorReport() {
	var b strings.Builder
	for _, tool := range installer.CheckEnvironment() {
		if tool.Available {
			fmt.Fprintf(&b, "%s %-10s %s\n", ui.LinkedStyle.Render("✓"), tool.Name, ui.PathStyle.Render(tool.Path))
		} else {
			fmt.Fprintf(&b, "%s %-10s not found on PATH\n", ui.FailedStyle.Render("✗"), tool.Name)
		}
	}
	m.screen = ScreenViewer
	m.textView.SetText("Environment check", "required external tools", b.String())
}

func (m *Model) openHelp() {
	m.helpVP = viewport.New(m.width-4, m.height-4)
	m.helpVP.SetContent(m.renderHelpContent())
	m.screen = ScreenHelp
}

func matches(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}
