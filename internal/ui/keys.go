package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the app
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	Enter        key.Binding
	Scan         key.Binding // Rescan the repository
	Organize     key.Binding // Place apps into category folders
	Clone        key.Binding // Clone/refresh the apps repository
	Install      key.Binding // Install dependencies for selected app
	Instructions key.Binding // Show launch instructions
	Readme       key.Binding // Show readme
	Preview      key.Binding // Preview the entry file
	Search       key.Binding // Filter by name substring
	Category     key.Binding // Cycle category filter
	Type         key.Binding // Cycle runtime type filter
	ClearFilter  key.Binding // Clear all filters
	Doctor       key.Binding // Environment check
	Help         key.Binding
	Quit         key.Binding
	Escape       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "last"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Scan: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "rescan"),
		),
		Organize: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "organize"),
		),
		Clone: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "clone repo"),
		),
		Install: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "install deps"),
		),
		Instructions: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "instructions"),
		),
		Readme: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "readme"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "preview entry"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category filter"),
		),
		Type: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear filters"),
		),
		Doctor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "env check"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ShortHelp returns keybindings to show in short help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scan, k.Organize, k.Search, k.Instructions, k.Help, k.Quit}
}

// FullHelp returns all keybindings for full help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		// Filters
		{k.Search, k.Category, k.Type, k.ClearFilter},
		// Catalogue operations
		{k.Scan, k.Organize, k.Clone, k.Doctor},
		// Per-app actions
		{k.Install, k.Instructions, k.Readme, k.Preview},
		// General
		{k.Help, k.Escape, k.Quit},
	}
}
