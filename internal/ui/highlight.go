package ui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter provides syntax highlighting for previewed files
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a new syntax highlighter
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
	}
}

// HighlightLine highlights a single line of code based on file extension
func (h *Highlighter) HighlightLine(line, filename string) string {
	lexer := getLexerForFile(filename)
	if lexer == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := h.style.Get(token.Type)
		text := token.Value

		if style.Colour.IsSet() {
			color := style.Colour.String()
			styled := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			if style.Bold == chroma.Yes {
				styled = styled.Bold(true)
			}
			if style.Italic == chroma.Yes {
				styled = styled.Italic(true)
			}
			result.WriteString(styled.Render(text))
		} else {
			result.WriteString(text)
		}
	}

	return result.String()
}

// HighlightLines highlights multiple lines
func (h *Highlighter) HighlightLines(lines []string, filename string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = h.HighlightLine(line, filename)
	}
	return result
}

// getLexerForFile returns the appropriate lexer for the file kinds an apps
// repository actually contains
func getLexerForFile(filename string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer != nil {
		return lexer
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".py":
		return lexers.Get("python")
	case ".ipynb", ".json":
		return lexers.Get("json")
	case ".md", ".markdown", ".rst":
		return lexers.Get("markdown")
	case ".yaml", ".yml":
		return lexers.Get("yaml")
	case ".toml":
		return lexers.Get("toml")
	case ".txt":
		return lexers.Get("text")
	case ".sh", ".bash":
		return lexers.Get("bash")
	case ".html", ".htm":
		return lexers.Get("html")
	case ".css":
		return lexers.Get("css")
	case ".js":
		return lexers.Get("javascript")
	}

	return nil
}

// GetFileType returns a human-readable file type for display
func GetFileType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".py":
		return "Python"
	case ".ipynb":
		return "Notebook"
	case ".md", ".markdown":
		return "Markdown"
	case ".rst":
		return "reStructuredText"
	case ".yaml", ".yml":
		return "YAML"
	case ".toml":
		return "TOML"
	case ".json":
		return "JSON"
	case ".html", ".htm":
		return "HTML"
	default:
		return "Text"
	}
}
