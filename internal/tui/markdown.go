package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Cached by style + wrap width. WithAutoStyle would query the terminal background,
	// which can block on some terminals; the style follows the theme preference instead.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders overlay bodies without document margins. On renderer errors the
// source text is returned unchanged.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(style)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

func markdownStyleConfig(style string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if style == styles.LightStyle {
		cfg = styles.LightStyleConfig
	}

	zero := uint(0)
	cfg.Document.Margin = &zero
	cfg.Paragraph.Margin = &zero
	cfg.List.Margin = &zero

	text := mdColor(colorSurfaceFg, style)
	cfg.Text.Color = text
	cfg.Code.Color = text
	cfg.Strong.Color = nil
	cfg.Emph.Color = nil
	cfg.Heading.Color = mdColor(colorAccent, style)
	cfg.H1.Color = cfg.Heading.Color
	cfg.H2.Color = cfg.Heading.Color
	cfg.H3.Color = cfg.Heading.Color
	return cfg
}

func mdColor(c lipgloss.AdaptiveColor, style string) *string {
	v := c.Dark
	if style == styles.LightStyle {
		v = c.Light
	}
	return &v
}
