package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cubetex/pkg/pipeline"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // teal, titles and the active tab
	colorOK     = lipgloss.Color("35")  // green, success and cache hits
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorLink   = lipgloss.Color("75")  // light blue, URLs and commands
	colorValue  = lipgloss.Color("255") // bright white
	colorMuted  = lipgloss.Color("245") // gray, labels and fresh renders
	colorDim    = lipgloss.Color("240") // dim gray, separators
)

// Styles shared with the inspect viewer.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleLink      = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
)

var (
	styleValue   = lipgloss.NewStyle().Foreground(colorValue)
	styleKey     = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCached  = lipgloss.NewStyle().Foreground(colorOK)
	styleFresh   = lipgloss.NewStyle().Foreground(colorMuted)
)

// status is the leading glyph of a status line.
type status struct {
	glyph string
	style lipgloss.Style
}

var (
	statusOK   = status{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	statusFail = status{"✗", lipgloss.NewStyle().Foreground(colorFail)}
	statusWarn = status{"!", lipgloss.NewStyle().Foreground(colorWarn)}
	statusInfo = status{"›", lipgloss.NewStyle().Foreground(colorMuted)}
)

const separator = " · "

// =============================================================================
// Status Output
// =============================================================================

// ui writes human-readable status lines. Artifacts written to stdout never
// pass through it.
type ui struct {
	w io.Writer
}

func (u ui) status(s status, format string, args ...any) {
	fmt.Fprintln(u.w, s.style.Render(s.glyph)+" "+fmt.Sprintf(format, args...))
}

func (u ui) success(format string, args ...any) { u.status(statusOK, format, args...) }
func (u ui) failure(format string, args ...any) { u.status(statusFail, format, args...) }
func (u ui) info(format string, args ...any)    { u.status(statusInfo, format, args...) }

func (u ui) warning(format string, args ...any) {
	fmt.Fprintln(u.w, statusWarn.style.Render(statusWarn.glyph)+" "+
		statusWarn.style.Render(fmt.Sprintf(format, args...)))
}

// detail prints an indented, muted line.
func (u ui) detail(format string, args ...any) {
	fmt.Fprintln(u.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// wrote reports an artifact or spec file written to path.
func (u ui) wrote(path string) {
	fmt.Fprintln(u.w, "  "+StyleDim.Render("→")+" "+styleValue.Render(path))
}

func (u ui) keyValue(key, value string) {
	fmt.Fprintln(u.w, styleKey.Render(key)+" "+styleValue.Render(value))
}

func (u ui) nextStep(description, cmd string) {
	fmt.Fprintln(u.w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// rendered summarizes one render result:
//
//	stacked · 3×2×2 · 12 cells · tex, json · cached
func (u ui) rendered(res *pipeline.Result, formats []string) {
	parts := []string{
		string(res.Kind),
		fmt.Sprintf("%d×%d×%d", res.Shape.X, res.Shape.Y, res.Shape.Z),
	}
	if res.Stats.Cells > 0 {
		parts = append(parts, fmt.Sprintf("%d cells", res.Stats.Cells))
	}
	parts = append(parts, strings.Join(formats, ", "))

	line := StyleDim.Render(strings.Join(parts, separator)) + StyleDim.Render(separator)
	if res.CacheInfo.RenderHit {
		line += styleCached.Render("cached")
	} else {
		line += styleFresh.Render("fresh")
	}
	fmt.Fprintln(u.w, "  "+line)
}
