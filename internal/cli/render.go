package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
)

var (
	colorSage = lipgloss.Color("#8a9a5b")
	colorClay = lipgloss.Color("#c97b63")
	colorDim  = lipgloss.Color("#928374")

	styleCue  = lipgloss.NewStyle().Foreground(colorSage).Bold(true)
	styleWord = lipgloss.NewStyle().Foreground(colorClay).Bold(true)
	styleNote = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)

// Renderer prints cues and words, styled only when writing to a terminal.
type Renderer struct {
	w     io.Writer
	color bool
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

// ForFile styles output when f is a terminal.
func ForFile(f *os.File) *Renderer {
	fd := f.Fd()
	return NewRenderer(f, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// ForWriter styles output only when w is a terminal file.
func ForWriter(w io.Writer) *Renderer {
	if f, ok := w.(*os.File); ok {
		return ForFile(f)
	}
	return NewRenderer(w, false)
}

func (r *Renderer) Cue(res domain.CueResult) {
	fmt.Fprintln(r.w, r.style(styleCue, res.Cue))
	if res.Note != "" {
		fmt.Fprintln(r.w, r.style(styleNote, res.Note))
	}
}

func (r *Renderer) Word(word string) {
	fmt.Fprintln(r.w, r.style(styleWord, word))
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}
