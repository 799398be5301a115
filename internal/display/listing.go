package display

import (
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/cmdx/internal/models"
)

// Renderer formats files and directories into listing text.
type Renderer struct {
	// Colorize enables ANSI decoration of headers and sub-directory names.
	Colorize bool
}

// Render formats files and directories as plain text.
func Render(files []models.FileEntry, dirs []models.DirectoryEntry) string {
	return Renderer{}.Render(files, dirs)
}

// Render formats files and directories. It never fails; empty input yields "\n".
func (r Renderer) Render(files []models.FileEntry, dirs []models.DirectoryEntry) string {
	var b strings.Builder

	displayedFiles := r.writeFiles(&b, files)
	r.writeDirectories(&b, dirs, displayedFiles)

	return b.String()
}

// writeFiles writes one name per line, the last without a line break.
// It reports whether any file was written.
func (r Renderer) writeFiles(b *strings.Builder, files []models.FileEntry) bool {
	if len(files) == 0 {
		return false
	}

	for i, file := range files {
		b.WriteString(r.entryName(file))
		if i < len(files)-1 {
			b.WriteString(" \n")
		}
	}
	return true
}

// writeDirectories writes each directory's visible contents, with headers
// when more than one group is displayed, and the final newline.
func (r Renderer) writeDirectories(b *strings.Builder, dirs []models.DirectoryEntry, displayedFiles bool) {
	if displayedFiles {
		b.WriteString("\n\n")
	}

	multiple := displayedFiles || len(dirs) > 1

	for i, dir := range dirs {
		if multiple {
			if i > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(r.header(dir.Name))
			b.WriteString(": \n")
		}

		for _, entry := range dir.Visible() {
			b.WriteString(r.entryName(entry))
			b.WriteString(" ")
		}
	}

	b.WriteString("\n")
}

func (r Renderer) header(name string) string {
	if !r.Colorize {
		return name
	}
	return forced(color.Bold).Sprint(name)
}

func (r Renderer) entryName(entry models.FileEntry) string {
	if !r.Colorize || !entry.IsDirectory {
		return entry.Name
	}
	return forced(color.FgBlue, color.Bold).Sprint(entry.Name)
}

// forced returns a color that ignores the global NoColor detection;
// the caller has already decided that output is colored.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}
