package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harrison/cmdx/internal/models"
)

// WritePathErrors writes one "<path>: <message>" line per error.
// With colorize set, the path is printed in red.
func WritePathErrors(out io.Writer, errs []*models.PathError, colorize bool) {
	for _, err := range errs {
		path := err.Path
		if colorize {
			path = forced(color.FgRed).Sprint(path)
		}
		fmt.Fprintf(out, "%s: %s\n", path, err.Message())
	}
}
