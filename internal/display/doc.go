// Package display turns listing results into terminal text.
//
// Rendering is pure: Render and Renderer.Render take already-resolved entries
// and return a string without touching the filesystem or any writer. The
// caller decides where the text goes.
//
// # Listing layout
//
// Plain files come first, one per line, the last one without a line break:
//
//	a.txt
//	b.txt
//
// If any file was shown, two newlines separate the file block from the
// directory block. Directory headers ("name: ") are printed only when more
// than one group is shown, that is when files were shown or more than one
// directory was given. Directory contents are printed as "name " on a single
// line, dotfiles omitted. The output always ends with one newline.
//
// # Errors
//
// WritePathErrors writes per-path failures as "<path>: <message>", one per line.
//
// # Colors
//
// Renderer.Colorize adds fatih/color decoration (bold headers, blue
// sub-directories). The plain layout characters are unchanged, so turning
// color off always yields the exact plain listing.
package display
