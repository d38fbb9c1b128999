// Package cli renders a reduction run for the terminal: worker status lines,
// the final totals, comparison and per-worker tables, and a progress spinner.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayBanner], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatResult], [FormatQuietResult].
package cli
