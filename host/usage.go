package host

import (
	"fmt"
	"strings"

	"github.com/vk/clibind/argspec"
)

// Help renders the full help screen: the app's documentation followed by its
// usage block.
func Help(app App) string {
	var b strings.Builder
	if app.Doc != "" {
		b.WriteString(strings.TrimRight(app.Doc, "\n"))
		b.WriteString("\n\n")
	}
	b.WriteString(Usage(app))
	return b.String()
}

// Usage renders the usage line and the option table for app. The built-in
// -h/--help row is always present; -d/--debug is accepted by every command
// but kept out of the table to avoid advertising it on simple tools.
func Usage(app App) string {
	var b strings.Builder

	b.WriteString("Usage:\n  ")
	b.WriteString(app.Name)
	b.WriteString(" [options]")
	for _, p := range app.Spec.Params() {
		switch p.Kind {
		case argspec.PositionalOnly, argspec.Ambiguous:
			if p.Required() {
				fmt.Fprintf(&b, " <%s>", cliName(p.Name))
			} else {
				fmt.Fprintf(&b, " [%s]", cliName(p.Name))
			}
		case argspec.VariadicPositional:
			fmt.Fprintf(&b, " [%s...]", cliName(p.Name))
		}
	}
	b.WriteString("\n\nOptions:\n")

	type row struct{ forms, doc string }
	rows := []row{{"-h, --help", "view this help message."}}
	for _, p := range app.Spec.Params() {
		if p.Kind != argspec.NamedOnly && p.Kind != argspec.Ambiguous {
			continue
		}
		rows = append(rows, row{optionForms(p), app.ParamDocs[p.Name]})
	}

	width := 0
	for _, r := range rows {
		if len(r.forms) > width {
			width = len(r.forms)
		}
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-*s : %s\n", width, r.forms, r.doc)
	}
	return b.String()
}

// cliName converts an identifier-style parameter name to its CLI spelling.
func cliName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// optionForms renders the short and long spellings of a named parameter. A
// required parameter shows the value-carrying forms, since a bare flag could
// never satisfy it usefully.
func optionForms(p argspec.Param) string {
	short := string(p.Name[0])
	long := cliName(p.Name)
	if p.Required() {
		return fmt.Sprintf("-%s:VAL, --%s=VAL", short, long)
	}
	return fmt.Sprintf("-%s, --%s", short, long)
}
