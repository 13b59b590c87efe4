package dispatchers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/footprint-tools/fm/internal/domain"
)

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(st domain.Styler, usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return st.Info(cmd)
	}
	return st.Info(cmd) + " " + st.Muted(rest)
}

// HelpText renders the command catalog grouped by category, in
// declaration order within each category.
func HelpText(g *Grammar, st domain.Styler) string {
	var out bytes.Buffer

	out.WriteString("fm - interactive file manager\n\n")

	grouped := make(map[CommandCategory][]*Descriptor)
	for _, d := range g.Descriptors() {
		grouped[d.Category] = append(grouped[d.Category], d)
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(st.Header(cat.String()))
		out.WriteString("\n")

		for _, d := range cmds {
			usage := d.Usage
			if usage == "" {
				usage = d.Verb
			}
			pad := 34 - len(usage)
			if pad < 2 {
				pad = 2
			}
			fmt.Fprintf(&out, "   %s%s%s\n", formatUsage(st, usage), strings.Repeat(" ", pad), d.Summary)
		}
		out.WriteString("\n")
	}

	out.WriteString("Paths may be absolute or relative to the current directory.\n")
	return out.String()
}
