package optparse

import (
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/optparse/pkg/textutil"
)

// Dump writes a formatted description of every registered flag to w, one flag
// per entry in registration order. Each entry shows the short form when the
// flag has one, the long form, the metavar when the flag takes an argument,
// and the help text wrapped and aligned into a column:
//
//	  -v, --verbose          enable verbose output
//	  -o, --output <FILE>    write the result to FILE
//	      --jobs <N>         number of parallel jobs
func (s *Flags) Dump(w io.Writer) {
	type entry struct {
		forms string
		help  string
	}
	entries := make([]entry, 0, len(s.flags))
	maxLen := 0
	s.VisitAll(func(f *Flag) {
		e := entry{forms: formatFlagForms(f), help: f.Help}
		if len(e.forms) > maxLen {
			maxLen = len(e.forms)
		}
		entries = append(entries, e)
	})

	for _, e := range entries {
		nameWidth := maxLen + 4
		wrapWidth := 80 - nameWidth

		// Wrap yields nothing for empty or all-whitespace help.
		lines := textutil.Wrap(e.help, wrapWidth)
		if len(lines) == 0 {
			fmt.Fprintf(w, "  %s\n", e.forms)
			continue
		}

		padding := strings.Repeat(" ", maxLen-len(e.forms)+4)
		fmt.Fprintf(w, "  %s%s%s\n", e.forms, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "%s%s\n", indentPadding, line)
		}
	}
}

// String returns what [Flags.Dump] writes, so a registry can be handed
// directly to fmt-style print functions when rendering help.
func (s *Flags) String() string {
	var b strings.Builder
	s.Dump(&b)
	return b.String()
}

// formatFlagForms renders the option-forms column for a single flag. Long-only
// flags are padded where the short form would sit so the long forms line up.
func formatFlagForms(f *Flag) string {
	var b strings.Builder
	if f.Short != LongOnly {
		fmt.Fprintf(&b, "-%c, ", f.Short)
	} else {
		b.WriteString("    ")
	}
	b.WriteString("--")
	b.WriteString(f.Name)
	if f.TakesArg() {
		fmt.Fprintf(&b, " <%s>", f.Metavar)
	}
	return b.String()
}
