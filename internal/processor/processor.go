package processor

import (
	"strings"

	"github.com/tasyrkin/filemanipulator/internal/command"
)

// fieldSeparator is the byte that delimits fields on input and output.
const fieldSeparator = '\t'

// SplitFields splits a raw line (newline already stripped) on the tab
// byte. Runs of consecutive tabs count as a single separator, so only
// non-empty fields are emitted. An empty line yields no fields.
func SplitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == fieldSeparator
	})
}

// Apply runs every command in the plan against every field of the line, in
// plan order, and reports whether at least one command applied. The
// returned line is re-joined with single tab bytes regardless of how many
// separated the input fields.
//
// Commands targeting a field index at or beyond the line's field count
// never match and are silently ignored. Apply is pure: it keeps no state
// between calls.
func Apply(line string, plan command.Plan) (string, bool) {
	fields := SplitFields(line)

	changed := false
	for i, value := range fields {
		for _, cmd := range plan {
			if replacement, ok := cmd.Apply(i, value); ok {
				value = replacement
				changed = true
			}
		}
		fields[i] = value
	}

	return strings.Join(fields, string(fieldSeparator)), changed
}
