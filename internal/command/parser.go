package command

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a command argument that does not match the N:SPEC
// grammar. Arg holds the offending argument verbatim so callers can quote
// it back to the user.
type ParseError struct {
	Arg    string
	Reason string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse argument [%s]: %s", e.Arg, e.Reason)
}

// Parse converts the raw command arguments into an executable plan,
// preserving argument order. It fails on the first malformed argument with
// a *ParseError and never returns a partially constructed plan.
func Parse(args []string) (Plan, error) {
	plan := make(Plan, 0, len(args))
	for _, arg := range args {
		cmd, err := parseOne(arg)
		if err != nil {
			return nil, err
		}
		plan = append(plan, cmd)
	}
	return plan, nil
}

// parseOne lifts a single "N:SPEC" argument into a Command. The argument
// is split on its first colon, so a colon may still appear as a Replace
// operand byte ("0:R:x" is valid).
func parseOne(arg string) (Command, error) {
	fieldPart, spec, found := strings.Cut(arg, ":")
	if !found {
		return Command{}, &ParseError{Arg: arg, Reason: "missing ':' separator"}
	}

	// ParseUint admits no sign prefix, so "+1:u" and "-1:u" both land here.
	field, err := strconv.ParseUint(fieldPart, 10, 31)
	if err != nil {
		return Command{}, &ParseError{Arg: arg, Reason: "field index is not a non-negative integer"}
	}

	switch {
	case spec == "u":
		return Command{Kind: LowerCase, Field: int(field)}, nil
	case spec == "U":
		return Command{Kind: UpperCase, Field: int(field)}, nil
	case len(spec) == 3 && spec[0] == 'R':
		return Command{Kind: Replace, Field: int(field), From: spec[1], To: spec[2]}, nil
	}

	return Command{}, &ParseError{Arg: arg, Reason: fmt.Sprintf("unknown operation %q", spec)}
}
