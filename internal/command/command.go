package command

// Kind selects the transformation a Command performs. The set is closed:
// the processor dispatches exhaustively on it.
type Kind int

const (
	// LowerCase maps every ASCII uppercase letter in the target field to
	// its lowercase counterpart.
	LowerCase Kind = iota
	// UpperCase maps every ASCII lowercase letter in the target field to
	// its uppercase counterpart.
	UpperCase
	// Replace substitutes every occurrence of the From byte with the To
	// byte in the target field.
	Replace
)

// Command is one per-field transformation, parameterised by the zero-based
// field index it targets. Commands are value types, immutable after
// construction; From and To are meaningful only for the Replace kind.
type Command struct {
	Kind  Kind
	Field int
	From  byte
	To    byte
}

// Plan is an ordered sequence of commands. Commands apply in slice order,
// and later commands observe the output of earlier ones. Duplicate field
// targets are permitted.
type Plan []Command

// Apply runs the command against the field value at the given zero-based
// index. When the index matches the command's target field it returns the
// replacement value and true, even if the replacement is byte-identical
// to the input. Otherwise it returns "", false: the command does not apply
// to this field, which is not an error.
func (c Command) Apply(index int, value string) (string, bool) {
	if index != c.Field {
		return "", false
	}

	switch c.Kind {
	case LowerCase:
		return lowerASCII(value), true
	case UpperCase:
		return upperASCII(value), true
	case Replace:
		return replaceByte(value, c.From, c.To), true
	}

	// Unreachable: Kind is a closed set.
	return "", false
}

// The case mappings operate on raw bytes: only the ASCII letter ranges are
// touched, every other byte (including multi-byte UTF-8 sequences) passes
// through verbatim.

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 0x20
		}
	}
	return string(b)
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 0x20
		}
	}
	return string(b)
}

func replaceByte(s string, from, to byte) string {
	b := []byte(s)
	for i := range b {
		if b[i] == from {
			b[i] = to
		}
	}
	return string(b)
}
