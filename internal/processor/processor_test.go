package processor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasyrkin/filemanipulator/internal/command"
)

func TestSplitFields(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "two fields",
			line:     "a\tb",
			expected: []string{"a", "b"},
		},
		{
			name:     "run of tabs collapses to a single separator",
			line:     "a\t\tb",
			expected: []string{"a", "b"},
		},
		{
			name:     "leading and trailing tabs produce no empty fields",
			line:     "\ta\t",
			expected: []string{"a"},
		},
		{
			name:     "single field without separator",
			line:     "abc",
			expected: []string{"abc"},
		},
		{
			name:     "empty line yields no fields",
			line:     "",
			expected: nil,
		},
		{
			name:     "tabs only yields no fields",
			line:     "\t\t\t",
			expected: nil,
		},
		{
			name:     "spaces are not separators",
			line:     "a b\tc",
			expected: []string{"a b", "c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fields := SplitFields(tc.line)

			if diff := cmp.Diff(tc.expected, fields, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("SplitFields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name          string
		line          string
		args          []string
		expectChanged bool
		expectedLine  string
	}{
		{
			name:          "upper case first field",
			line:          "hello\tworld",
			args:          []string{"0:U"},
			expectChanged: true,
			expectedLine:  "HELLO\tworld",
		},
		{
			name:          "upper case second field",
			line:          "hello\tworld",
			args:          []string{"1:U"},
			expectChanged: true,
			expectedLine:  "hello\tWORLD",
		},
		{
			name:          "replace changes first field",
			line:          "aaa\tbbb",
			args:          []string{"0:Rab"},
			expectChanged: true,
			expectedLine:  "bbb\tbbb",
		},
		{
			name:          "out of range command leaves line unchanged",
			line:          "x\ty",
			args:          []string{"5:U"},
			expectChanged: false,
			expectedLine:  "x\ty",
		},
		{
			name:          "commands on the same field apply in order",
			line:          "Hi\tThere",
			args:          []string{"0:U", "0:u"},
			expectChanged: true,
			expectedLine:  "hi\tThere",
		},
		{
			name:          "later command observes earlier output",
			line:          "abc\tx",
			args:          []string{"0:Rab", "0:Rbc"},
			expectChanged: true,
			expectedLine:  "ccc\tx",
		},
		{
			name:          "collapsed separators are re-joined with single tabs",
			line:          "a\t\tb",
			args:          []string{"1:U"},
			expectChanged: true,
			expectedLine:  "a\tB",
		},
		{
			name:          "empty plan changes nothing",
			line:          "a\tb",
			args:          nil,
			expectChanged: false,
			expectedLine:  "a\tb",
		},
		{
			name:          "empty line with matching command stays unchanged",
			line:          "",
			args:          []string{"0:U"},
			expectChanged: false,
			expectedLine:  "",
		},
		{
			name:          "identical replacement still marks the line changed",
			line:          "abc\tdef",
			args:          []string{"0:u"},
			expectChanged: true,
			expectedLine:  "abc\tdef",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := command.Parse(tc.args)
			require.NoError(t, err)

			line, changed := Apply(tc.line, plan)

			assert.Equal(t, tc.expectChanged, changed)
			assert.Equal(t, tc.expectedLine, line)
		})
	}
}

func TestApply_PreservesFieldCount(t *testing.T) {
	plan, err := command.Parse([]string{"0:U", "1:Rxy", "2:u"})
	require.NoError(t, err)

	line := "One\t\ttwo\tthrEE\t"
	before := len(SplitFields(line))

	out, changed := Apply(line, plan)

	require.True(t, changed)
	assert.Equal(t, before, len(SplitFields(out)))
}
