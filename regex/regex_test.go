package regex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkyk0317/toy-regex/regex"
)

// scenarios is a concrete end-to-end table; every row must pass under
// both back ends.
var scenarios = []struct {
	pattern   string
	input     string
	substring bool
	want      bool
}{
	{"a?bc", "bc", false, true},
	{"a?bc", "aabc", false, false},
	{"a?bc", "aabc", true, true},
	{"a+b+", "aaaaaaabbbbbbbc", true, true},
	{"a+b+", "abc", false, false},
	{"(ab)c", "zabcz", true, true},
	{"(ab)*", "ababab", false, true},
	{"(ac)|(bd)", "bc", false, false},
	{".*a", strings.Repeat("a", 1000), false, true},
}

func TestScenarioTableBothBackEnds(t *testing.T) {
	for _, tt := range scenarios {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			for _, useVM := range []bool{false, true} {
				opts := regex.DefaultOptions()
				opts.UseVM = useVM
				opts.Substring = tt.substring
				re, err := regex.Compile(tt.pattern, opts)
				require.NoError(t, err)
				assert.Equal(t, tt.want, re.Exec(tt.input), "useVM=%v", useVM)
			}
		})
	}
}

func TestExecConvenienceFunction(t *testing.T) {
	for _, tt := range scenarios {
		got, err := regex.Exec(tt.pattern, tt.input, false, tt.substring)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)

		got, err = regex.Exec(tt.pattern, tt.input, true, tt.substring)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBackEndEquivalenceProperty(t *testing.T) {
	patterns := []string{"a", "a|b", "a*", "a+", "a?", "ab", "(ab)*", "a?bc", "a.c", "(a|b)*c", "a+b+", "(a*)*"}
	inputs := []string{"", "a", "b", "ab", "aa", "abc", "aabc", "bc", "xyz", "aaabbb"}

	for _, p := range patterns {
		for _, substring := range []bool{false, true} {
			automaton, err := regex.Compile(p, regex.Options{UseVM: false, Substring: substring, UseDFA: true})
			require.NoError(t, err)
			vm, err := regex.Compile(p, regex.Options{UseVM: true, Substring: substring, VMRunner: regex.DefaultOptions().VMRunner})
			require.NoError(t, err)

			for _, in := range inputs {
				assert.Equal(t, automaton.Exec(in), vm.Exec(in), "pattern %q substring=%v input %q", p, substring, in)
			}
		}
	}
}

func TestSubstringMonotonicity(t *testing.T) {
	patterns := []string{"abc", "a+b+", "(ab)*", "a?bc"}
	inputs := []string{"abc", "xabcx", "ab", "xyz", ""}

	for _, p := range patterns {
		for _, in := range inputs {
			full, err := regex.Exec(p, in, false, false)
			require.NoError(t, err)
			sub, err := regex.Exec(p, in, false, true)
			require.NoError(t, err)
			if full {
				assert.True(t, sub, "pattern %q input %q: full matched but substring did not", p, in)
			}
		}
	}
}

func TestEmptyInputBehaviour(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"a", false},
		{".", false},
		{"a*", true},
		{"a+", false},
		{"a?", true},
		{"ab", false},
		{"a*b*", true},
		{"(a|b)*", true},
	}
	for _, tt := range tests {
		got, err := regex.Exec(tt.pattern, "", false, false)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "pattern %q", tt.pattern)
	}
}

func TestInvalidPatternSurfacesCompileError(t *testing.T) {
	_, err := regex.Compile("a**", regex.DefaultOptions())
	require.Error(t, err)

	var compileErr *regex.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "a**", compileErr.Pattern)
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	assert.Panics(t, func() {
		regex.MustCompile("(a", regex.DefaultOptions())
	})
}

func TestPatternReturnsOriginalUnwrappedText(t *testing.T) {
	opts := regex.DefaultOptions()
	opts.Substring = true
	re, err := regex.Compile("abc", opts)
	require.NoError(t, err)
	assert.Equal(t, "abc", re.Pattern())
}
