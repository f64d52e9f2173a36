package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestTokenize_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantPos  Positionals
		wantOpts map[string]cty.Value
	}{
		{
			name:     "short flag",
			args:     []string{"-x"},
			wantPos:  Positionals{},
			wantOpts: map[string]cty.Value{"x": cty.True},
		},
		{
			name:     "long flag normalizes dashes",
			args:     []string{"--create-new"},
			wantPos:  Positionals{},
			wantOpts: map[string]cty.Value{"create_new": cty.True},
		},
		{
			name:     "short option with inline value",
			args:     []string{"-o:out.txt"},
			wantPos:  Positionals{},
			wantOpts: map[string]cty.Value{"o": cty.StringVal("out.txt")},
		},
		{
			name:     "long option with inline value",
			args:     []string{"--create-new=always"},
			wantPos:  Positionals{},
			wantOpts: map[string]cty.Value{"create_new": cty.StringVal("always")},
		},
		{
			name:     "value may itself contain separators",
			args:     []string{"--path=/tmp/a=b", "-p:x:y"},
			wantPos:  Positionals{},
			wantOpts: map[string]cty.Value{"path": cty.StringVal("/tmp/a=b"), "p": cty.StringVal("x:y")},
		},
		{
			name:     "plain words are positional",
			args:     []string{"input.txt", "output.txt"},
			wantPos:  Positionals{"input.txt", "output.txt"},
			wantOpts: map[string]cty.Value{},
		},
		{
			name:     "near-miss shapes fall through to positionals",
			args:     []string{"-", "--", "-9", "-ab", "--x", "---three", "--=v", "-x:"},
			wantPos:  Positionals{"-", "--", "-9", "-ab", "--x", "---three", "--=v", "-x:"},
			wantOpts: map[string]cty.Value{},
		},
		{
			name:     "mixed vector keeps positional order",
			args:     []string{"a", "-v", "b", "--out=f", "c"},
			wantPos:  Positionals{"a", "b", "c"},
			wantOpts: map[string]cty.Value{
				"v":   cty.True,
				"out": cty.StringVal("f"),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, opts := Tokenize(tt.args)
			assert.Equal(t, tt.wantPos, pos)

			got := make(map[string]cty.Value)
			for _, name := range opts.Names() {
				v, ok := opts.Get(name)
				require.True(t, ok)
				got[name] = v
			}
			if diff := cmp.Diff(tt.wantOpts, got, cmp.Comparer(func(a, b cty.Value) bool { return a.RawEquals(b) })); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenize_LastWriteWins(t *testing.T) {
	t.Parallel()

	_, opts := Tokenize([]string{"--x=1", "--x=2"})
	v, ok := opts.Get("x")
	require.True(t, ok)
	assert.Equal(t, cty.StringVal("2"), v)
	assert.Equal(t, 1, opts.Len())
}

func TestTokenize_FlagValueConflictResolvesToLast(t *testing.T) {
	t.Parallel()

	// A valued form overwriting a flag form (and the reverse) resolves the
	// same way as any repeat: the later occurrence wins.
	_, opts := Tokenize([]string{"--force", "--force=no"})
	v, _ := opts.Get("force")
	assert.Equal(t, cty.StringVal("no"), v)

	_, opts = Tokenize([]string{"--force=no", "--force"})
	v, _ = opts.Get("force")
	assert.Equal(t, cty.True, v)
}

func TestTokenize_RepeatKeepsFirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	_, opts := Tokenize([]string{"--b=1", "--a=1", "--b=2"})
	assert.Equal(t, []string{"b", "a"}, opts.Names())
}

func TestTokenize_Deterministic(t *testing.T) {
	t.Parallel()

	args := []string{"a", "-v", "--out=f", "b", "--out=g", "-x:1"}
	pos1, opts1 := Tokenize(args)
	pos2, opts2 := Tokenize(args)

	assert.Equal(t, pos1, pos2)
	assert.Equal(t, opts1.Names(), opts2.Names())
	for _, name := range opts1.Names() {
		v1, _ := opts1.Get(name)
		v2, _ := opts2.Get(name)
		assert.True(t, v1.RawEquals(v2))
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "create_new", Normalize("create-new"))
	assert.Equal(t, "x", Normalize("x"))
	assert.Equal(t, "a_b_c", Normalize("a-b-c"))
}
