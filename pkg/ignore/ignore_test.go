package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Matches(t *testing.T) {
	tcs := []struct {
		name     string
		patterns []string
		path     string
		isDir    bool
		want     bool
	}{
		{name: "no patterns", path: "a.c", want: false},
		{name: "extension glob", patterns: []string{"*_test.c"}, path: "crypto/aes_test.c", want: true},
		{name: "extension glob miss", patterns: []string{"*_test.c"}, path: "crypto/aes.c", want: false},
		{name: "single star stays in segment", patterns: []string{"crypto/*.c"}, path: "crypto/sub/x.c", want: false},
		{name: "question mark", patterns: []string{"?.c"}, path: "a.c", want: true},
		{name: "question mark needs one char", patterns: []string{"?.c"}, path: "ab.c", want: false},
		{name: "double star middle zero dirs", patterns: []string{"a/**/b.c"}, path: "a/b.c", want: true},
		{name: "double star middle many dirs", patterns: []string{"a/**/b.c"}, path: "a/x/y/b.c", want: true},
		{name: "double star leading", patterns: []string{"**/fuzz"}, path: "deep/down/fuzz", isDir: true, want: true},
		{name: "double star trailing", patterns: []string{"third_party/**"}, path: "third_party/x/y.c", want: true},
		{name: "rooted pattern", patterns: []string{"/gen.c"}, path: "gen.c", want: true},
		{name: "rooted pattern not nested", patterns: []string{"/gen.c"}, path: "sub/gen.c", want: false},
		{name: "unrooted pattern nested", patterns: []string{"gen.c"}, path: "sub/gen.c", want: true},
		{name: "dir only matches dir", patterns: []string{"test/"}, path: "test", isDir: true, want: true},
		{name: "dir only skips file", patterns: []string{"test/"}, path: "test", isDir: false, want: false},
		{name: "dir only covers children", patterns: []string{"test/"}, path: "test/x.c", want: true},
		{name: "negation re-includes", patterns: []string{"*.c", "!keep.c"}, path: "keep.c", want: false},
		{name: "last match wins", patterns: []string{"!keep.c", "*.c"}, path: "keep.c", want: true},
		{name: "comments and blanks", patterns: []string{"# *.c", "", "   "}, path: "a.c", want: false},
		{name: "escaped hash", patterns: []string{`\#weird.c`}, path: "#weird.c", want: true},
		{name: "regex metachars literal", patterns: []string{"a+b.c"}, path: "a+b.c", want: true},
		{name: "dot is literal", patterns: []string{"a.c"}, path: "abc", want: false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMatcher(nil)
			m.CompileLines("test", tc.patterns...)
			assert.Equal(t, tc.want, m.Matches(tc.path, tc.isDir))
		})
	}
}

func TestMatcher_MatchesWithPatternReportsDecider(t *testing.T) {
	m := NewMatcher(nil)
	m.CompileLines("flag", "*.c", "!keep.c")

	matched, p := m.MatchesWithPattern("keep.c", false)
	assert.False(t, matched)
	require.NotNil(t, p)
	assert.Equal(t, "!keep.c", p.Line)
	assert.Equal(t, 2, p.LineNo)
	assert.Equal(t, "flag", p.Source)

	matched, p = m.MatchesWithPattern("notes.txt", false)
	assert.False(t, matched)
	assert.Nil(t, p)
}

func TestLoad_ReadsFileThenExtraPatterns(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".srclistignore")
	require.NoError(t, os.WriteFile(file, []byte("# generated\r\ntest/\r\n*_fuzz.c\n"), 0o644))

	m, err := Load(file, []string{"!test/keep.c"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Matches("x_fuzz.c", false))
	assert.True(t, m.Matches("test", true))
	assert.False(t, m.Matches("test/keep.c", false))
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_NoSources(t *testing.T) {
	m, err := Load("", nil, nil)
	require.NoError(t, err)
	assert.Zero(t, m.Len())
	assert.False(t, m.Matches("a.c", false))
}
