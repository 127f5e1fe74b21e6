package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCount(t *testing.T) {
	assert.Equal(t, 3, BuiltinCount())
}

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"cd", "help", "exit"}, BuiltinNames())
}

func TestLookupBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			builtin, ok := LookupBuiltin(name)
			assert.True(t, ok)
			assert.NotNil(t, builtin)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, ok := LookupBuiltin("pushd")
		assert.False(t, ok)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := LookupBuiltin("CD")
		assert.False(t, ok)
	})
}

func TestCdNoArg(t *testing.T) {
	s, stdout, stderr := newTestShell()

	orig, err := os.Getwd()
	require.NoError(t, err)

	got := s.Dispatch([]string{"cd"})

	assert.Equal(t, Continue, got)
	assert.Contains(t, stderr.String(), "blsh: cd needs a path")
	assert.Empty(t, stdout.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, orig, wd)
}

func TestCd(t *testing.T) {
	s, _, stderr := newTestShell()

	orig, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(orig)

	dir := t.TempDir()
	got := s.Dispatch([]string{"cd", dir})

	assert.Equal(t, Continue, got)
	assert.Empty(t, stderr.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
}

func TestCdBadPath(t *testing.T) {
	s, _, stderr := newTestShell()

	orig, err := os.Getwd()
	require.NoError(t, err)

	got := s.Dispatch([]string{"cd", filepath.Join(t.TempDir(), "does-not-exist")})

	assert.Equal(t, Continue, got)
	assert.Contains(t, stderr.String(), "blsh: ")

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, orig, wd)
}

func TestExit(t *testing.T) {
	s, stdout, stderr := newTestShell()

	got := s.Dispatch([]string{"exit"})

	assert.Equal(t, Terminate, got)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHelp(t *testing.T) {
	s, stdout, stderr := newTestShell()

	got := s.Dispatch([]string{"help"})

	assert.Equal(t, Continue, got)
	assert.Empty(t, stderr.String())
	for _, name := range BuiltinNames() {
		assert.Contains(t, stdout.String(), name)
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)
	g.Assert(t, "help", stdout.Bytes())
}
