package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palel-lang/palelc/internal/loader"
	"github.com/palel-lang/palelc/internal/palelerr"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestLoad_DiscoversOnlyPalelFilesSortedByPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "z.palel", "program do end")
	writeFile(t, dir, "a.palel", "program do end")
	writeFile(t, dir, "sub/m.palel", "program do end")
	writeFile(t, dir, "notes.txt", "ignore me")

	files, err := loader.Load(dir)
	require.Nil(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "a.palel", files[0].RelPath)
	assert.Equal(t, "sub/m.palel", filepath.ToSlash(files[1].RelPath))
	assert.Equal(t, "z.palel", files[2].RelPath)
}

func TestLoad_DeterministicAcrossRepeatedCalls(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.palel", "program do end")
	writeFile(t, dir, "a.palel", "program do end")
	writeFile(t, dir, "c.palel", "program do end")

	first, err := loader.Load(dir)
	require.Nil(t, err)
	second, err := loader.Load(dir)
	require.Nil(t, err)

	require.Len(t, first, 3)
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].RelPath, second[i].RelPath)
	}
}

func TestLoad_EmptyDirFailsWithNoSourceFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := loader.Load(dir)
	require.NotNil(t, err)
	assert.Equal(t, palelerr.NoSourceFiles, err.Kind)
	assert.Equal(t, 1, err.Kind.ExitCode())
}

func TestLoad_MissingDirFailsWithNoSourceFiles(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NotNil(t, err)
	assert.Equal(t, palelerr.NoSourceFiles, err.Kind)
}

func TestLoad_OnlyNonPalelFilesFailsWithNoSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md", "nothing here")
	_, err := loader.Load(dir)
	require.NotNil(t, err)
	assert.Equal(t, palelerr.NoSourceFiles, err.Kind)
}
