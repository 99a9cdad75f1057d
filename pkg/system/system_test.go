package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionID(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestLoadEnvSearchesParents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.test"), []byte("# comment\nG711_TEST_KEY=from-file\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	chdir(t, nested)
	os.Unsetenv("G711_TEST_KEY")
	t.Cleanup(func() { os.Unsetenv("G711_TEST_KEY") })

	require.NoError(t, LoadEnv(".env.test"))
	assert.Equal(t, "from-file", os.Getenv("G711_TEST_KEY"))
}

func TestLoadEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("G711_TEST_KEEP=file\n"), 0o644))
	t.Setenv("G711_TEST_KEEP", "env")

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "env", os.Getenv("G711_TEST_KEEP"))
}

func TestLoadOptionalEnvMissing(t *testing.T) {
	chdir(t, t.TempDir())
	assert.NoError(t, LoadOptionalEnv(".env.does-not-exist"))
	assert.ErrorIs(t, LoadEnv(".env.does-not-exist"), os.ErrNotExist)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
