package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	vars, err := Parse(strings.NewReader(`
# local overrides
CREDENZA_SCENE_FILE = "saves/night.json"
export CREDENZA_MODELS_DIR='/srv/models'
CREDENZA_FPS=30
=orphan
no separator
MIXED="quote'
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"CREDENZA_SCENE_FILE": "saves/night.json",
		"CREDENZA_MODELS_DIR": "/srv/models",
		"CREDENZA_FPS":        "30",
		"MIXED":               `"quote'`,
	}, vars)
}

func TestLoadDoesNotOverrideSetVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CREDENZA_TEST_A=file\nCREDENZA_TEST_B=file\n"), 0644))
	t.Setenv("CREDENZA_TEST_A", "shell")
	t.Setenv("CREDENZA_TEST_B", "")
	require.NoError(t, os.Unsetenv("CREDENZA_TEST_B"))

	require.NoError(t, Load(path))
	assert.Equal(t, "shell", os.Getenv("CREDENZA_TEST_A"))
	assert.Equal(t, "file", os.Getenv("CREDENZA_TEST_B"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "absent.env")))
}
