package testing

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitScript(t *testing.T) {
	path, err := initScript()
	require.NoError(t, err)
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	script := string(data)

	assert.Contains(t, script, "CREATE TABLE IF NOT EXISTS verdicts")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(script), ";"))
}
