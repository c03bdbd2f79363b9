package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandMatchesCatalogs(t *testing.T) {
	pathA := writeFile(t, "a.txt", "145.4354343 -27.23423\n150.234245 -30.324233\n")
	pathB := writeFile(t, "b.txt", "0.003423 10.32432\n145.4355343 -27.23423\n150.234235 -30.324233\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{pathA, pathB, "--radius", "1", "--policy", "mutual", "--quiet"})

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0 1 "))
	assert.True(t, strings.HasPrefix(lines[1], "1 2 "))
}

func TestRootCommandRejectsBadPolicy(t *testing.T) {
	pathA := writeFile(t, "a.txt", "10 10\n")
	pathB := writeFile(t, "b.txt", "10 10\n")

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{pathA, pathB, "--policy", "closest", "--quiet"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown match policy")
}
