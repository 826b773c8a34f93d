package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/datefilter/filter"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootFiltersArgs(t *testing.T) {
	out, _, err := execute(t, "",
		"--locale", "en_US", "--timezone", "UTC", "--date-style", "short",
		"--pattern", "yyyy-MM-dd HH:mm",
		"3/15/24, 2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15 14:30\n", out)
}

func TestRootFiltersStdin(t *testing.T) {
	out, _, err := execute(t, "15.03.24, 14:30\n16.03.24, 09:00\n",
		"-l", "de_DE", "-z", "UTC", "-d", "short", "-p", "d. MMMM yyyy", "--reformat-on-hit")
	require.NoError(t, err)
	assert.Equal(t, "15. März 2024\n16. März 2024\n", out)
}

// TestRootLegacyCacheHit verifies repeated formats echo the input by default.
func TestRootLegacyCacheHit(t *testing.T) {
	out, _, err := execute(t, "3/15/24, 2:30 PM\n3/16/24, 9:00 AM\n",
		"-l", "en_US", "-z", "UTC", "-d", "short", "-p", "yyyy-MM-dd")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15\n3/16/24, 9:00 AM\n", out)
}

func TestRootStopsOnInvalidInput(t *testing.T) {
	out, errOut, err := execute(t, "",
		"-l", "en_US", "-z", "UTC", "-d", "short", "-p", "yyyy",
		"not a date", "3/15/24, 2:30 PM")
	require.ErrorIs(t, err, filter.ErrInvalidInput)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid input")
}

func TestRootRejectsUnknownStyle(t *testing.T) {
	_, _, err := execute(t, "", "--date-style", "tiny", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter.date_style")
}

func TestRootLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "",
		"-l", "en_US", "-z", "UTC", "-d", "short", "--log", "--log-level", "debug",
		"3/15/24, 2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, "3/15/24, 2:30 PM\n", out)
	assert.Contains(t, errOut, `"msg":"formatter built"`)
	assert.Contains(t, errOut, `"filter.name":"cli"`)
}

func TestLocalesCmd(t *testing.T) {
	out, _, err := execute(t, "", "locales")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "en_US")
	assert.Contains(t, lines, "de_DE")
}

func TestCheckCmd(t *testing.T) {
	out, _, err := execute(t, "", "check", "--locale", "en_US")
	require.NoError(t, err)
	assert.Contains(t, out, "timezones")
	assert.Contains(t, out, "roundtrip  healthy")
}
