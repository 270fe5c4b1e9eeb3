package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command with an isolated config and log file
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BOOKSHELF_SEARCH_DELAY", "1ms")

	full := append([]string{
		"--config", filepath.Join(dir, "bookshelf.toml"),
		"--log-file", filepath.Join(dir, "bookshelf.log"),
	}, args...)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(full)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSearchJSON(t *testing.T) {
	out, err := run(t, "search", "--format", "json", "the")
	require.NoError(t, err)

	var records []bookRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
	assert.Equal(t, "The Great Gatsby", records[0].Title)
	assert.Equal(t, "The Da Vinci Code", records[1].Title)
	assert.Equal(t, "Flowers in the Attic", records[2].Title)
	assert.Equal(t, 1, records[0].Rank)
}

func TestSearchYAMLJoinsWords(t *testing.T) {
	out, err := run(t, "search", "--format", "yaml", "Frank", "Herbert")
	require.NoError(t, err)

	var records []bookRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Dune", records[0].Title)
	require.NotNil(t, records[0].Rating)
	assert.Equal(t, 5.0, *records[0].Rating)
}

func TestSearchTable(t *testing.T) {
	out, err := run(t, "search", "--format", "table", "moby")
	require.NoError(t, err)
	assert.Contains(t, out, "Moby Dick")
	assert.Contains(t, out, "3.5/5")
}

func TestSearchNoMatchesFails(t *testing.T) {
	_, err := run(t, "search", "--format", "table", "xyzzy")
	require.Error(t, err)
	assert.ErrorIs(t, err, errSearchFailed)
	assert.Contains(t, err.Error(), "No books found matching your search")
}

func TestSearchEmptyQueryFails(t *testing.T) {
	_, err := run(t, "search", "--format", "table", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter a search term")
}

func TestSearchRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "search", "--format", "xml", "dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestFizzBuzzLimit(t *testing.T) {
	out, err := run(t, "fizzbuzz", "--limit", "15")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)
	assert.Equal(t, "Fizz", lines[2])
	assert.Equal(t, "Buzz", lines[4])
	assert.Equal(t, "FizzBuzz", lines[14])
}

func TestDashboardPrints(t *testing.T) {
	out, err := run(t, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Wasted spend by week")
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "bookshelf.toml")
	logFile := filepath.Join(dir, "bookshelf.log")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	rootCmd.SetArgs([]string{"config", "init", "--config", path, "--log-file", logFile})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Wrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "delay = '100ms'")

	logData, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"msg":"config saved"`)

	// A second init without --force refuses to clobber the file
	rootCmd.SetArgs([]string{"config", "init", "--config", path, "--log-file", logFile})
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out.Reset()
	t.Setenv("BOOKSHELF_UI_START_TAB", "dashboard")
	rootCmd.SetArgs([]string{"config", "show", "--config", path, "--log-file", logFile})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "start_tab = 'dashboard'")

	logData, err = os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"msg":"config loaded"`)
}

func TestConfigInitForceOverwritesInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookshelf.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\ndelay = 'soon'\n"), 0644))

	_, err := run(t, "config", "show", "--config", path)
	require.Error(t, err)

	t.Cleanup(func() { _ = configInitCmd.Flags().Set("force", "false") })
	_, err = run(t, "config", "init", "--force", "--config", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "delay = '100ms'")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bookshelf dev\n", out)
}
