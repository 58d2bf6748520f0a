package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/contact-manager/internal/db"
	"github.com/pdxmph/contact-manager/internal/store"
)

// writeConfig keeps logs inside the test's temp dir
func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	data := fmt.Sprintf("[log]\npath = %q\nlevel = \"debug\"\n", filepath.Join(dir, "cm.log"))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListFixtures(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	out, err := execute(t, "list", "--config", cfg, "--fixtures")
	require.NoError(t, err)

	assert.Contains(t, out, "Priya Sharma")
	assert.Contains(t, out, "Deepak Joshi")
	assert.Contains(t, out, fmt.Sprintf("%d contact(s)", len(db.Fixtures())))
}

func TestListSearch(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	out, err := execute(t, "list", "--config", cfg, "--fixtures", "--search", "PRIYA")
	require.NoError(t, err)

	assert.Contains(t, out, "Priya Sharma")
	assert.NotContains(t, out, "Rahul Verma")
	assert.Contains(t, out, "1 contact(s)")
}

func TestListEmpty(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	out, err := execute(t, "list", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "No data available")
}

func TestInitSeedThenList(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	seedPath := filepath.Join(dir, "seed.db")

	out, err := execute(t, "init-seed", seedPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Seed database created")

	_, err = execute(t, "init-seed", seedPath)
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "list", "--config", cfg, "--seed", seedPath, "--search", "goa")
	require.NoError(t, err)
	assert.Contains(t, out, "0 contact(s)", "search only matches name and email")

	out, err = execute(t, "list", "--config", cfg, "--seed", seedPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Fatima Sheikh")
}

func TestListMissingSeed(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	_, err := execute(t, "list", "--config", cfg, "--seed", filepath.Join(dir, "missing.db"))
	assert.ErrorContains(t, err, "seed database not found")
}

func TestBootstrapFixturesAndSeedCombine(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.db")
	require.NoError(t, db.CreateFixturesDatabase(seedPath))

	a, err := bootstrap(&options{
		configPath: writeConfig(t, dir),
		seedPath:   seedPath,
		fixtures:   true,
	})
	require.NoError(t, err)
	defer a.Close()

	n := len(db.Fixtures())
	assert.Equal(t, 2*n, a.store.Len())

	// ids continue past the fixtures
	contacts := a.store.Contacts()
	assert.Equal(t, n+1, contacts[n].ID)
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]store.Contact{
		{ID: 1, Name: "Anita Rao", Email: "anita@example.in", Address: "A, B, Goa 403001"},
	})

	assert.Contains(t, out, "Anita Rao")
	assert.Contains(t, out, "Contact")
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "1 contact(s)")
}
