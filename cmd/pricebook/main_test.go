package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	invoice1 = filepath.Join("..", "..", "testdata", "invoice-2023-04-01.html")
	invoice2 = filepath.Join("..", "..", "testdata", "invoice-2023-04-08.html")
	badPrice = filepath.Join("..", "..", "testdata", "invoice-bad-price.html")
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stderr)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHistoryCommand(t *testing.T) {
	out, _, err := run(t, "history", invoice1, invoice2)
	require.NoError(t, err)
	assert.Contains(t, out, "| Item | 2023-04-01 | 2023-04-08 |")
	assert.Contains(t, out, "Milk 2L")
}

func TestHistoryCommandSkip(t *testing.T) {
	out, stderr, err := run(t, "--on-error", "skip", "history", invoice1, badPrice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 invoice(s) skipped")
	assert.Contains(t, out, "Milk 2L")
	assert.Contains(t, stderr, "skipped")

	_, _, err = run(t, "history", invoice1, badPrice)
	assert.Error(t, err)
}

func TestExtractCommand(t *testing.T) {
	out, _, err := run(t, "extract", "--format", "csv", invoice1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "date,item,price,cents\n"))
	assert.Contains(t, out, "2023-04-01,Lamb Leg 1kg - 0.75kg,7.50,750\n")

	out, _, err = run(t, "extract", "--rows", invoice1)
	require.NoError(t, err)
	assert.Contains(t, out, "| 1 | Milk 2L |")
}

func TestExtractRowsPolicy(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.html")

	out, stderr, err := run(t, "--on-error", "skip", "extract", "--rows", missing, invoice1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 invoice(s) skipped")
	assert.Contains(t, out, "| 1 | Milk 2L |")
	assert.Contains(t, stderr, "skipped "+missing)

	out, _, err = run(t, "extract", "--rows", missing, invoice1)
	require.Error(t, err)
	assert.NotContains(t, out, "Milk 2L")
}

func TestExtractToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	out, _, err := run(t, "extract", "-o", path, invoice1)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, path)
}

func TestBinaryFormatNeedsFile(t *testing.T) {
	_, _, err := run(t, "history", "--format", "xlsx", invoice1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}

func TestImportAndShow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "prices.db")

	out, _, err := run(t, "--db", db, "import", invoice1, invoice2)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "items\n"))

	out, _, err = run(t, "--db", db, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Lamb Leg 1kg - 0.75kg")
	assert.Contains(t, out, "2023-04-08")

	out, _, err = run(t, "--db", db, "show", "--documents")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestOCRNeedsDate(t *testing.T) {
	_, _, err := run(t, "ocr", "scan.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--date")
}

func TestInvalidSettings(t *testing.T) {
	_, _, err := run(t, "--on-error", "retry", "history", invoice1)
	assert.Error(t, err)

	_, _, err = run(t, "--db-driver", "mysql", "show")
	assert.Error(t, err)
}
