package db

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/atacrna/pkg/model"
)

func TestWriteLoadExpression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expression.parquet")
	rows := []ExpressionRow{
		{GeneName: "slc4a1a", SampleID: "TDR126", RNA: 1, ATAC: 2, Color: "#ffff33"},
		{GeneName: "slc4a1a", SampleID: "TDR126", RNA: 3, ATAC: 0.5, Color: "#666666"},
		{GeneName: "slc4a1a", SampleID: "TDR127", RNA: 0, ATAC: 0, Color: "#ffff33"},
		{GeneName: "hbba1", SampleID: "TDR126", RNA: 7, ATAC: 9, Color: "#666666"},
	}
	require.NoError(t, WriteExpression(path, rows))

	set, err := LoadExpression(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"slc4a1a", "hbba1"}, set.Genes())
	assert.Equal(t, []model.Observation{
		{Expression: 1, Accessibility: 2, Color: "#ffff33"},
		{Expression: 3, Accessibility: 0.5, Color: "#666666"},
	}, set["slc4a1a"]["TDR126"])
	assert.Len(t, set["slc4a1a"]["TDR127"], 1)
	assert.Len(t, set["hbba1"], 1)
}

func TestLoadExpression_MissingFile(t *testing.T) {
	_, err := LoadExpression(filepath.Join(t.TempDir(), "nope.parquet"))
	assert.Error(t, err)
}

func TestWriteExpression_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expression.parquet")

	require.NoError(t, WriteExpression(path, []ExpressionRow{
		{GeneName: "old", SampleID: "TDR126", RNA: 1, ATAC: 1, Color: "#ffff33"},
	}))
	require.NoError(t, WriteExpression(path, []ExpressionRow{
		{GeneName: "new", SampleID: "TDR126", RNA: 2, ATAC: 2, Color: "#ffff33"},
	}))

	set, err := LoadExpression(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, set.Genes())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestReplaceFile_FailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expression.parquet")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	err := replaceFile(path, func(w io.Writer) error {
		if _, err := w.Write([]byte("partial")); err != nil {
			return err
		}
		return errors.New("disk full")
	})
	require.Error(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteExpression_MissingDirectory(t *testing.T) {
	err := WriteExpression(filepath.Join(t.TempDir(), "nope", "expression.parquet"), nil)
	assert.Error(t, err)
}
