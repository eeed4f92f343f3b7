package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadResumeFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "alice.txt", "python engineer")
	b := writeTempFile(t, dir, "bob.txt", "golang developer")

	resumes, err := loadResumeFiles([]string{a, b})
	require.NoError(t, err)
	require.Len(t, resumes, 2)

	assert.Equal(t, "alice", resumes[0].ID)
	assert.Equal(t, "python engineer", resumes[0].Text)
	assert.Equal(t, "bob", resumes[1].ID)
}

func TestLoadResumeFiles_DuplicateBasenames(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	a := writeTempFile(t, dirA, "resume.txt", "python")
	b := writeTempFile(t, dirB, "resume.txt", "golang")

	_, err := loadResumeFiles([]string{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share the identifier")
}

func TestLoadResumeFiles_MissingFile(t *testing.T) {
	_, err := loadResumeFiles([]string{"/nonexistent/resume.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestWriteJSONOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	err := writeJSONOutput(path, map[string]int{"answer": 42})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 42, decoded["answer"])
}
