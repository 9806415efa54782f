package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_site_builder/internal/types"
)

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.True(t, IsTransient(&openai.APIError{HTTPStatusCode: 503}))
	assert.True(t, IsTransient(fmt.Errorf("wrapped: %w", &openai.APIError{HTTPStatusCode: 429})))
	assert.False(t, IsTransient(&openai.APIError{HTTPStatusCode: 401}))
	assert.True(t, IsTransient(&openai.RequestError{HTTPStatusCode: 502, Err: errors.New("bad gateway")}))
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.False(t, IsTransient(errors.New("invalid model")))
}

func TestDetermineFileType(t *testing.T) {
	assert.Equal(t, "HTML", DetermineFileType("index.html"))
	assert.Equal(t, "CSS", DetermineFileType("STYLES.CSS"))
	assert.Equal(t, "JavaScript", DetermineFileType("script.js"))
	assert.Equal(t, "Unknown", DetermineFileType("README"))
}

func TestSaveArtifactSkipsEmptySections(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	written, err := SaveArtifact(dir, types.GeneratedArtifact{HTML: "<p>Hi</p>", CSS: "p{}"})
	require.NoError(t, err)
	assert.Len(t, written, 2)

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Hi</p>", string(data))

	_, err = os.Stat(filepath.Join(dir, "script.js"))
	assert.True(t, os.IsNotExist(err))
}
