package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedMediaTypes(t *testing.T) {
	e := New()
	types := e.SupportedMediaTypes()

	require.NotEmpty(t, types)
	assert.Contains(t, types, "text/*")
	assert.Contains(t, types, "application/json")
}

func TestExtract_ValidUTF8(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), []byte("sleep study dated 2019-04-02"), "sleep.txt")
	require.NoError(t, err)
	assert.Equal(t, "sleep study dated 2019-04-02", text)
}

func TestExtract_ReplacesInvalidBytes(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), []byte{'o', 'k', 0xff, 0xfe, '!'}, "notes.txt")
	require.NoError(t, err)
	assert.Contains(t, text, "ok")
	assert.Contains(t, text, "!")
	assert.True(t, len(text) > 3, "invalid bytes should be replaced, not dropped")
}

func TestExtract_EmptyContent(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), nil, "empty.txt")
	require.NoError(t, err)
	assert.Empty(t, text)
}
