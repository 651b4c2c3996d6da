package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/claimmate-cli/internal/core/domain"
)

func TestSupportedMediaTypes(t *testing.T) {
	types := New().SupportedMediaTypes()
	require.Len(t, types, 1)
	assert.Equal(t, "application/pdf", types[0])
}

func TestExtract_EmptyContent(t *testing.T) {
	_, err := New().Extract(context.Background(), nil, "empty.pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_NotAPDF(t *testing.T) {
	_, err := New().Extract(context.Background(), []byte("just some text"), "fake.pdf")
	assert.Error(t, err)
}
