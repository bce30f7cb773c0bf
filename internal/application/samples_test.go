package application_test

import (
	"testing"

	"github.com/paylane/paylane/internal/application"
	"github.com/paylane/paylane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples_CatalogIsValid(t *testing.T) {
	samples, err := application.Samples()
	require.NoError(t, err)
	require.Len(t, samples, 3)

	seen := make(map[string]bool)
	for _, s := range samples {
		assert.False(t, seen[s.ID], "duplicate sample id %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.OrderID)
		assert.Greater(t, s.Amount, 0.0)
		assert.NotEmpty(t, s.Payer)
		assert.NotEmpty(t, s.Timestamp)
	}
}

func TestSamples_DescriptionsParseAsChannelMessages(t *testing.T) {
	samples, err := application.Samples()
	require.NoError(t, err)

	for _, s := range samples {
		r, ok := domain.ParseReceipt(s.Description)
		require.True(t, ok, "sample %s description should parse", s.ID)
		assert.Equal(t, s.OrderID, r.OrderID)
	}
}
