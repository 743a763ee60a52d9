package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsFullCatalog(t *testing.T) {
	products := All()

	require.Len(t, products, 12)

	seen := map[int]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, int64(0))
	}
}

func TestFindByID(t *testing.T) {
	p, ok := FindByID(1)

	require.True(t, ok)
	assert.Equal(t, "Mì tôm Hảo Hảo ly", p.Name)
	assert.Equal(t, int64(5000), p.Price)
}

func TestFindByIDUnknown(t *testing.T) {
	_, ok := FindByID(999)

	assert.False(t, ok)
}
