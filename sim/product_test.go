package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The canonical product order backs every per-product iteration; reordering
// it silently changes which products same-seed runs visit first.
func TestProductTypesCanonicalOrder(t *testing.T) {
	expected := []Product{Proteins, Carbohydrates, Fruits, Vegetables, Sweets}
	assert.Equal(t, expected, ProductTypes)

	seen := make(map[Product]bool)
	for _, p := range ProductTypes {
		assert.False(t, seen[p], "duplicate product %q", p)
		assert.NotEmpty(t, string(p))
		seen[p] = true
	}
}
