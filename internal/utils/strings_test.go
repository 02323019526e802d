package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "Restaurante", OrDefault("Restaurante", "Uncategorized"))
	assert.Equal(t, "Uncategorized", OrDefault("", "Uncategorized"))
	assert.Equal(t, "Uncategorized", OrDefault("   ", "Uncategorized"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Centro Histórico", "centro"))
	assert.True(t, ContainsFold("restaurante", "RESTAURANTE"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Moema", "centro"))
}

func TestDistinctSorted(t *testing.T) {
	got := DistinctSorted([]string{"b", "a", "b", "", "  ", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, got)

	assert.Empty(t, DistinctSorted(nil))
}

func TestSplitCSVSet(t *testing.T) {
	assert.Equal(t, []string{"desconto", "cashback"}, SplitCSVSet("Desconto, Cashback"))
	assert.Equal(t, []string{"produto"}, SplitCSVSet("Produto,"))
	assert.Nil(t, SplitCSVSet(""))
	assert.Nil(t, SplitCSVSet("  "))
}
