package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionsListShape(t *testing.T) {
	list := Regions()
	assert.Len(t, list, 29)

	seen := make(map[string]bool, len(list))
	for _, r := range list {
		assert.False(t, seen[r], "duplicate region %q", r)
		seen[r] = true
	}
}

func TestIsValidRegion(t *testing.T) {
	assert.True(t, IsValidRegion("Kerala"))
	assert.True(t, IsValidRegion("Arunachal Pradesh"))
	assert.False(t, IsValidRegion("kerala"))
	assert.False(t, IsValidRegion(""))
	assert.False(t, IsValidRegion("Narnia"))
}

func TestRegionsReturnsCopy(t *testing.T) {
	list := Regions()
	list[0] = "tampered"
	assert.NotEqual(t, "tampered", Regions()[0])
}
