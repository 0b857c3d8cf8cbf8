package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSetAddAndDuplicates(t *testing.T) {
	set := NewCompareSet(4, CapacityReject)

	assert.True(t, set.Add("a"))
	assert.True(t, set.Add("b"))
	assert.False(t, set.Add("a"), "duplicate add is a no-op")
	assert.Equal(t, []string{"a", "b"}, set.IDs)
}

func TestCompareSetRejectPolicy(t *testing.T) {
	set := NewCompareSet(2, CapacityReject)
	set.Add("a")
	set.Add("b")

	assert.False(t, set.Add("c"))
	assert.Equal(t, []string{"a", "b"}, set.IDs)
}

func TestCompareSetEvictOldestPolicy(t *testing.T) {
	set := NewCompareSet(2, CapacityEvictOldest)
	set.Add("a")
	set.Add("b")

	assert.True(t, set.Add("c"))
	assert.Equal(t, []string{"b", "c"}, set.IDs)
}

func TestCompareSetRemove(t *testing.T) {
	set := NewCompareSet(4, CapacityReject)
	set.Add("a")
	set.Add("b")
	set.Add("c")

	assert.True(t, set.Remove("b"))
	assert.False(t, set.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, set.IDs)
	assert.Equal(t, 2, set.Size())
}

func TestCompareSetEmptyIDIgnored(t *testing.T) {
	set := NewCompareSet(4, CapacityReject)
	assert.False(t, set.Add(""))
	assert.Empty(t, set.IDs)
}

func TestNewCompareSetDefaultsCapacity(t *testing.T) {
	set := NewCompareSet(0, CapacityReject)
	assert.Equal(t, CompareMaxCapacity, set.Capacity)
}
