package ids

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIsPrefixedAndUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New("field")
		assert.True(t, strings.HasPrefix(id, "field-"), id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewAtSameInstantStaysOrdered(t *testing.T) {
	now := time.Now()
	a := NewAt("", now)
	b := NewAt("", now)
	assert.Less(t, a, b)
}
