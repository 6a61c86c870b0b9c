package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddingSingleUnit(t *testing.T) {
	for width := 1; width <= 64; width++ {
		before, after := Padding(width, 1)

		assert.Equal(t, width-1, before+after, "width %d", width)
		// Literal policy for single-unit content
		assert.Equal(t, (width-1)/2+1-width%2, before, "before, width %d", width)
		assert.Equal(t, (width-1)/2, after, "after, width %d", width)

		if width%2 == 1 {
			assert.Equal(t, before, after, "odd width %d must center exactly", width)
		} else {
			assert.Equal(t, after+1, before, "even width %d biases before", width)
		}
	}
}

func TestPaddingKnownValues(t *testing.T) {
	tests := []struct {
		width, content int
		before, after  int
	}{
		{1, 1, 0, 0},
		{2, 1, 1, 0},
		{3, 1, 1, 1},
		{4, 1, 2, 1},
		{7, 1, 3, 3},
		{7, 2, 3, 2},
		{6, 2, 2, 2},
		{2, 3, 0, 0},
		{5, 0, 3, 2},
	}
	for _, tt := range tests {
		before, after := Padding(tt.width, tt.content)
		assert.Equal(t, tt.before, before, "before for %d/%d", tt.width, tt.content)
		assert.Equal(t, tt.after, after, "after for %d/%d", tt.width, tt.content)
	}
}
