package entrylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	assert.Equal(t, 0, Recompute(0, 20))
	assert.Equal(t, 1, Recompute(20, 20))
	assert.Equal(t, 2, Recompute(21, 20))
}

func TestPageAfterDeletion(t *testing.T) {
	tests := []struct {
		name                          string
		current, rowsBefore, rowsGone int
		want                          int
	}{
		{"last row on page 3 steps back", 3, 1, 1, 2},
		{"last row on page 1 stays", 1, 1, 1, 1},
		{"rows left on page stays", 3, 5, 1, 3},
		{"row was not on this page", 2, 1, 0, 2},
		{"invalid current page", 0, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageAfterDeletion(tt.current, tt.rowsBefore, tt.rowsGone))
		})
	}
}
