package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuMarksSelected(t *testing.T) {
	out := Menu([]string{"Detection", "Details", "Community"}, 1, false, 20)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "  Detection"))
	assert.True(t, strings.HasPrefix(lines[1], "› Details"))
}

func TestMenuFocusedPadsSelection(t *testing.T) {
	out := Menu([]string{"Summary", "Geo-Lookup"}, 0, true, 20)
	assert.Contains(t, out, "› Summary")
}
