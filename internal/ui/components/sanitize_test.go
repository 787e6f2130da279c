package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeOneLineStripsOscAndNewlines(t *testing.T) {
	input := "\x1b]8;;https://evil\x07click\x1b]8;;\x07\nline\tmore"
	out := SanitizeOneLine(input)

	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, out, "\n")
	assert.NotContains(t, out, "\t")
	assert.Equal(t, "click line more", out)
}

func TestSanitizeTextRemovesBidiControls(t *testing.T) {
	out := SanitizeText("safe\u202eexe.txt")
	assert.Equal(t, "safeexe.txt", out)
}

func TestSanitizeTextKeepsNewlines(t *testing.T) {
	out := SanitizeText("NetRange: 8.0.0.0\r\nOrgName:\x1b[31m Level 3")
	assert.Equal(t, "NetRange: 8.0.0.0\nOrgName: Level 3", out)
}
