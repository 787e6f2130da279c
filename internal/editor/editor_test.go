package editor

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

func assertInvariant(t *testing.T, e *Editor) {
	t.Helper()
	require.GreaterOrEqual(t, e.Index(), 0)
	require.LessOrEqual(t, e.Index(), e.Len())
	assert.Equal(t, widthOf(e.Runes()[:e.Index()]), e.Column())
}

func widthOf(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}

func TestInsertAdvancesIndexAndColumn(t *testing.T) {
	e := New()
	typeString(e, "8.8")

	assert.Equal(t, "8.8", e.String())
	assert.Equal(t, 3, e.Index())
	assert.Equal(t, 3, e.Column())
}

func TestInsertWideRunesCountTwoColumns(t *testing.T) {
	e := New()
	typeString(e, "日本")

	assert.Equal(t, 2, e.Index())
	assert.Equal(t, 4, e.Column())
	assertInvariant(t, e)
}

func TestZeroWidthRuneDoesNotBreakArithmetic(t *testing.T) {
	e := New()
	e.Insert('e')
	e.Insert('\u0301')
	assert.Equal(t, 2, e.Index())
	assert.Equal(t, 1, e.Column())

	e.DeleteBackward()
	e.DeleteBackward()
	e.DeleteBackward()
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, 0, e.Column())
	assert.Equal(t, "", e.String())
}

func TestInsertInMiddle(t *testing.T) {
	e := New()
	typeString(e, "8.8.8")
	e.MoveLeft()
	e.MoveLeft()
	e.Insert('x')

	assert.Equal(t, "8.8x.8", e.String())
	assert.Equal(t, 4, e.Index())
	assertInvariant(t, e)
}

func TestDeleteBackwardAtStartIsNoop(t *testing.T) {
	e := New()
	typeString(e, "ab")
	e.MoveToStart()
	e.DeleteBackward()

	assert.Equal(t, "ab", e.String())
	assert.Equal(t, 0, e.Index())
}

func TestDeleteForwardKeepsCursor(t *testing.T) {
	e := New()
	typeString(e, "abc")
	e.MoveToStart()
	e.MoveRight()
	e.DeleteForward()

	assert.Equal(t, "ac", e.String())
	assert.Equal(t, 1, e.Index())
	assert.Equal(t, 1, e.Column())

	e.MoveToEnd()
	e.DeleteForward()
	assert.Equal(t, "ac", e.String())
}

func TestMoveLeftRightAcrossWideRune(t *testing.T) {
	e := New()
	typeString(e, "a日b")
	e.MoveLeft()
	assert.Equal(t, 3, e.Column())
	e.MoveLeft()
	assert.Equal(t, 1, e.Column())
	e.MoveLeft()
	e.MoveLeft()
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, 0, e.Column())

	e.MoveRight()
	e.MoveRight()
	assert.Equal(t, 2, e.Index())
	assert.Equal(t, 3, e.Column())
	e.MoveRight()
	e.MoveRight()
	assert.Equal(t, 3, e.Index())
	assertInvariant(t, e)
}

func TestMoveToEndColumnIsFullWidth(t *testing.T) {
	for _, s := range []string{"", "1.1.1.1", "日本語", "áb", "::ffff:1.2.3.4"} {
		e := New()
		typeString(e, s)
		e.MoveToStart()
		e.MoveToEnd()
		assert.Equal(t, widthOf([]rune(s)), e.Column(), s)
		assert.Equal(t, e.Width(), e.Column(), s)
	}
}

func TestDeleteToEnd(t *testing.T) {
	e := New()
	typeString(e, "10.0.0.1")
	e.MoveToStart()
	e.MoveRight()
	e.MoveRight()
	e.DeleteToEnd()

	assert.Equal(t, "10", e.String())
	assert.Equal(t, 2, e.Index())
	assertInvariant(t, e)
}

func TestDeleteToStart(t *testing.T) {
	e := New()
	typeString(e, "10.0.0.1")
	e.MoveLeft()
	e.DeleteToStart()

	assert.Equal(t, "1", e.String())
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, 0, e.Column())
}

func TestDeleteWordBackward(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		moveLeft  int
		want      string
		wantIndex int
	}{
		{name: "single word", input: "8.8.8.8", want: "", wantIndex: 0},
		{name: "last word", input: "foo bar", want: "foo ", wantIndex: 4},
		{name: "trailing spaces", input: "foo bar   ", want: "foo ", wantIndex: 4},
		{name: "middle of buffer", input: "foo bar baz", moveLeft: 4, want: "foo  baz", wantIndex: 4},
		{name: "wide runes", input: "ip 日本", want: "ip ", wantIndex: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			typeString(e, tt.input)
			for i := 0; i < tt.moveLeft; i++ {
				e.MoveLeft()
			}
			e.DeleteWordBackward()
			assert.Equal(t, tt.want, e.String())
			assert.Equal(t, tt.wantIndex, e.Index())
			assertInvariant(t, e)
		})
	}
}

func TestDeleteWordBackwardAtStartIsNoop(t *testing.T) {
	e := New()
	typeString(e, "abc")
	e.MoveToStart()
	e.DeleteWordBackward()
	assert.Equal(t, "abc", e.String())
}

func TestClear(t *testing.T) {
	e := New()
	typeString(e, "日本")
	e.Clear()

	assert.Equal(t, "", e.String())
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, 0, e.Column())
}

func TestSetStringMovesCursorToEnd(t *testing.T) {
	e := New()
	e.SetString("1.2.3.4")
	assert.Equal(t, 7, e.Index())
	assert.Equal(t, 7, e.Column())
}

func TestRandomEditSequenceKeepsInvariant(t *testing.T) {
	e := New()
	ops := []func(){
		func() { e.Insert('a') },
		func() { e.Insert('日') },
		func() { e.Insert('\u0301') },
		e.DeleteBackward,
		e.DeleteForward,
		e.MoveLeft,
		e.MoveRight,
		e.DeleteWordBackward,
		func() { e.Insert(' ') },
	}

	// Deterministic walk that mixes every operation many times.
	seed := uint32(7)
	for i := 0; i < 2000; i++ {
		seed = seed*1664525 + 1013904223
		ops[int(seed>>16)%len(ops)]()
		assertInvariant(t, e)
	}
}
