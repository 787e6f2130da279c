// Package editor implements the single-line text buffer behind the search box.
//
// The cursor is tracked twice: Index counts runes, Column counts terminal
// cells. Every edit keeps Column equal to the display width of the runes
// before Index.
package editor

import (
	"github.com/mattn/go-runewidth"
)

// Editor is a rune buffer with a cursor. The zero value is an empty editor.
type Editor struct {
	buf    []rune
	index  int
	column int
}

// New returns an empty editor.
func New() *Editor {
	return &Editor{}
}

// String returns the buffer contents.
func (e *Editor) String() string {
	return string(e.buf)
}

// Len returns the number of runes in the buffer.
func (e *Editor) Len() int {
	return len(e.buf)
}

// Index returns the cursor position in runes.
func (e *Editor) Index() int {
	return e.index
}

// Column returns the cursor position in terminal cells.
func (e *Editor) Column() int {
	return e.column
}

// Width returns the display width of the whole buffer.
func (e *Editor) Width() int {
	return spanWidth(e.buf)
}

// Runes returns a copy of the buffer.
func (e *Editor) Runes() []rune {
	out := make([]rune, len(e.buf))
	copy(out, e.buf)
	return out
}

// SetString replaces the buffer and moves the cursor to the end.
func (e *Editor) SetString(s string) {
	e.buf = []rune(s)
	e.MoveToEnd()
}

// Insert places r at the cursor and advances past it.
func (e *Editor) Insert(r rune) {
	e.clamp()
	e.buf = append(e.buf, 0)
	copy(e.buf[e.index+1:], e.buf[e.index:])
	e.buf[e.index] = r
	e.index++
	e.column += runeWidth(r)
}

// DeleteBackward removes the rune before the cursor.
func (e *Editor) DeleteBackward() {
	e.clamp()
	if e.index == 0 {
		return
	}
	removed := e.buf[e.index-1]
	e.buf = append(e.buf[:e.index-1], e.buf[e.index:]...)
	e.index--
	e.column = sub(e.column, runeWidth(removed))
}

// DeleteForward removes the rune under the cursor. The cursor does not move.
func (e *Editor) DeleteForward() {
	e.clamp()
	if e.index >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.index], e.buf[e.index+1:]...)
}

// MoveLeft moves the cursor one rune to the left.
func (e *Editor) MoveLeft() {
	e.clamp()
	if e.index == 0 {
		return
	}
	e.index--
	e.column = sub(e.column, runeWidth(e.buf[e.index]))
}

// MoveRight moves the cursor one rune to the right.
func (e *Editor) MoveRight() {
	e.clamp()
	if e.index >= len(e.buf) {
		return
	}
	e.column += runeWidth(e.buf[e.index])
	e.index++
}

// MoveToStart puts the cursor before the first rune.
func (e *Editor) MoveToStart() {
	e.index = 0
	e.column = 0
}

// MoveToEnd puts the cursor after the last rune.
func (e *Editor) MoveToEnd() {
	e.index = len(e.buf)
	e.column = spanWidth(e.buf)
}

// DeleteToEnd truncates the buffer at the cursor.
func (e *Editor) DeleteToEnd() {
	e.clamp()
	e.buf = e.buf[:e.index]
}

// DeleteToStart removes everything before the cursor.
func (e *Editor) DeleteToStart() {
	e.clamp()
	e.buf = append(e.buf[:0], e.buf[e.index:]...)
	e.index = 0
	e.column = 0
}

// DeleteWordBackward removes the word before the cursor along with any
// spaces between it and the cursor.
func (e *Editor) DeleteWordBackward() {
	e.clamp()
	if e.index == 0 {
		return
	}

	start := e.index
	for start > 0 && e.buf[start-1] == ' ' {
		start--
	}
	for start > 0 && e.buf[start-1] != ' ' {
		start--
	}

	removed := spanWidth(e.buf[start:e.index])
	e.buf = append(e.buf[:start], e.buf[e.index:]...)
	e.index = start
	e.column = sub(e.column, removed)
}

// Clear empties the buffer.
func (e *Editor) Clear() {
	e.buf = e.buf[:0]
	e.index = 0
	e.column = 0
}

// clamp restores the index invariant before an edit.
func (e *Editor) clamp() {
	if e.index < 0 {
		e.index = 0
	}
	if e.index > len(e.buf) {
		e.index = len(e.buf)
	}
	if e.column < 0 {
		e.column = 0
	}
}

func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

func spanWidth(rs []rune) int {
	total := 0
	for _, r := range rs {
		total += runeWidth(r)
	}
	return total
}

func sub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
