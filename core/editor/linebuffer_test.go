package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bufferWith(text string, cursor int) *LineBuffer {
	lb := NewLineBuffer()
	lb.InsertString(text)
	lb.cursor = cursor
	return lb
}

func TestInsert(t *testing.T) {
	lb := NewLineBuffer()
	for _, c := range []byte("abc") {
		lb.Insert(c)
	}
	assert.Equal(t, "abc", lb.String())
	assert.Equal(t, 3, lb.Cursor())

	lb.cursor = 1
	lb.Insert('x')
	assert.Equal(t, "axbc", lb.String())
	assert.Equal(t, 2, lb.Cursor())
}

func TestInsertString(t *testing.T) {
	lb := bufferWith("ad", 1)
	lb.InsertString("bc")
	assert.Equal(t, "abcd", lb.String())
	assert.Equal(t, 3, lb.Cursor())
}

func TestDeleteBack(t *testing.T) {
	lb := bufferWith("abc", 2)
	lb.DeleteBack()
	assert.Equal(t, "ac", lb.String())
	assert.Equal(t, 1, lb.Cursor())

	lb.cursor = 0
	lb.DeleteBack() // no-op at start
	assert.Equal(t, "ac", lb.String())
	assert.Equal(t, 0, lb.Cursor())
}

func TestDeleteForward(t *testing.T) {
	lb := bufferWith("abc", 1)
	lb.DeleteForward()
	assert.Equal(t, "ac", lb.String())
	assert.Equal(t, 1, lb.Cursor())

	lb.cursor = 2
	lb.DeleteForward() // no-op at end
	assert.Equal(t, "ac", lb.String())
}

func TestMotion(t *testing.T) {
	lb := bufferWith("ab", 0)
	lb.MoveLeft() // clamped
	assert.Equal(t, 0, lb.Cursor())
	lb.MoveRight()
	assert.Equal(t, 1, lb.Cursor())
	lb.MoveEnd()
	assert.Equal(t, 2, lb.Cursor())
	lb.MoveRight() // clamped
	assert.Equal(t, 2, lb.Cursor())
	lb.MoveStart()
	assert.Equal(t, 0, lb.Cursor())
}

func TestTruncateAtCursor(t *testing.T) {
	lb := bufferWith("abcdef", 2)
	lb.TruncateAtCursor()
	assert.Equal(t, "ab", lb.String())
	assert.Equal(t, 2, lb.Cursor())
}

func TestDeleteToStart(t *testing.T) {
	lb := bufferWith("abcdef", 4)
	lb.DeleteToStart()
	assert.Equal(t, "ef", lb.String())
	assert.Equal(t, 0, lb.Cursor())
}

func TestDeleteWord(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		cursor int
		want   string
		wantAt int
	}{
		{"single word", "hello", 5, "", 0},
		{"second word", "foo bar", 7, "foo ", 4},
		{"trailing spaces skipped", "foo bar   ", 10, "foo ", 4},
		{"mid word", "foo bar", 5, "foo ar", 4},
		{"empty", "", 0, "", 0},
		{"only spaces", "   ", 3, "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lb := bufferWith(tc.text, tc.cursor)
			lb.DeleteWord()
			assert.Equal(t, tc.want, lb.String())
			assert.Equal(t, tc.wantAt, lb.Cursor())
		})
	}
}

func TestReplace(t *testing.T) {
	lb := bufferWith("ec tail", 2)
	lb.Replace("echo ")
	assert.Equal(t, "echo  tail", lb.String())
	assert.Equal(t, 5, lb.Cursor())
}

func TestGrowth(t *testing.T) {
	lb := NewLineBuffer()
	long := strings.Repeat("x", 20*1024)
	for i := 0; i < len(long); i++ {
		lb.Insert(long[i])
	}
	assert.Equal(t, long, lb.String())
	assert.Equal(t, len(long), lb.Cursor())
	assert.GreaterOrEqual(t, cap(lb.buf), len(long))
}

func TestCursorInvariant(t *testing.T) {
	lb := bufferWith("some text here", 9)
	ops := []func(){
		lb.DeleteWord, lb.DeleteBack, lb.MoveLeft, lb.DeleteToStart,
		lb.MoveRight, lb.TruncateAtCursor, lb.MoveEnd, lb.DeleteForward,
		lb.MoveStart, lb.Clear,
	}
	for _, op := range ops {
		op()
		assert.GreaterOrEqual(t, lb.Cursor(), 0)
		assert.LessOrEqual(t, lb.Cursor(), lb.Len())
	}
}
