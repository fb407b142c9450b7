package cursor

import (
	"unicode"

	"github.com/svanari/edi/internal/engine/rope"
)

// runeClass partitions runes for word motions. A word is a maximal run of
// word runes or a maximal run of punctuation runes; blanks separate words
// and are never landed on.
type runeClass uint8

const (
	classBlank runeClass = iota
	classWord
	classPunct
)

func classOf(ch rune) runeClass {
	switch {
	case isBlank(ch):
		return classBlank
	case ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch):
		return classWord
	default:
		return classPunct
	}
}

func isBlank(ch rune) bool {
	return unicode.IsSpace(ch)
}

// WordForward moves the cursor to the last rune of the next word, count
// times. It crosses line boundaries and stops at the last rune of the
// buffer when no further word exists.
func WordForward(r rope.Rope, c Cursor, count int) Cursor {
	n := r.Len()
	if n == 0 {
		return c.MoveTo(0)
	}

	o := c.Offset
	for i := 0; i < count; i++ {
		o++
		for o < n {
			ch, _ := r.RuneAt(o)
			if classOf(ch) != classBlank {
				break
			}
			o++
		}
		if o >= n {
			o = n - 1
			break
		}

		ch, _ := r.RuneAt(o)
		cls := classOf(ch)
		for o+1 < n {
			next, _ := r.RuneAt(o + 1)
			if classOf(next) != cls {
				break
			}
			o++
		}
	}
	return c.MoveTo(o)
}

// WordBackward moves the cursor to the first rune of the previous word,
// count times. It crosses line boundaries and stops at offset zero.
func WordBackward(r rope.Rope, c Cursor, count int) Cursor {
	o := c.Offset
	for i := 0; i < count; i++ {
		o--
		for o > 0 {
			ch, _ := r.RuneAt(o)
			if classOf(ch) != classBlank {
				break
			}
			o--
		}
		if o <= 0 {
			o = 0
			break
		}

		ch, _ := r.RuneAt(o)
		cls := classOf(ch)
		for o-1 >= 0 {
			prev, _ := r.RuneAt(o - 1)
			if classOf(prev) != cls {
				break
			}
			o--
		}
	}
	if o < 0 {
		o = 0
	}
	return c.MoveTo(o)
}
