package cursor

import (
	"testing"

	"github.com/svanari/edi/internal/engine/rope"
)

func TestNewClampsNegative(t *testing.T) {
	c := New(-5)
	if c.Offset != 0 {
		t.Errorf("Offset = %d, want 0", c.Offset)
	}
	if c.DesiredCol != NoDesiredColumn {
		t.Errorf("DesiredCol = %d, want NoDesiredColumn", c.DesiredCol)
	}
}

func TestHorizontalMotionStaysOnLine(t *testing.T) {
	r := rope.FromString("abc\ndef")

	tests := []struct {
		name  string
		start int
		move  func(rope.Rope, Cursor, int) Cursor
		count int
		want  int
	}{
		{"right within line", 0, Right, 2, 2},
		{"right clamps at line end", 1, Right, 10, 3},
		{"right on second line", 4, Right, 2, 6},
		{"left within line", 2, Left, 1, 1},
		{"left clamps at line start", 5, Left, 10, 4},
		{"left at buffer start", 0, Left, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.move(r, New(tt.start), tt.count)
			if got.Offset != tt.want {
				t.Errorf("offset = %d, want %d", got.Offset, tt.want)
			}
		})
	}
}

func TestVerticalMotion(t *testing.T) {
	r := rope.FromString("first\nsecond\nthird")

	c := New(2) // "first", column 2
	c = Down(r, c, 1)
	if pos := c.Position(r); pos.Line != 1 || pos.Column != 2 {
		t.Errorf("after down: %+v, want line 1 col 2", pos)
	}

	c = Down(r, c, 1)
	if pos := c.Position(r); pos.Line != 2 || pos.Column != 2 {
		t.Errorf("after second down: %+v, want line 2 col 2", pos)
	}

	c = Up(r, c, 2)
	if pos := c.Position(r); pos.Line != 0 || pos.Column != 2 {
		t.Errorf("after up 2: %+v, want line 0 col 2", pos)
	}
}

func TestVerticalMotionClampsAtEdges(t *testing.T) {
	r := rope.FromString("one\ntwo")

	top := Up(r, New(5), 10)
	if pos := top.Position(r); pos.Line != 0 {
		t.Errorf("up past top landed on line %d", pos.Line)
	}

	bottom := Down(r, New(1), 10)
	if pos := bottom.Position(r); pos.Line != 1 {
		t.Errorf("down past bottom landed on line %d", pos.Line)
	}
}

func TestDesiredColumnSurvivesShortLine(t *testing.T) {
	r := rope.FromString("long line here\nhi\nanother long line")

	c := New(10) // line 0, column 10
	c = Down(r, c, 1)
	if pos := c.Position(r); pos.Line != 1 || pos.Column != 2 {
		t.Fatalf("on short line: %+v, want line 1 col 2 (clamped)", pos)
	}

	c = Down(r, c, 1)
	if pos := c.Position(r); pos.Line != 2 || pos.Column != 10 {
		t.Errorf("past short line: %+v, want line 2 col 10 (restored)", pos)
	}
}

func TestHorizontalMotionDropsDesiredColumn(t *testing.T) {
	r := rope.FromString("long line here\nhi\nanother long line")

	c := New(10)
	c = Down(r, c, 1) // clamped to col 2, desired col 10
	c = Left(r, c, 1) // explicit horizontal move abandons desired col
	c = Down(r, c, 1)
	if pos := c.Position(r); pos.Column != 1 {
		t.Errorf("column = %d, want 1 (desired column dropped by Left)", pos.Column)
	}
}

func TestLineMotions(t *testing.T) {
	r := rope.FromString("  indented\nplain\n\t\ttabbed")

	tests := []struct {
		name  string
		start int
		move  func(rope.Rope, Cursor) Cursor
		want  int
	}{
		{"line start", 7, LineStart, 0},
		{"first non-blank skips spaces", 7, FirstNonBlank, 2},
		{"first non-blank on plain line", 13, FirstNonBlank, 11},
		{"first non-blank skips tabs", 20, FirstNonBlank, 19},
		{"line end", 2, LineEnd, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.move(r, New(tt.start))
			if got.Offset != tt.want {
				t.Errorf("offset = %d, want %d", got.Offset, tt.want)
			}
		})
	}
}

func TestFirstNonBlankOnBlankLine(t *testing.T) {
	r := rope.FromString("a\n   \nb")
	got := FirstNonBlank(r, New(3))
	if got.Offset != 2 {
		t.Errorf("offset = %d, want 2 (line start when all blanks)", got.Offset)
	}
}

func TestBufferEnd(t *testing.T) {
	r := rope.FromString("hello world\nfoo")
	got := BufferEnd(r, New(0))
	if got.Offset != 12 {
		t.Errorf("offset = %d, want 12 (first rune of last line)", got.Offset)
	}

	indented := rope.FromString("top\n  last")
	got = BufferEnd(indented, New(0))
	if got.Offset != 6 {
		t.Errorf("offset = %d, want 6 (first non-blank of last line)", got.Offset)
	}
}

func TestWordForward(t *testing.T) {
	r := rope.FromString("hello world\nfoo")

	c := WordForward(r, New(0), 1)
	if c.Offset != 4 {
		t.Fatalf("first word-forward = %d, want 4 (end of \"hello\")", c.Offset)
	}
	c = WordForward(r, c, 1)
	if c.Offset != 10 {
		t.Fatalf("second word-forward = %d, want 10 (end of \"world\")", c.Offset)
	}
	c = WordForward(r, c, 1)
	if c.Offset != 14 {
		t.Errorf("third word-forward = %d, want 14 (end of \"foo\", across the newline)", c.Offset)
	}
}

func TestWordForwardClasses(t *testing.T) {
	r := rope.FromString("foo_bar() baz")

	tests := []struct {
		start int
		want  int
	}{
		{0, 6},  // underscores belong to the word
		{6, 8},  // "()" is one punctuation word
		{8, 12}, // end of "baz"
	}

	for _, tt := range tests {
		got := WordForward(r, New(tt.start), 1)
		if got.Offset != tt.want {
			t.Errorf("WordForward from %d = %d, want %d", tt.start, got.Offset, tt.want)
		}
	}
}

func TestWordForwardStopsAtBufferEnd(t *testing.T) {
	r := rope.FromString("one two")
	got := WordForward(r, New(6), 5)
	if got.Offset != 6 {
		t.Errorf("offset = %d, want 6 (last rune)", got.Offset)
	}
}

func TestWordForwardCount(t *testing.T) {
	r := rope.FromString("a bb ccc dddd")
	got := WordForward(r, New(0), 3)
	if got.Offset != 12 {
		t.Errorf("offset = %d, want 12 (end of fourth word)", got.Offset)
	}
}

func TestWordBackward(t *testing.T) {
	r := rope.FromString("hello world\nfoo")

	tests := []struct {
		name  string
		start int
		count int
		want  int
	}{
		{"to start of previous word", 14, 1, 12},
		{"across newline", 12, 1, 6},
		{"from middle of word", 8, 1, 6},
		{"from word start", 6, 1, 0},
		{"clamps at buffer start", 2, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordBackward(r, New(tt.start), tt.count)
			if got.Offset != tt.want {
				t.Errorf("offset = %d, want %d", got.Offset, tt.want)
			}
		})
	}
}

func TestHalfScreenMotion(t *testing.T) {
	r := rope.FromString("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")

	c := HalfScreenDown(r, New(0), 10)
	if pos := c.Position(r); pos.Line != 5 {
		t.Errorf("half screen down from line 0 with height 10 landed on line %d, want 5", pos.Line)
	}

	c = HalfScreenUp(r, c, 6)
	if pos := c.Position(r); pos.Line != 2 {
		t.Errorf("half screen up with height 6 landed on line %d, want 2", pos.Line)
	}

	// Tiny viewports still move at least one line.
	c = HalfScreenDown(r, New(0), 1)
	if pos := c.Position(r); pos.Line != 1 {
		t.Errorf("half screen down with height 1 landed on line %d, want 1", pos.Line)
	}
}

func TestWordMotionOnEmptyBuffer(t *testing.T) {
	r := rope.New()
	if got := WordForward(r, New(0), 1); got.Offset != 0 {
		t.Errorf("WordForward on empty buffer = %d, want 0", got.Offset)
	}
	if got := WordBackward(r, New(0), 1); got.Offset != 0 {
		t.Errorf("WordBackward on empty buffer = %d, want 0", got.Offset)
	}
}
