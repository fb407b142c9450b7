package rope

import (
	"math/rand"
	"strings"
	"testing"
	"testing/quick"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("new rope should have length 0, got %d", r.Len())
	}
	if !r.IsEmpty() {
		t.Error("new rope should be empty")
	}
	if r.String() != "" {
		t.Errorf("new rope String() should be empty, got %q", r.String())
	}
	if r.LineCount() != 1 {
		t.Errorf("new rope should have 1 line, got %d", r.LineCount())
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short string", "hello"},
		{"with newline", "hello\nworld"},
		{"multiple newlines", "a\nb\nc\nd"},
		{"trailing newline", "hello\n"},
		{"only newlines", "\n\n\n"},
		{"unicode", "hello 世界 🌍"},
		{"long string", strings.Repeat("abcdefghij", 100)},
		{"very long string", strings.Repeat("x", 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if r.String() != tt.input {
				t.Errorf("String() = %q, want %q", r.String(), tt.input)
			}
			if want := len([]rune(tt.input)); r.Len() != want {
				t.Errorf("Len() = %d, want %d", r.Len(), want)
			}
			if want := strings.Count(tt.input, "\n") + 1; r.LineCount() != want {
				t.Errorf("LineCount() = %d, want %d", r.LineCount(), want)
			}
			r.Validate()
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		offset   int
		text     string
		expected string
	}{
		{"insert at start", "world", 0, "hello ", "hello world"},
		{"insert at end", "hello", 5, " world", "hello world"},
		{"insert in middle", "helloworld", 5, " ", "hello world"},
		{"insert into empty", "", 0, "hello", "hello"},
		{"insert empty string", "hello", 3, "", "hello"},
		{"insert newline", "ab", 1, "\n", "a\nb"},
		{"insert unicode", "hello", 5, " 世界", "hello 世界"},
		{"insert between unicode", "世界", 1, "!", "世!界"},
		{"offset clamps high", "hello", 99, "!", "hello!"},
		{"offset clamps low", "hello", -3, "!", "!hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.initial).Insert(tt.offset, tt.text)
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
			r.Validate()
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		start    int
		end      int
		expected string
	}{
		{"delete from start", "hello world", 0, 6, "world"},
		{"delete from end", "hello world", 5, 11, "hello"},
		{"delete middle", "hello world", 5, 6, "helloworld"},
		{"delete all", "hello", 0, 5, ""},
		{"delete nothing", "hello", 3, 3, "hello"},
		{"delete newline", "a\nb", 1, 2, "ab"},
		{"delete unicode", "a世b", 1, 2, "ab"},
		{"end clamps", "hello", 3, 99, "hel"},
		{"inverted range is noop", "hello", 4, 2, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.initial).Delete(tt.start, tt.end)
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
			r.Validate()
		})
	}
}

func TestSlice(t *testing.T) {
	r := FromString("hello\nworld\nfoo")

	tests := []struct {
		name     string
		start    int
		end      int
		expected string
	}{
		{"first word", 0, 5, "hello"},
		{"across newline", 3, 8, "lo\nwo"},
		{"whole text", 0, 15, "hello\nworld\nfoo"},
		{"empty", 4, 4, ""},
		{"clamped end", 12, 99, "foo"},
		{"clamped start", -5, 5, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Slice(tt.start, tt.end); got != tt.expected {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestLineAddressing(t *testing.T) {
	r := FromString("First line\nSecond line\n\nFourth line\n")

	if got := r.LineCount(); got != 5 {
		t.Fatalf("LineCount() = %d, want 5", got)
	}

	starts := []int{0, 11, 23, 24, 36}
	for line, want := range starts {
		if got := r.LineStartOffset(line); got != want {
			t.Errorf("LineStartOffset(%d) = %d, want %d", line, got, want)
		}
	}

	texts := []string{"First line", "Second line", "", "Fourth line", ""}
	for line, want := range texts {
		if got := r.LineText(line); got != want {
			t.Errorf("LineText(%d) = %q, want %q", line, got, want)
		}
	}

	// Lines past the end clamp to the last line.
	if got := r.LineStartOffset(99); got != 36 {
		t.Errorf("LineStartOffset(99) = %d, want 36", got)
	}
	if got := r.LineEndOffset(99); got != r.Len() {
		t.Errorf("LineEndOffset(99) = %d, want %d", got, r.Len())
	}
}

func TestOffsetPositionDuality(t *testing.T) {
	inputs := []string{
		"hello world\nfoo",
		"\n\n\n",
		"a",
		"one\ntwo\nthree\n",
		"世界\nこんにちは\n",
	}

	for _, input := range inputs {
		r := FromString(input)
		for o := 0; o <= r.Len(); o++ {
			pos := r.OffsetToPosition(o)
			back := r.PositionToOffset(pos)
			if back != o {
				t.Errorf("input %q: PositionToOffset(OffsetToPosition(%d)) = %d (pos %+v)", input, o, back, pos)
			}
		}
	}
}

func TestPositionClamping(t *testing.T) {
	r := FromString("hello\nhi")

	tests := []struct {
		name string
		pos  Position
		want int
	}{
		{"column past line end", Position{Line: 0, Column: 99}, 5},
		{"line past buffer end", Position{Line: 99, Column: 0}, 6},
		{"both past end", Position{Line: 99, Column: 99}, 8},
		{"negative line", Position{Line: -1, Column: 2}, 2},
		{"negative column", Position{Line: 1, Column: -4}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.PositionToOffset(tt.pos); got != tt.want {
				t.Errorf("PositionToOffset(%+v) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestRuneAt(t *testing.T) {
	r := FromString("a世\nb")

	want := []rune{'a', '世', '\n', 'b'}
	for i, wr := range want {
		got, ok := r.RuneAt(i)
		if !ok || got != wr {
			t.Errorf("RuneAt(%d) = %q, %v, want %q", i, got, ok, wr)
		}
	}
	if _, ok := r.RuneAt(4); ok {
		t.Error("RuneAt past end should return false")
	}
	if _, ok := r.RuneAt(-1); ok {
		t.Error("RuneAt(-1) should return false")
	}
}

// TestAgainstStringModel applies a random operation sequence to both a rope
// and a plain string and verifies they never diverge.
func TestAgainstStringModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abc \nxyz世")

	for trial := 0; trial < 20; trial++ {
		r := New()
		model := []rune{}

		for op := 0; op < 200; op++ {
			if rng.Intn(3) < 2 || len(model) == 0 {
				// Insert 1-8 runes at a random offset.
				n := 1 + rng.Intn(8)
				text := make([]rune, n)
				for i := range text {
					text[i] = alphabet[rng.Intn(len(alphabet))]
				}
				at := rng.Intn(len(model) + 1)
				r = r.Insert(at, string(text))
				model = append(model[:at], append(text, model[at:]...)...)
			} else {
				start := rng.Intn(len(model))
				end := start + 1 + rng.Intn(4)
				if end > len(model) {
					end = len(model)
				}
				r = r.Delete(start, end)
				model = append(model[:start], model[end:]...)
			}

			if got, want := r.String(), string(model); got != want {
				t.Fatalf("trial %d op %d: rope %q, model %q", trial, op, got, want)
			}
			if r.Len() != len(model) {
				t.Fatalf("trial %d op %d: Len() = %d, want %d", trial, op, r.Len(), len(model))
			}
			r.Validate()
		}
	}
}

func TestSliceQuick(t *testing.T) {
	f := func(text string, start, end uint8) bool {
		r := FromString(text)
		runes := []rune(text)
		s, e := int(start), int(end)
		if s > len(runes) {
			s = len(runes)
		}
		if e > len(runes) {
			e = len(runes)
		}
		want := ""
		if s < e {
			want = string(runes[s:e])
		}
		return r.Slice(int(start), int(end)) == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestTreeStaysShallow(t *testing.T) {
	// Repeated appends must not degenerate into a linked list.
	r := New()
	for i := 0; i < 2000; i++ {
		r = r.Insert(r.Len(), "chunk of text\n")
	}
	if h := r.Height(); h > 12 {
		t.Errorf("tree height %d after 2000 appends, want something modest", h)
	}
	r.Validate()
}
