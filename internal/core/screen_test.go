package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat("      \n", 2) + "      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(3, 2, 'X')
	s.SetColored(4, 2, '█', ColorCyan)

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"plain", 3, 2, Cell{Rune: 'X'}},
		{"colored", 4, 2, Cell{Rune: '█', Color: ColorCyan}},
		{"untouched", 0, 0, blank},
		{"left of screen", -1, 2, blank},
		{"below screen", 3, 5, blank},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.GetCell(tc.x, tc.y); got != tc.want {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}
}

func TestScreenOutOfBoundsWritesAreDropped(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(-1, 0, 'a')
	s.Set(4, 0, 'b')
	s.Set(0, 2, 'c')

	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q, expected a blank screen", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawTextColored(0, 0, "abcde", ColorRed)
	s.Clear()

	for y := range 2 {
		for x := range 5 {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("after Clear (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "Hi", " Hi     "},
		{"clipped right", 6, "Hello", "      He"},
		{"clipped left", -2, "Hello", "llo     "},
		{"wide runes count once", 0, "██[]", "██[]    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(1, 0, "ab", ColorRed)

	for x, want := range []Color{ColorDefault, ColorRed, ColorRed, ColorDefault} {
		if got := s.GetCell(x, 0).Color; got != want {
			t.Errorf("color at %d = %d, expected %d", x, got, want)
		}
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.FillRect(NewRect(1, 1, 3, 2), '#')

	want := []string{
		"     ",
		" ### ",
		" ### ",
		"     ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after grow String() = %q", got)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.Height() != 2 {
		t.Errorf("negative width should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blank row", got)
	}
}
