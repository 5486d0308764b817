package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height() = %d, expected 12", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("new screen should hold default spaces, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(4, 2, '@', ColorBrightYellow)
	cell := s.GetCell(4, 2)
	if cell.Rune != '@' {
		t.Errorf("GetCell(4, 2).Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(4, 2).Color = %d, expected ColorBrightYellow", cell.Color)
	}

	// Plain Set writes in the default color
	s.Set(4, 2, 'E')
	cell = s.GetCell(4, 2)
	if cell.Rune != 'E' || cell.Color != ColorDefault {
		t.Errorf("Set should reset the color, got %+v", cell)
	}

	// Out of bounds writes are silent
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.SetCell(99, 0, 'x', ColorBrightRed)
	s.SetCell(0, 99, 'x', ColorBrightRed)

	// Out of bounds reads return a default space
	if s.Get(-1, 0) != ' ' || s.Get(99, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if c := s.GetCell(0, 99); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell should return a default cell, got %+v", c)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRectColored(NewRect(0, 0, 6, 4), '#', ColorGreen)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear should reset cells, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 4)
	s.DrawTextColored(3, 1, "Day 2", ColorBrightCyan)

	if got := s.Row(1)[3:8]; got != "Day 2" {
		t.Errorf("row 1 = %q, expected %q", got, "Day 2")
	}
	for i := 0; i < 5; i++ {
		if c := s.GetCell(3+i, 1).Color; c != ColorBrightCyan {
			t.Errorf("cell %d color = %d, expected ColorBrightCyan", i, c)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "coins")
	if s.Get(18, 0) != 'c' || s.Get(19, 0) != 'o' {
		t.Error("text should clip at the right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 4)
	s.DrawTextCentered(2, "SHOP")

	x := (20 - 4) / 2
	if s.Get(x, 2) != 'S' || s.Get(x+3, 2) != 'P' {
		t.Error("centered text not at the expected position")
	}
}

func TestScreenDrawRectColored(t *testing.T) {
	s := NewScreen(12, 8)
	station := NewRect(2, 2, 4, 3)
	s.DrawRectColored(station, '.', ColorYellow)

	for y := station.Y; y < station.Bottom(); y++ {
		for x := station.X; x < station.Right(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '.' || cell.Color != ColorYellow {
				t.Fatalf("expected colored fill at (%d, %d), got %+v", x, y, cell)
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(6, 5) != ' ' {
		t.Error("fill should not spill outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(12, 8)
	r := NewRect(1, 1, 6, 4)
	s.DrawBox(r)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{6, 1, '┐'},
		{1, 4, '└'},
		{6, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	for x := 2; x < 6; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge broken at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(6, y) != '│' {
			t.Errorf("vertical edge broken at y=%d", y)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(12, 8)

	s.DrawHLine(1, 3, 6, '─', ColorGray)
	for x := 1; x < 7; x++ {
		if c := s.GetCell(x, 3); c.Rune != '─' || c.Color != ColorGray {
			t.Errorf("DrawHLine wrong at x=%d: %+v", x, c)
		}
	}
	if s.Get(0, 3) != ' ' || s.Get(7, 3) != ' ' {
		t.Error("line should not extend past its length")
	}

	// Clipped at the right edge without wrapping to the next row
	s.DrawHLine(10, 5, 5, '=', ColorDefault)
	if s.Get(11, 5) != '=' {
		t.Error("clipped line should still draw inside the screen")
	}
	if s.Get(0, 6) != ' ' {
		t.Error("clipped line must not wrap to the next row")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "@..o")
	s.DrawTextColored(0, 1, "####", ColorGreen)
	s.DrawText(0, 2, "....")

	want := "@..o\n####\n...."
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "Day 1", ColorBrightCyan)
	s.DrawText(0, 4, "fence")

	s.Resize(7, 3)
	if s.Width() != 7 || s.Height() != 3 {
		t.Errorf("after resize dimensions should be 7x3, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Day 1") {
		t.Errorf("shrinking should keep top-left content, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorBrightCyan {
		t.Error("shrinking should keep cell colors")
	}

	s.Resize(14, 6)
	if !strings.HasPrefix(s.Row(0), "Day 1") {
		t.Errorf("growing should keep old content, row 0 = %q", s.Row(0))
	}
	if s.Get(13, 5) != ' ' {
		t.Error("grown area should be blank")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawText(0, 2, "Wool")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Wool") {
		t.Errorf("Row(2) should start with 'Wool', got %q", row)
	}
	if len([]rune(row)) != 8 {
		t.Errorf("row should be 8 runes wide, got %d", len([]rune(row)))
	}

	if s.Row(-1) != strings.Repeat(" ", 8) {
		t.Error("out of bounds row should be spaces")
	}
}
