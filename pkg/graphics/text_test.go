package graphics

import (
	"strings"
	"testing"
)

// fixedMeasurer gives every rune a width of 10 so wrap positions are easy to
// predict.
type fixedMeasurer struct{}

func (fixedMeasurer) LineMetrics(TextStyle) (float64, float64, float64, error) {
	return 8, 2, 0, nil
}

func (fixedMeasurer) TextWidth(text string, _ TextStyle) (float64, error) {
	return float64(len([]rune(text))) * 10, nil
}

func TestLayoutTextSingleLine(t *testing.T) {
	tl, err := LayoutText("hello", TextStyle{FontSize: 16}, fixedMeasurer{})
	if err != nil {
		t.Fatalf("LayoutText: %v", err)
	}
	if len(tl.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(tl.Lines))
	}
	if tl.Size.Width != 50 || tl.Size.Height != 10 {
		t.Errorf("size = %+v, want 50x10", tl.Size)
	}
}

func TestLayoutTextWrapsAtWhitespace(t *testing.T) {
	tl, err := LayoutTextWithConstraints("aa bb cc", TextStyle{FontSize: 16}, fixedMeasurer{}, 55)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	var lines []string
	for _, line := range tl.Lines {
		lines = append(lines, line.Text)
	}
	want := "aa bb|cc"
	if got := strings.Join(lines, "|"); got != want {
		t.Errorf("wrapped lines = %q, want %q", got, want)
	}
}

func TestLayoutTextBreaksLongWordMidWord(t *testing.T) {
	tl, err := LayoutTextWithConstraints("abcdefgh", TextStyle{FontSize: 16}, fixedMeasurer{}, 30)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(tl.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(tl.Lines))
	}
	if tl.Lines[0].Text != "abc" {
		t.Errorf("first line = %q, want %q", tl.Lines[0].Text, "abc")
	}
}

func TestLayoutTextMinimumOneRunePerLine(t *testing.T) {
	tl, err := LayoutTextWithConstraints("abc", TextStyle{FontSize: 16}, fixedMeasurer{}, 5)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	// Narrower than any rune: one rune per line, never an infinite loop.
	if len(tl.Lines) != 3 {
		t.Errorf("got %d lines, want 3", len(tl.Lines))
	}
}

func TestLayoutTextEmptyStillHasLineHeight(t *testing.T) {
	tl, err := LayoutText("", TextStyle{FontSize: 16}, fixedMeasurer{})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if tl.Size.Height != 10 {
		t.Errorf("empty text height = %g, want one line height", tl.Size.Height)
	}
	if tl.Size.Width != 0 {
		t.Errorf("empty text width = %g, want 0", tl.Size.Width)
	}
}

func TestLayoutTextDeterministic(t *testing.T) {
	const text = "the quick brown fox jumps over the lazy dog"
	style := TextStyle{FontSize: 16}
	first, err := LayoutTextWithConstraints(text, style, DefaultMeasurer(), 120)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := LayoutTextWithConstraints(text, style, DefaultMeasurer(), 120)
		if err != nil {
			t.Fatalf("layout: %v", err)
		}
		if again.Size != first.Size || len(again.Lines) != len(first.Lines) {
			t.Fatalf("layout varied between identical runs")
		}
	}
}

func TestDisplayListReplay(t *testing.T) {
	var rec Recorder
	canvas := rec.BeginRecording(Size{Width: 100, Height: 100})
	canvas.Save()
	canvas.Translate(10, 10)
	canvas.DrawRect(RectFromLTWH(0, 0, 50, 50), Paint{Color: ColorRed})
	canvas.Restore()
	list := rec.EndRecording()

	if list.Len() != 4 {
		t.Fatalf("recorded %d ops, want 4", list.Len())
	}

	var replay Recorder
	target := replay.BeginRecording(list.Size())
	list.Replay(target)
	if got := replay.EndRecording().Len(); got != list.Len() {
		t.Errorf("replay produced %d ops, want %d", got, list.Len())
	}
}
