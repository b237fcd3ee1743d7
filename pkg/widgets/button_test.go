package widgets

import (
	"testing"

	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/style"
)

func TestButtonClickFiresExactlyOnce(t *testing.T) {
	clicks := 0
	button := Button("btn", "OK", func() { clicks++ })
	h := pumpSized(t, button, graphics.Size{Width: 200, Height: 100})

	h.Tap("btn")

	if clicks != 1 {
		t.Errorf("clicks = %d, want exactly 1 per press/release pair", clicks)
	}
}

func TestButtonNoClickWhenReleasedOutside(t *testing.T) {
	clicks := 0
	row := Row("row",
		Button("btn", "OK", func() { clicks++ }),
		Spacer("gap", graphics.Size{Width: 100, Height: 100}),
	)
	h := pumpSized(t, row, graphics.Size{Width: 400, Height: 100})

	center := h.FindByID("btn").AbsoluteFrame().Center()
	h.PressAt(center)
	h.ReleaseAt(graphics.Offset{X: 390, Y: 90})

	if clicks != 0 {
		t.Errorf("clicks = %d after drag-off release, want 0", clicks)
	}

	// The widget must leave the pressed state even without a click.
	if h.FindByID("btn").Pressed() {
		t.Error("button stuck in pressed state")
	}
}

func TestButtonNoClickWhenPressedOutside(t *testing.T) {
	clicks := 0
	row := Row("row",
		Button("btn", "OK", func() { clicks++ }),
		Spacer("gap", graphics.Size{Width: 100, Height: 100}),
	)
	h := pumpSized(t, row, graphics.Size{Width: 400, Height: 100})

	h.PressAt(graphics.Offset{X: 390, Y: 90})
	h.ReleaseAt(h.FindByID("btn").AbsoluteFrame().Center())

	if clicks != 0 {
		t.Errorf("clicks = %d for press outside, release inside, want 0", clicks)
	}
}

func TestButtonHoverAndPressedFills(t *testing.T) {
	row := Row("row", Button("btn", "OK", nil))
	h := pumpSized(t, row, graphics.Size{Width: 400, Height: 100})
	theme := h.Shell().Theme()
	bt := theme.ButtonThemeOf()
	center := h.FindByID("btn").AbsoluteFrame().Center()

	h.Canvas().Reset()
	h.MoveTo(center)
	if !h.Canvas().FillsWith(bt.HoverBackground) {
		t.Error("hovered button not painted with hover background")
	}

	h.Canvas().Reset()
	h.PressAt(center)
	if !h.Canvas().FillsWith(bt.PressedBackground) {
		t.Error("pressed button not painted with pressed background")
	}

	h.ReleaseAt(center)
	h.MoveTo(graphics.Offset{X: 390, Y: 90})
	if h.FindByID("btn").Hovered() {
		t.Error("button still hovered after pointer left")
	}
}

func TestButtonLabelDrawn(t *testing.T) {
	button := Button("btn", "Submit", nil)
	h := pumpSized(t, button, graphics.Size{Width: 200, Height: 100})
	if !h.Canvas().HasText("Submit") {
		t.Error("button label never drawn")
	}
}

func TestButtonThemeFromFile(t *testing.T) {
	theme, err := style.ParseTheme([]byte("version: v1.0.0\nbutton:\n  background: \"#222222\"\n"))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	button := Button("btn", "OK", nil)
	h := pumpSized(t, button, graphics.Size{Width: 200, Height: 100})

	h.Canvas().Reset()
	h.SetTheme(theme)
	h.Pump()

	if !h.Canvas().FillsWith(graphics.RGB(0x22, 0x22, 0x22)) {
		t.Error("button not repainted with the loaded theme background")
	}
}
