package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lumina-ui/lumina/pkg/graphics"
)

func TestResolveOverridesWin(t *testing.T) {
	theme := DefaultLightTheme()
	inherited := theme.BaseStyle()

	overrides := Style{
		Background: ColorPtr(graphics.ColorRed),
		FontSize:   FloatPtr(24),
	}
	got := Resolve(overrides, inherited)

	if got.Background != graphics.ColorRed {
		t.Errorf("Background = %v, want override", got.Background)
	}
	if got.FontSize != 24 {
		t.Errorf("FontSize = %g, want 24", got.FontSize)
	}
	// Untouched fields keep the inherited values.
	if got.Foreground != inherited.Foreground {
		t.Errorf("Foreground = %v, want inherited %v", got.Foreground, inherited.Foreground)
	}
}

func TestResolveIsPure(t *testing.T) {
	theme := DefaultLightTheme()
	overrides := Style{FontSize: FloatPtr(20)}
	first := Resolve(overrides, theme.BaseStyle())
	second := Resolve(overrides, theme.BaseStyle())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Resolve not deterministic (-first +second):\n%s", diff)
	}
}

func TestChildBaseInheritsTextNotBox(t *testing.T) {
	theme := DefaultLightTheme()
	parent := Resolve(Style{
		Background: ColorPtr(graphics.ColorBlue),
		Foreground: ColorPtr(graphics.ColorRed),
		FontSize:   FloatPtr(30),
		Padding:    InsetsPtr(graphics.EdgeInsetsAll(12)),
	}, theme.BaseStyle())

	child := parent.ChildBase(theme)

	if child.Foreground != graphics.ColorRed || child.FontSize != 30 {
		t.Errorf("text attributes did not flow down: %+v", child)
	}
	if child.Background != graphics.ColorTransparent {
		t.Errorf("Background = %v, box attributes must reset", child.Background)
	}
	if child.Padding != (graphics.EdgeInsets{}) {
		t.Errorf("Padding = %+v, box attributes must reset", child.Padding)
	}
}

func TestStyleIsZero(t *testing.T) {
	if !(Style{}).IsZero() {
		t.Error("empty style not zero")
	}
	if (Style{FontSize: FloatPtr(10)}).IsZero() {
		t.Error("style with override reported zero")
	}
}

func TestButtonThemeDerivedFromPrimary(t *testing.T) {
	theme := DefaultLightTheme()
	button := theme.ButtonThemeOf()
	if button.Background != theme.ColorScheme.Primary {
		t.Errorf("derived button background = %v, want primary", button.Background)
	}
	if button.Foreground != theme.ColorScheme.OnPrimary {
		t.Errorf("derived button foreground = %v, want on-primary", button.Foreground)
	}

	custom := ButtonThemeData{Background: graphics.ColorBlack}
	theme.ButtonTheme = &custom
	if got := theme.ButtonThemeOf(); got.Background != graphics.ColorBlack {
		t.Errorf("explicit button theme ignored: %+v", got)
	}
}
