package renderer

import (
	"testing"
	"unicode/utf8"

	"github.com/gookit/color"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"You take the ITEM{sword}.", "You take the sword."},
		{"Type ACTION{help} to see what you can do.", "Type help to see what you can do."},
		{"ROOM{Smuggler's Den}", "Smuggler's Den"},
		{"Which do you mean: ITEM{rusty key}, ITEM{silver key}?", "Which do you mean: rusty key, silver key?"},
		{"no markup {here}", "no markup {here}"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripMarkup(tt.in); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatString_WithoutColor(t *testing.T) {
	prev := color.Enable
	SetColor(false)
	defer SetColor(prev)

	got := FormatString("You take the ITEM{%s} in ROOM{%s}.", "lamp", "Hall")
	if got != "You take the lamp in Hall." {
		t.Errorf("FormatString() = %q", got)
	}
}

func TestMarkup_LeavesPercentAlone(t *testing.T) {
	prev := color.Enable
	SetColor(false)
	defer SetColor(prev)

	if got := Markup("100% ITEM{gold}"); got != "100% gold" {
		t.Errorf("Markup() = %q, want 100%% gold", got)
	}
}

func TestMarkup_ActionFirstLetterIsARune(t *testing.T) {
	prevEnable := color.Enable
	prevLevel := color.ForceOpenColor()
	SetColor(true)
	defer func() {
		color.ForceSetColorLevel(prevLevel)
		SetColor(prevEnable)
	}()

	got := Markup("ACTION{éast}")
	want := ColorActionShort.Sprint("é") + ColorAction.Sprint("ast")
	if got != want {
		t.Errorf("Markup(ACTION{éast}) = %q, want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Errorf("Markup(ACTION{éast}) = %q, want valid UTF-8", got)
	}
}

func TestRule_Width(t *testing.T) {
	prev := color.Enable
	SetColor(false)
	defer SetColor(prev)

	tests := []struct {
		width int
		label string
	}{
		{20, "Messages"},
		{20, "Schätze"},
		{31, "地図"},
	}
	for _, tt := range tests {
		got := Rule(tt.width, tt.label)
		if n := utf8.RuneCountInString(got); n != tt.width {
			t.Errorf("Rule(%d, %q) = %q, %d runes, want %d", tt.width, tt.label, got, n, tt.width)
		}
	}
}

func TestRegistry_NoRenderer(t *testing.T) {
	prev := Current
	SetRenderer(nil)
	defer SetRenderer(prev)

	if got := FormatText("Take the ITEM{%s}", "lamp"); got != "Take the lamp" {
		t.Errorf("FormatText() = %q, want %q", got, "Take the lamp")
	}
	if got := StyleText("lamp", StyleItem); got != "lamp" {
		t.Errorf("StyleText() = %q, want lamp", got)
	}
}
