package renderer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
)

// Map glyphs shared by the terminal and vector outputs
const (
	PlayerIcon      = "@"
	IconPlaceholder = "●"
	IconVoid        = " "
	IconLocked      = "▣"
	IconDark        = "▒"
)

var (
	ColorRoom        color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorItem        color.Style
	ColorSubtle      color.Style
	ColorPlayer      color.Style

	// NAME{operand}; operands may hold anything but braces
	regexpStringFunctions = regexp.MustCompile(`([A-Z_]+)\{([^{}]*)\}`)
)

func init() {
	InitColors()
}

// InitColors initializes the color styles
func InitColors() {
	ColorRoom = color.Style{color.FgBlue}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
}

// SetColor turns terminal colours on or off for every style in this package
func SetColor(enabled bool) {
	color.Enable = enabled
}

// FormatString formats a string and replaces ITEM{..}, ROOM{..} and
// ACTION{..} markup with terminal colours.
func FormatString(msg string, a ...any) string {
	return Markup(sprintf(msg, a...))
}

// Markup replaces markup in an already formatted message with terminal
// colours. Percent signs are left alone.
func Markup(msg string) string {
	return expand(msg, func(function, operand string) string {
		switch function {
		case "ITEM":
			return ColorItem.Sprint(operand)
		case "ROOM":
			return ColorRoom.Sprint(operand)
		case "ACTION":
			if operand == "" {
				return ""
			}
			_, size := utf8.DecodeRuneInString(operand)
			return ColorActionShort.Sprint(operand[:size]) + ColorAction.Sprint(operand[size:])
		case "DENIED":
			return ColorDenied.Sprint(operand)
		default:
			return operand
		}
	})
}

// StripMarkup removes markup and keeps the operands, for plain text output
func StripMarkup(msg string) string {
	return expand(msg, func(_, operand string) string {
		return operand
	})
}

func expand(msg string, fn func(function, operand string) string) string {
	return regexpStringFunctions.ReplaceAllStringFunc(msg, func(match string) string {
		sub := regexpStringFunctions.FindStringSubmatch(match)
		return fn(sub[1], sub[2])
	})
}

func sprintf(msg string, a ...any) string {
	if len(a) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, a...)
}

// Rule returns a horizontal line with a centred label
func Rule(width int, label string) string {
	label = " " + label + " "
	n := utf8.RuneCountInString(label)
	side := (width - n) / 2
	if side < 1 {
		side = 1
	}
	rest := width - side - n
	if rest < 1 {
		rest = 1
	}
	return ColorSubtle.Sprint(strings.Repeat("─", side) + label + strings.Repeat("─", rest))
}
