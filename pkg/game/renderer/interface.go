package renderer

import "io"

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StylePlayer
)

// Frame is what a text front end shows after each command
type Frame struct {
	Title     string
	Room      string
	RoomImage string
	Inventory []string
	Messages  []string
}

// Renderer defines the interface for text rendering backends
type Renderer interface {
	// Init initializes the renderer (colors etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws the room header, status bar and message pane
	RenderFrame(w io.Writer, f Frame)

	// RenderMap draws a map scene as text
	RenderMap(scene *Scene) string

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return StripMarkup(sprintf(msg, args...))
}
