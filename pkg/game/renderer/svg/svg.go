// Package svg draws map scenes as SVG documents.
package svg

import (
	"bytes"
	"html"
	"io"

	svgo "github.com/ajstarks/svgo"

	"dungeon/pkg/game/renderer"
)

const (
	styleBackground = "fill:#16161d"
	styleTitle      = "text-anchor:middle;font-family:monospace;font-size:16px;fill:#e6e6e6"
	styleBandLabel  = "font-family:monospace;font-size:12px;fill:#8c8c99"
	styleLabel      = "text-anchor:middle;font-family:monospace;font-size:10px;fill:#c8c8d0"
	styleGlyph      = "text-anchor:middle;dominant-baseline:central;font-family:monospace;font-size:20px;fill:#e6e6e6"

	styleVisited     = "fill:#34506b;stroke:#6f93b5;stroke-width:2"
	stylePlaceholder = "fill:none;stroke:#5c5c66;stroke-width:2;stroke-dasharray:4 3"
	styleCurrent     = "fill:#34506b;stroke:#f2c14e;stroke-width:4"

	styleTwoWay   = "stroke:#9aa4b1;stroke-width:3"
	styleOneWay   = "stroke:#9aa4b1;stroke-width:2;stroke-dasharray:6 4"
	styleVertical = "stroke:#7fb069;stroke-width:2;stroke-dasharray:2 3"
)

// errWriter keeps the first write error; svgo does not report them
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}

// Render writes scene to w as a standalone SVG document
func Render(w io.Writer, scene *renderer.Scene) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)

	canvas.Start(scene.Width, scene.Height)
	canvas.Rect(0, 0, scene.Width, scene.Height, styleBackground)

	if scene.Title != "" {
		canvas.Title(scene.Title)
		canvas.Text(scene.Width/2, scene.Margin+16, scene.Title, styleTitle)
	}

	for _, b := range scene.Bands {
		if b.Label != "" {
			canvas.Text(scene.Margin, b.Y+12, b.Label, styleBandLabel)
		}
	}

	canvas.Group(`class="connectors"`)
	for _, c := range scene.Connectors {
		canvas.Line(c.X1, c.Y1, c.X2, c.Y2, connectorStyle(c))
	}
	canvas.Gend()

	for _, r := range scene.Rooms {
		drawRoom(canvas, r)
	}

	canvas.End()
	return ew.err
}

// RenderBytes returns the SVG document for scene
func RenderBytes(scene *renderer.Scene) []byte {
	var buf bytes.Buffer
	Render(&buf, scene)
	return buf.Bytes()
}

func drawRoom(canvas *svgo.SVG, r renderer.RoomGlyph) {
	canvas.Group(`class="` + roomClass(r) + `"`)
	canvas.Title(r.Label)

	canvas.Roundrect(r.X, r.Y, r.Size, r.Size, 6, 6, roomStyle(r))

	inset := r.Size / 6
	if r.Icon != "" {
		canvas.Image(r.X+inset, r.Y+inset, r.Size-2*inset, r.Size-2*inset, html.EscapeString(r.Icon))
	} else {
		canvas.Text(r.CenterX(), r.CenterY(), r.Glyph, styleGlyph)
	}

	canvas.Text(r.CenterX(), r.Y+r.Size+12, r.Label, styleLabel)
	canvas.Gend()
}

func roomClass(r renderer.RoomGlyph) string {
	switch {
	case r.Current:
		return "room current"
	case r.Placeholder:
		return "room placeholder"
	default:
		return "room visited"
	}
}

func roomStyle(r renderer.RoomGlyph) string {
	switch {
	case r.Current:
		return styleCurrent
	case r.Placeholder || !r.Visited:
		return stylePlaceholder
	default:
		return styleVisited
	}
}

func connectorStyle(c renderer.Segment) string {
	switch {
	case c.Vertical:
		return styleVertical
	case c.TwoWay:
		return styleTwoWay
	default:
		return styleOneWay
	}
}
