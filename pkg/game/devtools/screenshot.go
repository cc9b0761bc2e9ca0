package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dungeon/pkg/game/renderer"
	"dungeon/pkg/game/renderer/svg"
	"dungeon/pkg/game/session"
)

// MapHTML returns a self-contained page with the session's map and transcript
func MapHTML(s *session.Session) string {
	g := s.Graph()
	title := g.Scenario().Name
	_, scene := s.Map(session.MapOptions{Title: title})

	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(title) + ` - Map</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .room-name {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .messages p {
            white-space: pre-wrap;
            margin: 0 0 12px 0;
        }
    </style>
</head>
<body>
`)

	page.WriteString(`<div class="header">` + html.EscapeString(title) + "</div>\n")
	page.WriteString(`<div class="room-name">` + html.EscapeString(g.RoomName(s.CurrentRoom())) + "</div>\n")

	page.WriteString(`<div class="map-container">` + "\n")
	page.Write(svg.RenderBytes(scene))
	page.WriteString("</div>\n")

	page.WriteString(`<div class="messages">` + "\n")
	for _, msg := range s.Transcript() {
		page.WriteString("<p>" + html.EscapeString(renderer.StripMarkup(msg)) + "</p>\n")
	}
	page.WriteString("</div>\n</body>\n</html>\n")

	return page.String()
}

// SaveMapHTML writes MapHTML to path, or to a timestamped file when path is
// empty, and returns the absolute path written.
func SaveMapHTML(s *session.Session, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("map-%s.html", time.Now().Format("20060102-150405"))
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, []byte(MapHTML(s)), 0644); err != nil {
		return "", fmt.Errorf("write map page: %w", err)
	}
	return absPath, nil
}

// DefaultMapSVGFile is where SaveMapSVG writes when no path is given
const DefaultMapSVGFile = "map.svg"

// SaveMapSVG writes the session's map as an SVG document and returns the
// absolute path written.
func SaveMapSVG(s *session.Session, path string, opts session.MapOptions) (string, error) {
	if path == "" {
		path = DefaultMapSVGFile
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map svg: %w", err)
	}
	defer f.Close()

	_, scene := s.Map(opts)
	if err := svg.Render(f, scene); err != nil {
		return "", fmt.Errorf("write map svg: %w", err)
	}
	return absPath, nil
}
