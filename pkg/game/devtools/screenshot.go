package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/renderer"
	"backrooms/pkg/game/state"
	"backrooms/pkg/game/theme"
)

// RenderLayoutHTML returns a standalone HTML page showing the whole layout
func RenderLayoutHTML(l *state.Layout) string {
	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Backrooms - Layout</title>
    <style>
        body {
            background-color: #1e1b10;
            color: #e8dca0;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #f4e27a;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .meta { color: #a89f6a; margin-bottom: 20px; }
        .map-container {
            background-color: #2a2614;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 10px;
        }
        .wall { color: #4a4428; }
        .floor { color: #c9b968; }
        .room { color: #dccd7a; }
        .decoration { color: #8f6d3a; }
        .column { color: #6e6538; font-weight: bold; }
        .spawn { color: #00ff00; font-weight: bold; }
        .exit { color: #ff4444; font-weight: bold; }
        .light { color: #ffffff; font-weight: bold; }
        .light-dead { color: #777; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #4a4428;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	// Header
	page.WriteString(fmt.Sprintf(`    <div class="header">Seed %d</div>`+"\n", l.Seed))
	page.WriteString(fmt.Sprintf(`    <div class="meta">%s / %s, exit %s at %d, %d rooms, %d lights, path %d</div>`+"\n",
		html.EscapeString(theme.ModeLabel(l.Mode)), html.EscapeString(theme.PatternLabel(l.Pattern)),
		html.EscapeString(theme.SideLabel(l.Exit.Side)), l.Exit.Offset, len(l.Rooms), len(l.Lights), l.PathLength))

	// Map container
	page.WriteString(`    <div class="map-container">` + "\n")
	scene := renderer.NewScene(l)
	for z := 0; z < l.Grid.Height(); z++ {
		page.WriteString(`        <div class="map-row">`)
		for x := 0; x < l.Grid.Width(); x++ {
			icon, class := cellHTMLInfo(scene, x, z)
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	// Messages
	if len(l.Messages) > 0 {
		page.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range l.Messages {
			page.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", html.EscapeString(msg)))
		}
		page.WriteString(`    </div>` + "\n")
	}

	page.WriteString(`</body>
</html>
`)
	return page.String()
}

// SaveLayoutHTML writes RenderLayoutHTML output to a timestamped file in dir
// and returns its path
func SaveLayoutHTML(l *state.Layout, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("layout-%d-%s.html", l.Seed, timestamp))

	if err := os.WriteFile(filename, []byte(RenderLayoutHTML(l)), 0644); err != nil {
		return "", fmt.Errorf("write html snapshot: %w", err)
	}
	return filename, nil
}

// cellHTMLInfo returns the icon and CSS class for a cell
func cellHTMLInfo(scene *renderer.Scene, x, z int) (string, string) {
	switch scene.Kind(x, z) {
	case renderer.KindSpawn:
		return "@", "spawn"
	case renderer.KindExit:
		return "△", "exit"
	case renderer.KindLight:
		return "✦", "light"
	case renderer.KindDeadLight:
		return "✧", "light-dead"
	case renderer.KindColumn:
		return "■", "column"
	case renderer.KindDecoration:
		return "♣", "decoration"
	case renderer.KindWall:
		return "▒", "wall"
	case renderer.KindRoomFloor:
		room, _ := scene.Room(x, z)
		return floorIconHTML(room.Type), "room"
	case renderer.KindFloor:
		return "·", "floor"
	default:
		return " ", "wall"
	}
}

// floorIconHTML returns the floor icon for a room type
func floorIconHTML(t entities.RoomType) string {
	switch t {
	case entities.RoomOffice:
		return "▫"
	case entities.RoomHallway:
		return "░"
	case entities.RoomStorage:
		return "□"
	case entities.RoomAtrium:
		return "◦"
	case entities.RoomUtility:
		return "◇"
	default:
		return "·"
	}
}
