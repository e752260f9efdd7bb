package tui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"backrooms/pkg/engine/terminal"
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/renderer"
	"backrooms/pkg/game/state"
	"backrooms/pkg/game/theme"
)

// Icon constants for the terminal map
const (
	IconWall       = "▒"
	IconFloor      = "·"
	IconDecoration = "♣"
	IconColumn     = "■"
	IconSpawn      = "@"
	IconExit       = "△"
	IconLight      = "✦"
	IconDeadLight  = "✧"
	IconVoid       = " "
)

// Floor icons for the different room types
var roomFloorIcons = map[entities.RoomType]string{
	entities.RoomOffice:  "▫",
	entities.RoomHallway: "░",
	entities.RoomStorage: "□",
	entities.RoomAtrium:  "◦",
	entities.RoomUtility: "◇",
}

// Viewport margins and minimum sizes
const (
	ViewportMinRows    = 7
	ViewportMinCols    = 15
	ViewportSideMargin = 2
	// Lines needed outside the map:
	// - Headline + summary + blank (3)
	// - Legend + blank (2)
	// - Messages header + a handful of messages (6)
	ViewportTopMargin = 11
)

// MaxMessages is how many of the most recent layout messages are printed
const MaxMessages = 5

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	// Out receives the rendered frame; os.Stdout when nil
	Out io.Writer

	colorHeading    color.Style
	colorSubtle     color.Style
	colorWall       color.Style
	colorFloor      color.Style
	colorRoomFloor  color.Style
	colorDecoration color.Style
	colorColumn     color.Style
	colorSpawn      color.Style
	colorExit       color.Style
	colorLight      color.Style
	colorDeadLight  color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer colors. Color codes are switched off when
// stdout is not a terminal so dumps piped to files stay readable.
func (t *TUIRenderer) Init() {
	if t.Out == nil {
		t.Out = os.Stdout
		if !terminal.IsTerminal() {
			color.Enable = false
		}
	}

	t.colorHeading = color.Style{color.FgYellow, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgYellow}
	t.colorRoomFloor = color.Style{color.FgLightYellow}
	t.colorDecoration = color.Style{color.FgMagenta}
	t.colorColumn = color.Style{color.FgWhite, color.OpBold}
	t.colorSpawn = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExit = color.Style{color.FgRed, color.OpBold}
	t.colorLight = color.Style{color.FgLightWhite, color.OpBold}
	t.colorDeadLight = color.Style{color.FgDarkGray}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleRoomFloor:
		return t.colorRoomFloor.Sprint(text)
	case renderer.StyleDecoration:
		return t.colorDecoration.Sprint(text)
	case renderer.StyleColumn:
		return t.colorColumn.Sprint(text)
	case renderer.StyleSpawn:
		return t.colorSpawn.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleLight:
		return t.colorLight.Sprint(text)
	case renderer.StyleDeadLight:
		return t.colorDeadLight.Sprint(text)
	default:
		return text
	}
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - (ViewportSideMargin * 2)
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep both odd so the spawn point sits in the middle
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// RenderLayout prints one frame: a summary, the part of the map that fits the
// viewport, a legend of the kinds on screen and the latest messages.
func (t *TUIRenderer) RenderLayout(l *state.Layout) error {
	if l == nil || l.Grid == nil {
		return fmt.Errorf("no layout to render")
	}
	if t.Out == nil {
		t.Init()
	}

	var b strings.Builder
	scene := renderer.NewScene(l)
	rows, cols := t.GetViewportSize()

	fmt.Fprintf(&b, "%s %s\n", t.colorHeading.Sprint(theme.StatusGenerated()), t.colorSubtle.Sprintf("#%d", l.Seed))
	fmt.Fprintf(&b, "%dx%d  %s / %s  %s %d  rooms %d  corridors %d  lights %d  path %d\n\n",
		l.Grid.Width(), l.Grid.Height(),
		theme.ModeLabel(l.Mode), theme.PatternLabel(l.Pattern),
		theme.SideLabel(l.Exit.Side), l.Exit.Offset,
		len(l.Rooms), len(l.Corridors), len(l.Lights), l.PathLength)

	seen := t.printMap(&b, scene, rows, cols)
	b.WriteString("\n")
	t.printLegend(&b, seen)
	t.printMessages(&b, l.Messages)

	_, err := io.WriteString(t.Out, b.String())
	return err
}

// printMap writes the viewport window of the map and returns the set of cell
// kinds that appeared in it
func (t *TUIRenderer) printMap(b *strings.Builder, scene *renderer.Scene, rows, cols int) mapset.Set[renderer.CellKind] {
	seen := mapset.New[renderer.CellKind]()
	grid := scene.Layout.Grid
	x0, z0 := scene.Viewport(rows, cols)

	for z := z0; z < z0+rows && z < grid.Height(); z++ {
		for x := x0; x < x0+cols && x < grid.Width(); x++ {
			kind := scene.Kind(x, z)
			if kind == renderer.KindRoomFloor {
				seen.Put(renderer.KindFloor)
			} else {
				seen.Put(kind)
			}
			b.WriteString(t.StyleText(t.icon(scene, kind, x, z), kind.Style()))
		}
		b.WriteString("\n")
	}
	return seen
}

// icon returns the map icon for a classified cell. scene may be nil, in which
// case room floors use the plain floor icon.
func (t *TUIRenderer) icon(scene *renderer.Scene, kind renderer.CellKind, x, z int) string {
	switch kind {
	case renderer.KindWall:
		return IconWall
	case renderer.KindFloor:
		return IconFloor
	case renderer.KindRoomFloor:
		if scene == nil {
			return IconFloor
		}
		if room, ok := scene.Room(x, z); ok {
			if icon, ok := roomFloorIcons[room.Type]; ok {
				return icon
			}
		}
		return IconFloor
	case renderer.KindDecoration:
		return IconDecoration
	case renderer.KindColumn:
		return IconColumn
	case renderer.KindSpawn:
		return IconSpawn
	case renderer.KindExit:
		return IconExit
	case renderer.KindLight:
		return IconLight
	case renderer.KindDeadLight:
		return IconDeadLight
	default:
		return IconVoid
	}
}

// printLegend writes one entry per visible cell kind, in kind order
func (t *TUIRenderer) printLegend(b *strings.Builder, seen mapset.Set[renderer.CellKind]) {
	kinds := make([]renderer.CellKind, 0, seen.Size())
	seen.Each(func(k renderer.CellKind) {
		if k != renderer.KindVoid {
			kinds = append(kinds, k)
		}
	})
	if len(kinds) == 0 {
		return
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	entries := make([]string, 0, len(kinds))
	for _, k := range kinds {
		label := theme.LegendLabel(k.String())
		if k == renderer.KindDeadLight {
			label = "(" + label + ")"
		}
		entries = append(entries, fmt.Sprintf("%s %s", t.StyleText(t.icon(nil, k, 0, 0), k.Style()), label))
	}
	b.WriteString(strings.Join(entries, "  "))
	b.WriteString("\n\n")
}

// printMessages writes the most recent generation messages
func (t *TUIRenderer) printMessages(b *strings.Builder, messages []string) {
	if len(messages) == 0 {
		return
	}
	if len(messages) > MaxMessages {
		messages = messages[len(messages)-MaxMessages:]
	}
	for _, m := range messages {
		fmt.Fprintf(b, "%s %s\n", t.colorSubtle.Sprint("-"), m)
	}
}
