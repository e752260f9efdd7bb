// Package theme provides the display vocabulary of a layout: localized labels
// for patterns, modes, sides, room and column types and light tiers, plus the
// flavour names given to rooms in dumps and previews.
package theme

import (
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/entities"
	"backrooms/pkg/game/state"
)

// Domain is the gettext domain holding every label
const Domain = "default"

// Configure loads translations from dir/<lang>/LC_MESSAGES/default.po
func Configure(dir, lang string) {
	gotext.Configure(dir, lang, Domain)
}

// ResolveDir returns dir if it exists as given. A relative dir that does not
// exist from the working directory is looked up next to the executable, so an
// installed binary still finds its catalogs. dir is returned unchanged when
// neither location exists.
func ResolveDir(dir string) string {
	if isDir(dir) || filepath.IsAbs(dir) {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return dir
	}
	if candidate := filepath.Join(filepath.Dir(exe), dir); isDir(candidate) {
		return candidate
	}
	return dir
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// get returns the translation of key, or fallback when no catalog provides one.
// gotext returns the key itself for missing translations.
func get(key, fallback string) string {
	if s := gotext.Get(key, []any{}...); s != "" && s != key {
		return s
	}
	return fallback
}

// PatternLabel returns the display label for a pattern name.
// Uses gotext.Get with constant keys to satisfy vet.
func PatternLabel(name string) string {
	switch name {
	case "Classic Maze":
		return get("PATTERN_CLASSIC_MAZE", name)
	case "Room Network":
		return get("PATTERN_ROOM_NETWORK", name)
	case "Winding Corridors":
		return get("PATTERN_WINDING_CORRIDORS", name)
	case "Backrooms":
		return get("PATTERN_BACKROOMS", name)
	case "":
		return get("PATTERN_NONE", "None")
	default:
		return name
	}
}

// ModeLabel returns the display label for a generation mode
func ModeLabel(m state.Mode) string {
	switch m {
	case state.ModePattern:
		return get("MODE_PATTERN", "Pattern")
	case state.ModeNetwork:
		return get("MODE_NETWORK", "Network")
	case state.ModeHybrid:
		return get("MODE_HYBRID", "Hybrid")
	default:
		return m.String()
	}
}

// SideLabel returns the display label for an exit side
func SideLabel(d world.Direction) string {
	switch d {
	case world.North:
		return get("SIDE_NORTH", "North")
	case world.East:
		return get("SIDE_EAST", "East")
	case world.South:
		return get("SIDE_SOUTH", "South")
	case world.West:
		return get("SIDE_WEST", "West")
	default:
		return d.String()
	}
}

// RoomTypeLabel returns the display label for a room type
func RoomTypeLabel(t entities.RoomType) string {
	switch t {
	case entities.RoomOffice:
		return get("ROOM_OFFICE", "Office")
	case entities.RoomHallway:
		return get("ROOM_HALLWAY", "Hallway")
	case entities.RoomStorage:
		return get("ROOM_STORAGE", "Storage")
	case entities.RoomAtrium:
		return get("ROOM_ATRIUM", "Atrium")
	case entities.RoomUtility:
		return get("ROOM_UTILITY", "Utility")
	default:
		return t.String()
	}
}

// ColumnTypeLabel returns the display label for a column type
func ColumnTypeLabel(t entities.ColumnType) string {
	switch t {
	case entities.ColumnPillar:
		return get("COLUMN_PILLAR", "Pillar")
	case entities.ColumnSupport:
		return get("COLUMN_SUPPORT", "Support")
	case entities.ColumnPartition:
		return get("COLUMN_PARTITION", "Partition")
	default:
		return t.String()
	}
}

// TierLabel returns the display label for a light tier
func TierLabel(t entities.LightTier) string {
	switch t {
	case entities.TierDim:
		return get("LIGHT_DIM", "Dim")
	case entities.TierNormal:
		return get("LIGHT_NORMAL", "Normal")
	case entities.TierBright:
		return get("LIGHT_BRIGHT", "Bright")
	default:
		return t.String()
	}
}

// roomNames are the flavour base names for each room type. Naming is bland,
// institutional and slightly wrong.
var roomNames = map[entities.RoomType][]string{
	entities.RoomOffice: {
		"Cubicle Block", "Open Plan Office", "Records Office", "Break Room",
		"Conference Room", "Copy Room", "Manager's Office", "Reception",
	},
	entities.RoomHallway: {
		"Service Hallway", "Connecting Passage", "Long Hall", "Fire Corridor",
		"Carpeted Hall", "Back Passage",
	},
	entities.RoomStorage: {
		"Supply Closet", "Archive Stacks", "Stock Room", "Filing Storage",
		"Unlabelled Storage", "Furniture Store",
	},
	entities.RoomAtrium: {
		"Atrium", "Lobby", "Waiting Area", "Open Hall", "Pillar Hall",
	},
	entities.RoomUtility: {
		"Boiler Room", "Electrical Closet", "Janitor's Room", "Server Closet",
		"Pump Room", "HVAC Plant",
	},
}

// roomAdjectives decorate repeated names
var roomAdjectives = []string{
	"Humming", "Damp", "Yellowed", "Flickering", "Empty", "Forgotten", "Carpeted", "Sealed",
}

// RoomName returns a stable flavour name for the index-th room of a layout
func RoomName(t entities.RoomType, index int) string {
	bases, ok := roomNames[t]
	if !ok || index < 0 {
		return RoomTypeLabel(t)
	}
	base := bases[index%len(bases)]
	if index < len(bases) {
		return base
	}
	return roomAdjectives[(index/len(bases))%len(roomAdjectives)] + " " + base
}

// LegendLabel returns the label for a map legend entry. Entries are
// "wall", "floor", "decoration", "exit", "spawn" and "light".
func LegendLabel(entry string) string {
	switch entry {
	case "wall":
		return get("LEGEND_WALL", entry)
	case "floor":
		return get("LEGEND_EMPTY", entry)
	case "decoration":
		return get("LEGEND_DECORATION", entry)
	case "exit":
		return get("LEGEND_EXIT", entry)
	case "spawn":
		return get("LEGEND_SPAWN", entry)
	case "light":
		return get("LEGEND_LIGHT", entry)
	default:
		return entry
	}
}

// StatusGenerated is the headline printed after a layout is generated
func StatusGenerated() string {
	return get("STATUS_GENERATED", "Generated layout")
}

// PreviewHelp is the key help line shown in the preview window
func PreviewHelp() string {
	return get("PREVIEW_HELP", "R: regenerate  N: next seed  Esc: quit")
}
