// Package input maps device key codes to the preview's high-level actions.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the preview.
type Action int

const (
	ActionNone Action = iota

	// Camera
	ActionPanNorth
	ActionPanSouth
	ActionPanWest
	ActionPanEast
	ActionRecenter

	// Layout
	ActionRegenerate // New layout from a random seed
	ActionNextSeed   // New layout from the current seed + 1

	// Meta / UI
	ActionQuit
	ActionZoomIn    // Zoom in (increase tile size)
	ActionZoomOut   // Zoom out (decrease tile size)
	ActionZoomReset // Back to the default tile size
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "r", "arrow_up", "numpad_add").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Ebiten's just-pressed edge detection already debounces keys, so this is a
// thin wrapper that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Camera (arrows, Vim)
	"arrow_up":    ActionPanNorth,
	"k":           ActionPanNorth,
	"arrow_down":  ActionPanSouth,
	"j":           ActionPanSouth,
	"arrow_left":  ActionPanWest,
	"h":           ActionPanWest,
	"arrow_right": ActionPanEast,
	"l":           ActionPanEast,
	"c":           ActionRecenter,

	// Layout
	"r": ActionRegenerate,
	"n": ActionNextSeed,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"0":               ActionZoomReset,
	"numpad_0":        ActionZoomReset,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a raw key code through every layer
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPanNorth:
		return "Pan North"
	case ActionPanSouth:
		return "Pan South"
	case ActionPanWest:
		return "Pan West"
	case ActionPanEast:
		return "Pan East"
	case ActionRecenter:
		return "Recenter"
	case ActionRegenerate:
		return "Regenerate"
	case ActionNextSeed:
		return "Next Seed"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Reset Zoom"
	default:
		return "None"
	}
}

// Codes returns every bound code in sorted order
func Codes() []string {
	codes := make([]string, 0, len(bindings))
	for code := range bindings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys and Escape stay bound so the preview can always be panned and closed.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if isReserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isReserved(code) {
		bindings[code] = action
	}
}

func isReserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape":
		return true
	}
	return false
}
