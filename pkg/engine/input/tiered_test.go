package input

import "testing"

func TestIntentFor(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"r", ActionRegenerate},
		{"n", ActionNextSeed},
		{"escape", ActionQuit},
		{"arrow_left", ActionPanWest},
		{"=", ActionZoomIn},
		{"numpad_0", ActionZoomReset},
		{"x", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IntentFor(DeviceKeyboard, tt.code).Action; got != tt.want {
				t.Errorf("IntentFor(%q) = %s, want %s", tt.code, ActionName(got), ActionName(tt.want))
			}
		})
	}
}

func TestSetSingleBinding(t *testing.T) {
	SetSingleBinding(ActionRegenerate, "g")
	defer SetSingleBinding(ActionRegenerate, "r")

	if got := IntentFor(DeviceKeyboard, "g").Action; got != ActionRegenerate {
		t.Errorf("g -> %s, want Regenerate", ActionName(got))
	}
	if got := IntentFor(DeviceKeyboard, "r").Action; got != ActionNone {
		t.Errorf("r -> %s, want None after rebinding", ActionName(got))
	}
	if codes := GetBindingsByAction()[ActionRegenerate]; len(codes) != 1 || codes[0] != "g" {
		t.Errorf("regenerate codes = %v, want [g]", codes)
	}
}

func TestSetSingleBinding_ReservedKept(t *testing.T) {
	SetSingleBinding(ActionQuit, "escape")
	defer SetSingleBinding(ActionQuit, "q")

	if got := IntentFor(DeviceKeyboard, "escape").Action; got != ActionQuit {
		t.Errorf("escape -> %s, want Quit", ActionName(got))
	}
	SetSingleBinding(ActionPanNorth, "arrow_down")
	defer SetSingleBinding(ActionPanNorth, "k")
	if got := IntentFor(DeviceKeyboard, "arrow_down").Action; got != ActionPanSouth {
		t.Errorf("arrow_down -> %s, want Pan South", ActionName(got))
	}
}

func TestCodesSorted(t *testing.T) {
	codes := Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted at %d: %q > %q", i, codes[i-1], codes[i])
		}
	}
}
