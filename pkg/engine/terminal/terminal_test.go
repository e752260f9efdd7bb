package terminal

import "testing"

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d, want positive dimensions", w, h)
	}
	if GetWidth() != w || GetHeight() != h {
		t.Errorf("GetWidth/GetHeight = %d, %d, want %d, %d", GetWidth(), GetHeight(), w, h)
	}
}

func TestGetSize_NotTerminal(t *testing.T) {
	// go test pipes stdout, so the fallback applies
	if IsTerminal() {
		t.Skip("stdout is a terminal")
	}
	w, h := GetSize()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("GetSize() = %d, %d, want %d, %d", w, h, DefaultWidth, DefaultHeight)
	}
}
