package view

import "testing"

func TestModifiers(t *testing.T) {
	tests := []struct {
		name    string
		mods    Modifiers
		none    bool
		primary bool
	}{
		{"empty", Modifiers{}, true, false},
		{"shift", Modifiers{Shift: true}, false, false},
		{"ctrl", Modifiers{Ctrl: true}, false, true},
		{"meta", Modifiers{Meta: true}, false, true},
		{"alt", Modifiers{Alt: true}, false, false},
		{"ctrl+shift", Modifiers{Ctrl: true, Shift: true}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mods.None(); got != tt.none {
				t.Errorf("None() = %v, want %v", got, tt.none)
			}
			if got := tt.mods.Primary(); got != tt.primary {
				t.Errorf("Primary() = %v, want %v", got, tt.primary)
			}
		})
	}
}

func TestKeyEventCancel(t *testing.T) {
	ev := &KeyEvent{Pressed: true, Key: KeyEscape}
	if ev.Cancelled() {
		t.Error("fresh event already cancelled")
	}
	ev.Cancel()
	if !ev.Cancelled() {
		t.Error("Cancel did not mark the event")
	}
}

func TestDefaultKeyBindingsIgnoresReleases(t *testing.T) {
	vs := newTestState(WithZoom())
	vs.SetNumPages(3)
	ev := &KeyEvent{Pressed: false, Key: KeyPageDown}
	DefaultKeyBindings(vs, ev)
	if vs.PageNr() != 0 || ev.Cancelled() {
		t.Error("key release must not trigger a binding")
	}
}
