package input

import (
	"testing"

	"github.com/bnema/puregotk/v4/gdk"
)

func TestDefaultBindings_CoverAllActions(t *testing.T) {
	want := []Action{
		ActionFocusAddressBar,
		ActionGoBack,
		ActionGoForward,
		ActionReload,
		ActionZoomIn,
		ActionZoomOut,
		ActionZoomReset,
		ActionCopyURL,
		ActionQuit,
	}

	bound := make(map[Action]bool)
	for _, b := range defaultBindings {
		bound[b.action] = true
	}

	for _, a := range want {
		if !bound[a] {
			t.Errorf("action %q has no key binding", a)
		}
	}
}

func TestDefaultBindings_NoDuplicateKeys(t *testing.T) {
	type combo struct {
		keyval    uint
		modifiers gdk.ModifierType
	}

	seen := make(map[combo]Action)
	for _, b := range defaultBindings {
		c := combo{b.keyval, b.modifiers}
		if prev, ok := seen[c]; ok {
			t.Errorf("keyval %d modifiers %d bound to both %q and %q", b.keyval, b.modifiers, prev, b.action)
		}
		seen[c] = b.action
	}
}

func TestDefaultBindings_Lookup(t *testing.T) {
	tests := []struct {
		name      string
		keyval    uint
		modifiers gdk.ModifierType
		want      Action
	}{
		{"ctrl+l focuses address bar", uint(gdk.KEY_l), gdk.ControlMaskValue, ActionFocusAddressBar},
		{"alt+left goes back", uint(gdk.KEY_Left), gdk.AltMaskValue, ActionGoBack},
		{"alt+right goes forward", uint(gdk.KEY_Right), gdk.AltMaskValue, ActionGoForward},
		{"ctrl+r reloads", uint(gdk.KEY_r), gdk.ControlMaskValue, ActionReload},
		{"f5 reloads", uint(gdk.KEY_F5), 0, ActionReload},
		{"ctrl+plus zooms in", uint(gdk.KEY_plus), gdk.ControlMaskValue, ActionZoomIn},
		{"ctrl+equal zooms in", uint(gdk.KEY_equal), gdk.ControlMaskValue, ActionZoomIn},
		{"ctrl+minus zooms out", uint(gdk.KEY_minus), gdk.ControlMaskValue, ActionZoomOut},
		{"ctrl+0 resets zoom", uint(gdk.KEY_0), gdk.ControlMaskValue, ActionZoomReset},
		{"ctrl+shift+c copies url", uint(gdk.KEY_c), gdk.ControlMaskValue | gdk.ShiftMaskValue, ActionCopyURL},
		{"ctrl+q quits", uint(gdk.KEY_q), gdk.ControlMaskValue, ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Action
			found := false
			for _, b := range defaultBindings {
				if b.keyval == tt.keyval && b.modifiers == tt.modifiers {
					got = b.action
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("no binding for keyval %d modifiers %d", tt.keyval, tt.modifiers)
			}
			if got != tt.want {
				t.Errorf("binding resolves to %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionValues(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionFocusAddressBar, "focus_address_bar"},
		{ActionGoBack, "go_back"},
		{ActionGoForward, "go_forward"},
		{ActionReload, "reload"},
		{ActionZoomIn, "zoom_in"},
		{ActionZoomOut, "zoom_out"},
		{ActionZoomReset, "zoom_reset"},
		{ActionCopyURL, "copy_url"},
		{ActionQuit, "quit"},
	}

	for _, tt := range tests {
		if string(tt.action) != tt.want {
			t.Errorf("action constant = %q, want %q", tt.action, tt.want)
		}
	}
}
