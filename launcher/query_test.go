package launcher

import "testing"

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{"trigger only", "vpn ", Query{Valid: true, Triggered: true}},
		{"with remainder", "vpn office", Query{String: "office", Valid: true, Triggered: true}},
		{"remainder trimmed", "vpn   Work  ", Query{String: "Work", Valid: true, Triggered: true}},
		{"no trigger", "firefox", Query{Valid: true}},
		{"trigger without space", "vpn", Query{Valid: true}},
		{"trigger not at start", "my vpn x", Query{Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseQuery("vpn ", tt.input); got != tt.want {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseQuery_EmptyTriggerNeverTriggers(t *testing.T) {
	if q := ParseQuery("", "anything"); q.Triggered {
		t.Error("an empty trigger should not trigger")
	}
}

func TestTriggeredQuery(t *testing.T) {
	want := Query{String: "home", Valid: true, Triggered: true}
	if got := TriggeredQuery(" home "); got != want {
		t.Errorf("TriggeredQuery() = %+v, want %+v", got, want)
	}
}

func TestItem_Verb(t *testing.T) {
	tests := []struct {
		id        string
		verb      string
		connected bool
	}{
		{"vpn-up-OfficeVPN", "up", false},
		{"vpn-down-HomeVPN", "down", true},
		{"vpn-down-with-dashes", "down", true},
		{"vpn-sideways-x", "", false},
		{"other", "", false},
	}

	for _, tt := range tests {
		item := Item{ID: tt.id}
		if item.Verb() != tt.verb || item.Connected() != tt.connected {
			t.Errorf("Item{ID: %q}: Verb() = %q, Connected() = %v", tt.id, item.Verb(), item.Connected())
		}
	}
}

func TestItem_DefaultActionMissing(t *testing.T) {
	if _, ok := (Item{}).DefaultAction(); ok {
		t.Error("item without actions should report no default action")
	}
}
