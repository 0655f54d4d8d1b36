package vpn

import "testing"

func TestConnectionStatus_String(t *testing.T) {
	tests := []struct {
		status   ConnectionStatus
		expected string
	}{
		{StatusDisconnected, "Disconnected"},
		{StatusConnected, "Connected"},
		{ConnectionStatus(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.status.String(); got != tt.expected {
				t.Errorf("ConnectionStatus.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConnection_VerbInvertsState(t *testing.T) {
	up := Connection{Name: "OfficeVPN"}
	if up.Verb() != VerbUp || up.Status() != StatusDisconnected {
		t.Errorf("disconnected connection: Verb() = %q, Status() = %v", up.Verb(), up.Status())
	}

	down := Connection{Name: "HomeVPN", Connected: true}
	if down.Verb() != VerbDown || down.Status() != StatusConnected {
		t.Errorf("connected connection: Verb() = %q, Status() = %v", down.Verb(), down.Status())
	}
}
