package validation

import (
	"strings"
	"testing"
)

func TestValidateInterfaceName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Happy paths
		{"simple", "eth0", false},
		{"with dash", "eth-0", false},
		{"with underscore", "eth_0", false},
		{"with dot (vlan)", "eth0.100", false},
		{"predictable name", "enp3s0f1", false},
		{"max length", "eth0123456789ab", false}, // 15 chars
		{"single char", "a", false},

		// Sad paths
		{"empty", "", true},
		{"too long", "eth0123456789abc", true}, // 16 chars
		{"leading dash", "-eth0", true},
		{"leading dot", ".eth0", true},
		{"space", "eth 0", true},
		{"semicolon injection", "eth0;rm", true},
		{"pipe injection", "eth0|cat", true},
		{"dollar sign", "eth0$USER", true},
		{"quote", "eth0\"", true},
		{"newline", "eth0\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterfaceName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInterfaceName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParsePortNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    uint16
		wantErr bool
	}{
		{"1", 1, false},
		{"22", 22, false},
		{"65535", 65535, false},
		{"0", 0, true},
		{"65536", 0, true},
		{"-1", 0, true},
		{"+80", 0, true},
		{"", 0, true},
		{"http", 0, true},
		{" 80", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePortNumber(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePortNumber(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePortNumber(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if err != nil && !strings.Contains(err.Error(), tt.input) {
				t.Errorf("error %q should name the input %q", err, tt.input)
			}
		})
	}
}

func TestParseCIDR(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"192.168.1.0/24", false},
		{"10.0.0.1/32", false},
		{"fd00::/64", false},
		{"", true},
		{"192.168.1.0", true},
		{"192.168.1.0/33", true},
		{"not-a-cidr", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseCIDR(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCIDR(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseIP(t *testing.T) {
	if _, err := ParseIP("192.168.1.100"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseIP("192.168.1"); err == nil {
		t.Error("expected error for truncated address")
	}
}

func TestMatchAllowlist(t *testing.T) {
	allowed := []string{"accept", "drop"}

	if i, err := MatchAllowlist("policy", "DROP", allowed); err != nil || i != 1 {
		t.Errorf("MatchAllowlist(DROP) = %d, %v; want 1, nil", i, err)
	}

	_, err := MatchAllowlist("policy", "allow", allowed)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "accept, drop") {
		t.Errorf("error should list acceptable values, got: %v", err)
	}
	if !strings.Contains(err.Error(), `"allow"`) {
		t.Errorf("error should name the input, got: %v", err)
	}
}

func TestParseBool(t *testing.T) {
	if v, err := ParseBool("true"); err != nil || !v {
		t.Errorf("ParseBool(true) = %v, %v", v, err)
	}
	if v, err := ParseBool("false"); err != nil || v {
		t.Errorf("ParseBool(false) = %v, %v", v, err)
	}
	if _, err := ParseBool("yes"); err == nil {
		t.Error("ParseBool(yes) expected error")
	}
}
