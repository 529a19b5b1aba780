package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotenv(t *testing.T) {
	data := []byte(`# router
INTERFACE_LAN=eth1
INTERFACE_WAN=eth0
SUBNET_LAN="192.168.10.0/24"
TCP_ACCEPT_LAN=22, 80
`)
	in, err := LoadDotenv(data)
	if err != nil {
		t.Fatalf("LoadDotenv() error = %v", err)
	}

	tests := map[string]string{
		"INTERFACE_LAN":  "eth1",
		"INTERFACE_WAN":  "eth0",
		"SUBNET_LAN":     "192.168.10.0/24",
		"TCP_ACCEPT_LAN": "22, 80",
	}
	for name, want := range tests {
		got, ok := in.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) missing", name)
			continue
		}
		if got != want {
			t.Errorf("Lookup(%q) = %q, want %q", name, got, want)
		}
	}
	if in.Len() != len(tests) {
		t.Errorf("Len() = %d, want %d", in.Len(), len(tests))
	}
}

func TestLoadDotenv_Invalid(t *testing.T) {
	if _, err := LoadDotenv([]byte("this is not an assignment\n")); err == nil {
		t.Error("LoadDotenv() expected error for line without '='")
	}
}

func TestLoadHCL(t *testing.T) {
	src := `
interface_lan  = "eth1"
interface_wan  = "eth0"
subnet_lan     = "10.0.0.0/8"
tcp_accept_lan = [22, 443]
icmp_accept_wan = []
`
	in, err := LoadHCL([]byte(src), "router.hcl")
	if err != nil {
		t.Fatalf("LoadHCL() error = %v", err)
	}

	tests := map[string]string{
		"INTERFACE_LAN":   "eth1",
		"INTERFACE_WAN":   "eth0",
		"SUBNET_LAN":      "10.0.0.0/8",
		"TCP_ACCEPT_LAN":  "22, 443",
		"ICMP_ACCEPT_WAN": "",
	}
	for name, want := range tests {
		got, ok := in.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) missing", name)
			continue
		}
		if got != want {
			t.Errorf("Lookup(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestLoadHCL_Invalid(t *testing.T) {
	if _, err := LoadHCL([]byte(`interface_lan = `), "bad.hcl"); err == nil {
		t.Error("LoadHCL() expected error for truncated attribute")
	}
	if _, err := LoadHCL([]byte("block {\n}\n"), "block.hcl"); err == nil {
		t.Error("LoadHCL() expected error for block")
	}
}

func TestLoadYAML(t *testing.T) {
	src := `
interface_lan: eth1
INTERFACE_WAN: eth0
subnet_lan: 192.168.1.0/24
udp_accept_lan: [53, 67]
tcp_forward_wan:
  - "8080:192.168.1.100:80"
  - "8443:192.168.1.101:443"
`
	in, err := LoadYAML([]byte(src))
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}

	tests := map[string]string{
		"INTERFACE_LAN":   "eth1",
		"INTERFACE_WAN":   "eth0",
		"SUBNET_LAN":      "192.168.1.0/24",
		"UDP_ACCEPT_LAN":  "53, 67",
		"TCP_FORWARD_WAN": "8080:192.168.1.100:80, 8443:192.168.1.101:443",
	}
	for name, want := range tests {
		got, ok := in.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) missing", name)
			continue
		}
		if got != want {
			t.Errorf("Lookup(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestLoadYAML_NestedMapping(t *testing.T) {
	if _, err := LoadYAML([]byte("interface_lan:\n  name: eth1\n")); err == nil {
		t.Error("LoadYAML() expected error for nested mapping")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"router.env":  "INTERFACE_LAN=eth1\n",
		"router.hcl":  "interface_lan = \"eth1\"\n",
		"router.yaml": "interface_lan: eth1\n",
		"router.yml":  "interface_lan: eth1\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		in, err := LoadFile(path)
		if err != nil {
			t.Errorf("LoadFile(%s) error = %v", name, err)
			continue
		}
		if got, _ := in.Lookup("INTERFACE_LAN"); got != "eth1" {
			t.Errorf("LoadFile(%s) INTERFACE_LAN = %q, want eth1", name, got)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("LoadFile() expected error for missing file")
	}
}
