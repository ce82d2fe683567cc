package dnsresolver

import "testing"

func TestIsFilteredIP(t *testing.T) {
	cases := map[string]bool{
		"8.8.8.8":     false,
		"127.0.0.1":   true,
		"0.0.0.1":     true,
		"10.1.2.3":    true,
		"172.16.0.5":  true,
		"192.168.1.1": true,
		"1.2.3.4":     false,
		"not-an-ip":   true,
	}
	for ip, want := range cases {
		if got := isFilteredIP(ip); got != want {
			t.Errorf("isFilteredIP(%q) = %v, want %v", ip, got, want)
		}
	}
}

func TestAddrWithPort(t *testing.T) {
	if got := addrWithPort("8.8.8.8"); got != "8.8.8.8:53" {
		t.Errorf("addrWithPort(no port) = %q", got)
	}
	if got := addrWithPort("8.8.8.8:53"); got != "8.8.8.8:53" {
		t.Errorf("addrWithPort(with port) = %q", got)
	}
}
