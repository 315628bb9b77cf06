package cli

import "testing"

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":8080":          ":8080",
		"127.0.0.1:9000": ":9000",
		"[::1]:7000":     ":7000",
		"localhost":      "",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}
