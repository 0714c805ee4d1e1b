package utils

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		realIP     string
		trustProxy bool
		want       string
	}{
		{name: "remote addr only", remoteAddr: "10.0.0.1:1234", want: "10.0.0.1"},
		{name: "xff ignored without trust", remoteAddr: "10.0.0.1:1234", xff: "1.2.3.4", want: "10.0.0.1"},
		{name: "xff first entry with trust", remoteAddr: "10.0.0.1:1234", xff: "1.2.3.4, 5.6.7.8", trustProxy: true, want: "1.2.3.4"},
		{name: "real ip fallback with trust", remoteAddr: "10.0.0.1:1234", realIP: "1.2.3.4", trustProxy: true, want: "1.2.3.4"},
		{name: "ipv6 with port", remoteAddr: "[::1]:1234", want: "::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.1", "192.168.0.0/24", "", "not-an-ip"})

	tests := []struct {
		ip   string
		want bool
	}{
		{ip: "10.0.0.1", want: true},
		{ip: "10.0.0.2", want: false},
		{ip: "192.168.0.42", want: true},
		{ip: "192.168.1.42", want: false},
		{ip: "garbage", want: false},
	}

	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}

func TestIPMatcherEmpty(t *testing.T) {
	if !NewIPMatcher(nil).IsEmpty() {
		t.Error("IsEmpty() = false for nil list, want true")
	}
	if NewIPMatcher([]string{"10.0.0.1"}).IsEmpty() {
		t.Error("IsEmpty() = true for non-empty list, want false")
	}
}
