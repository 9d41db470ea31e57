package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"valid", "valid-123", true},
		{"padded", "  abc_DEF  ", false},
		{"space inside", "bad id", false},
		{"empty", "", false},
		{"too long", string(make([]byte, 65)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeRequestID(tt.incoming)
			if got == "" {
				t.Fatalf("expected an id")
			}
			if tt.keep && got != tt.incoming {
				t.Fatalf("expected pass-through, got %s", got)
			}
			if !requestIDPattern.MatchString(got) {
				t.Fatalf("expected well-formed id, got %q", got)
			}
		})
	}
	if got := SanitizeRequestID("  abc_DEF  "); got != "abc_DEF" {
		t.Fatalf("expected surrounding space trimmed, got %q", got)
	}
}

func TestNewRequestIDFallback(t *testing.T) {
	if got := NewRequestID(); len(got) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", got)
	}

	useFallback.Store(true)
	defer useFallback.Store(false)
	a, b := NewRequestID(), NewRequestID()
	if a == b {
		t.Fatalf("expected distinct fallback ids, got %q twice", a)
	}
	if !requestIDPattern.MatchString(a) {
		t.Fatalf("expected fallback id to pass sanitizing, got %q", a)
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:5000", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.9"}, "10.0.0.2:5000", "203.0.113.9"},
		{"blank forwarded", map[string]string{"X-Forwarded-For": " ,10.0.0.1"}, "192.0.2.4:1234", "192.0.2.4"},
		{"remote host", nil, "192.0.2.4:1234", "192.0.2.4"},
		{"remote ipv6", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"remote without port", nil, "192.0.2.5", "192.0.2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
