package middleware

import (
	"strings"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", true}, // lowercased before matching
		{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"not-an-id", false},
		{"", false},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},   // 31 chars
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 33 chars
	}
	for _, tc := range cases {
		if got := validReqID(tc.id); got != tc.want {
			t.Errorf("validReqID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	// epoch seconds
	got, err := parseRequestAt("1736123456")
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	if got.Unix() != 1736123456 {
		t.Errorf("epoch seconds parsed to %v", got)
	}

	// epoch milliseconds
	got, err = parseRequestAt("1736123456789")
	if err != nil {
		t.Fatalf("epoch ms: %v", err)
	}
	if got.UnixMilli() != 1736123456789 {
		t.Errorf("epoch ms parsed to %v", got)
	}

	// RFC3339 with zone
	got, err = parseRequestAt("2026-08-29T10:00:00+07:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if got.Location() != time.UTC {
		t.Errorf("result not normalized to UTC: %v", got)
	}

	// rejects garbage and empty
	for _, raw := range []string{"", "yesterday", "2026-08-29 10:00:00"} {
		if _, err := parseRequestAt(raw); err == nil {
			t.Errorf("parseRequestAt(%q) accepted", raw)
		}
	}
}

func TestBuildKey(t *testing.T) {
	key := buildKey("POST", "/api/v1/wallet/deposits", "usr-1", "req-1")
	if !strings.HasPrefix(key, "idemp:post:") {
		t.Errorf("key %q lacks idemp:post: prefix", key)
	}
	for _, part := range []string{"/api/v1/wallet/deposits", "usr-1", "req-1"} {
		if !strings.Contains(key, part) {
			t.Errorf("key %q missing %q", key, part)
		}
	}
}
