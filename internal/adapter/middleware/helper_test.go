package middleware

import (
	"strings"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"3f2504e0-4f89-41d3-9a0c-0305e82c3301", true},
		{strings.Repeat("ab", 16), true},
		{"  " + strings.Repeat("ab", 16) + "  ", true},
		{strings.ToUpper(strings.Repeat("ab", 16)), true}, // lowercased before matching
		{"short", false},
		{"", false},
		{"zzzz04e0-4f89-41d3-9a0c-0305e82c3301", false},
	}
	for _, tt := range tests {
		if got := validReqID(tt.in); got != tt.want {
			t.Errorf("validReqID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	t.Run("epoch seconds", func(t *testing.T) {
		got, err := parseRequestAt("1736123456")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if got.Unix() != 1736123456 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("epoch milliseconds", func(t *testing.T) {
		got, err := parseRequestAt("1736123456789")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if got.UnixMilli() != 1736123456789 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("rfc3339 with zone", func(t *testing.T) {
		got, err := parseRequestAt("2025-09-05T10:00:00+07:00")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		want := time.Date(2025, 9, 5, 3, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("naive timestamp rejected", func(t *testing.T) {
		if _, err := parseRequestAt("2025-09-05T10:00:00"); err == nil {
			t.Fatal("timestamps without a zone must be rejected")
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		if _, err := parseRequestAt(""); err == nil {
			t.Fatal("empty header must be rejected")
		}
	})
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/loans/:loan_id/payments", "user1", "req1")
	want := "idemp:post:/loans/:loan_id/payments:user1:req1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBodyHashStable(t *testing.T) {
	a := bodyHash([]byte(`{"amount":100}`))
	b := bodyHash([]byte(`{"amount":100}`))
	c := bodyHash([]byte(`{"amount":200}`))
	if a != b {
		t.Fatal("same body must hash identically")
	}
	if a == c {
		t.Fatal("different bodies must hash differently")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want hex sha256", len(a))
	}
}
