package loan

import "testing"

func TestValidAadhaar(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"123456789012", true},
		{"000000000000", true},
		{"12345678901", false},
		{"1234567890123", false},
		{"12345678901a", false},
		{"1234 5678 9012", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidAadhaar(tt.in); got != tt.want {
			t.Errorf("ValidAadhaar(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePAN(t *testing.T) {
	got, err := NormalizePAN("abcde1234f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABCDE1234F" {
		t.Fatalf("got %q, want uppercased PAN", got)
	}

	if _, err := NormalizePAN(" ABCDE1234F "); err != nil {
		t.Fatalf("surrounding whitespace should be trimmed, got %v", err)
	}

	for _, bad := range []string{"ABCDE12345", "ABCD51234F", "ABCDE1234", "1BCDE1234F", ""} {
		if _, err := NormalizePAN(bad); err != ErrInvalidPAN {
			t.Errorf("NormalizePAN(%q) err = %v, want ErrInvalidPAN", bad, err)
		}
	}
}
