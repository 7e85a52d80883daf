package cli

import "testing"

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0 pts"},
		{1, "1 pt"},
		{54, "54 pts"},
		{-20, "-20 pts"},
		{1500, "1,500 pts"},
	}
	for _, tt := range tests {
		if got := FormatPoints(tt.in); got != tt.want {
			t.Errorf("FormatPoints(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBalance(t *testing.T) {
	if got := FormatBalance(46); got != "46 pts left" {
		t.Errorf("FormatBalance(46) = %q", got)
	}
	if got := FormatBalance(-20); got != "over budget by 20 pts" {
		t.Errorf("FormatBalance(-20) = %q", got)
	}
}

func TestFormatChips(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{3, "■■■"},
		{10, "■■■■■■■■■■"},
		{12, "■■■■■■■■■■ +2"},
	}
	for _, tt := range tests {
		if got := FormatChips(tt.in); got != tt.want {
			t.Errorf("FormatChips(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Errorf("FormatNumber(-1000) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.54); got != "54.0%" {
		t.Errorf("FormatPercent(0.54) = %q", got)
	}
	if got := FormatPercent(1.2); got != "120.0%" {
		t.Errorf("FormatPercent(1.2) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("justification", 6); got != "justi…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
}
