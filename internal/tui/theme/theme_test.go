package theme

import "testing"

func TestByName(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Fatalf("ByName = %q", got)
	}
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Fatalf("unknown theme = %q, want %q", got, FlexokiDark.Name)
	}
}

func TestBalanceColor(t *testing.T) {
	th := FlexokiDark
	tests := []struct {
		remaining int
		want      string
	}{
		{80, string(th.Good)},
		{25, string(th.Good)},
		{24, string(th.Warn)},
		{0, string(th.Warn)},
		{-1, string(th.Bad)},
	}
	for _, tt := range tests {
		if got := string(th.BalanceColor(tt.remaining, 100)); got != tt.want {
			t.Errorf("BalanceColor(%d) = %s, want %s", tt.remaining, got, tt.want)
		}
	}
}
