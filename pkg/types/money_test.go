package types

import "testing"

func TestFormatMinorUnits(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{2599, "25.99"},
		{100000, "1000.00"},
		{-1250, "-12.50"},
	}
	for _, tt := range tests {
		if got := FormatMinorUnits(tt.amount); got != tt.want {
			t.Fatalf("FormatMinorUnits(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(2599, "usd"); got != "USD 25.99" {
		t.Fatalf("unexpected formatted amount %q", got)
	}
	if got := FormatAmount(2599, ""); got != "25.99" {
		t.Fatalf("expected bare amount without currency, got %q", got)
	}
}
