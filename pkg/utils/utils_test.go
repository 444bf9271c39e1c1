package utils

import (
	"math"
	"strconv"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{
			name:  "round to 2 decimals",
			input: 123.456789,
			want:  123.46,
		},
		{
			name:  "already 2 decimals",
			input: 123.45,
			want:  123.45,
		},
		{
			name:  "integer",
			input: 123.0,
			want:  123.0,
		},
		{
			name:  "negative",
			input: -42.126,
			want:  -42.13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(2.71828, 3); math.Abs(got-2.718) > 1e-12 {
		t.Errorf("RoundTo(2.71828, 3) = %v, want 2.718", got)
	}
	if got := RoundTo(1234.5, 0); got != 1235 {
		t.Errorf("RoundTo(1234.5, 0) = %v, want 1235", got)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{
			name:  "finite number",
			input: 123.45,
			want:  true,
		},
		{
			name:  "infinity",
			input: math.Inf(1),
			want:  false,
		},
		{
			name:  "negative infinity",
			input: math.Inf(-1),
			want:  false,
		},
		{
			name:  "NaN",
			input: math.NaN(),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFinite(tt.input)
			if got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYearsMonths(t *testing.T) {
	tests := []struct {
		periods    int
		wantYears  int
		wantMonths int
	}{
		{periods: 0, wantYears: 0, wantMonths: 0},
		{periods: 11, wantYears: 0, wantMonths: 11},
		{periods: 126, wantYears: 10, wantMonths: 6},
		{periods: 360, wantYears: 30, wantMonths: 0},
	}

	for _, tt := range tests {
		years, months := YearsMonths(tt.periods)
		if years != tt.wantYears || months != tt.wantMonths {
			t.Errorf("YearsMonths(%d) = %d, %d; want %d, %d",
				tt.periods, years, months, tt.wantYears, tt.wantMonths)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		symbol string
		amount float64
		want   string
	}{
		{symbol: "£", amount: 28338.47, want: "£28338.47"},
		{symbol: "$", amount: 100, want: "$100.00"},
		{symbol: "", amount: 1432.2458863963614, want: "1432.25"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.symbol, tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%q, %v) = %q, want %q", tt.symbol, tt.amount, got, tt.want)
		}
	}
}

func TestFormatMoneyMatchesRound2(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 1.005, want: "1.00"},
		{amount: 0.285, want: "0.28"},
		{amount: 1.015, want: "1.01"},
		{amount: 2.675, want: "2.68"},
	}

	for _, tt := range tests {
		got := FormatMoney("", tt.amount)
		if got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
		if rounded := strconv.FormatFloat(Round2(tt.amount), 'f', 2, 64); got != rounded {
			t.Errorf("FormatMoney(%v) = %q, Round2 gives %q", tt.amount, got, rounded)
		}
	}
}
