package domain

import "testing"

func TestAmount_Add(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Amount
		expected Amount
	}{
		{"both positive", 1000, 500, 1500},
		{"zero", 1000, 0, 1000},
		{"negative", 1000, -300, 700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.expected {
				t.Errorf("Add() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAmount_Multiply(t *testing.T) {
	tests := []struct {
		name     string
		a        Amount
		by       int
		expected Amount
	}{
		{"single", 1500, 1, 1500},
		{"several", 1500, 3, 4500},
		{"zero quantity", 1500, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Multiply(tt.by); got != tt.expected {
				t.Errorf("Multiply() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		amount   Amount
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1250, "12.50"},
		{-75, "-0.75"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.amount.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
