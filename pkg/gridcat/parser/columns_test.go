package parser

import "testing"

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		ref  string
		want int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"AZ", 51},
		{"BA", 52},
		{"A1", 0},
		{"B2", 1},
		{"D17", 3},
		{"", -1},
		{"42", -1},
	}

	for _, tt := range tests {
		if got := columnIndex(tt.ref); got != tt.want {
			t.Errorf("columnIndex(%q) = %d, want %d", tt.ref, got, tt.want)
		}
	}
}
