package odds

import (
	"math"
	"testing"
)

func TestRemoveVig(t *testing.T) {
	tests := []struct {
		name      string
		impliedA  float64
		impliedB  float64
		expectedA float64
		expectedB float64
		delta     float64
	}{
		{
			name:      "Standard -110/-110",
			impliedA:  0.5238, // -110
			impliedB:  0.5238, // -110
			expectedA: 0.5,
			expectedB: 0.5,
			delta:     0.001,
		},
		{
			name:      "Favorite -150/+130",
			impliedA:  0.6,    // -150
			impliedB:  0.4348, // +130
			expectedA: 0.58,
			expectedB: 0.42,
			delta:     0.01,
		},
		{
			name:      "Underround 2.5/1.8",
			impliedA:  0.4,
			impliedB:  0.5556,
			expectedA: 0.4186,
			expectedB: 0.5814,
			delta:     0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultA, resultB := RemoveVig(tt.impliedA, tt.impliedB)

			if math.Abs(resultA-tt.expectedA) > tt.delta {
				t.Errorf("RemoveVig probA = %v, want %v", resultA, tt.expectedA)
			}
			if math.Abs(resultB-tt.expectedB) > tt.delta {
				t.Errorf("RemoveVig probB = %v, want %v", resultB, tt.expectedB)
			}

			// Verify they sum to 1
			sum := resultA + resultB
			if math.Abs(sum-1.0) > 0.001 {
				t.Errorf("RemoveVig probs should sum to 1, got %v", sum)
			}
		})
	}
}

func TestRemoveVigInvalid(t *testing.T) {
	a, b := RemoveVig(0, 0.5)
	if a != 0 || b != 0 {
		t.Errorf("RemoveVig(0, 0.5) = %v, %v, want 0, 0", a, b)
	}
	a, b = RemoveVigFromDecimal(-2, 2)
	if a != 0 || b != 0 {
		t.Errorf("RemoveVigFromDecimal(-2, 2) = %v, %v, want 0, 0", a, b)
	}
}

func TestRemoveVigFromDecimal(t *testing.T) {
	a, b := RemoveVigFromDecimal(1.5, 3.0)
	if math.Abs(a-2.0/3.0) > 1e-9 || math.Abs(b-1.0/3.0) > 1e-9 {
		t.Errorf("RemoveVigFromDecimal(1.5, 3.0) = %v, %v, want 2/3, 1/3", a, b)
	}
}

func TestOverround(t *testing.T) {
	tests := []struct {
		name     string
		oddsA    float64
		oddsB    float64
		expected float64
		delta    float64
	}{
		{"Standard -110/-110", 1.9091, 1.9091, 0.0476, 0.001},
		{"Fair book", 1.5, 3.0, 0, 1e-9},
		{"Arbitrage 2.5/1.8", 2.5, 1.8, -0.0444, 0.001},
		{"Invalid odds", 0, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Overround(tt.oddsA, tt.oddsB)
			if math.Abs(result-tt.expected) > tt.delta {
				t.Errorf("Overround(%v, %v) = %v, want %v", tt.oddsA, tt.oddsB, result, tt.expected)
			}
		})
	}
}
