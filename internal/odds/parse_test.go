package odds

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Decimal", "2.5", 2.5},
		{"Decimal trailing zero", "1.80", 1.8},
		{"Decimal with spaces", "  3 ", 3.0},
		{"American underdog", "+150", 2.5},
		{"American favorite", "-200", 1.5},
		{"American standard", "-110", 1.9091},
		{"Fractional", "5/2", 3.5},
		{"Fractional odds-on", "1/4", 1.25},
		{"Fractional spaced", "11 / 10", 2.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Blank", "   "},
		{"Text", "abc"},
		{"Evens stake", "1.0"},
		{"Below one", "0.5"},
		{"Zero", "0"},
		{"American too small", "+50"},
		{"Sign only", "-"},
		{"Fraction zero denominator", "5/0"},
		{"Fraction negative", "-5/2"},
		{"Fraction missing part", "5/"},
		{"NaN", "NaN"},
		{"Infinity", "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, ErrInvalidOdds) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidOdds", tt.input, err)
			}
		})
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Number", `2.5`, 2.5},
		{"Decimal string", `"1.8"`, 1.8},
		{"American string", `"+150"`, 2.5},
		{"Fractional string", `"5/2"`, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if math.Abs(float64(v)-tt.expected) > 0.0001 {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, v, tt.expected)
			}
		})
	}
}

func TestValueUnmarshalJSONInvalid(t *testing.T) {
	for _, input := range []string{`null`, `"abc"`, `0`, `-3`, `"1/0"`} {
		var v Value
		err := json.Unmarshal([]byte(input), &v)
		if !errors.Is(err, ErrInvalidOdds) {
			t.Errorf("Unmarshal(%s) error = %v, want ErrInvalidOdds", input, err)
		}
	}
}

func TestValueMarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Odds Value `json:"odds"`
	}{Odds: 2.5})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"odds":2.5}` {
		t.Errorf("Marshal = %s, want {\"odds\":2.5}", data)
	}
}
