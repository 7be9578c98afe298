package equipdocs

import (
	"testing"
)

func TestParseFormula(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		wantLeft string
		wantOp   string
		wantRight string
		wantFull string
	}{
		{
			name:      "greater than with arithmetic left side",
			input:     "axial_stiffness / 2 * (displacement_pk_pk - travel_required) / 9.81 > payload_mass",
			wantLeft:  "axial_stiffness / 2 * (displacement_pk_pk - travel_required) / 9.81",
			wantOp:    ">",
			wantRight: "payload_mass",
			wantFull:  "axial_stiffness / 2 * (displacement_pk_pk - travel_required) / 9.81 > payload_mass",
		},
		{
			name:      "greater or equal is not split as bare greater",
			input:     "force_available >= force_required",
			wantLeft:  "force_available",
			wantOp:    ">=",
			wantRight: "force_required",
			wantFull:  "force_available >= force_required",
		},
		{
			name:      "less or equal",
			input:     "moving_mass <= payload_limit",
			wantLeft:  "moving_mass",
			wantOp:    "<=",
			wantRight: "payload_limit",
			wantFull:  "moving_mass <= payload_limit",
		},
		{
			name:      "equality",
			input:     "mode_count == 1",
			wantLeft:  "mode_count",
			wantOp:    "==",
			wantRight: "1",
			wantFull:  "mode_count == 1",
		},
		{
			name:      "inequality",
			input:     "mount_type != \"free\"",
			wantLeft:  "mount_type",
			wantOp:    "!=",
			wantRight: "\"free\"",
			wantFull:  "mount_type != \"free\"",
		},
		{
			name:      "less than",
			input:     "stroke < travel_limit",
			wantLeft:  "stroke",
			wantOp:    "<",
			wantRight: "travel_limit",
			wantFull:  "stroke < travel_limit",
		},
		{
			name:      "split happens at first occurrence",
			input:     "a > b > c",
			wantLeft:  "a",
			wantOp:    ">",
			wantRight: "b > c",
			wantFull:  "a > b > c",
		},
		{
			name:     "no comparator yields display-only expression",
			input:    "axial_stiffness * 2",
			wantLeft: "axial_stiffness * 2",
			wantFull: "axial_stiffness * 2",
		},
		{
			name:      "surrounding whitespace is trimmed",
			input:     "  a + b  >  c  ",
			wantLeft:  "a + b",
			wantOp:    ">",
			wantRight: "c",
			wantFull:  "a + b  >  c",
		},
		{
			name:      "enriched value is unwrapped transparently",
			input:     EnrichedValue("x > y", Annotation{Unit: "N"}),
			wantLeft:  "x",
			wantOp:    ">",
			wantRight: "y",
			wantFull:  "x > y",
		},
		{
			name:     "non-string input is coerced",
			input:    42,
			wantLeft: "42",
			wantFull: "42",
		},
		{
			name:     "nil-valued wrapper yields empty expression",
			input:    Value{},
			wantLeft: "",
			wantFull: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFormula(tt.input)

			if got.Left != tt.wantLeft {
				t.Errorf("Left = %q, want %q", got.Left, tt.wantLeft)
			}
			if got.Operator != tt.wantOp {
				t.Errorf("Operator = %q, want %q", got.Operator, tt.wantOp)
			}
			if got.Right != tt.wantRight {
				t.Errorf("Right = %q, want %q", got.Right, tt.wantRight)
			}
			if got.Full != tt.wantFull {
				t.Errorf("Full = %q, want %q", got.Full, tt.wantFull)
			}

			if tt.wantOp == "" && got.HasComparator() {
				t.Error("HasComparator() = true for bare expression")
			}
			if tt.wantOp != "" && !got.HasComparator() {
				t.Error("HasComparator() = false for comparison")
			}
		})
	}
}

func TestParseFormulaIsPure(t *testing.T) {
	t.Parallel()

	const expr = "a / 2 >= b"
	first := ParseFormula(expr)
	second := ParseFormula(expr)

	if *first != *second {
		t.Errorf("repeated parses differ: %+v vs %+v", first, second)
	}
}
