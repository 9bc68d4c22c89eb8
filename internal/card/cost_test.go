package card

import "testing"

func TestParseRawCost(t *testing.T) {
	tests := []struct {
		raw  string
		want Cost
	}{
		{"{{Cost|2}}", Cost{Coins: 2}},
		{"{{Cost|5*}}", Cost{Coins: 5, HasException: true}},
		{"{{Cost|4P}}", Cost{Coins: 4, Potions: 1}},
		{"{{Cost|8||8}}", Cost{Coins: 8, Debt: 8}},
		{"{{Cost|4||3}}", Cost{Coins: 4, Debt: 3}},
		{"{{Cost| | |5}}", Cost{Debt: 5}},
		{"{{Cost|0}}", Cost{}},
		{"not a cost", Cost{}},
		{"", Cost{}},
	}
	for _, tt := range tests {
		if got := ParseRawCost(tt.raw); got != tt.want {
			t.Errorf("ParseRawCost(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCostString(t *testing.T) {
	tests := []struct {
		cost Cost
		want string
	}{
		{Cost{Coins: 2}, "Cost(2C, 0P, 0D)"},
		{Cost{Coins: 8, HasException: true}, "Cost(8C*, 0P, 0D)"},
		{Cost{Coins: 4, Potions: 1}, "Cost(4C, 1P, 0D)"},
		{Cost{Coins: 4, Debt: 3}, "Cost(4C, 0P, 3D)"},
	}
	for _, tt := range tests {
		if got := tt.cost.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.cost, got, tt.want)
		}
	}
}
