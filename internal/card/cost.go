package card

import (
	"fmt"
	"regexp"
)

// Cost is a card's cost: coins, potions, and/or debt. HasException marks costs
// carrying an asterisk, meaning the printed cost has a modifier.
type Cost struct {
	Coins        int
	Potions      int
	Debt         int
	HasException bool
}

// The three cost shapes used by the Dominion Wiki:
//   {{Cost|5}}, {{Cost|5*}}, {{Cost|4P}}
//   {{Cost|8||8}}
//   {{Cost| | |5}}
var (
	coinCostRe = regexp.MustCompile(`^\{\{Cost\|(\d+)(\*?)(P?)\}\}`)
	debtCostRe = regexp.MustCompile(`^\{\{Cost\|(\d+)\|\|(\d+)\}\}`)
	onlyDebtRe = regexp.MustCompile(`^\{\{Cost\| \| \|(\d+)\}\}`)
)

// ParseRawCost parses a cost from its wiki-encoded form. Input matching none of
// the known shapes yields the zero cost.
func ParseRawCost(raw string) Cost {
	if m := coinCostRe.FindStringSubmatch(raw); m != nil {
		c := Cost{Coins: atoi(m[1]), HasException: m[2] == "*"}
		if m[3] == "P" {
			c.Potions = 1
		}
		return c
	}
	if m := debtCostRe.FindStringSubmatch(raw); m != nil {
		return Cost{Coins: atoi(m[1]), Debt: atoi(m[2])}
	}
	if m := onlyDebtRe.FindStringSubmatch(raw); m != nil {
		return Cost{Debt: atoi(m[1])}
	}
	return Cost{}
}

// atoi converts a digits-only string already matched by a cost pattern.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// String formats the cost like "Cost(8C*, 0P, 0D)".
func (c Cost) String() string {
	exception := ""
	if c.HasException {
		exception = "*"
	}
	return fmt.Sprintf("Cost(%dC%s, %dP, %dD)", c.Coins, exception, c.Potions, c.Debt)
}
