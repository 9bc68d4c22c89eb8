package card

import (
	"sort"
	"strings"
)

// Category is a card's category: regular kingdom cards plus the non-card
// categories introduced by later expansions.
type Category string

const (
	CategoryCard     Category = "Card"
	CategoryEvent    Category = "Event"
	CategoryLandmark Category = "Landmark"
	CategoryBoon     Category = "Boon"
	CategoryHex      Category = "Hex"
	CategoryState    Category = "State"
	CategoryArtifact Category = "Artifact"
	CategoryProject  Category = "Project"
)

var categories = map[Category]bool{
	CategoryCard:     true,
	CategoryEvent:    true,
	CategoryLandmark: true,
	CategoryBoon:     true,
	CategoryHex:      true,
	CategoryState:    true,
	CategoryArtifact: true,
	CategoryProject:  true,
}

// KnownCategory reports whether name is a valid card category.
func KnownCategory(name string) bool {
	return categories[Category(name)]
}

// cardTypes maps each card type (lowercased) to whether cards of that type
// occupy a supply pile. A card with any out-of-supply type is not in the supply.
var cardTypes = map[string]bool{
	"action":    true,
	"treasure":  true,
	"victory":   true,
	"curse":     true,
	"attack":    true,
	"duration":  true,
	"reaction":  true,
	"castle":    false,
	"doom":      true,
	"fate":      true,
	"gathering": true,
	"heirloom":  false,
	"knight":    false,
	"looter":    true,
	"night":     true,
	"prize":     false,
	"reserve":   true,
	"ruins":     false,
	"shelter":   false,
	"spirit":    false,
	"traveller": true,
	"zombie":    false,
}

// TypeInSupply reports whether the given card type counts toward the supply.
// Unknown types do not.
func TypeInSupply(cardType string) bool {
	return cardTypes[strings.ToLower(cardType)]
}

// FilterableTypes returns the types accepted as -f/--filter-types choices:
// supply-eligible types except curse, which only appears on the basic Curse card.
func FilterableTypes() []string {
	types := make([]string, 0, len(cardTypes))
	for t, inSupply := range cardTypes {
		if inSupply && t != "curse" {
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

// basicCards are the cards used in all or most games, by normalized name.
var basicCards = map[string]bool{
	"copper":   true,
	"silver":   true,
	"gold":     true,
	"estate":   true,
	"duchy":    true,
	"province": true,
	"curse":    true,
	"platinum": true,
	"colony":   true,
	"potion":   true,
}

// IsBasicName reports whether name identifies one of the basic cards.
func IsBasicName(name string) bool {
	return basicCards[strings.ToLower(name)]
}
