package card

// Special randomizer cards stand in for card families absent from the wiki card
// list. Drawing one means the game includes the whole stack it represents.

func mustSet(name string) GameSet {
	g, ok := SetForName(name)
	if !ok {
		panic("unknown game set: " + name)
	}
	return g
}

// SpecialTypeCards returns the stand-ins replacing several unique cards of the
// same type. The slice is freshly built so callers may not alias entries across
// catalogs.
func SpecialTypeCards() []*Card {
	return []*Card{
		newCard("Knights", CategoryCard, []string{"Action", "Attack", "Knight"}, mustSet("Dark Ages"), Cost{Coins: 5}, "", true),
		newCard("Castles", CategoryCard, []string{"Victory", "Castle"}, mustSet("Empires"), Cost{Coins: 3}, "", true),
	}
}

// SplitPileCards returns the stand-ins replacing pairs of cards that exist only
// in split piles. Types listed are those of the top card in each pile.
func SplitPileCards() []*Card {
	return []*Card{
		newCard("Encampment/Plunder", CategoryCard, []string{"Action"}, mustSet("Empires"), Cost{Coins: 2}, "", true),
		newCard("Patrician/Emporium", CategoryCard, []string{"Action"}, mustSet("Empires"), Cost{Coins: 2}, "", true),
		newCard("Settlers/Bustling Village", CategoryCard, []string{"Action"}, mustSet("Empires"), Cost{Coins: 2}, "", true),
		newCard("Catapult/Rocks", CategoryCard, []string{"Action", "Attack"}, mustSet("Empires"), Cost{Coins: 3}, "", true),
		newCard("Gladiator/Fortune", CategoryCard, []string{"Action"}, mustSet("Empires"), Cost{Coins: 3}, "", true),
		newCard("Sauna/Avanto", CategoryCard, []string{"Action"}, mustSet("Promo"), Cost{Coins: 4}, "", true),
	}
}
