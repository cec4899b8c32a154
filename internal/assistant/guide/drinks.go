package guide

// Drink is one bar menu recommendation.
type Drink struct {
	Name        string
	Description string
	Price       int
}

var drinkMenu = map[string][]Drink{
	"cocktails": {
		{"Merkaba Mule", "Premium vodka, ginger beer, lime - Our signature cocktail!", 14},
		{"Cosmic Old Fashioned", "Bourbon, bitters, orange - Classic with a twist", 16},
		{"Stellar Mojito", "White rum, mint, lime, soda - Refreshing and light", 13},
	},
	"wine": {
		{"House Red", "Smooth and full-bodied - Perfect for any occasion", 10},
		{"House White", "Crisp and refreshing - Great with appetizers", 10},
		{"Champagne", "Celebrate in style with our premium selection", 18},
	},
	"beer": {
		{"Craft IPA", "Hoppy and bold - For beer enthusiasts", 8},
		{"Light Lager", "Smooth and easy-drinking - Always popular", 7},
		{"Stout", "Rich and creamy - Perfect for evening", 9},
	},
	"nonAlcoholic": {
		{"Fresh Lemonade", "Made fresh daily with real lemons", 5},
		{"Craft Soda", "Artisan flavors - Try our seasonal selection", 6},
		{"Premium Coffee", "Locally roasted - Hot or iced", 6},
	},
}

// DrinkRecommendations returns drinks for a preferred type, or a default mix
// across categories when the preference is empty or unknown.
func DrinkRecommendations(drinkType string) []Drink {
	if drinkType != "" {
		if drinks, ok := drinkMenu[drinkType]; ok {
			return drinks
		}
		return drinkMenu["cocktails"]
	}

	mix := make([]Drink, 0, 4)
	mix = append(mix, drinkMenu["cocktails"][:2]...)
	mix = append(mix, drinkMenu["wine"][0], drinkMenu["beer"][0])
	return mix
}
