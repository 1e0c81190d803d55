package provider

// FoodResult is the structured result from a food database provider.
type FoodResult struct {
	// Name is the product name as the provider reports it. Falls back to
	// the original query when the provider has no name for the match.
	Name string
	// KcalPer100g is the energy density of the product.
	KcalPer100g float64
}
