package openfoodfacts

// apiResponse is the subset of the OpenFoodFacts search payload the tracker
// reads.
type apiResponse struct {
	Products []apiProduct `json:"products"`
}

// apiProduct represents a single matched product.
type apiProduct struct {
	ProductName string        `json:"product_name"`
	Nutriments  apiNutriments `json:"nutriments"`
}

// apiNutriments carries per-100g energy values. Both fields are pointers so
// an absent value can be told apart from a real zero. energy-kcal_100g is in
// kcal; energy_100g is in kJ.
type apiNutriments struct {
	EnergyKcal100g *float64 `json:"energy-kcal_100g"`
	Energy100g     *float64 `json:"energy_100g"`
}
