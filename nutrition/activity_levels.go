package nutrition

// ActivityLevel is one row of the static activity reference table.
// Value is the lookup key the onboarding form submits; Label is what it shows.
type ActivityLevel struct {
	Value              string  `json:"value"`
	Label              string  `json:"label"`
	ActivityFactor     float64 `json:"activity_factor"`
	ProteinFactorPerKg float64 `json:"protein_factor_per_kg"`
}

// DefaultActivityLevels returns the stock table, ordered least to most active.
func DefaultActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		{Value: "sedentary", Label: "Sedentary (little or no exercise)", ActivityFactor: 1.2, ProteinFactorPerKg: 0.8},
		{Value: "light", Label: "Lightly active (1-3 days/week)", ActivityFactor: 1.375, ProteinFactorPerKg: 1.0},
		{Value: "moderate", Label: "Moderately active (3-5 days/week)", ActivityFactor: 1.55, ProteinFactorPerKg: 1.2},
		{Value: "active", Label: "Active (6-7 days/week)", ActivityFactor: 1.725, ProteinFactorPerKg: 1.6},
		{Value: "very_active", Label: "Very active (hard training daily)", ActivityFactor: 1.9, ProteinFactorPerKg: 1.8},
	}
}
