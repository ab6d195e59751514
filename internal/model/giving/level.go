package giving

// Level is a suggested donation amount shown on the giving page.
type Level struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Amount      int    `json:"amount"`
	Description string `json:"description,omitempty"`
}

// Seed provides the default giving levels.
func Seed() []Level {
	return []Level{
		{ID: "supporter", Label: "Supporter", Amount: 25, Description: "Provides school supplies for one student."},
		{ID: "advocate", Label: "Advocate", Amount: 50, Description: "Funds a health screening visit."},
		{ID: "champion", Label: "Champion", Amount: 100, Description: "Sponsors a month of vocational training."},
		{ID: "benefactor", Label: "Benefactor", Amount: 250, Description: "Seeds a small-business microloan."},
	}
}
