package locations

// Sample returns an atlas seeded with demo places.
func Sample() *Atlas {
	return New(Snapshot{
		Saved: []Saved{
			{
				ID: 1, Name: "San Francisco Bay Area", Type: "Home", Rating: 4.8,
				Details: cityDetails("Very High", "$135,000", "Excellent", "4.5", "Technology", "Mild"),
				Notes:   "Current home base. Great tech scene but high cost of living.",
				Image:   "🌉",
			},
			{
				ID: 2, Name: "New York City", Type: "Work Interest", Rating: 4.5,
				Details: cityDetails("Very High", "$142,000", "Excellent", "4.0", "Finance, Media, Tech", "Four Seasons"),
				Notes:   "Considering for next career move. Strong finance and tech sectors.",
				Image:   "🗽",
			},
			{
				ID: 3, Name: "Austin, TX", Type: "Future Home", Rating: 4.6,
				Details: cityDetails("Moderate", "$110,000", "Very Good", "4.7", "Technology, Manufacturing", "Hot Summers"),
				Notes:   "Considering for relocation in next 2-3 years. Good balance of tech jobs and cost of living.",
				Image:   "🤠",
			},
			{
				ID: 4, Name: "Seattle, WA", Type: "Work Interest", Rating: 4.4,
				Details: cityDetails("High", "$125,000", "Excellent", "4.3", "Technology, Aerospace", "Rainy"),
				Notes:   "Good tech hub alternative to SF. Amazon and Microsoft presence.",
				Image:   "☔",
			},
		},
		History: []History{
			{ID: 1, Name: "Boston, MA", Period: "2016-2019", Role: "Education",
				Highlights: []string{"Graduated from MIT", "Internship at Boston Consulting Group"}, Image: "🎓"},
			{ID: 2, Name: "Chicago, IL", Period: "2014-2016", Role: "First Job",
				Highlights: []string{"Entry-level position at Tribune Media", "Built network in digital media"}, Image: "🏙️"},
			{ID: 3, Name: "Los Angeles, CA", Period: "Summer 2015", Role: "Internship",
				Highlights: []string{"Summer internship at Disney", "Entertainment industry exposure"}, Image: "🎬"},
		},
		Explore: []Explore{
			{
				ID: 1, Name: "Denver, CO", Match: "94% Match",
				Details: exploreDetails("Moderate", "12% (Tech)", "Outdoor activities", "$105,000 avg"),
				Reasons: []string{"Growing tech hub", "Outdoor lifestyle", "Lower cost than SF or NYC"},
				Image:   "⛰️",
			},
			{
				ID: 2, Name: "Singapore", Match: "88% Match",
				Details: exploreDetails("High", "15% (Finance/Tech)", "Urban, International", "$120,000 avg"),
				Reasons: []string{"International experience", "Gateway to Asia markets", "Strong financial sector"},
				Image:   "🇸🇬",
			},
			{
				ID: 3, Name: "Toronto, Canada", Match: "86% Match",
				Details: exploreDetails("High", "10% (Tech/Finance)", "Urban, Multicultural", "$95,000 avg"),
				Reasons: []string{"Growing tech scene", "Quality healthcare", "Multicultural environment"},
				Image:   "🇨🇦",
			},
		},
	})
}

func cityDetails(cost, salary, market, quality, industry, climate string) []Detail {
	return []Detail{
		{"Cost of living", cost},
		{"Avg salary", salary},
		{"Job market", market},
		{"Quality of life", quality},
		{"Industry", industry},
		{"Climate", climate},
	}
}

func exploreDetails(cost, growth, lifestyle, salary string) []Detail {
	return []Detail{
		{"Cost of living", cost},
		{"Job growth", growth},
		{"Lifestyle", lifestyle},
		{"Salary", salary},
	}
}
