package trend

import "github.com/northwatch/harmscan/internal/domain"

// Maximum incidents returned for one lookup.
const maxIncidents = 3

// incidentCatalog is a curated set of documented misinformation events,
// one or more per tracked category.
var incidentCatalog = []domain.Incident{
	{
		Category:    "vaccine_misinfo",
		Date:        "2024-01-15",
		Description: "Vaccine microchip claims surged, leading to protest organization",
		Outcome:     "Debunked by health authorities, but caused temporary vaccine hesitancy spike",
	},
	{
		Category:    "health_misinfo",
		Date:        "2024-02-03",
		Description: "False cure claims spread rapidly on social media",
		Outcome:     "Led to hospitalizations from unsafe self-medication",
	},
	{
		Category:    "conspiracy",
		Date:        "2023-12-20",
		Description: "Coordinated conspiracy narrative targeting specific groups",
		Outcome:     "Increased online harassment and real-world confrontations",
	},
	{
		Category:    "political_misinfo",
		Date:        "2024-01-28",
		Description: "Election fraud claims without evidence",
		Outcome:     "Undermined trust in democratic processes",
	},
	{
		Category:    "social_misinfo",
		Date:        "2024-02-10",
		Description: "False claims about community poisoning food supplies",
		Outcome:     "Led to boycotts and community tensions",
	},
}

// SimilarIncidents returns catalog entries matching the detected
// categories, capped at three.
func SimilarIncidents(categories []string) []domain.Incident {
	want := make(map[string]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}

	var relevant []domain.Incident
	for _, inc := range incidentCatalog {
		if want[inc.Category] {
			relevant = append(relevant, inc)
			if len(relevant) == maxIncidents {
				break
			}
		}
	}
	return relevant
}
