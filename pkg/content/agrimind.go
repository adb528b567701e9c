// Package content holds the literal copy of the AgriMind landing page.
package content

import "github.com/agrimind/landing/pkg/models"

// ConfirmationText is shown once the visitor has joined the waitlist.
const ConfirmationText = "Thanks! Well reach out within 24 hours."

// SignupErrorText is shown when the signup sink rejects a submission.
const SignupErrorText = "We couldn't add you right now. Please try again."

// AgriMind returns the page content. Every call returns fresh slices.
func AgriMind() models.PageContent {
	return models.PageContent{
		Brand: "AgriMind",
		Stats: []models.Stat{
			{Label: "Input savings", Value: "12–28%"},
			{Label: "Yield lift", Value: "5–15%"},
			{Label: "Time saved", Value: "6+ hrs/wk"},
		},
		Benefits: []models.Benefit{
			{
				Icon:  "lucide--sprout",
				Title: "Higher yields, fewer inputs",
				Text:  "AI-driven recommendations reduce fertilizer and water use while boosting output across row crops, orchards, and greenhouses.",
			},
			{
				Icon:  "lucide--satellite",
				Title: "Field-level intelligence",
				Text:  "Fuses satellite, drone, and in-field sensors to detect stress early and prescribe the next best action per zone.",
			},
			{
				Icon:  "lucide--cloud-sun",
				Title: "Climate resilience",
				Text:  "Plan around weather and disease pressure with predictive models that adapt to your local conditions.",
			},
		},
		Checklist: []string{
			"Ingest satellite, drone, soil and weather data automatically",
			"Detect stress and variability at the zone level",
			"Generate rate maps and task lists for equipment and crews",
			"Close the loop with outcomes to improve every week",
		},
		UseCases: []models.UseCase{
			{Title: "Irrigation optimization", Text: "Cut water use while maintaining yield with zone-level evapotranspiration and soil moisture models."},
			{Title: "Nutrient management", Text: "Right rate, right place. Variable-rate nitrogen and potassium with measurable savings."},
			{Title: "Disease & stress scouting", Text: "Proactive alerts route crews before issues spread, reducing loss events."},
		},
		FAQ: []models.FAQEntry{
			{
				Question: "Who owns the data?",
				Answer:   "You do. We provide export tools and honor data portability. We use anonymized aggregates to improve models.",
			},
			{
				Question: "How fast is setup?",
				Answer:   "Most pilots go live in 7 days. We integrate with satellite providers and common equipment clouds.",
			},
			{
				Question: "What does success look like?",
				Answer:   "Measured input savings and yield lift per field. We benchmark before and after and share a simple ROI report.",
			},
		},
	}
}
