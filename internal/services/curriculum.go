package services

// WeekModule is one entry of the fixed 8-week curriculum. The catalog is
// static program content; submissions reference it by week number.
type WeekModule struct {
	Week        int    `json:"week"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Brief       string `json:"brief"`
	Task        string `json:"task"`
}

var curriculum = []WeekModule{
	{Week: 1, Title: "Identity & Goal Map", Description: "Executive Framing", Brief: "Executive identity starts with framing. You are no longer a student following instructions; you are a strategist identifying opportunities.", Task: "Draft your 1-year goal map."},
	{Week: 2, Title: "The Value Scenarios", Description: "Systems Intelligence", Brief: "Capital flows toward clarity. Learn how resources transform into impact and how to recognize strategic patience.", Task: "Analyze a community investment."},
	{Week: 3, Title: "Friction Audit", Description: "Opportunity Diagnosis", Brief: "Opportunities are diagnosed, not found. Learn to see the friction in daily systems that others ignore.", Task: "Document 3 friction points."},
	{Week: 4, Title: "Status Update", Description: "Peer Briefing", Brief: "Communication is the final step of strategy. In this live session, you will learn to navigate peer feedback with composure.", Task: "Prepare a status update."},
	{Week: 5, Title: "Decision Matrix", Description: "Weighted Logic", Brief: "Elite decisions are computed. Use objective, weighted criteria to justify your focus.", Task: "Create a matrix for a high-stakes scenario."},
	{Week: 6, Title: "Executive Slide", Description: "High-Fidelity Briefs", Brief: "Clarity is authority. Structure your narrative into five distinct parts for maximum cognitive impact.", Task: "Summarize your strategy in 5 points."},
	{Week: 7, Title: "AI Pitch", Description: "Authority Practice", Brief: "Presence is about the space between words. Practice maintaining authority during high-pressure Q&A.", Task: "Engage with the Live AI Mentor."},
	{Week: 8, Title: "Final Expansion", Description: "Portfolio Synthesis", Brief: "Your 8-week journey concludes. Consolidate your growth into a final 12-page expansion strategy.", Task: "Finalize your portfolio."},
}

// Curriculum returns the full module catalog in week order.
func Curriculum() []WeekModule {
	return append([]WeekModule(nil), curriculum...)
}

// ModuleForWeek returns the catalog entry for week, or nil when out of range.
func ModuleForWeek(week int) *WeekModule {
	for i := range curriculum {
		if curriculum[i].Week == week {
			m := curriculum[i]
			return &m
		}
	}
	return nil
}
