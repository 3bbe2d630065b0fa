package api

import "github.com/brightpath-labs/brightpath/internal/services"

// SeedApplications returns the demo cohort in persisted form. Used on first
// run, when no snapshot exists yet.
func SeedApplications() []*Application {
	src := services.DefaultApplications()
	out := make([]*Application, 0, len(src))
	for _, app := range src {
		out = append(out, fromServiceApplication(app))
	}
	return out
}
