package services

import (
	"fmt"

	"tripwise/internal/workflow"
	"tripwise/pkg/utils"
)

// FormatSummary renders the final trip state into the report layout. Pure
// template substitution, no I/O.
func FormatSummary(s workflow.State) string {
	total := 0.0
	if s.TotalCost != nil {
		total = *s.TotalCost
	}
	return fmt.Sprintf(`
Trip Summary:
Destination: %s
Dates: %s to %s
Total Cost: $%.2f
Itinerary:
%s
`, s.Location, utils.FormatDate(s.StartDate), utils.FormatDate(s.EndDate), total, s.Itinerary)
}
