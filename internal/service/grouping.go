package service

import (
	"time"

	"costmanager/models"
)

// groupCostsByCategory builds the per-category breakdown of costs for the
// calendar window (year, month). The result always contains one group per
// registered category, in registry order, so empty categories show up as
// empty lists rather than being omitted. Costs outside the window, and costs
// carrying a category missing from the registry, are dropped silently.
// Within a group, entries keep the order the costs were retrieved in.
func groupCostsByCategory(costs []models.Cost, categories []string, year, month int) []models.CategoryGroup {
	byCategory := make(map[string][]models.CostEntry, len(categories))
	for _, c := range categories {
		byCategory[c] = []models.CostEntry{}
	}

	for _, cost := range costs {
		date := cost.Date.UTC()
		if date.Year() != year || date.Month() != time.Month(month) {
			continue
		}
		entries, registered := byCategory[cost.Category]
		if !registered {
			continue
		}
		byCategory[cost.Category] = append(entries, models.CostEntry{
			Sum:         cost.Sum,
			Description: cost.Description,
			Day:         date.Day(),
		})
	}

	groups := make([]models.CategoryGroup, 0, len(categories))
	for _, c := range categories {
		groups = append(groups, models.CategoryGroup{Category: c, Entries: byCategory[c]})
	}
	return groups
}
