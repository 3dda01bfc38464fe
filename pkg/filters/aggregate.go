// CLAUDE:SUMMARY Aggregates Dishes into sorted, count-annotated filter tables per category with exclusion lists.
package filters

import (
	"sort"

	"github.com/hazyhaar/stanfood-menus/pkg/menu"
)

// Category names one filter table.
type Category string

const (
	Allergens   Category = "allergens"
	Dates       Category = "dates"
	Dishes      Category = "dishes"
	Ingredients Category = "ingredients"
	Locations   Category = "locations"
	MealTimes   Category = "meal_times"
)

// Categories lists every category in output order.
var Categories = []Category{Allergens, Dates, Dishes, Ingredients, Locations, MealTimes}

// Entry is one distinct value of a category and the number of real dishes
// carrying it.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Table maps every category to its sorted entries.
type Table map[Category][]Entry

// Aggregate counts dishes per category. Only dishes with a name are
// counted; dates, locations and meal times seen on placeholders still get a
// zero entry. Empty and excluded values never appear.
func Aggregate(dishes []menu.Dish, ex Exclusions) Table {
	counts := make(map[Category]map[string]int, len(Categories))
	for _, c := range Categories {
		counts[c] = make(map[string]int)
	}

	for _, d := range dishes {
		seed(counts[Dates], d.Date)
		seed(counts[Locations], d.Location)
		seed(counts[MealTimes], d.MealTime)
		if d.IsPlaceholder() {
			continue
		}

		counts[Dishes][d.Name]++
		counts[Dates][d.Date]++
		counts[Locations][d.Location]++
		counts[MealTimes][d.MealTime]++
		for _, a := range d.Allergens {
			counts[Allergens][a]++
		}
		for _, i := range d.Ingredients {
			counts[Ingredients][i]++
		}
	}

	table := make(Table, len(Categories))
	for _, c := range Categories {
		table[c] = ex.entries(c, counts[c])
	}
	return table
}

func seed(m map[string]int, key string) {
	if _, ok := m[key]; !ok {
		m[key] = 0
	}
}

func (ex Exclusions) entries(c Category, counts map[string]int) []Entry {
	out := make([]Entry, 0, len(counts))
	for name, n := range counts {
		if name == "" || ex.Has(c, name) {
			continue
		}
		out = append(out, Entry{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
