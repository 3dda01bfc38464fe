// CLAUDE:SUMMARY Dish model: one menu item at one location, date and meal; empty-name placeholders keep a meal visible.
package menu

// Dish is one parsed menu item. A Dish with an empty Name is a placeholder
// that only records that a location served a meal on a date.
type Dish struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
	MealTime    string   `json:"meal_time"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
}

// IsPlaceholder reports whether d carries no actual menu item.
func (d Dish) IsPlaceholder() bool {
	return d.Name == ""
}

// Origin is the location, date and meal decoded from a menu file name.
// Fields are empty when the name could not be decoded.
type Origin struct {
	Location string
	Date     string
	MealTime string
}

func (o Origin) placeholder() Dish {
	return Dish{
		Ingredients: []string{},
		Allergens:   []string{},
		MealTime:    o.MealTime,
		Date:        o.Date,
		Location:    o.Location,
	}
}
