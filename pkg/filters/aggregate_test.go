package filters

import (
	"reflect"
	"sort"
	"testing"

	"github.com/hazyhaar/stanfood-menus/pkg/menu"
)

func sampleDishes() []menu.Dish {
	return []menu.Dish{
		{Name: "Tomato Sauce", Ingredients: []string{"Tomato", "Garlic", "Salt"}, Allergens: []string{"Vegan", "GF"}, MealTime: "Lunch", Date: "09-15-2024", Location: "Wilbur"},
		{Name: "Garlic Bread", Ingredients: []string{"Bread", "Garlic"}, Allergens: []string{"Wheat"}, MealTime: "Lunch", Date: "09-15-2024", Location: "Wilbur"},
		{Name: "Tomato Sauce", Ingredients: []string{"Tomato"}, Allergens: []string{"Vegan"}, MealTime: "Dinner", Date: "09-15-2024", Location: "Stern"},
		{Ingredients: []string{}, Allergens: []string{}, MealTime: "Brunch", Date: "09-16-2024", Location: "Ricker"},
	}
}

func TestAggregate_Empty(t *testing.T) {
	table := Aggregate(nil, DefaultExclusions())
	if len(table) != len(Categories) {
		t.Fatalf("categories = %d, want %d", len(table), len(Categories))
	}
	for _, c := range Categories {
		if table[c] == nil || len(table[c]) != 0 {
			t.Errorf("%s = %#v, want empty non-nil", c, table[c])
		}
	}
}

func TestAggregate_Counts(t *testing.T) {
	table := Aggregate(sampleDishes(), DefaultExclusions())

	tests := []struct {
		cat  Category
		want []Entry
	}{
		{Dishes, []Entry{{"Garlic Bread", 1}, {"Tomato Sauce", 2}}},
		{Ingredients, []Entry{{"Bread", 1}, {"Garlic", 2}, {"Tomato", 2}}},
		{Allergens, []Entry{{"GF", 1}, {"Vegan", 2}, {"Wheat", 1}}},
		{Dates, []Entry{{"09-15-2024", 3}, {"09-16-2024", 0}}},
		{Locations, []Entry{{"Ricker", 0}, {"Stern", 1}, {"Wilbur", 2}}},
		{MealTimes, []Entry{{"Brunch", 0}, {"Dinner", 1}, {"Lunch", 2}}},
	}
	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			if got := table[tt.cat]; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}

func TestAggregate_DishCountsSumToRealDishes(t *testing.T) {
	dishes := sampleDishes()
	table := Aggregate(dishes, nil)

	named := 0
	for _, d := range dishes {
		if !d.IsPlaceholder() {
			named++
		}
	}
	for _, c := range []Category{Dishes, Dates, Locations, MealTimes} {
		sum := 0
		for _, e := range table[c] {
			sum += e.Count
		}
		if sum != named {
			t.Errorf("%s counts sum to %d, want %d", c, sum, named)
		}
	}
}

func TestAggregate_Sorted(t *testing.T) {
	table := Aggregate(sampleDishes(), nil)
	for _, c := range Categories {
		entries := table[c]
		if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name }) {
			t.Errorf("%s not sorted: %v", c, entries)
		}
	}
}

func TestAggregate_Exclusions(t *testing.T) {
	ex := NewExclusions(map[string][]string{
		"ingredients": {"Salt", "Garlic"},
		"locations":   {"Ricker"},
	})
	table := Aggregate(sampleDishes(), ex)

	for _, e := range table[Ingredients] {
		if ex.Has(Ingredients, e.Name) {
			t.Errorf("excluded ingredient %q present", e.Name)
		}
	}
	for _, e := range table[Locations] {
		if e.Name == "Ricker" {
			t.Error("excluded location Ricker present")
		}
	}
	if len(table[Dishes]) != 2 {
		t.Errorf("dishes = %v, want untouched", table[Dishes])
	}
}

func TestAggregate_DropsEmptyValues(t *testing.T) {
	dishes := []menu.Dish{{Name: "Soup", Ingredients: []string{"Water"}, Allergens: []string{}}}
	table := Aggregate(dishes, nil)
	for _, c := range []Category{Dates, Locations, MealTimes} {
		if len(table[c]) != 0 {
			t.Errorf("%s = %v, want empty", c, table[c])
		}
	}
	if want := []Entry{{"Water", 1}}; !reflect.DeepEqual(table[Ingredients], want) {
		t.Errorf("ingredients = %v, want %v", table[Ingredients], want)
	}
}

func TestDefaultExclusions(t *testing.T) {
	ex := DefaultExclusions()
	for _, name := range []string{"Salt", "Water", "Sugar"} {
		if !ex.Has(Ingredients, name) {
			t.Errorf("%q not excluded", name)
		}
	}
	if ex.Has(Dishes, "Salt") {
		t.Error("dishes should have no default exclusions")
	}
}
