package filters

// Exclusions holds, per category, values removed from the filter output.
type Exclusions map[Category]map[string]struct{}

// baseIngredients are seasonings and additives present in most dishes; as
// filters they would match nearly everything.
var baseIngredients = []string{
	"Artificial Flavors",
	"Baking Powder",
	"Baking Soda",
	"Black Pepper",
	"Canola Oil",
	"Citric Acid",
	"Cornstarch",
	"Natural Flavors",
	"Pepper",
	"Potassium Sorbate",
	"Salt",
	"Salt And Pepper",
	"Sodium Benzoate",
	"Spices",
	"Sugar",
	"Vegetable Oil",
	"Vinegar",
	"Water",
	"Xanthan Gum",
	"Yeast",
}

// DefaultExclusions excludes base ingredients; other categories are empty.
func DefaultExclusions() Exclusions {
	return NewExclusions(map[string][]string{string(Ingredients): baseIngredients})
}

// NewExclusions builds Exclusions from category name -> values, as found in
// the config file. Unknown category names are kept but never match.
func NewExclusions(lists map[string][]string) Exclusions {
	ex := make(Exclusions, len(lists))
	for cat, values := range lists {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		ex[Category(cat)] = set
	}
	return ex
}

// Has reports whether name is excluded from c.
func (ex Exclusions) Has(c Category, name string) bool {
	_, ok := ex[c][name]
	return ok
}
