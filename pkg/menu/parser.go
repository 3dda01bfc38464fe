// CLAUDE:SUMMARY Record parser turning one menu CSV (file name + rows) into Dishes, with placeholder and skip handling.
package menu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hazyhaar/stanfood-menus/pkg/dict"
	"github.com/hazyhaar/stanfood-menus/pkg/text"
)

// Row defects. A row failing with one of these is skipped, not fatal.
var (
	ErrShortRow  = errors.New("row has fewer than 3 columns")
	ErrEmptyName = errors.New("dish name is empty")
)

// Result is the outcome of parsing one menu file.
type Result struct {
	Origin      Origin
	Dishes      []Dish
	Skipped     int
	Placeholder bool
}

// Parser builds Dishes from menu records.
type Parser struct {
	corrector *dict.Corrector
	logger    *slog.Logger
}

// NewParser returns a Parser using c for all text corrections.
// A nil logger falls back to slog.Default().
func NewParser(c *dict.Corrector, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{corrector: c, logger: logger}
}

// Parse converts the records of the file named filename. records[0] is the
// header row (Name, Ingredients, Allergens). A file without data rows yields
// a single placeholder Dish; rows that cannot be used are skipped.
func (p *Parser) Parse(filename string, records [][]string) Result {
	origin, rawDate, ok := parseFilename(filename)
	switch {
	case !ok:
		p.logger.Warn("menu file name not recognized", "file", filename)
	case origin.Date == "":
		p.logger.Warn("invalid date in menu file name", "file", filename, "date", rawDate)
	}
	res := Result{Origin: origin}

	if len(records) == 0 {
		p.logger.Warn("empty menu file or missing header", "file", filename)
		return placeholderResult(res)
	}

	for i, row := range records[1:] {
		d, err := p.parseRow(row, origin)
		if err != nil {
			res.Skipped++
			p.logger.Warn("skipping menu row", "file", filename, "row", i+2, "error", err)
			continue
		}
		res.Dishes = append(res.Dishes, d)
	}

	if len(records) == 1 {
		p.logger.Warn("no data rows in menu file", "file", filename)
		return placeholderResult(res)
	}
	return res
}

// ParseFile reads path and parses it.
func (p *Parser) ParseFile(path string, opts ReadOptions) (Result, error) {
	records, err := ReadFile(path, opts)
	if err != nil {
		return Result{}, err
	}
	return p.Parse(path, records), nil
}

func (p *Parser) parseRow(row []string, origin Origin) (Dish, error) {
	if len(row) < 3 {
		return Dish{}, fmt.Errorf("%w: %q", ErrShortRow, row)
	}
	name := text.Normalize(row[0])
	ingredientList := text.Normalize(row[1])
	allergenList := text.Normalize(row[2])

	dishName := p.corrector.DishName(name)
	if dishName == "" {
		return Dish{}, fmt.Errorf("%w: %q", ErrEmptyName, row[0])
	}

	d := Dish{
		Name:        dishName,
		Ingredients: []string{},
		Allergens:   []string{},
		MealTime:    origin.MealTime,
		Date:        origin.Date,
		Location:    origin.Location,
	}
	for _, tok := range text.Split(ingredientList) {
		if v := p.corrector.IngredientName(tok); v != "" {
			d.Ingredients = append(d.Ingredients, v)
		}
	}
	for _, tok := range text.SplitAllergens(allergenList) {
		if v := p.corrector.Ingredient(tok); v != "" {
			d.Allergens = append(d.Allergens, v)
		}
	}
	return d, nil
}

func placeholderResult(res Result) Result {
	res.Dishes = []Dish{res.Origin.placeholder()}
	res.Placeholder = true
	return res
}
