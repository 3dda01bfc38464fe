package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hazyhaar/stanfood-menus/pkg/dict"
	"github.com/hazyhaar/stanfood-menus/pkg/menu"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "9-15-2024", "Lunch", "Wilbur_9-15-2024_Lunch.csv"), "")
	writeFile(t, filepath.Join(dir, "9-15-2024", "Dinner", "Stern_9-15-2024_Dinner.CSV"), "")
	writeFile(t, filepath.Join(dir, "9-15-2024", "notes.txt"), "")

	paths, err := Collect(dir)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	want := []string{
		filepath.Join(dir, "9-15-2024", "Dinner", "Stern_9-15-2024_Dinner.CSV"),
		filepath.Join(dir, "9-15-2024", "Lunch", "Wilbur_9-15-2024_Lunch.csv"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("Collect = %q, want %q", paths, want)
	}

	if _, err := Collect(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "Wilbur_09-15-2024_Lunch.CSV")
	writeFile(t, ok, "Name, Ingredients, Allergens\nTomato Sauce (Organic),\"Tomato Paste, Garlic Powder\",\"Vegan, GF\"\nBroken\n")
	empty := filepath.Join(dir, "Stern_09-15-2024_Dinner.csv")
	writeFile(t, empty, "Name, Ingredients, Allergens\n")
	missing := filepath.Join(dir, "Ricker_09-15-2024_Brunch.csv")

	ledger := tempLedger(t)
	r := NewRunner(menu.NewParser(dict.Default(), nil), ledger, menu.ReadOptions{}, nil)
	b := r.Run([]string{ok, empty, missing})

	if len(b.Dishes) != 2 {
		t.Fatalf("dishes = %d, want 2 (one dish + one placeholder)", len(b.Dishes))
	}
	if b.Dishes[0].Name != "Tomato Sauce" || !b.Dishes[1].IsPlaceholder() {
		t.Errorf("dishes = %+v", b.Dishes)
	}
	if b.Dishes[1].Location != "Stern" || b.Dishes[1].MealTime != "Dinner" {
		t.Errorf("placeholder origin = %+v", b.Dishes[1])
	}

	if b.Count(StatusOK) != 1 || b.Count(StatusPlaceholder) != 1 || b.Count(StatusFailed) != 1 {
		t.Errorf("statuses = %+v", b.Files)
	}
	if b.Dishes[0].Location != "Wilbur" || b.Dishes[0].Date != "09-15-2024" {
		t.Errorf("upper-case .CSV origin = %+v", b.Dishes[0])
	}
	if b.Files[0].Dishes != 1 || b.Files[0].Skipped != 1 {
		t.Errorf("ok file = %+v", b.Files[0])
	}

	failed, err := ledger.Get(missing)
	if err != nil {
		t.Fatalf("ledger.Get: %v", err)
	}
	if failed.Status != StatusFailed || failed.Error == nil || failed.Location != "Ricker" {
		t.Errorf("failed record = %+v", failed)
	}
}

func TestRunner_Empty(t *testing.T) {
	r := NewRunner(menu.NewParser(dict.Default(), nil), nil, menu.ReadOptions{}, nil)
	b := r.Run(nil)
	if b.Dishes == nil || len(b.Dishes) != 0 {
		t.Errorf("Dishes = %#v, want empty non-nil", b.Dishes)
	}
}

func TestSaveLoadDishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined_dishes.json")
	dishes := []menu.Dish{
		{Name: "Rice", Ingredients: []string{"Rice"}, Allergens: []string{}, MealTime: "Lunch", Date: "09-15-2024", Location: "Wilbur"},
		{Ingredients: []string{}, Allergens: []string{}, MealTime: "Dinner", Date: "09-15-2024", Location: "Stern"},
	}
	if err := SaveDishes(path, dishes); err != nil {
		t.Fatalf("SaveDishes: %v", err)
	}
	got, err := LoadDishes(path)
	if err != nil {
		t.Fatalf("LoadDishes: %v", err)
	}
	if !reflect.DeepEqual(got, dishes) {
		t.Errorf("LoadDishes = %+v, want %+v", got, dishes)
	}

	if err := SaveDishes(path, nil); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]\n" {
		t.Errorf("empty artifact = %q, want []", data)
	}
}
