package catalog

import (
	"reflect"
	"strings"
	"testing"

	"flavor-lab/internal/core/translate"
)

func testRows() []Row {
	return []Row{
		{ID: 1, Name: "Tomato", Category: "Vegetable", Flavors: "sweet,sour,green", MoleculeCount: 30},
		{ID: 2, Name: "Basil", Category: "Herb", Flavors: "green@herbal,sweet", MoleculeCount: 20},
		{ID: 3, Name: "Beef Steak", Category: "Meat", Flavors: "meaty,roasted,fatty", MoleculeCount: 50},
		{ID: 4, Name: "Garlic", Category: "Vegetable", Flavors: "sulfurous,pungent", MoleculeCount: 15},
		{ID: 5, Name: "Cheddar", Category: "Dairy", Flavors: "creamy,cheese", MoleculeCount: 40},
		{ID: 6, Name: "Mystery", Category: "Misc", Flavors: "  "},
	}
}

func TestLoadBuildsCatalog(t *testing.T) {
	c, report := Load(testRows(), false, nil)

	if report.Loaded != 5 {
		t.Errorf("Loaded = %d, want 5", report.Loaded)
	}
	// 無風味資料的列一律排除
	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}
	if report.Filtered != 0 {
		t.Errorf("Filtered = %d, want 0", report.Filtered)
	}

	for _, item := range c.All() {
		if len(item.FlavorSet) == 0 {
			t.Errorf("ingredient %s has empty flavor set", item.Name)
		}
	}
}

func TestLoadVeganFilter(t *testing.T) {
	c, report := Load(testRows(), true, nil)

	// Meat 類別、Dairy 類別、五辛（garlic）都要被排除
	if report.Filtered != 3 {
		t.Errorf("Filtered = %d, want 3", report.Filtered)
	}
	for _, name := range []string{"Beef Steak", "Garlic", "Cheddar"} {
		if _, ok := c.FindByName(name); ok {
			t.Errorf("vegan catalog should not contain %s", name)
		}
	}
	if _, ok := c.FindByName("Tomato"); !ok {
		t.Error("vegan catalog should contain Tomato")
	}
}

func TestVeganAndFullCatalogsCoexist(t *testing.T) {
	full, _ := Load(testRows(), false, nil)
	vegan, _ := Load(testRows(), true, nil)

	if _, ok := full.FindByName("Beef Steak"); !ok {
		t.Error("full catalog should contain Beef Steak")
	}
	if _, ok := vegan.FindByName("Beef Steak"); ok {
		t.Error("vegan catalog should not contain Beef Steak")
	}
}

func TestFindByName(t *testing.T) {
	tr := translate.NewTranslatorWith(map[string]string{"tomato": "番茄"})
	c, _ := Load(testRows(), false, tr)

	tests := []struct {
		name   string
		query  string
		wantID int
		wantOK bool
	}{
		{"完全比對", "Tomato", 1, true},
		{"不分大小寫", "tOMATO", 1, true},
		{"中文名稱反查", "番茄", 1, true},
		{"子字串比對", "Stea", 3, true},
		{"查無", "Unicorn Fruit", 0, false},
		{"空字串", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := c.FindByName(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("FindByName(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && item.ID != tt.wantID {
				t.Errorf("FindByName(%q).ID = %d, want %d", tt.query, item.ID, tt.wantID)
			}
		})
	}
}

func TestFindByNameFirstStructuralMatch(t *testing.T) {
	rows := []Row{
		{ID: 10, Name: "Green Apple", Category: "Fruit", Flavors: "green,fruity"},
		{ID: 11, Name: "Green Tea", Category: "Beverage", Flavors: "green,herbal"},
	}
	c, _ := Load(rows, false, nil)

	// 子字串比對回傳載入順序中第一個命中者，而非最佳命中
	item, ok := c.FindByName("green")
	if !ok || item.ID != 10 {
		t.Errorf("FindByName(\"green\") = %v, want ID 10", item)
	}
}

func TestSearchMultiPass(t *testing.T) {
	tr := translate.NewTranslatorWith(map[string]string{"basil": "羅勒"})
	c, _ := Load(testRows(), false, tr)

	// 中文完全比對
	results := c.Search("羅勒", 10)
	if len(results) != 1 || results[0].ID != 2 {
		t.Fatalf("Search(羅勒) = %v, want Basil", results)
	}

	// 跨階段以 ID 去重
	results = c.Search("Basil", 10)
	ids := make(map[int]int)
	for _, r := range results {
		ids[r.ID]++
	}
	for id, n := range ids {
		if n > 1 {
			t.Errorf("ingredient %d appears %d times", id, n)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	c, _ := Load(testRows(), false, nil)
	results := c.Search("e", 2)
	if len(results) > 2 {
		t.Errorf("Search limit exceeded: got %d results", len(results))
	}
}

func TestCategories(t *testing.T) {
	c, _ := Load(testRows(), false, nil)
	got := c.Categories()
	want := []string{"Dairy", "Herb", "Meat", "Vegetable"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestByCategory(t *testing.T) {
	c, _ := Load(testRows(), false, nil)
	vegetables := c.ByCategory("Vegetable")
	if len(vegetables) != 2 {
		t.Fatalf("ByCategory(Vegetable) = %d items, want 2", len(vegetables))
	}
	if vegetables[0].ID != 1 || vegetables[1].ID != 4 {
		t.Error("ByCategory should preserve insertion order")
	}
}

func TestEmptyCatalogNeverPanics(t *testing.T) {
	c, report := Load(nil, false, nil)

	if report.Loaded != 0 {
		t.Errorf("Loaded = %d, want 0", report.Loaded)
	}
	if _, ok := c.FindByName("anything"); ok {
		t.Error("empty catalog should not find anything")
	}
	if results := c.Search("x", 10); len(results) != 0 {
		t.Errorf("Search on empty catalog = %v", results)
	}
	if categories := c.Categories(); len(categories) != 0 {
		t.Errorf("Categories on empty catalog = %v", categories)
	}
	if _, ok := c.GetByID(1); ok {
		t.Error("empty catalog should not find id 1")
	}
}

func TestReadCSV(t *testing.T) {
	data := strings.Join([]string{
		"id,name,category,flavors,molecules_count",
		"1,Tomato,Vegetable,sweet@sour,30",
		"2,Basil,Herb,green@herbal,20",
		"broken-id,Nameless,Herb,green,1",
		"3,NoFlavor,Herb,,5",
	}, "\n")

	rows, skipped, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ReadCSV() rows = %d, want 2", len(rows))
	}
	if skipped != 2 {
		t.Errorf("ReadCSV() skipped = %d, want 2", skipped)
	}
	if rows[0].ID != 1 || rows[0].Flavors != "sweet@sour" || rows[0].MoleculeCount != 30 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
}

func TestReadCSVFlavorProfilesFallback(t *testing.T) {
	data := strings.Join([]string{
		"id,name,category,flavors,flavor_profiles",
		"1,Tomato,Vegetable,,sweet@green",
	}, "\n")

	rows, _, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Flavors != "sweet@green" {
		t.Errorf("flavor_profiles fallback failed: %+v", rows)
	}
}

func TestReadCSVMissingRequiredColumn(t *testing.T) {
	data := "name,category,flavors\nTomato,Vegetable,sweet"
	if _, _, err := ReadCSV(strings.NewReader(data)); err == nil {
		t.Error("expected error for missing id column")
	}
}

func TestLoadTranslatesDisplayName(t *testing.T) {
	tr := translate.NewTranslatorWith(map[string]string{"tomato": "番茄"})
	c, _ := Load(testRows(), false, tr)

	item, _ := c.GetByID(1)
	if item.DisplayName != "番茄" {
		t.Errorf("DisplayName = %q, want 番茄", item.DisplayName)
	}

	// 查無翻譯時退回格式化後的英文名稱
	steak, _ := c.GetByID(3)
	if steak.DisplayName == "" {
		t.Error("DisplayName should fall back, not be empty")
	}
}
