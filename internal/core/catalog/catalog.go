package catalog

import (
	"sort"
	"strings"

	"flavor-lab/internal/core/flavor"
	"flavor-lab/internal/core/translate"
	"flavor-lab/internal/pkg/common"

	"go.uber.org/zap"
)

// 非素食類別關鍵詞與五辛關鍵詞。素食模式下，類別或名稱含
// 非素食關鍵詞、或名稱含五辛關鍵詞的列在載入時即被排除。
var (
	nonVeganKeywords = []string{
		"meat", "poultry", "fish", "seafood", "dairy", "egg",
		"beef", "pork", "chicken",
	}
	alliumKeywords = []string{"onion", "garlic", "chive", "leek", "scallion"}
)

// Catalog 食材目錄。載入後唯讀，可被併發查詢共用而無需加鎖。
type Catalog struct {
	items     []*Ingredient
	byID      map[int]*Ingredient
	byName    map[string]*Ingredient // 小寫正規名稱 → 食材
	byDisplay map[string]*Ingredient // 中文顯示名稱 → 食材（反向翻譯查詢）
	vegan     bool
}

// LoadReport 載入結果統計
type LoadReport struct {
	Loaded   int `json:"loaded"`   // 成功載入的食材數
	Skipped  int `json:"skipped"`  // 無效或無風味資料而跳過的列數
	Filtered int `json:"filtered"` // 素食模式下被排除的列數
}

// Load 從原始列建立目錄。素食過濾在風味解析之前執行；
// 解析後風味序列為空的列一律排除，目錄成員的 FlavorSet 永不為空。
func Load(rows []Row, vegan bool, translator *translate.Translator) (*Catalog, LoadReport) {
	c := &Catalog{
		byID:      make(map[int]*Ingredient, len(rows)),
		byName:    make(map[string]*Ingredient, len(rows)),
		byDisplay: make(map[string]*Ingredient, len(rows)),
		vegan:     vegan,
	}
	report := LoadReport{}

	for _, row := range rows {
		if vegan && excludedByVeganFilter(row) {
			report.Filtered++
			continue
		}

		tags := flavor.Normalize(row.Flavors)
		if len(tags) == 0 {
			report.Skipped++
			continue
		}

		// 同 ID 重複列只保留首見者
		if _, exists := c.byID[row.ID]; exists {
			report.Skipped++
			continue
		}

		set := flavor.ToSet(tags)
		item := &Ingredient{
			ID:            row.ID,
			Name:          row.Name,
			DisplayName:   row.Name,
			Category:      row.Category,
			FlavorTags:    tags,
			FlavorSet:     set,
			Dimensions:    flavor.Classify(set),
			MoleculeCount: row.MoleculeCount,
		}
		if translator != nil {
			item.DisplayName = translator.Translate(row.Name)
		}

		c.items = append(c.items, item)
		c.byID[item.ID] = item
		c.byName[strings.ToLower(item.Name)] = item
		if item.DisplayName != "" {
			c.byDisplay[item.DisplayName] = item
		}
		report.Loaded++
	}

	common.LogInfo("食材目錄載入完成",
		zap.Int("食材數", report.Loaded),
		zap.Int("跳過列數", report.Skipped),
		zap.Int("過濾列數", report.Filtered),
		zap.Bool("素食模式", vegan),
	)

	return c, report
}

// LoadFile 讀取 CSV 檔案並建立目錄
func LoadFile(path string, vegan bool, translator *translate.Translator) (*Catalog, LoadReport, error) {
	rows, malformed, err := ReadCSVFile(path)
	if err != nil {
		return nil, LoadReport{}, err
	}
	c, report := Load(rows, vegan, translator)
	report.Skipped += malformed
	return c, report, nil
}

// excludedByVeganFilter 判斷素食模式下是否排除該列
func excludedByVeganFilter(row Row) bool {
	category := strings.ToLower(row.Category)
	name := strings.ToLower(row.Name)
	for _, kw := range nonVeganKeywords {
		if strings.Contains(category, kw) || strings.Contains(name, kw) {
			return true
		}
	}
	for _, kw := range alliumKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// Len 目錄中的食材數
func (c *Catalog) Len() int {
	return len(c.items)
}

// Vegan 目錄是否為素食過濾版本
func (c *Catalog) Vegan() bool {
	return c.vegan
}

// All 依載入順序列出全部食材。回傳內部切片，呼叫端不可修改。
func (c *Catalog) All() []*Ingredient {
	return c.items
}

// GetByID 依 ID 查詢
func (c *Catalog) GetByID(id int) (*Ingredient, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// FindByName 依名稱查詢：正規名稱完全比對（不分大小寫）優先，
// 其次是中文顯示名稱的反向查詢，最後取載入順序中第一個
// 子字串命中者。回傳結構上第一個命中、而非「最佳」命中。
func (c *Catalog) FindByName(query string) (*Ingredient, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false
	}

	if item, ok := c.byName[strings.ToLower(query)]; ok {
		return item, true
	}
	if item, ok := c.byDisplay[query]; ok {
		return item, true
	}

	lower := strings.ToLower(query)
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), lower) {
			return item, true
		}
	}
	return nil, false
}

// Search 多階段搜尋：顯示名稱完全比對、正規名稱完全比對、
// 正規名稱子字串、顯示名稱子字串。跨階段以 ID 去重、
// 保留首見順序，並截斷至 limit。
func (c *Catalog) Search(query string, limit int) []*Ingredient {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}
	lower := strings.ToLower(query)

	seen := make(map[int]struct{})
	var results []*Ingredient
	add := func(item *Ingredient) bool {
		if _, ok := seen[item.ID]; ok {
			return len(results) < limit
		}
		seen[item.ID] = struct{}{}
		results = append(results, item)
		return len(results) < limit
	}

	// 第一階段：顯示名稱完全比對
	if item, ok := c.byDisplay[query]; ok {
		if !add(item) {
			return results
		}
	}
	// 第二階段：正規名稱完全比對
	if item, ok := c.byName[lower]; ok {
		if !add(item) {
			return results
		}
	}
	// 第三階段：正規名稱子字串
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), lower) {
			if !add(item) {
				return results
			}
		}
	}
	// 第四階段：顯示名稱子字串
	for _, item := range c.items {
		if strings.Contains(item.DisplayName, query) {
			if !add(item) {
				return results
			}
		}
	}

	return results
}

// ByCategory 列出指定類別的食材（載入順序）
func (c *Catalog) ByCategory(category string) []*Ingredient {
	var results []*Ingredient
	for _, item := range c.items {
		if strings.EqualFold(item.Category, category) {
			results = append(results, item)
		}
	}
	return results
}

// Categories 排序後的類別名稱清單
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, item := range c.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		names = append(names, item.Category)
	}
	sort.Strings(names)
	return names
}
