package catalog

import (
	"flavor-lab/internal/core/flavor"
)

// Ingredient 食材實體。於目錄載入時一次建成，之後不可變。
type Ingredient struct {
	ID            int                 `json:"id"`
	Name          string              `json:"name"`         // 英文正規名稱
	DisplayName   string              `json:"display_name"` // 中文顯示名稱（查無翻譯時退回 Name）
	Category      string              `json:"category"`
	FlavorTags    []string            `json:"flavor_tags"` // 依原始順序、保留重複
	FlavorSet     map[string]struct{} `json:"-"`           // 去重後的小寫集合，相似度運算的主要對象
	Dimensions    flavor.Vector       `json:"dimensions"`  // 各風味維度的命中計數
	MoleculeCount int                 `json:"molecule_count"`
}

// HasFlavor 判斷食材是否帶有指定風味 token
func (i *Ingredient) HasFlavor(token string) bool {
	_, ok := i.FlavorSet[token]
	return ok
}

// DominantDimension 食材的主維度
func (i *Ingredient) DominantDimension() (flavor.Dimension, bool) {
	return i.Dimensions.Dominant()
}

// FlavorList 以穩定順序列出去重後的風味 token（保留首見順序）
func (i *Ingredient) FlavorList() []string {
	seen := make(map[string]struct{}, len(i.FlavorTags))
	out := make([]string, 0, len(i.FlavorSet))
	for _, t := range i.FlavorTags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
