package advisor

import (
	"sort"

	"flavor-lab/internal/core/catalog"
)

// Synergy 一組協同增效的風味對
type Synergy struct {
	FlavorA  string  `json:"flavor_a"`
	FlavorB  string  `json:"flavor_b"`
	Effect   string  `json:"effect"`
	Strength float64 `json:"strength"`
}

type synergyPair struct {
	a, b     string
	effect   string
	strength float64
}

// 風味協同增效表
var synergyPairs = []synergyPair{
	{"sweet", "bitter", "平衡", 0.9},
	{"fruity", "creamy", "融合", 0.95},
	{"roasted", "nutty", "增強", 0.85},
	{"spicy", "sweet", "對比", 0.8},
	{"floral", "fruity", "層次", 0.9},
	{"herbal", "citrus", "清新", 0.85},
	{"woody", "spicy", "深度", 0.8},
	{"savory", "roasted", "鮮美", 0.9},
}

// FindSynergies 找出兩食材之間的協同效應。雙向比對：
// A 持有其一、B 持有另一即成立。結果依強度遞減排序。
func FindSynergies(a, b *catalog.Ingredient) []Synergy {
	var synergies []Synergy
	for _, pair := range synergyPairs {
		hit := (a.HasFlavor(pair.a) && b.HasFlavor(pair.b)) ||
			(b.HasFlavor(pair.a) && a.HasFlavor(pair.b))
		if hit {
			synergies = append(synergies, Synergy{
				FlavorA:  pair.a,
				FlavorB:  pair.b,
				Effect:   pair.effect,
				Strength: pair.strength,
			})
		}
	}
	sort.SliceStable(synergies, func(i, j int) bool {
		return synergies[i].Strength > synergies[j].Strength
	})
	return synergies
}
