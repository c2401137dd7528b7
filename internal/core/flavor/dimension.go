package flavor

import (
	"strings"
)

// Dimension 風味維度
type Dimension int

// 維度宣告順序即為主維度並列時的決勝順序，不可隨意調換。
const (
	DimGreenHerbal Dimension = iota // 草本青綠
	DimFloralFruity                 // 花果香
	DimRoastedNutty                 // 烘焙堅果
	DimEarthyWoody                  // 土壤木質
	DimAnimalicFatty                // 動物油脂
	DimSpicyPungent                 // 辛香刺激
	numDimensions
)

// AllDimensions 依宣告順序列出所有維度
func AllDimensions() []Dimension {
	dims := make([]Dimension, 0, numDimensions)
	for d := Dimension(0); d < numDimensions; d++ {
		dims = append(dims, d)
	}
	return dims
}

// String 維度的英文鍵名
func (d Dimension) String() string {
	switch d {
	case DimGreenHerbal:
		return "green_herbal"
	case DimFloralFruity:
		return "floral_fruity"
	case DimRoastedNutty:
		return "roasted_nutty"
	case DimEarthyWoody:
		return "earthy_woody"
	case DimAnimalicFatty:
		return "animalic_fatty"
	case DimSpicyPungent:
		return "spicy_pungent"
	default:
		return "unknown"
	}
}

// Label 維度的中文顯示名稱
func (d Dimension) Label() string {
	switch d {
	case DimGreenHerbal:
		return "草本青綠"
	case DimFloralFruity:
		return "花果香"
	case DimRoastedNutty:
		return "烘焙堅果"
	case DimEarthyWoody:
		return "土壤木質"
	case DimAnimalicFatty:
		return "動物油脂"
	case DimSpicyPungent:
		return "辛香刺激"
	default:
		return "未知"
	}
}

// dimensionKeywords 各維度的關鍵詞表（對 token 做不分大小寫的子字串比對）
var dimensionKeywords = map[Dimension][]string{
	DimGreenHerbal: {
		"green", "grassy", "leafy", "herb", "hay", "mint", "menthol",
		"thyme", "rosemary", "basil", "dill", "sage", "tea",
	},
	DimFloralFruity: {
		"floral", "rose", "jasmine", "violet", "lavender", "lily",
		"fruity", "apple", "pear", "peach", "cherry", "berry", "citrus",
		"lemon", "orange", "banana", "pineapple", "tropical", "melon",
	},
	DimRoastedNutty: {
		"roasted", "toasted", "burnt", "smoky", "smoke", "coffee",
		"cocoa", "chocolate", "malt", "caramel", "nutty", "almond",
		"hazelnut", "walnut", "peanut", "bread", "popcorn",
	},
	DimEarthyWoody: {
		"earthy", "earth", "moss", "mushroom", "peat", "musty",
		"woody", "wood", "cedar", "pine", "resin", "sandalwood", "balsam",
	},
	DimAnimalicFatty: {
		"animal", "musk", "leather", "sweat", "fatty", "fat", "oily",
		"waxy", "butter", "creamy", "cream", "milky", "cheese", "meaty",
		"beef", "chicken", "fishy",
	},
	DimSpicyPungent: {
		"spicy", "spice", "pepper", "cinnamon", "clove", "ginger",
		"mustard", "pungent", "sharp", "sulfur", "onion", "garlic",
		"horseradish", "wasabi",
	},
}

// Vector 每個維度的命中次數
type Vector map[Dimension]int

// Classify 將風味 token 集合映射為維度計數向量。
// 一個 token 可同時命中多個維度（多重歸屬）：真實香氣化合物
// 往往同時喚起不止一種感官維度，故不採「首個命中即停」。
func Classify(tokens map[string]struct{}) Vector {
	vec := make(Vector, numDimensions)
	for token := range tokens {
		for _, dim := range AllDimensions() {
			if matchesDimension(token, dim) {
				vec[dim]++
			}
		}
	}
	return vec
}

// ClassifySequence 對保留重複的 token 序列計數（重複算多次）
func ClassifySequence(tokens []string) Vector {
	vec := make(Vector, numDimensions)
	for _, token := range tokens {
		for _, dim := range AllDimensions() {
			if matchesDimension(token, dim) {
				vec[dim]++
			}
		}
	}
	return vec
}

// matchesDimension 判斷 token 是否命中維度的任一關鍵詞
func matchesDimension(token string, dim Dimension) bool {
	token = strings.ToLower(token)
	for _, kw := range dimensionKeywords[dim] {
		if strings.Contains(token, kw) {
			return true
		}
	}
	return false
}

// Dominant 回傳計數最高的主維度；計數並列時依維度宣告順序決勝，
// 確保結果可重現。向量全空時回傳 (0, false)。
func (v Vector) Dominant() (Dimension, bool) {
	best := Dimension(-1)
	bestCount := 0
	for _, dim := range AllDimensions() {
		if count := v[dim]; count > bestCount {
			best = dim
			bestCount = count
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
