package advisor

import (
	"fmt"

	"flavor-lab/internal/core/catalog"
	"flavor-lab/internal/core/flavor"
)

// PairingType 配對類型：共鳴或對比
type PairingType string

const (
	// TypeResonance 主導維度相同的共鳴型配對
	TypeResonance PairingType = "resonance"
	// TypeContrast 主導維度不同的對比型配對
	TypeContrast PairingType = "contrast"
)

// Direction 配對方向（依維度相似度分段）
type Direction string

const (
	DirectionHarmony  Direction = "harmony"
	DirectionContrast Direction = "contrast"
	DirectionBalanced Direction = "balanced"
)

// TypeResult 配對類型判定與對應說明
type TypeResult struct {
	Type        PairingType `json:"type"`
	Label       string      `json:"label"`
	Explanation string      `json:"explanation"`
	Suggestion  string      `json:"suggestion"`
}

// ClassifyPair 比較兩食材的主導維度。相同為共鳴型，
// 不同為對比型，各自附上模板化說明與處理建議。
func ClassifyPair(a, b *catalog.Ingredient) TypeResult {
	dimA, okA := a.DominantDimension()
	dimB, okB := b.DominantDimension()

	if okA && okB && dimA == dimB {
		return TypeResult{
			Type:  TypeResonance,
			Label: "共鳴型",
			Explanation: fmt.Sprintf("%s 與 %s 的主導維度皆為「%s」，風味頻率一致，融合後彼此增幅",
				a.DisplayName, b.DisplayName, dimA.Label()),
			Suggestion: "適合共同打汁、同鍋烹調或均質混合，讓共鳴風味疊加",
		}
	}

	labelA, labelB := "未分類", "未分類"
	if okA {
		labelA = dimA.Label()
	}
	if okB {
		labelB = dimB.Label()
	}
	return TypeResult{
		Type:  TypeContrast,
		Label: "對比型",
		Explanation: fmt.Sprintf("%s 以「%s」為主導，%s 以「%s」為主導，維度差異可創造層次記憶點",
			a.DisplayName, labelA, b.DisplayName, labelB),
		Suggestion: "建議分層處理或先後加入，保留兩股風味各自的輪廓",
	}
}

// DirectionResult 配對方向分析
type DirectionResult struct {
	Direction   Direction `json:"direction"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Similarity  float64   `json:"similarity"` // 0–100
	CommonDims  int       `json:"common_dimensions"`
}

// AnalyzeDirection 以維度集合的重疊率判斷配對方向：
// 相似度 0.6 以上為共鳴型，0.3 以下為對比型，其餘為平衡型。
func AnalyzeDirection(a, b *catalog.Ingredient) DirectionResult {
	common, total := 0, 0
	for _, dim := range flavor.AllDimensions() {
		inA := a.Dimensions[dim] > 0
		inB := b.Dimensions[dim] > 0
		if inA || inB {
			total++
		}
		if inA && inB {
			common++
		}
	}

	var similarity float64
	if total > 0 {
		similarity = float64(common) / float64(total)
	}

	result := DirectionResult{
		Similarity: similarity * 100,
		CommonDims: common,
	}
	switch {
	case similarity >= 0.6:
		result.Direction = DirectionHarmony
		result.Label = "分子共鳴型（風味相近）"
		result.Description = "兩者共享多個風味維度，形成分子共鳴，適合融合創作"
	case similarity <= 0.3:
		result.Direction = DirectionContrast
		result.Label = "極光碰撞型（風味對比）"
		result.Description = "風味維度差異顯著，可創造層次記憶點"
	default:
		result.Direction = DirectionBalanced
		result.Label = "維度補償型（平衡）"
		result.Description = "部分共鳴、部分對比，透過維度補償實現平衡"
	}
	return result
}

// Roles 主輔角色判定
type Roles struct {
	Equal       bool                `json:"equal"`
	Primary     *catalog.Ingredient `json:"primary,omitempty"`
	Secondary   *catalog.Ingredient `json:"secondary,omitempty"`
	Ratio       string              `json:"ratio"`
	Description string              `json:"description"`
}

// roleScore 綜合複雜度與強度的角色評分
func roleScore(item *catalog.Ingredient) float64 {
	complexity := 0
	for _, dim := range flavor.AllDimensions() {
		if item.Dimensions[dim] > 0 {
			complexity++
		}
	}
	return float64(complexity)*10 + float64(item.MoleculeCount)*0.1
}

// DetermineRoles 依風味複雜度與分子強度判定主輔基調。
// 評分差距小於 15 視為勢均力敵，否則依倍率分段給出比例。
func DetermineRoles(a, b *catalog.Ingredient) Roles {
	scoreA := roleScore(a)
	scoreB := roleScore(b)

	diff := scoreA - scoreB
	if diff < 0 {
		diff = -diff
	}
	if diff < 15 {
		return Roles{
			Equal: true,
			Ratio: "1:1",
			Description: fmt.Sprintf("%s 與 %s 勢均力敵，建議等比例使用，形成雙主角格局",
				a.DisplayName, b.DisplayName),
		}
	}

	primary, secondary := a, b
	high, low := scoreA, scoreB
	if scoreB > scoreA {
		primary, secondary = b, a
		high, low = scoreB, scoreA
	}

	ratio := "3:2"
	if low > 0 {
		switch value := high / low; {
		case value >= 2.0:
			ratio = "3:1"
		case value >= 1.5:
			ratio = "2:1"
		}
	} else {
		ratio = "3:1"
	}

	return Roles{
		Primary:   primary,
		Secondary: secondary,
		Ratio:     ratio,
		Description: fmt.Sprintf("%s 作為主基調提供核心風味框架，%s 作為輔助層提升香氣頻率與記憶點",
			primary.DisplayName, secondary.DisplayName),
	}
}

// 揮發性與厚重風味關鍵詞，用於溫度處理建議
var (
	volatileKeywords = []string{"fresh", "citrus", "mint", "green", "floral"}
	heavyKeywords    = []string{"roasted", "caramel", "mushroom", "earthy", "meaty"}
)

func countKeywordHits(item *catalog.Ingredient, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if item.HasFlavor(kw) {
			count++
		}
	}
	return count
}

// ChefInsights 依分數層級、揮發性對比與風味強度比產生
// 模板化的主廚建議。
func ChefInsights(a, b *catalog.Ingredient, score float64) []string {
	var tips []string

	switch {
	case score >= 70:
		tips = append(tips, "這是一對優秀的風味搭配，可以直接作為成品主軸")
	case score >= 50:
		tips = append(tips, "這是一對可行的搭配，留意兩者比例的平衡")
	case score >= 30:
		tips = append(tips, "搭配存在挑戰，建議加入第三種食材作為橋樑調和")
	default:
		tips = append(tips, "風味交集有限，適合實驗性的對比創作，先小批量測試")
	}

	volatile := countKeywordHits(a, volatileKeywords) + countKeywordHits(b, volatileKeywords)
	heavy := countKeywordHits(a, heavyKeywords) + countKeywordHits(b, heavyKeywords)
	if volatile > 0 && heavy > 0 {
		tips = append(tips, "同時含揮發性香氣與厚重基調，厚重食材先加熱出味，揮發性食材起鍋前再加入")
	} else if volatile > heavy {
		tips = append(tips, "以揮發性香氣為主，低溫或生食處理能保留最多香氣分子")
	} else if heavy > 0 {
		tips = append(tips, "以厚重基調為主，適合烘烤或慢煮等深度加熱手法")
	}

	countA, countB := len(a.FlavorTags), len(b.FlavorTags)
	if countA > 0 && countB > 0 {
		if countA >= countB*3 {
			tips = append(tips, fmt.Sprintf("%s 的風味強度明顯高於 %s，建議降低前者用量以免壓過整體",
				a.DisplayName, b.DisplayName))
		} else if countB >= countA*3 {
			tips = append(tips, fmt.Sprintf("%s 的風味強度明顯高於 %s，建議降低前者用量以免壓過整體",
				b.DisplayName, a.DisplayName))
		}
	}

	return tips
}
