package pairing

import (
	"sort"

	"flavor-lab/internal/core/catalog"
)

// 對比風味映射表。鍵為 A 的風味，值為 B 中可構成對比的風味。
// 以 A 的風味為鍵，因此對比分數天生不對稱。
var contrastMapping = map[string][]string{
	"sweet":  {"sour", "bitter", "salty", "acidic"},
	"sour":   {"sweet", "fatty", "umami", "creamy"},
	"bitter": {"sweet", "salty", "sour", "honey"},
	"fatty":  {"sour", "bitter", "acidic", "fresh"},
	"creamy": {"sour", "acidic", "fresh", "citrus"},
	"fresh":  {"warm", "spicy", "roasted", "smoky"},
	"light":  {"strong", "rich", "heavy", "pungent"},
	"fruity": {"earthy", "woody", "nutty", "meaty"},
	"floral": {"earthy", "woody", "spicy", "herbal"},
}

// CommonFlavors 兩食材共同風味（A 的風味序列順序，去重）
func CommonFlavors(a, b *catalog.Ingredient) []string {
	var common []string
	seen := make(map[string]struct{})
	for _, token := range a.FlavorTags {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if b.HasFlavor(token) {
			common = append(common, token)
		}
	}
	return common
}

// unionSize 兩風味集合的聯集大小
func unionSize(a, b *catalog.Ingredient) int {
	size := len(a.FlavorSet)
	for token := range b.FlavorSet {
		if _, ok := a.FlavorSet[token]; !ok {
			size++
		}
	}
	return size
}

// Score 依指定策略計算共鳴分數。空交集回傳 0，不報錯。
func Score(a, b *catalog.Ingredient, strategy Strategy) float64 {
	common := CommonFlavors(a, b)
	switch strategy {
	case StrategyJaccard:
		return jaccardScore(a, b, common)
	case StrategyWeighted:
		return weightedScore(a, b, common)
	default:
		return normalizedScore(a, b, common)
	}
}

// jaccardScore Jaccard 係數 ×100 加上共同風味數 ×0.5，無上限
func jaccardScore(a, b *catalog.Ingredient, common []string) float64 {
	union := unionSize(a, b)
	if union == 0 {
		return 0
	}
	jaccard := float64(len(common)) / float64(union)
	return jaccard*100 + float64(len(common))*0.5
}

// normalizedScore 正規化重疊率，上限 100。組合搜尋採用此公式。
func normalizedScore(a, b *catalog.Ingredient, common []string) float64 {
	total := len(a.FlavorSet) + len(b.FlavorSet)
	if total == 0 {
		return 0
	}
	score := float64(2*len(common)) / float64(total) * 100
	if score > 100 {
		score = 100
	}
	return score
}

// weightedScore 以稀有度權重放大 Jaccard 分數，上限 100
func weightedScore(a, b *catalog.Ingredient, common []string) float64 {
	base := jaccardScore(a, b, common)
	if len(common) == 0 {
		return base
	}
	var sum float64
	for _, token := range common {
		sum += weightOf(token)
	}
	avg := sum / float64(len(common))
	score := base * (1 + avg*0.3)
	if score > 100 {
		score = 100
	}
	return score
}

// ContrastScore 對比分數的組成部分
type ContrastScore struct {
	Contrast     float64 `json:"contrast"`      // 對比風味命中加分
	Category     float64 `json:"category"`      // 類別差異與偏好類別加分
	Intersection float64 `json:"intersection"`  // 適度交集加分
	Total        float64 `json:"total"`
}

// ScoreContrast 計算 A 對 B 的對比分數。以 A 的風味查表、
// 比對 B 的風味集合，每次命中加 2 分；類別不同加 10 分、
// 屬於偏好類別再加 15 分；共同風味數在 3 到 15 之間加 8 分。
func ScoreContrast(a, b *catalog.Ingredient, preferCategories []string) ContrastScore {
	var s ContrastScore

	for token := range a.FlavorSet {
		targets, ok := contrastMapping[token]
		if !ok {
			continue
		}
		for _, target := range targets {
			if b.HasFlavor(target) {
				s.Contrast += 2
			}
		}
	}

	if a.Category != b.Category {
		s.Category += 10
	}
	for _, cat := range preferCategories {
		if b.Category == cat {
			s.Category += 15
			break
		}
	}

	commonCount := len(CommonFlavors(a, b))
	if commonCount >= 3 && commonCount <= 15 {
		s.Intersection = 8
	}

	s.Total = s.Contrast + s.Category + s.Intersection
	return s
}

// RankedPairing 排名配對清單中的一筆結果
type RankedPairing struct {
	Ingredient *catalog.Ingredient `json:"ingredient"`
	Common     []string            `json:"common_flavors"`
	Score      float64             `json:"score"`
	Contrast   *ContrastScore      `json:"contrast,omitempty"`
}

// RankOptions 排名配對的篩選選項
type RankOptions struct {
	TopN              int
	ExcludeCategories []string
	PreferCategories  []string
	Blacklist         []string
}

// ConsonanceRanking 依共鳴分數排序的配對清單。
// 排除自身、黑名單與排除類別；無共同風味者不列入。
func ConsonanceRanking(c *catalog.Catalog, target *catalog.Ingredient, strategy Strategy, opts RankOptions) []RankedPairing {
	excluded := toStringSet(opts.ExcludeCategories)
	blacklist := toStringSet(opts.Blacklist)

	var results []RankedPairing
	for _, item := range c.All() {
		if item.ID == target.ID {
			continue
		}
		if _, skip := excluded[item.Category]; skip {
			continue
		}
		if _, skip := blacklist[item.Name]; skip {
			continue
		}
		common := CommonFlavors(target, item)
		if len(common) == 0 {
			continue
		}
		results = append(results, RankedPairing{
			Ingredient: item,
			Common:     common,
			Score:      Score(target, item, strategy),
		})
	}

	sortRanked(results)
	return truncate(results, opts.TopN)
}

// ContrastRanking 依對比分數排序的配對清單，零分者排除
func ContrastRanking(c *catalog.Catalog, target *catalog.Ingredient, opts RankOptions) []RankedPairing {
	blacklist := toStringSet(opts.Blacklist)

	var results []RankedPairing
	for _, item := range c.All() {
		if item.ID == target.ID {
			continue
		}
		if _, skip := blacklist[item.Name]; skip {
			continue
		}
		contrast := ScoreContrast(target, item, opts.PreferCategories)
		if contrast.Total <= 0 {
			continue
		}
		results = append(results, RankedPairing{
			Ingredient: item,
			Common:     CommonFlavors(target, item),
			Score:      contrast.Total,
			Contrast:   &contrast,
		})
	}

	sortRanked(results)
	return truncate(results, opts.TopN)
}

// sortRanked 依分數遞減排序，同分維持目錄載入順序
func sortRanked(results []RankedPairing) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

func truncate(results []RankedPairing, topN int) []RankedPairing {
	if topN > 0 && len(results) > topN {
		return results[:topN]
	}
	return results
}

func toStringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
