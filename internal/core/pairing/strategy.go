package pairing

import (
	"strings"

	"flavor-lab/internal/pkg/common"
)

// Strategy 共鳴分數的計分策略
type Strategy string

const (
	// StrategyJaccard Jaccard 係數 ×100，再加共同風味數 ×0.5 的獎勵
	StrategyJaccard Strategy = "jaccard"
	// StrategyNormalized 正規化重疊率：2×|共同| / (|A|+|B|) ×100，為預設策略
	StrategyNormalized Strategy = "normalized"
	// StrategyWeighted 稀有度加權：Jaccard 分數 ×(1 + 平均權重 ×0.3)
	StrategyWeighted Strategy = "weighted"
)

// ParseStrategy 解析策略名稱，空字串視為預設策略
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case StrategyJaccard:
		return StrategyJaccard, nil
	case StrategyNormalized, "":
		return StrategyNormalized, nil
	case StrategyWeighted:
		return StrategyWeighted, nil
	default:
		return "", common.ErrInvalidStrategy
	}
}

// 稀有風味權重表。罕見或具標誌性的風味在加權策略下
// 放大共鳴分數；未列出的風味權重為 1.0。
var rarityWeights = map[string]float64{
	"truffle":    3.0,
	"saffron":    2.8,
	"oud":        2.6,
	"ambergris":  2.6,
	"violet":     2.2,
	"jasmine":    2.0,
	"sandalwood": 2.0,
	"matsutake":  2.0,
	"yuzu":       1.8,
	"bergamot":   1.8,
	"juniper":    1.6,
	"cardamom":   1.5,
	"anise":      1.4,
	"smoky":      1.3,
	"leather":    1.3,
}

// weightOf 查詢單一風味的稀有度權重
func weightOf(token string) float64 {
	if w, ok := rarityWeights[token]; ok {
		return w
	}
	return 1.0
}
