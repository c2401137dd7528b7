package pairing

import (
	"context"
	"sort"

	"flavor-lab/internal/core/catalog"
	"flavor-lab/internal/pkg/common"
)

const (
	// MinGroupSize 組合搜尋允許的最小人數
	MinGroupSize = 3
	// MaxGroupSize 組合搜尋允許的最大人數
	MaxGroupSize = 5
)

// Combination 一組食材與其內部所有成對分數的統計
type Combination struct {
	Ingredients []*catalog.Ingredient `json:"ingredients"`
	PairScores  []float64             `json:"pair_scores"`
	MeanScore   float64               `json:"mean_score"`
	MinScore    float64               `json:"min_score"`
	MaxScore    float64               `json:"max_score"`
}

// FindBestCombinations 從候選池枚舉含 base 的 size 人組合，
// 依組內成對分數平均值遞減排名，回傳前 topN 名。
//
// 完整枚舉的成本是 C(N-1, k-1)×C(k,2)，因此先以標準策略取
// 與 base 最相容的前 poolSize 名作為候選池再枚舉；poolSize
// 由設定檔 combo.candidate_pool 控制並在啟動時驗證上限。
// 人數超出範圍在枚舉前即回報錯誤；枚舉迴圈內檢查 ctx 取消。
func FindBestCombinations(ctx context.Context, c *catalog.Catalog, base *catalog.Ingredient, size, topN, poolSize int) ([]Combination, error) {
	if size < MinGroupSize || size > MaxGroupSize {
		return nil, common.ErrInvalidGroupSize
	}

	pool := ConsonanceRanking(c, base, StrategyNormalized, RankOptions{TopN: poolSize})
	candidates := make([]*catalog.Ingredient, 0, len(pool))
	for _, p := range pool {
		candidates = append(candidates, p.Ingredient)
	}
	if len(candidates) < size-1 {
		return nil, nil
	}

	var (
		results []Combination
		combErr error
		indices = make([]int, size-1)
		group   = make([]*catalog.Ingredient, size)
	)
	group[0] = base

	// 依字典序枚舉 size-1 個候選的所有子集
	var enumerate func(start, depth int) bool
	enumerate = func(start, depth int) bool {
		if err := ctx.Err(); err != nil {
			combErr = err
			return false
		}
		if depth == size-1 {
			for i, idx := range indices {
				group[i+1] = candidates[idx]
			}
			results = append(results, evaluate(group))
			return true
		}
		for i := start; i < len(candidates); i++ {
			indices[depth] = i
			if !enumerate(i+1, depth+1) {
				return false
			}
		}
		return true
	}
	enumerate(0, 0)
	if combErr != nil {
		return nil, combErr
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MeanScore > results[j].MeanScore
	})
	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}

// evaluate 計算組內所有配對的分數與統計
func evaluate(group []*catalog.Ingredient) Combination {
	members := make([]*catalog.Ingredient, len(group))
	copy(members, group)

	comb := Combination{Ingredients: members}
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			score := Score(members[i], members[j], StrategyNormalized)
			comb.PairScores = append(comb.PairScores, score)
		}
	}

	if len(comb.PairScores) == 0 {
		return comb
	}
	comb.MinScore = comb.PairScores[0]
	comb.MaxScore = comb.PairScores[0]
	var sum float64
	for _, s := range comb.PairScores {
		sum += s
		if s < comb.MinScore {
			comb.MinScore = s
		}
		if s > comb.MaxScore {
			comb.MaxScore = s
		}
	}
	comb.MeanScore = sum / float64(len(comb.PairScores))
	return comb
}
