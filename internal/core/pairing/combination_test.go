package pairing

import (
	"context"
	"testing"

	"flavor-lab/internal/core/catalog"
	"flavor-lab/internal/pkg/common"
)

func comboCatalog() *catalog.Catalog {
	rows := []catalog.Row{
		{ID: 1, Name: "Tomato", Category: "Vegetable", Flavors: "sweet,sour,green"},
		{ID: 2, Name: "Basil", Category: "Herb", Flavors: "green,herbal,sweet"},
		{ID: 3, Name: "Strawberry", Category: "Fruit", Flavors: "sweet,fruity,green"},
		{ID: 4, Name: "Mint", Category: "Herb", Flavors: "green,fresh,herbal"},
		{ID: 5, Name: "Mango", Category: "Fruit", Flavors: "sweet,fruity,tropical"},
		{ID: 6, Name: "Cucumber", Category: "Vegetable", Flavors: "green,fresh"},
	}
	c, _ := catalog.Load(rows, false, nil)
	return c
}

func TestFindBestCombinations(t *testing.T) {
	c := comboCatalog()
	base := mustGet(t, c, "Tomato")

	results, err := FindBestCombinations(context.Background(), c, base, 3, 5, 12)
	if err != nil {
		t.Fatalf("FindBestCombinations() error = %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected combinations")
	}

	for _, comb := range results {
		if len(comb.Ingredients) != 3 {
			t.Errorf("combination size = %d, want 3", len(comb.Ingredients))
		}
		// 基準食材在組內且不重複出現
		baseCount := 0
		for _, item := range comb.Ingredients {
			if item.ID == base.ID {
				baseCount++
			}
		}
		if baseCount != 1 {
			t.Errorf("base ingredient appears %d times, want 1", baseCount)
		}
		// 組內成對分數數量 C(3,2) = 3
		if len(comb.PairScores) != 3 {
			t.Errorf("pair scores = %d, want 3", len(comb.PairScores))
		}
		// 平均值介於最小與最大成對分數之間
		if comb.MeanScore < comb.MinScore || comb.MeanScore > comb.MaxScore {
			t.Errorf("mean %v outside [%v, %v]", comb.MeanScore, comb.MinScore, comb.MaxScore)
		}
	}

	// 排名遞減
	for i := 1; i < len(results); i++ {
		if results[i].MeanScore > results[i-1].MeanScore {
			t.Errorf("results not sorted at %d", i)
		}
	}
}

func TestFindBestCombinationsSizeValidation(t *testing.T) {
	c := comboCatalog()
	base := mustGet(t, c, "Tomato")

	for _, size := range []int{0, 1, 2, 6, 10} {
		_, err := FindBestCombinations(context.Background(), c, base, size, 5, 12)
		if err != common.ErrInvalidGroupSize {
			t.Errorf("size %d: error = %v, want ErrInvalidGroupSize", size, err)
		}
	}
}

func TestFindBestCombinationsContextCancel(t *testing.T) {
	c := comboCatalog()
	base := mustGet(t, c, "Tomato")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindBestCombinations(ctx, c, base, 4, 5, 12)
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestFindBestCombinationsCandidatePoolBound(t *testing.T) {
	c := comboCatalog()
	base := mustGet(t, c, "Tomato")

	// 候選池縮到 2 時，組合只能由這 2 名候選構成
	results, err := FindBestCombinations(context.Background(), c, base, 3, 10, 2)
	if err != nil {
		t.Fatalf("FindBestCombinations() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("pool of 2 candidates yields C(2,2)=1 combination, got %d", len(results))
	}
}

func TestFindBestCombinationsInsufficientCandidates(t *testing.T) {
	rows := []catalog.Row{
		{ID: 1, Name: "Tomato", Category: "Vegetable", Flavors: "sweet,green"},
		{ID: 2, Name: "Plain", Category: "Misc", Flavors: "cardboard"},
	}
	c, _ := catalog.Load(rows, false, nil)
	base := mustGet(t, c, "Tomato")

	// 沒有任何共同風味的候選，湊不滿 3 人組合
	results, err := FindBestCombinations(context.Background(), c, base, 3, 5, 12)
	if err != nil {
		t.Fatalf("FindBestCombinations() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no combinations, got %d", len(results))
	}
}

func TestFindBestCombinationsTopN(t *testing.T) {
	c := comboCatalog()
	base := mustGet(t, c, "Tomato")

	results, err := FindBestCombinations(context.Background(), c, base, 3, 2, 12)
	if err != nil {
		t.Fatalf("FindBestCombinations() error = %v", err)
	}
	if len(results) > 2 {
		t.Errorf("topN=2 but got %d results", len(results))
	}
}
