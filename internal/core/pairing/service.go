package pairing

import (
	"context"
	"encoding/json"
	"strconv"

	"flavor-lab/internal/core/advisor"
	"flavor-lab/internal/core/cache"
	"flavor-lab/internal/core/catalog"
	"flavor-lab/internal/core/translate"
	"flavor-lab/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 配對查詢門面。素食目錄與完整目錄並存，
// 由請求旗標選擇；兩者皆於啟動時載入、之後唯讀。
type Service struct {
	full       *catalog.Catalog
	vegan      *catalog.Catalog
	translator *translate.Translator
	store      cache.Store
	comboPool  int
}

// NewService 建立配對查詢服務
func NewService(full, vegan *catalog.Catalog, translator *translate.Translator, store cache.Store, comboPool int) *Service {
	return &Service{
		full:       full,
		vegan:      vegan,
		translator: translator,
		store:      store,
		comboPool:  comboPool,
	}
}

// catalogFor 依素食旗標選擇目錄實例
func (s *Service) catalogFor(vegan bool) *catalog.Catalog {
	if vegan {
		return s.vegan
	}
	return s.full
}

// Search 多階段名稱搜尋
func (s *Service) Search(query string, limit int, vegan bool) []*catalog.Ingredient {
	return s.catalogFor(vegan).Search(query, limit)
}

// GetByID 依 ID 查詢食材
func (s *Service) GetByID(id int, vegan bool) (*catalog.Ingredient, error) {
	item, ok := s.catalogFor(vegan).GetByID(id)
	if !ok {
		return nil, common.ErrIngredientNotFound
	}
	return item, nil
}

// GetByName 依名稱查詢食材（正規名稱、中文名稱或子字串）
func (s *Service) GetByName(name string, vegan bool) (*catalog.Ingredient, error) {
	item, ok := s.catalogFor(vegan).FindByName(name)
	if !ok {
		return nil, common.ErrIngredientNotFound
	}
	return item, nil
}

// CatalogSize 目錄中的食材數
func (s *Service) CatalogSize(vegan bool) int {
	return s.catalogFor(vegan).Len()
}

// ListCategories 排序後的類別清單
func (s *Service) ListCategories(vegan bool) []string {
	return s.catalogFor(vegan).Categories()
}

// Translate 翻譯單一風味 token，委派給翻譯服務
func (s *Service) Translate(token string) string {
	return s.translator.Translate(token)
}

// PairingResult 一次配對查詢的完整結果，逐請求重建、不落地
type PairingResult struct {
	First        *catalog.Ingredient     `json:"first"`
	Second       *catalog.Ingredient     `json:"second"`
	Strategy     Strategy                `json:"strategy"`
	Score        float64                 `json:"score"`
	Common       []string                `json:"common_flavors"`
	CommonLabels []string                `json:"common_labels"`
	Contrast     ContrastScore           `json:"contrast"`
	Type         advisor.TypeResult      `json:"pairing_type"`
	Direction    advisor.DirectionResult `json:"direction"`
	Roles        advisor.Roles           `json:"roles"`
	Synergies    []advisor.Synergy       `json:"synergies"`
	Risks        []advisor.RiskFinding   `json:"risks"`
	Insights     []string                `json:"insights"`
}

// ScorePair 計算兩食材的配對分析。任一食材查無即回傳
// NotFound 錯誤，不以預設食材代打。
func (s *Service) ScorePair(ctx context.Context, nameA, nameB, strategyName string, vegan bool) (*PairingResult, error) {
	strategy, err := ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}

	first, err := s.GetByName(nameA, vegan)
	if err != nil {
		return nil, err
	}
	second, err := s.GetByName(nameB, vegan)
	if err != nil {
		return nil, err
	}

	key := cache.Key("pair", string(strategy), strconv.FormatBool(vegan),
		strconv.Itoa(first.ID), strconv.Itoa(second.ID))
	if cached, ok := s.cacheGet(ctx, key); ok {
		var result PairingResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	shared := CommonFlavors(first, second)
	result := &PairingResult{
		First:        first,
		Second:       second,
		Strategy:     strategy,
		Score:        Score(first, second, strategy),
		Common:       shared,
		CommonLabels: s.translator.TranslateAll(shared),
		Contrast:     ScoreContrast(first, second, nil),
		Type:         advisor.ClassifyPair(first, second),
		Direction:    advisor.AnalyzeDirection(first, second),
		Roles:        advisor.DetermineRoles(first, second),
		Synergies:    advisor.FindSynergies(first, second),
		Risks:        advisor.DetectRisks(shared),
	}
	result.Insights = advisor.ChefInsights(first, second, result.Score)

	s.cacheSet(ctx, key, result)
	return result, nil
}

// ConsonancePairings 共鳴配對排名
func (s *Service) ConsonancePairings(name, strategyName string, opts RankOptions, vegan bool) ([]RankedPairing, error) {
	strategy, err := ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}
	target, err := s.GetByName(name, vegan)
	if err != nil {
		return nil, err
	}
	return ConsonanceRanking(s.catalogFor(vegan), target, strategy, opts), nil
}

// ContrastPairings 對比配對排名
func (s *Service) ContrastPairings(name string, opts RankOptions, vegan bool) ([]RankedPairing, error) {
	target, err := s.GetByName(name, vegan)
	if err != nil {
		return nil, err
	}
	return ContrastRanking(s.catalogFor(vegan), target, opts), nil
}

// FindCombinations 搜尋含基準食材的最佳 size 人組合
func (s *Service) FindCombinations(ctx context.Context, baseName string, size, topN int, vegan bool) ([]Combination, error) {
	base, err := s.GetByName(baseName, vegan)
	if err != nil {
		return nil, err
	}

	key := cache.Key("combo", strconv.FormatBool(vegan),
		strconv.Itoa(base.ID), strconv.Itoa(size), strconv.Itoa(topN))
	if cached, ok := s.cacheGet(ctx, key); ok {
		var results []Combination
		if err := json.Unmarshal([]byte(cached), &results); err == nil {
			return results, nil
		}
	}

	results, err := FindBestCombinations(ctx, s.catalogFor(vegan), base, size, topN, s.comboPool)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, results)
	return results, nil
}

// CacheStats 快取統計，快取停用時回傳 nil
func (s *Service) CacheStats() map[string]interface{} {
	if s.store == nil {
		return nil
	}
	return s.store.Stats()
}

func (s *Service) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.store == nil {
		return "", false
	}
	value, err := s.store.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.store == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		common.LogWarn("快取序列化失敗", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		common.LogDebug("快取寫入失敗", zap.Error(err))
	}
}
