package pairing

import (
	"context"
	"net/http"
	"strconv"

	core "flavor-lab/internal/core/pairing"
	"flavor-lab/internal/infrastructure/config"
	"flavor-lab/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 配對查詢處理程序
type Handler struct {
	service *core.Service
	config  *config.Config
}

// NewHandler 創建配對查詢處理程序
func NewHandler(service *core.Service, cfg *config.Config) *Handler {
	return &Handler{
		service: service,
		config:  cfg,
	}
}

// ensureRequestID 確保回應帶有請求 ID
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// respondError 依錯誤型別寫入錯誤響應
func respondError(c *gin.Context, err error) {
	if ce, ok := err.(*common.CustomError); ok {
		c.JSON(ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		})
		return
	}
	if err == context.DeadlineExceeded || err == context.Canceled {
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": common.ErrRequestTimeout.Message,
			"code":  common.ErrCodeRequestTimeout,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": common.ErrInternalError.Message,
		"code":  common.ErrCodeInternalError,
	})
}

// veganFlag 從查詢參數讀取素食旗標
func veganFlag(c *gin.Context) bool {
	return c.Query("vegan") == "true" || c.Query("vegan") == "1"
}

// HandleSearch 食材搜尋
// GET /api/v1/ingredients/search?q=tomato&limit=20&vegan=false
func (h *Handler) HandleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "缺少查詢參數 q",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	results := h.service.Search(query, limit, veganFlag(c))
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// HandleGetIngredient 依 ID 取得食材
// GET /api/v1/ingredients/:id
func (h *Handler) HandleGetIngredient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "無效的食材 ID",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	item, err := h.service.GetByID(id, veganFlag(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// HandleCategories 類別清單
// GET /api/v1/categories
func (h *Handler) HandleCategories(c *gin.Context) {
	categories := h.service.ListCategories(veganFlag(c))
	c.JSON(http.StatusOK, gin.H{
		"count":      len(categories),
		"categories": categories,
	})
}

// HandleTranslate 單一風味 token 翻譯
// GET /api/v1/translate/:token
func (h *Handler) HandleTranslate(c *gin.Context) {
	token := c.Param("token")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"label": h.service.Translate(token),
	})
}

// ScorePairRequest 配對評分請求
type ScorePairRequest struct {
	First    string `json:"first" binding:"required"`  // 第一個食材名稱
	Second   string `json:"second" binding:"required"` // 第二個食材名稱
	Strategy string `json:"strategy,omitempty"`        // jaccard / normalized / weighted
	Vegan    bool   `json:"vegan,omitempty"`
}

// HandleScorePair 兩食材配對分析
// POST /api/v1/pairing/score
func (h *Handler) HandleScorePair(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ScorePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	result, err := h.service.ScorePair(c.Request.Context(), req.First, req.Second, req.Strategy, req.Vegan)
	if err != nil {
		respondError(c, err)
		return
	}

	common.LogInfo("配對分析完成",
		zap.String("request_id", requestID),
		zap.String("first", req.First),
		zap.String("second", req.Second),
		zap.Float64("score", result.Score),
	)
	c.JSON(http.StatusOK, result)
}

// RankingRequest 配對排名請求
type RankingRequest struct {
	Name              string   `json:"name" binding:"required"` // 目標食材名稱
	Strategy          string   `json:"strategy,omitempty"`
	TopN              int      `json:"top_n,omitempty"`
	ExcludeCategories []string `json:"exclude_categories,omitempty"`
	PreferCategories  []string `json:"prefer_categories,omitempty"`
	Blacklist         []string `json:"blacklist,omitempty"`
	Vegan             bool     `json:"vegan,omitempty"`
}

func (r *RankingRequest) options() core.RankOptions {
	topN := r.TopN
	if topN <= 0 {
		topN = 10
	}
	return core.RankOptions{
		TopN:              topN,
		ExcludeCategories: r.ExcludeCategories,
		PreferCategories:  r.PreferCategories,
		Blacklist:         r.Blacklist,
	}
}

// HandleConsonance 共鳴配對排名
// POST /api/v1/pairing/consonance
func (h *Handler) HandleConsonance(c *gin.Context) {
	var req RankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	results, err := h.service.ConsonancePairings(req.Name, req.Strategy, req.options(), req.Vegan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":    req.Name,
		"count":   len(results),
		"results": results,
	})
}

// HandleContrast 對比配對排名
// POST /api/v1/pairing/contrast
func (h *Handler) HandleContrast(c *gin.Context) {
	var req RankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	results, err := h.service.ContrastPairings(req.Name, req.options(), req.Vegan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":    req.Name,
		"count":   len(results),
		"results": results,
	})
}

// CombinationsRequest 組合搜尋請求
type CombinationsRequest struct {
	Base  string `json:"base" binding:"required"` // 基準食材名稱
	Size  int    `json:"size" binding:"required"` // 組合人數 3..5
	TopN  int    `json:"top_n,omitempty"`
	Vegan bool   `json:"vegan,omitempty"`
}

// HandleCombinations 組合搜尋。枚舉成本高，掛上設定的逾時。
// POST /api/v1/pairing/combinations
func (h *Handler) HandleCombinations(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req CombinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = 10
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.Combo.Timeout)
	defer cancel()

	results, err := h.service.FindCombinations(ctx, req.Base, req.Size, topN, req.Vegan)
	if err != nil {
		respondError(c, err)
		return
	}

	common.LogInfo("組合搜尋完成",
		zap.String("request_id", requestID),
		zap.String("base", req.Base),
		zap.Int("size", req.Size),
		zap.Int("count", len(results)),
	)
	c.JSON(http.StatusOK, gin.H{
		"base":    req.Base,
		"size":    req.Size,
		"count":   len(results),
		"results": results,
	})
}
