package advisor

import "strings"

// RiskLevel 風險等級
type RiskLevel int

const (
	// RiskWarning 需留意但可透過處理化解
	RiskWarning RiskLevel = iota
	// RiskDanger 容易毀掉整道搭配
	RiskDanger
)

// String 回傳等級的英文代碼
func (l RiskLevel) String() string {
	if l == RiskDanger {
		return "danger"
	}
	return "warning"
}

// Label 回傳等級的中文名稱
func (l RiskLevel) Label() string {
	if l == RiskDanger {
		return "危險"
	}
	return "警告"
}

// RiskFinding 單一風險發現
type RiskFinding struct {
	Token   string    `json:"token"`
	Keyword string    `json:"keyword"`
	Level   RiskLevel `json:"level"`
	Message string    `json:"message"`
}

type riskRule struct {
	keyword string
	level   RiskLevel
	message string
}

// 風險關鍵詞表。掃描順序即表格順序。
var riskRules = []riskRule{
	{"sulfur", RiskDanger, "含硫化物氣味，加熱過度會放大刺鼻感，建議快速烹調或生食處理"},
	{"rancid", RiskDanger, "帶有油耗味傾向，務必確認食材新鮮度並避免久放"},
	{"putrid", RiskDanger, "腐敗類氣味分子，僅適合極低比例作為發酵風味點綴"},
	{"fishy", RiskWarning, "魚腥味分子可能壓過細緻風味，可用酸性食材中和"},
	{"musty", RiskWarning, "霉土味明顯，建議搭配高揮發性香氣平衡"},
	{"metallic", RiskWarning, "金屬感餘韻會干擾花果香表現，減量使用"},
	{"sweat", RiskWarning, "汗酸類氣味需以甜味或脂肪包覆修飾"},
	{"medicinal", RiskWarning, "藥感風味強烈，少量即可提供個性"},
	{"burnt", RiskWarning, "焦苦味易累積，控制加熱時間與溫度"},
}

// DetectRisks 掃描共同風味中的風險關鍵詞。依風味的掃描順序
// 回報，單一風味可觸發多筆發現，不做訊息去重。
func DetectRisks(commonTokens []string) []RiskFinding {
	var findings []RiskFinding
	for _, token := range commonTokens {
		for _, rule := range riskRules {
			if strings.Contains(token, rule.keyword) {
				findings = append(findings, RiskFinding{
					Token:   token,
					Keyword: rule.keyword,
					Level:   rule.level,
					Message: rule.message,
				})
			}
		}
	}
	return findings
}
