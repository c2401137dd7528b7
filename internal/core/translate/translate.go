package translate

import (
	"strings"
)

// Translator 風味標籤與食材名稱的雙語對照服務。
// 查無詞條時退回格式化規則：底線轉空格、每字首字母大寫。
type Translator struct {
	entries map[string]string
}

// NewTranslator 建立內建詞典的翻譯器
func NewTranslator() *Translator {
	return &Translator{entries: builtinEntries}
}

// NewTranslatorWith 以自訂詞典建立翻譯器（測試或外部詞庫注入用）
func NewTranslatorWith(entries map[string]string) *Translator {
	merged := make(map[string]string, len(entries))
	for k, v := range entries {
		merged[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &Translator{entries: merged}
}

// Translate 翻譯單一 token 為顯示標籤
func (t *Translator) Translate(token string) string {
	key := strings.ToLower(strings.TrimSpace(token))
	if key == "" {
		return ""
	}

	// 完整詞條優先
	if label, ok := t.entries[key]; ok {
		return label
	}

	// 複合詞嘗試部分比對（如 "sweet orange" 命中 "orange"）。
	// 多個詞條可能同時命中，取最長鍵、同長取字典序較小者，結果可重現。
	bestKey, bestLabel := "", ""
	for eng, label := range t.entries {
		if !strings.Contains(key, eng) && !strings.Contains(eng, key) {
			continue
		}
		if len(eng) > len(bestKey) || (len(eng) == len(bestKey) && eng < bestKey) {
			bestKey, bestLabel = eng, label
		}
	}
	if bestKey != "" {
		return bestLabel
	}

	return Fallback(token)
}

// TranslateAll 依序翻譯 token 序列，對翻譯結果去重並保留首見順序
func (t *Translator) TranslateAll(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		label := t.Translate(token)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

// Fallback 查無詞條時的顯示規則：底線轉空格、字首大寫
func Fallback(token string) string {
	token = strings.ReplaceAll(strings.TrimSpace(token), "_", " ")
	if token == "" {
		return ""
	}
	words := strings.Fields(token)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
