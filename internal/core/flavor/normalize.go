package flavor

import (
	"strings"
)

// 風味欄位使用雙層分隔符：逗號分隔「風味群組」，@ 分隔群組內的
// 分子描述詞。兩者都必須視為 token 邊界，否則會留下未拆開的複合字串。
const (
	groupSeparator = ","
	innerSeparator = "@"
)

// Normalize 解析原始風味欄位為依序排列的小寫 token 序列。
// 保留重複（重複代表該風味出現在多個分子中），不在此處去重；
// 集合化由 catalog 在建立 FlavorSet 時處理。
func Normalize(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var tokens []string
	for _, group := range strings.Split(raw, groupSeparator) {
		for _, part := range strings.Split(group, innerSeparator) {
			token := strings.ToLower(strings.TrimSpace(part))
			if token == "" {
				continue
			}
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ToSet 將 token 序列收斂為集合
func ToSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
