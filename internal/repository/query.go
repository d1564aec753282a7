package repository

import "strings"

// LIKE 元字符统一用反斜杠转义，查询里配合 ESCAPE 子句按字面量匹配
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern 构造大小写不敏感的子串匹配片段，配合 LOWER(column) 使用
func likePattern(keyword string) string {
	return likeEscaper.Replace(strings.ToLower(keyword))
}
