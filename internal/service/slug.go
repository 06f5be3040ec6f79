package service

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)
)

// Slugify 由名称派生 URL 安全的唯一标识：
// 小写、去除非字母数字字符、空白折叠为连字符。
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
