package util

import (
	"strconv"
	"strings"
)

// ParseAnswer 将表单值转换为 0/1，无法解析或非 1 的值一律视为 0
func ParseAnswer(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v != 1 {
		return 0
	}
	return 1
}

// FormatPercent 按 Python float 的 str() 格式输出百分比，例如 45.45、100.0
func FormatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
