package utils

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "  ")
	return string(s)
}

// SanitizeFileName 清理图片文件名中的非法字符
// 用于把上传文件名转换为可以安全落盘的对象名
func SanitizeFileName(name string) string {
	// 去掉路径部分，防止目录穿越
	name = filepath.Base(name)

	// 特殊字符统一替换为连字符
	replacements := map[string]string{
		"/":  "-",
		"\\": "-",
		":":  "-",
		"*":  "-",
		"?":  "-",
		"\"": "-",
		"<":  "-",
		">":  "-",
		"|":  "-",
	}
	for invalid, replacement := range replacements {
		name = strings.ReplaceAll(name, invalid, replacement)
	}

	name = strings.TrimSpace(name)

	// 文件名为空或只有点时使用默认名称
	if name == "" || name == "." || name == ".." {
		name = "untitled"
	}

	return name
}
