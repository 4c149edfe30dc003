// Package core - 文件名策略
// 根据配置为上传文件派生最终文件名，可选追加时间戳后缀以降低重名概率
package core

import (
	"strings"
	"time"
)

// suffixTokens 将时间戳记号映射到 Go 的时间布局
// 支持的记号: YYYY(年) MM(月) DD(日) HH(时,24小时制) mm(分) ss(秒)
var suffixTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// FormatSuffix 按记号格式渲染时间戳后缀
// 逐个扫描并只渲染识别出的记号，记号以外的字符原样保留；
// 整串交给 time.Format 会把格式里的字面数字误当作布局记号
func FormatSuffix(format string, t time.Time) string {
	var b strings.Builder
	for i := 0; i < len(format); {
		matched := false
		for _, tok := range suffixTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				b.WriteString(t.Format(tok.layout))
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

// FinalFilename 派生上传用的最终文件名
// 关闭后缀时原样返回；开启后缀时：
//   - 文件名含 "." 分隔符，后缀插入到最后一个扩展名之前
//     （按最后一个 "." 切分，更早的 "." 属于主干部分）
//   - 文件名不含 "."，后缀直接追加到末尾
//
// 除时间戳本身外不做重名检测，属于尽力而为
func FinalFilename(cfg *Config, name string, now time.Time) string {
	if !cfg.AppendSuffix {
		return name
	}

	suffix := FormatSuffix(cfg.SuffixFormat, now)

	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name + suffix
	}
	return name[:idx] + suffix + name[idx:]
}
