// Package rewrite - HTML 片段的令牌重写
package rewrite

import (
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukemora/imgup/core"
)

// HTML 对渲染后的 HTML 片段执行令牌重写
// 扫描片段中的全部 img 节点，对来源匹配域名前缀的节点改写 src 属性，
// 返回处理后的片段
func HTML(cfg *core.Config, fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("解析 HTML 片段失败: %w", err)
	}

	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		rewritten, changed, err := Source(cfg, src)
		if err != nil {
			log.Printf("⚠️  跳过无法解析的图片来源 %q: %v", src, err)
			return
		}
		if changed {
			sel.SetAttr("src", rewritten)
		}
	})

	// goquery 会把片段包进完整文档，这里取回 body 内部的片段
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("序列化 HTML 片段失败: %w", err)
	}
	return out, nil
}
