// Package rewrite 提供渲染后内容的令牌重写后处理
// 对来源匹配配置域名前缀的图片引用，在其 URL 上附加访问令牌查询参数，
// 使私有图床的图片可以被鉴权读取
package rewrite

import (
	"log"
	"net/url"
	"strings"

	"github.com/lukemora/imgup/core"
)

// tokenParam 访问令牌的查询参数名
const tokenParam = "token"

// ImageNode 渲染结果中的图片引用节点
// 后处理只原地修改来源属性，从不创建或销毁节点
type ImageNode interface {
	Src() string
	SetSrc(src string)
}

// Source 对单个图片来源执行令牌重写
// 返回重写后的来源和是否发生了改写。
// 域名前缀为空或来源不匹配前缀时原样返回；
// 来源无法解析为 URL 时返回错误，由调用方跳过该节点。
//
// 令牌参数采用刷新语义：已存在 token 参数时覆盖为当前值，
// 重复执行不会堆叠出多个 token 参数。
func Source(cfg *core.Config, src string) (string, bool, error) {
	if cfg.CustomImageDomain == "" || !strings.HasPrefix(src, cfg.CustomImageDomain) {
		return src, false, nil
	}

	u, err := url.Parse(src)
	if err != nil {
		return src, false, err
	}

	// 保留已有查询参数，只设置 token
	query := u.Query()
	query.Set(tokenParam, cfg.AccessToken)
	u.RawQuery = query.Encode()

	return u.String(), true, nil
}

// Nodes 对一组图片节点执行令牌重写
// 单个节点的来源解析失败只记录日志并跳过，不影响其余节点
func Nodes(cfg *core.Config, nodes []ImageNode) {
	for _, n := range nodes {
		rewritten, changed, err := Source(cfg, n.Src())
		if err != nil {
			log.Printf("⚠️  跳过无法解析的图片来源 %q: %v", n.Src(), err)
			continue
		}
		if changed {
			n.SetSrc(rewritten)
		}
	}
}
