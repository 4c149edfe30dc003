// Package rewrite - Markdown 文本的令牌重写
package rewrite

import (
	"log"

	"github.com/88250/lute"
	"github.com/88250/lute/ast"
	"github.com/88250/lute/parse"
	"github.com/88250/lute/render"

	"github.com/lukemora/imgup/core"
)

// Markdown 对 Markdown 文本执行令牌重写
// 通过 lute 解析语法树，遍历全部图片节点并改写链接目标，
// 再由格式化渲染器输出
func Markdown(cfg *core.Config, text string) (string, error) {
	engine := lute.New()
	tree := parse.Parse("rewrite", []byte(text), engine.ParseOptions)

	ast.Walk(tree.Root, func(n *ast.Node, entering bool) ast.WalkStatus {
		if !entering || n.Type != ast.NodeImage {
			return ast.WalkContinue
		}

		dest := n.ChildByType(ast.NodeLinkDest)
		if dest == nil {
			return ast.WalkContinue
		}

		rewritten, changed, err := Source(cfg, string(dest.Tokens))
		if err != nil {
			log.Printf("⚠️  跳过无法解析的图片来源 %q: %v", string(dest.Tokens), err)
			return ast.WalkContinue
		}
		if changed {
			dest.Tokens = []byte(rewritten)
		}
		return ast.WalkContinue
	})

	formatted := render.NewFormatRenderer(tree, engine.RenderOptions)
	return string(formatted.Render()), nil
}
