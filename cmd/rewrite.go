// Package main 包含令牌重写的命令行入口
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lukemora/imgup/rewrite"
)

// handleRewriteCommand 处理 rewrite 命令
// 对渲染后的片段文件执行令牌重写，输出到标准输出或原地改写
func handleRewriteCommand(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("❌ 需要一个文件参数: imgup rewrite <file>", 1)
	}
	path := ctx.Args().First()

	cfg, _, err := loadConfigFromContext(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ 加载配置失败: %v", err), 1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ 读取文件失败: %v", err), 1)
	}

	format := ctx.String("format")
	if format == "" {
		format = formatByExtension(path)
	}

	var out string
	switch format {
	case "html":
		out, err = rewrite.HTML(cfg, string(data))
	case "md", "markdown":
		out, err = rewrite.Markdown(cfg, string(data))
	default:
		return cli.Exit(fmt.Sprintf("❌ 不支持的片段格式: %s (支持: html, md)", format), 1)
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ 令牌重写失败: %v", err), 1)
	}

	if ctx.Bool("write") {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return cli.Exit(fmt.Sprintf("❌ 写回文件失败: %v", err), 1)
		}
		fmt.Printf("✅ 已重写 %s\n", path)
		return nil
	}

	fmt.Print(out)
	return nil
}

// formatByExtension 按文件扩展名判断片段格式，默认按 Markdown 处理
func formatByExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "html"
	default:
		return "md"
	}
}
