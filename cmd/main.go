// Package main 为 imgup 工具提供命令行接口
// imgup 把编辑器里粘贴/拖拽的图片上传到图床，并用 markdown 图片引用替换原始数据，
// 同时支持为私有图床的图片链接附加访问令牌
package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/lukemora/imgup/core"
)

// version 是应用程序版本，通常在构建时设置
var version = "v0.1.0"

// main 是应用程序的入口点
// 它设置带有全局标志和命令的 CLI 应用程序
func main() {
	app := &cli.App{
		Name:    "imgup",
		Version: strings.TrimSpace(version),
		Usage:   "编辑器图片上传与令牌重写工具",
		Description: "拦截编辑器的图片粘贴/拖拽事件，上传图片到图床并以 markdown 引用替换，\n" +
			"并为私有图床域名下的图片链接附加访问令牌。\n\n" +
			"使用示例:\n" +
			"  imgup paste screenshot.png\n" +
			"  imgup rewrite rendered.html\n" +
			"  imgup config set accessToken tok123\n" +
			"  imgup serve --dir ./images",
		// 全局标志，适用于所有子命令
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "指定环境变量文件路径",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "指定配置文件路径（默认为用户配置目录下的 imgup/config.json）",
			},
		},
		Before: func(ctx *cli.Context) error {
			// 静默加载环境变量文件，文件不存在是正常情况
			_ = godotenv.Load(ctx.String("env"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "paste",
				Aliases:   []string{"p"},
				Usage:     "把文件作为一次粘贴事件处理：上传并输出 markdown 引用",
				ArgsUsage: "[files...]",
				Flags:     pasteFlags(),
				Action:    handlePasteCommand,
			},
			{
				Name:      "drop",
				Usage:     "把文件作为一次拖拽事件处理（与 paste 相同的流水线）",
				ArgsUsage: "[files...]",
				Flags:     pasteFlags(),
				Action:    handlePasteCommand,
			},
			{
				Name:      "rewrite",
				Usage:     "对渲染后的 HTML/Markdown 片段执行令牌重写",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "片段格式: html / md（默认按扩展名判断）",
					},
					&cli.BoolFlag{
						Name:    "write",
						Aliases: []string{"w"},
						Usage:   "原地改写文件而不是输出到标准输出",
					},
				},
				Action: handleRewriteCommand,
			},
			{
				Name:  "config",
				Usage: "查看和修改配置（每次修改立即持久化）",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "列出全部配置项",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "json",
								Usage: "以JSON格式输出",
							},
						},
						Action: handleConfigListCommand,
					},
					{
						Name:      "get",
						Usage:     "读取单个配置项",
						ArgsUsage: "<field>",
						Action:    handleConfigGetCommand,
					},
					{
						Name:      "set",
						Usage:     "修改单个配置项并立即保存",
						ArgsUsage: "<field> <value>",
						Action:    handleConfigSetCommand,
					},
				},
			},
			{
				Name:  "init",
				Usage: "生成环境变量配置文件模板",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "覆盖已存在的配置文件",
					},
				},
				Action: handleInitCommand,
			},
			{
				Name:   "serve",
				Usage:  "启动自托管图床服务（上传接口 + 令牌鉴权的读取接口）",
				Flags:  serveFlags(),
				Action: handleServeCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

// loadConfigFromContext 解析配置文件路径并加载配置
// 返回配置对象和实际使用的路径
func loadConfigFromContext(ctx *cli.Context) (*core.Config, string, error) {
	path := ctx.String("config")
	if path == "" {
		defaultPath, err := core.DefaultConfigPath()
		if err != nil {
			return nil, "", err
		}
		path = defaultPath
	}

	cfg, err := core.LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
