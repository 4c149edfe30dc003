// Package main 包含粘贴/拖拽事件的命令行入口
// 把命令行指定的文件（或剪贴板里的文件路径、标准输入）组装成一次事件，
// 交给上传替换流水线处理
package main

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"

	"github.com/lukemora/imgup/core"
	"github.com/lukemora/imgup/editor"
)

// pasteFlags 返回 paste/drop 命令共用的标志
func pasteFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "从标准输入读取时使用的文件名",
			Value: "clipboard.png",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "跳过上传缓存，强制重新上传",
		},
	}
}

// handlePasteCommand 处理 paste/drop 命令
// 两个命令共享同一条上传替换流水线
func handlePasteCommand(ctx *cli.Context) error {
	cfg, _, err := loadConfigFromContext(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ 加载配置失败: %v", err), 1)
	}

	files, err := collectFiles(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ %v", err), 1)
	}

	handler := editor.NewHandler(cfg, core.NewUploader(cfg), editor.ConsoleNotifier{})
	if !ctx.Bool("no-cache") {
		// 缓存打不开时退化为无缓存，不影响上传
		if cache, err := core.OpenDefaultCache(); err == nil {
			handler.SetCache(cache)
		}
	}

	handler.HandleEvent(
		context.Background(),
		editor.NewStreamEditor(os.Stdout),
		editor.Event{Files: files},
	)
	return nil
}

// collectFiles 把命令行参数转换为事件的文件载荷
// 无参数时尝试从系统剪贴板文本中读取图片文件路径；参数为 "-" 时读取标准输入
func collectFiles(ctx *cli.Context) ([]editor.File, error) {
	args := ctx.Args().Slice()
	if len(args) == 0 {
		path, err := clipboardPath()
		if err != nil {
			return nil, err
		}
		args = []string{path}
	}

	var files []editor.File
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("读取标准输入失败: %w", err)
			}
			name := ctx.String("name")
			files = append(files, editor.File{
				Name: name,
				MIME: detectMIME(name, data),
				Data: data,
			})
			continue
		}

		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("读取文件失败: %w", err)
		}
		name := filepath.Base(arg)
		files = append(files, editor.File{
			Name: name,
			MIME: detectMIME(name, data),
			Data: data,
		})
	}
	return files, nil
}

// clipboardPath 从剪贴板文本中取出一个存在的文件路径
func clipboardPath() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("读取剪贴板失败: %w", err)
	}

	path := strings.TrimSpace(text)
	if path == "" {
		return "", fmt.Errorf("未指定文件参数，且剪贴板为空")
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("剪贴板内容不是有效的文件路径: %q", path)
	}
	return path, nil
}

// detectMIME 按扩展名推断 MIME 类型，推断不出时嗅探文件内容
func detectMIME(name string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return http.DetectContentType(data)
}
