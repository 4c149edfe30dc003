// Package main - 自托管图床服务
// 提供与上传客户端对应的服务端：multipart 上传接口和令牌鉴权的读取接口，
// 方便在私有环境里搭一个最小可用的图床
package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/lukemora/imgup/core"
	"github.com/lukemora/imgup/utils"
)

// serveFlags 返回 serve 命令的标志
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "addr",
			Usage: "监听地址",
			Value: "127.0.0.1:8080",
		},
		&cli.StringFlag{
			Name:  "dir",
			Usage: "图片存储目录",
			Value: "./images",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "返回给客户端的访问地址前缀（默认由监听地址推导）",
		},
	}
}

// handleServeCommand 处理 serve 命令
// 上传接口校验 Bearer 凭证，读取接口校验 token 查询参数
func handleServeCommand(ctx *cli.Context) error {
	cfg, _, err := loadConfigFromContext(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ 加载配置失败: %v", err), 1)
	}

	dir := ctx.String("dir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return cli.Exit(fmt.Sprintf("❌ 创建存储目录失败: %v", err), 1)
	}

	addr := ctx.String("addr")
	base := ctx.String("base-url")
	if base == "" {
		base = baseURLFromAddr(addr)
	}
	base = strings.TrimSuffix(base, "/")

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	// 上传接口: POST /upload
	// 请求体为 multipart 表单，文件在 image 字段下
	router.POST("/upload", func(c *gin.Context) {
		if cfg.ApiToken != "" && c.GetHeader("Authorization") != "Bearer "+cfg.ApiToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的上传凭证"})
			return
		}

		fh, err := c.FormFile(core.UploadFieldName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("缺少 %s 表单字段", core.UploadFieldName)})
			return
		}

		name := utils.SanitizeFileName(fh.Filename)
		if err := c.SaveUploadedFile(fh, filepath.Join(dir, name)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": base + "/read/" + url.PathEscape(name)})
	})

	// 读取接口: GET /read/:name?token=<accessToken>
	// 配置了 accessToken 时要求令牌匹配
	router.GET("/read/:name", func(c *gin.Context) {
		if cfg.AccessToken != "" && c.Query("token") != cfg.AccessToken {
			c.JSON(http.StatusForbidden, gin.H{"error": "无效的访问令牌"})
			return
		}

		name := utils.SanitizeFileName(c.Param("name"))
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "图片不存在"})
			return
		}
		c.File(path)
	})

	fmt.Printf("🚀 图床服务已启动: http://%s (存储目录 %s)\n", addr, dir)
	return router.Run(addr)
}

// baseURLFromAddr 由监听地址推导对外访问前缀
func baseURLFromAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
