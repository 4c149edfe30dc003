// Package main - 初始化配置文件功能
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// envTemplate 环境变量配置文件模板
const envTemplate = `# ====================================
# imgup 图片上传工具 - 环境变量配置
# ====================================
# 环境变量的优先级高于 config.json 中的同名配置

# ----------------------------------
# 图床上传配置
# ----------------------------------
# 上传接口地址
# IMGUP_API_URL=https://api.example.com/upload

# 上传接口的 Bearer 凭证
# IMGUP_API_TOKEN=your_api_token_here

# ----------------------------------
# 文件名策略（可选）
# ----------------------------------
# 是否在文件名后追加时间戳后缀以降低重名概率
# 值: true/false 或 1/0
# IMGUP_APPEND_SUFFIX=false

# 时间戳后缀格式
# 支持的记号: YYYY(年) MM(月) DD(日) HH(时) mm(分) ss(秒)
# 默认: -YYYYMMDDHHmmss
# IMGUP_SUFFIX_FORMAT=-YYYYMMDDHHmmss

# ----------------------------------
# 私有图床读取配置（可选）
# ----------------------------------
# 读取图片时附加的访问令牌（token 查询参数）
# IMGUP_ACCESS_TOKEN=your_access_token_here

# 需要附加令牌的图片域名前缀
# 只有以此前缀开头的图片链接会被重写
# IMGUP_CUSTOM_IMAGE_DOMAIN=https://example.com/read


# ----------------------------------
# 使用说明
# ----------------------------------
# 1. 取消注释并填写需要覆盖的配置项
# 2. 工具会自动加载当前目录的 .env 文件:
#    imgup paste screenshot.png
# 3. 也可以用 --env 指定其他文件:
#    imgup --env my.env paste screenshot.png
#
# 注意: .env 文件包含敏感凭证，请勿提交到 Git 仓库
`

// handleInitCommand 处理 init 命令
func handleInitCommand(ctx *cli.Context) error {
	force := ctx.Bool("force")
	filename := ".env"

	// 检查文件是否已存在
	if !force {
		if _, err := os.Stat(filename); err == nil {
			return cli.Exit(fmt.Sprintf("❌ 文件 %s 已存在\n"+
				"使用 --force 参数强制覆盖，或手动删除后重试", filename), 1)
		}
	}

	// 写入配置文件
	if err := os.WriteFile(filename, []byte(envTemplate), 0o644); err != nil {
		return cli.Exit(fmt.Sprintf("❌ 创建配置文件失败: %v", err), 1)
	}

	// 成功提示
	fmt.Println("✅ 配置文件已创建: " + filename)
	fmt.Println()
	fmt.Println("📝 后续步骤:")
	fmt.Println("  1. 编辑配置文件，填写上传接口地址和凭证")
	fmt.Println("  2. 开始使用: imgup paste <图片文件>")
	fmt.Println()
	fmt.Println("💡 提示:")
	fmt.Println("  - 持久化配置建议通过 imgup config set 管理")
	fmt.Println("  - .env 适合存放不想落盘到配置文件的敏感凭证")

	return nil
}
