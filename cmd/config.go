// Package main 包含配置查看与修改的命令行入口
// 配置的每次修改都会把完整配置立即写回文件
package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/lukemora/imgup/utils"
)

// handleConfigListCommand 处理 config list 命令
func handleConfigListCommand(ctx *cli.Context) error {
	cfg, path, err := loadConfigFromContext(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ 加载配置失败: %v", err), 1)
	}

	if ctx.Bool("json") {
		fmt.Println(utils.PrettyPrint(cfg))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"配置项", "值"})
	for _, field := range cfg.Fields() {
		value, _ := cfg.Get(field)
		table.Append([]string{field, value})
	}
	table.Render()

	fmt.Printf("📄 配置文件: %s\n", path)
	return nil
}

// handleConfigGetCommand 处理 config get 命令
func handleConfigGetCommand(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("❌ 需要一个字段参数: imgup config get <field>", 1)
	}

	cfg, _, err := loadConfigFromContext(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ 加载配置失败: %v", err), 1)
	}

	value, err := cfg.Get(ctx.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ %v", err), 1)
	}
	fmt.Println(value)
	return nil
}

// handleConfigSetCommand 处理 config set 命令
// 修改单个字段后立即把完整配置持久化
func handleConfigSetCommand(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.Exit("❌ 需要字段和值两个参数: imgup config set <field> <value>", 1)
	}

	cfg, path, err := loadConfigFromContext(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ 加载配置失败: %v", err), 1)
	}

	field, value := ctx.Args().Get(0), ctx.Args().Get(1)
	if err := cfg.Set(field, value); err != nil {
		return cli.Exit(fmt.Sprintf("❌ %v", err), 1)
	}
	if err := cfg.Save(path); err != nil {
		return cli.Exit(fmt.Sprintf("❌ 保存配置失败: %v", err), 1)
	}

	fmt.Printf("✅ 已更新 %s 并保存到 %s\n", field, path)
	return nil
}
