// Package core 提供 imgup 的核心功能
// 此文件处理配置管理：默认值、配置文件加载与持久化、环境变量覆盖
package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config 表示 imgup 的完整配置
// 所有字段都有默认值；加载时缺失的字段会回退到默认值
type Config struct {
	ApiUrl            string `json:"apiUrl"`            // 图床上传接口地址
	ApiToken          string `json:"apiToken"`          // 上传接口的 Bearer 凭证
	AppendSuffix      bool   `json:"appendSuffix"`      // 是否在文件名后追加时间戳后缀
	SuffixFormat      string `json:"suffixFormat"`      // 时间戳后缀格式（YYYY/MM/DD/HH/mm/ss 记号）
	AccessToken       string `json:"accessToken"`       // 图片读取的查询参数凭证
	CustomImageDomain string `json:"customImageDomain"` // 需要追加凭证的图片域名前缀（可为空）
}

// NewConfig 创建带默认值的配置
func NewConfig() *Config {
	return &Config{
		ApiUrl:            "https://api.example.com/upload", // 默认上传地址
		ApiToken:          "",                               // 默认无上传凭证
		AppendSuffix:      false,                            // 默认不追加后缀
		SuffixFormat:      "-YYYYMMDDHHmmss",                // 默认后缀格式
		AccessToken:       "",                               // 默认无读取凭证
		CustomImageDomain: "https://example.com/read",       // 默认图片域名前缀
	}
}

// DefaultConfigPath 返回默认配置文件路径
// 位于用户配置目录下的 imgup/config.json
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("获取用户配置目录失败: %w", err)
	}
	return filepath.Join(dir, "imgup", "config.json"), nil
}

// LoadConfig 加载配置，优先级：环境变量 > 配置文件 > 默认值
// 配置文件不存在时静默使用默认值；解析失败则报错
func LoadConfig(path string) (*Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		// 在默认值之上反序列化，缺失的字段保留默认值
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("解析配置文件失败 %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("读取配置文件失败 %s: %w", path, err)
	}

	// 使用环境变量覆盖（最高优先级）
	loadEnvOverrides(config)

	return config, nil
}

// loadEnvOverrides 从环境变量加载配置覆盖
func loadEnvOverrides(config *Config) {
	if apiUrl := os.Getenv("IMGUP_API_URL"); apiUrl != "" {
		config.ApiUrl = apiUrl
	}
	if apiToken := os.Getenv("IMGUP_API_TOKEN"); apiToken != "" {
		config.ApiToken = apiToken
	}
	if appendSuffix := os.Getenv("IMGUP_APPEND_SUFFIX"); appendSuffix == "true" || appendSuffix == "1" {
		config.AppendSuffix = true
	}
	if suffixFormat := os.Getenv("IMGUP_SUFFIX_FORMAT"); suffixFormat != "" {
		config.SuffixFormat = suffixFormat
	}
	if accessToken := os.Getenv("IMGUP_ACCESS_TOKEN"); accessToken != "" {
		config.AccessToken = accessToken
	}
	if domain := os.Getenv("IMGUP_CUSTOM_IMAGE_DOMAIN"); domain != "" {
		config.CustomImageDomain = domain
	}
}

// Save 将完整配置写回文件
// 每次字段修改后都应调用，保证配置立即落盘
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	return nil
}

// Fields 返回可编辑字段名的固定顺序列表，用于设置界面展示
func (c *Config) Fields() []string {
	return []string{
		"apiUrl",
		"apiToken",
		"appendSuffix",
		"suffixFormat",
		"accessToken",
		"customImageDomain",
	}
}

// Get 按字段名读取配置值
func (c *Config) Get(field string) (string, error) {
	switch field {
	case "apiUrl":
		return c.ApiUrl, nil
	case "apiToken":
		return c.ApiToken, nil
	case "appendSuffix":
		return strconv.FormatBool(c.AppendSuffix), nil
	case "suffixFormat":
		return c.SuffixFormat, nil
	case "accessToken":
		return c.AccessToken, nil
	case "customImageDomain":
		return c.CustomImageDomain, nil
	}
	return "", fmt.Errorf("未知的配置项: %s", field)
}

// Set 按字段名修改配置值
// appendSuffix 接受 true/false/1/0
func (c *Config) Set(field, value string) error {
	switch field {
	case "apiUrl":
		c.ApiUrl = value
	case "apiToken":
		c.ApiToken = value
	case "appendSuffix":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("appendSuffix 需要布尔值 (true/false): %w", err)
		}
		c.AppendSuffix = b
	case "suffixFormat":
		c.SuffixFormat = value
	case "accessToken":
		c.AccessToken = value
	case "customImageDomain":
		c.CustomImageDomain = value
	default:
		return fmt.Errorf("未知的配置项: %s", field)
	}
	return nil
}
