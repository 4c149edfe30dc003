// Package core - 上传缓存管理
// 维护 内容指纹 -> 图床URL 的映射，避免同一张图片重复上传
package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// UploadCache 基于 JSON 文件的上传缓存
// 键为图片内容的 sha256 指纹，值为图床 URL
type UploadCache struct {
	path string

	mu      sync.RWMutex
	entries map[string]string
	loaded  bool
}

// NewUploadCache 创建指定文件路径的上传缓存
func NewUploadCache(path string) *UploadCache {
	return &UploadCache{
		path:    path,
		entries: make(map[string]string),
	}
}

// OpenDefaultCache 打开默认位置的上传缓存
// 位于用户缓存目录下的 imgup/upload-cache.json
func OpenDefaultCache() (*UploadCache, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("获取用户缓存目录失败: %w", err)
	}
	return NewUploadCache(filepath.Join(dir, "imgup", "upload-cache.json")), nil
}

// Fingerprint 计算图片内容的缓存键
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// load 从文件加载缓存，只执行一次
func (c *UploadCache) load() {
	if c.loaded {
		return
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		// 文件不存在是正常的
		c.loaded = true
		return
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		// JSON 解析失败，视为空缓存
		c.entries = make(map[string]string)
	}
	c.loaded = true
}

// persist 保存缓存到文件
// 缓存体量很小，同步写入不会拖慢上传主流程
func (c *UploadCache) persist() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// Get 获取缓存的图床 URL
func (c *UploadCache) Get(data []byte) (string, bool) {
	c.mu.Lock()
	c.load()
	url, ok := c.entries[Fingerprint(data)]
	c.mu.Unlock()
	return url, ok
}

// Put 写入缓存并立即持久化
// 持久化失败不影响主流程，错误由调用方忽略即可
func (c *UploadCache) Put(data []byte, url string) {
	c.mu.Lock()
	c.load()
	c.entries[Fingerprint(data)] = url
	err := c.persist()
	c.mu.Unlock()

	if err != nil {
		fmt.Printf("⚠️  上传缓存持久化失败: %v\n", err)
	}
}

// Size 返回缓存条目数
func (c *UploadCache) Size() int {
	c.mu.Lock()
	c.load()
	n := len(c.entries)
	c.mu.Unlock()
	return n
}

// Clear 清空缓存（用于测试或重置）
func (c *UploadCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.loaded = true
	c.mu.Unlock()

	os.Remove(c.path)
}
