package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadCachePutGet(t *testing.T) {
	cache := NewUploadCache(filepath.Join(t.TempDir(), "cache.json"))
	data := []byte("image bytes")

	_, ok := cache.Get(data)
	assert.False(t, ok)

	cache.Put(data, "https://cdn.example/a.png")

	url, ok := cache.Get(data)
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/a.png", url)
	assert.Equal(t, 1, cache.Size())
}

func TestUploadCachePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	data := []byte("image bytes")

	NewUploadCache(path).Put(data, "https://cdn.example/a.png")

	// 新实例从同一文件加载
	url, ok := NewUploadCache(path).Get(data)
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/a.png", url)
}

func TestUploadCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	cache := NewUploadCache(path)
	cache.Put([]byte("x"), "https://cdn.example/x.png")

	cache.Clear()
	assert.Equal(t, 0, cache.Size())

	// 清空会同时删除持久化文件
	_, ok := NewUploadCache(path).Get([]byte("x"))
	assert.False(t, ok)
}

func TestFingerprintStability(t *testing.T) {
	a := Fingerprint([]byte("same"))
	b := Fingerprint([]byte("same"))
	c := Fingerprint([]byte("different"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
