package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "https://api.example.com/upload", cfg.ApiUrl)
	assert.Equal(t, "", cfg.ApiToken)
	assert.False(t, cfg.AppendSuffix)
	assert.Equal(t, "-YYYYMMDDHHmmss", cfg.SuffixFormat)
	assert.Equal(t, "", cfg.AccessToken)
	assert.Equal(t, "https://example.com/read", cfg.CustomImageDomain)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)

	// 文件不存在时回退到默认值
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"apiToken": "abc", "appendSuffix": true}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.ApiToken)
	assert.True(t, cfg.AppendSuffix)
	// 文件里缺失的字段保留默认值
	assert.Equal(t, "https://api.example.com/upload", cfg.ApiUrl)
	assert.Equal(t, "-YYYYMMDDHHmmss", cfg.SuffixFormat)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := NewConfig()
	cfg.ApiToken = "bearer-1"
	cfg.AccessToken = "tok123"
	cfg.AppendSuffix = true
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("IMGUP_API_URL", "https://bed.internal/upload")
	t.Setenv("IMGUP_APPEND_SUFFIX", "1")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)

	assert.Equal(t, "https://bed.internal/upload", cfg.ApiUrl)
	assert.True(t, cfg.AppendSuffix)
}

func TestConfigSetAndGet(t *testing.T) {
	cfg := NewConfig()

	require.NoError(t, cfg.Set("accessToken", "tok123"))
	require.NoError(t, cfg.Set("appendSuffix", "true"))

	value, err := cfg.Get("accessToken")
	require.NoError(t, err)
	assert.Equal(t, "tok123", value)

	value, err = cfg.Get("appendSuffix")
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestConfigSetInvalid(t *testing.T) {
	cfg := NewConfig()

	assert.Error(t, cfg.Set("appendSuffix", "maybe"))
	assert.Error(t, cfg.Set("unknownField", "x"))

	_, err := cfg.Get("unknownField")
	assert.Error(t, err)
}

func TestConfigFieldsCoverEverything(t *testing.T) {
	cfg := NewConfig()
	for _, field := range cfg.Fields() {
		_, err := cfg.Get(field)
		assert.NoError(t, err, "字段 %s 应可读取", field)
	}
}
