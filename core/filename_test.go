package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 固定时间戳: 2024-01-01 12:00:00
var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFormatSuffix(t *testing.T) {
	assert.Equal(t, "-20240101120000", FormatSuffix("-YYYYMMDDHHmmss", fixedNow))
	assert.Equal(t, "2024-01-01", FormatSuffix("YYYY-MM-DD", fixedNow))
	assert.Equal(t, "_120000", FormatSuffix("_HHmmss", fixedNow))
}

func TestFormatSuffixPreservesLiterals(t *testing.T) {
	// 记号以外的字符必须原样保留，字面数字不能被当作时间布局渲染
	now := time.Date(2026, 8, 29, 10, 30, 45, 0, time.UTC)

	assert.Equal(t, "-20240101120000", FormatSuffix("-20240101120000", now))
	assert.Equal(t, "v2_20260829", FormatSuffix("v2_YYYYMMDD", now))
	assert.Equal(t, "2026年08月29日", FormatSuffix("YYYY年MM月DD日", now))
	assert.Equal(t, "Jan-103045", FormatSuffix("Jan-HHmmss", now))
}

func TestFinalFilenameLiteralDigitFormat(t *testing.T) {
	cfg := NewConfig()
	cfg.AppendSuffix = true
	cfg.SuffixFormat = "-20240101120000"

	// 纯字面后缀不随当前时间变化
	now := time.Date(2026, 8, 29, 10, 30, 45, 0, time.UTC)
	assert.Equal(t, "photo-20240101120000.png", FinalFilename(cfg, "photo.png", now))
}

func TestFinalFilenameSuffixDisabled(t *testing.T) {
	cfg := NewConfig()
	cfg.AppendSuffix = false

	for _, name := range []string{"photo.png", "archive.tar.gz", "noext", "带中文.jpg"} {
		assert.Equal(t, name, FinalFilename(cfg, name, fixedNow))
	}
}

func TestFinalFilenameWithExtension(t *testing.T) {
	cfg := NewConfig()
	cfg.AppendSuffix = true
	cfg.SuffixFormat = "-YYYYMMDDHHmmss"

	assert.Equal(t, "photo-20240101120000.png", FinalFilename(cfg, "photo.png", fixedNow))
}

func TestFinalFilenameMultipleDots(t *testing.T) {
	cfg := NewConfig()
	cfg.AppendSuffix = true
	cfg.SuffixFormat = "-YYYYMMDDHHmmss"

	// 按最后一个 "." 切分，前面的 "." 属于主干
	assert.Equal(t, "archive.tar-20240101120000.gz", FinalFilename(cfg, "archive.tar.gz", fixedNow))
}

func TestFinalFilenameNoExtension(t *testing.T) {
	cfg := NewConfig()
	cfg.AppendSuffix = true
	cfg.SuffixFormat = "-YYYYMMDDHHmmss"

	assert.Equal(t, "photo-20240101120000", FinalFilename(cfg, "photo", fixedNow))
}
