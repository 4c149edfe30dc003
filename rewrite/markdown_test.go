package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRewritesMatchingImages(t *testing.T) {
	text := "说明文字\n\n![img1](https://example.com/read/img1.png)\n\n![img2](https://other.com/img2.png)\n"

	out, err := Markdown(testConfig(), text)
	require.NoError(t, err)

	assert.Contains(t, out, "https://example.com/read/img1.png?token=tok123")
	assert.Contains(t, out, "https://other.com/img2.png")
	assert.NotContains(t, out, "img2.png?token")
	assert.Contains(t, out, "说明文字")
}

func TestMarkdownEmptyDomainNoChange(t *testing.T) {
	cfg := testConfig()
	cfg.CustomImageDomain = ""

	out, err := Markdown(cfg, "![a](https://example.com/read/a.png)\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "token=")
}

func TestMarkdownRepeatedRunKeepsSingleToken(t *testing.T) {
	text := "![a](https://example.com/read/a.png)\n"

	once, err := Markdown(testConfig(), text)
	require.NoError(t, err)
	twice, err := Markdown(testConfig(), once)
	require.NoError(t, err)

	// 刷新语义: 第二遍执行不会堆叠出第二个 token 参数
	assert.Equal(t, 1, strings.Count(twice, "token="))
}

func TestMarkdownPlainLinksUntouched(t *testing.T) {
	// 普通链接不是图片节点，不参与重写
	out, err := Markdown(testConfig(), "[文档](https://example.com/read/doc.html)\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "token=")
}
