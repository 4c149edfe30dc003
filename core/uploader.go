// Package core - 图床上传客户端
// 将图片字节打包为 multipart 表单，POST 到配置的接口地址，
// 并从 JSON 响应中取出图床 URL
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
)

// UploadFieldName 是 multipart 表单中图片部分的固定字段名
const UploadFieldName = "image"

// 上传失败的内部错误种类
// 对用户只展示一条统一的失败消息，内部保留种类便于诊断和测试
var (
	ErrNetwork       = errors.New("网络请求失败")
	ErrHTTPStatus    = errors.New("服务端返回错误状态")
	ErrResponseParse = errors.New("响应解析失败")
)

// uploadResponse 上传接口的成功响应体
// 只要求存在 url 字段，不做更多的结构校验
type uploadResponse struct {
	Url string `json:"url"`
}

// Uploader 图床上传客户端
type Uploader struct {
	endpoint string
	apiToken string
	client   *http.Client
	limiter  *UploadRateLimiter
}

// NewUploader 根据配置创建上传客户端
// 客户端本身不设超时，取消只能通过调用方的 context
func NewUploader(cfg *Config) *Uploader {
	return &Uploader{
		endpoint: cfg.ApiUrl,
		apiToken: cfg.ApiToken,
		client:   &http.Client{},
		limiter:  NewUploadRateLimiter(),
	}
}

// Upload 上传单张图片并返回图床 URL
// filename: 最终文件名（已经过文件名策略处理）
// data: 图片二进制数据
// 单次失败即终止，不做重试
func (u *Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	// 限流: 等待图床API调用许可
	if err := u.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: 限流等待中断: %v", ErrNetwork, err)
	}

	// 构建 multipart 表单，唯一的部分是 image 字段下的文件
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(UploadFieldName, filename)
	if err != nil {
		return "", fmt.Errorf("构建表单失败: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("写入表单数据失败: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("关闭表单失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("构建上传请求失败: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+u.apiToken)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	// 非 2xx 直接判定失败，不解析响应体
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: HTTP %d", ErrHTTPStatus, resp.StatusCode)
	}

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: 读取响应体失败: %v", ErrResponseParse, err)
	}

	var result uploadResponse
	if err := json.Unmarshal(respData, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseParse, err)
	}
	if result.Url == "" {
		return "", fmt.Errorf("%w: 响应中缺少 url 字段", ErrResponseParse)
	}

	return result.Url, nil
}
