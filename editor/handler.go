// Package editor - 上传替换流水线
// 过滤事件中的图片文件，逐个上传并把 markdown 图片引用写回编辑器
package editor

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/lukemora/imgup/core"
)

// failureMessage 是所有上传失败统一展示给用户的消息
// 失败原因的差异只保留在日志里
const failureMessage = "Failed to upload image"

// Uploader 上传客户端接口，core.Uploader 是默认实现
type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// Cache 可选的上传缓存接口，core.UploadCache 是默认实现
type Cache interface {
	Get(data []byte) (string, bool)
	Put(data []byte, url string)
}

// Handler 粘贴/拖拽事件处理器
// 除共享配置外不在调用之间保留任何状态
type Handler struct {
	cfg      *core.Config
	uploader Uploader
	notifier Notifier
	cache    Cache            // 可为 nil，表示不使用缓存
	now      func() time.Time // 时间戳来源，测试时可替换
}

// NewHandler 创建事件处理器
func NewHandler(cfg *core.Config, uploader Uploader, notifier Notifier) *Handler {
	return &Handler{
		cfg:      cfg,
		uploader: uploader,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetCache 启用上传缓存，同一张图片重复粘贴时复用已有 URL
func (h *Handler) SetCache(cache Cache) {
	h.cache = cache
}

// HandleEvent 处理一次粘贴或拖拽事件
// 事件中没有图片文件时不做任何动作，默认处理（如文本粘贴）照常进行；
// 存在图片文件时取消一次默认处理，然后按事件顺序逐个串行处理，
// 前一个文件的上传-插入周期完整结束后才开始下一个。
// 单个文件失败只通知用户，不中断同批次的后续文件。
func (h *Handler) HandleEvent(ctx context.Context, ed Editor, ev Event) {
	images := ev.ImageFiles()
	if len(images) == 0 {
		return
	}

	// 只要存在图片文件就取消默认处理，即使之后某个文件上传失败
	ed.PreventDefault()

	for _, f := range images {
		if err := h.handleFile(ctx, ed, f); err != nil {
			// 所有失败种类收敛为同一条用户消息，细节进日志
			log.Printf("⚠️  图片上传失败: %v", err)
			h.notifier.Notify(failureMessage)
		}
	}
}

// handleFile 单个图片文件的上传-插入周期
func (h *Handler) handleFile(ctx context.Context, ed Editor, f File) error {
	name := core.FinalFilename(h.cfg, f.Name, h.now())

	if h.cache != nil {
		if url, ok := h.cache.Get(f.Data); ok {
			ed.InsertAtCursor(imageReference(name, url))
			return nil
		}
	}

	url, err := h.uploader.Upload(ctx, name, f.Data)
	if err != nil {
		return errors.Wrapf(err, "文件 %s", f.Name)
	}

	if h.cache != nil {
		h.cache.Put(f.Data, url)
	}

	ed.InsertAtCursor(imageReference(name, url))
	return nil
}

// imageReference 生成 markdown 图片引用
func imageReference(name, url string) string {
	return fmt.Sprintf("![%s](%s)", name, url)
}
