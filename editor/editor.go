// Package editor 提供编辑器侧的粘贴/拖拽事件拦截与结果回写
// 宿主编辑器只需要实现 Editor 接口：取消默认处理、在光标处插入文本
package editor

import "strings"

// File 事件携带的单个文件载荷
type File struct {
	Name string // 原始文件名
	MIME string // 声明的 MIME 类型
	Data []byte // 文件二进制数据
}

// IsImage 判断文件的 MIME 类型是否为图片
func (f File) IsImage() bool {
	return strings.HasPrefix(f.MIME, "image")
}

// Event 一次粘贴或拖拽事件，携带零个或多个文件
type Event struct {
	Files []File
}

// ImageFiles 按事件中的原始顺序返回所有图片类型的文件
func (e Event) ImageFiles() []File {
	var images []File
	for _, f := range e.Files {
		if f.IsImage() {
			images = append(images, f)
		}
	}
	return images
}

// Editor 宿主编辑器协作接口
type Editor interface {
	// PreventDefault 取消事件的默认处理（如纯文本粘贴）
	PreventDefault()

	// InsertAtCursor 在当前光标/选区处插入文本，已有选区会被替换
	InsertAtCursor(text string)
}

// Notifier 面向用户的通知输出，发后即忘
type Notifier interface {
	Notify(msg string)
}
