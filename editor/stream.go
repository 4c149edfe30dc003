// Package editor - 命令行环境下的协作者实现
package editor

import (
	"fmt"
	"io"
)

// StreamEditor 把插入的文本逐行写到输出流的 Editor 实现
// 供命令行和测试使用，没有真正的光标概念
type StreamEditor struct {
	w io.Writer
}

// NewStreamEditor 创建输出流编辑器
func NewStreamEditor(w io.Writer) *StreamEditor {
	return &StreamEditor{w: w}
}

// PreventDefault 命令行环境没有默认处理可取消
func (e *StreamEditor) PreventDefault() {}

// InsertAtCursor 把文本作为单独一行写出
func (e *StreamEditor) InsertAtCursor(text string) {
	fmt.Fprintln(e.w, text)
}

// ConsoleNotifier 把通知打印到标准输出的 Notifier 实现
type ConsoleNotifier struct{}

// Notify 打印一条用户可见的通知
func (ConsoleNotifier) Notify(msg string) {
	fmt.Printf("❌ %s\n", msg)
}

// NopNotifier 丢弃所有通知，供测试使用
type NopNotifier struct{}

// Notify 什么也不做
func (NopNotifier) Notify(string) {}
