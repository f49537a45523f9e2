package xjobconf

import "errors"

// 任务表加载、解析与构建相关错误。
var (
	// ErrEmptyPath 表示任务表文件路径为空。
	ErrEmptyPath = errors.New("xjobconf: empty job table path")

	// ErrUnsupportedFormat 表示不支持的任务表格式。
	ErrUnsupportedFormat = errors.New("xjobconf: unsupported job table format")

	// ErrLoadFailed 表示任务表加载失败。
	ErrLoadFailed = errors.New("xjobconf: failed to load job table")

	// ErrParseFailed 表示任务表解析失败。
	ErrParseFailed = errors.New("xjobconf: failed to parse job table")

	// ErrMissingName 表示任务条目缺少名称。
	ErrMissingName = errors.New("xjobconf: job entry missing name")

	// ErrDuplicateJob 表示任务名重复。
	ErrDuplicateJob = errors.New("xjobconf: duplicate job name")

	// ErrInvalidEvery 表示 every 字段不是合法的时长。
	ErrInvalidEvery = errors.New("xjobconf: invalid every duration")

	// ErrUnknownAction 表示任务名没有对应的已注册执行函数。
	ErrUnknownAction = errors.New("xjobconf: no action registered for job")
)
