package xsched

import (
	"errors"
	"fmt"
)

// ErrInvalidPeriod 表示任务周期无效（必须为正数）。
var ErrInvalidPeriod = errors.New("xsched: period must be positive")

// ErrInvalidSpec 表示 cron 表达式解析失败。
// 使用 errors.Is 判断，底层解析错误通过 errors.Unwrap 获取。
var ErrInvalidSpec = errors.New("xsched: invalid cron spec")

// wrapSpecErr 将解析错误包装为 ErrInvalidSpec。
func wrapSpecErr(spec string, err error) error {
	return fmt.Errorf("%w: %q: %w", ErrInvalidSpec, spec, err)
}
