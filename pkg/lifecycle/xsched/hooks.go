package xsched

import "time"

// Hook 任务执行钩子接口。
//
// 用于在每次执行前后注入自定义逻辑，如日志、指标上报、告警。
// 通过 [WithHooks] 配置多个钩子：BeforeRun 按添加顺序执行，
// AfterRun 逆序执行（类似 defer）。
//
// 即使任务 panic，AfterRun 也会被调用，recovered 为 panic 值
// （正常完成时为 nil）。
type Hook interface {
	// BeforeRun 在任务执行前调用。job 是任务名。
	BeforeRun(job string)

	// AfterRun 在任务执行后调用。
	// duration 是本次执行耗时，recovered 是 panic 值（nil 表示正常完成）。
	AfterRun(job string, duration time.Duration, recovered any)
}

// HookFunc 函数适配器，将函数对转换为 [Hook] 接口。
//
// 用法：
//
//	hook := xsched.HookFunc{
//	    After: func(job string, d time.Duration, recovered any) {
//	        metrics.Observe(job, d)
//	    },
//	}
type HookFunc struct {
	// Before 任务执行前调用，可为 nil。
	Before func(job string)
	// After 任务执行后调用，可为 nil。
	After func(job string, duration time.Duration, recovered any)
}

// BeforeRun 实现 [Hook] 接口。
func (h HookFunc) BeforeRun(job string) {
	if h.Before != nil {
		h.Before(job)
	}
}

// AfterRun 实现 [Hook] 接口。
func (h HookFunc) AfterRun(job string, duration time.Duration, recovered any) {
	if h.After != nil {
		h.After(job, duration, recovered)
	}
}
