package xsched

import (
	"log/slog"
	"os"
	"syscall"
)

// schedulerOptions 调度器配置。
type schedulerOptions struct {
	logger        *slog.Logger
	name          string
	signals       []os.Signal
	maxConcurrent int64
	hooks         []Hook
}

func defaultSchedulerOptions() *schedulerOptions {
	return &schedulerOptions{
		logger:  slog.Default(),
		name:    "xsched",
		signals: DefaultSignals(),
	}
}

// Option 配置调度器。
type Option func(*schedulerOptions)

// WithLogger 设置结构化日志记录器。默认使用 slog.Default()。
// 传入 nil 时保持默认值。
func WithLogger(logger *slog.Logger) Option {
	return func(o *schedulerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSchedulerName 设置调度器名称，出现在日志字段中。
// 同一进程内运行多个调度器时用于区分日志来源。
func WithSchedulerName(name string) Option {
	return func(o *schedulerOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithSignals 设置 Wait 监听的信号集合。默认为 [DefaultSignals]。
// 传入空列表时保持默认值。
func WithSignals(signals ...os.Signal) Option {
	return func(o *schedulerOptions) {
		if len(signals) > 0 {
			o.signals = signals
		}
	}
}

// WithMaxConcurrent 限制同时处于执行态的任务数。
//
// n <= 0 表示不限制（默认）。达到上限时到期的任务阻塞等待信号量，
// 不会跳过本次执行；等待期间根令牌取消则放弃本次执行。
func WithMaxConcurrent(n int64) Option {
	return func(o *schedulerOptions) {
		o.maxConcurrent = n
	}
}

// WithHooks 追加任务执行钩子。可多次调用，按添加顺序执行 BeforeRun，
// 逆序执行 AfterRun。nil 钩子被忽略。
func WithHooks(hooks ...Hook) Option {
	return func(o *schedulerOptions) {
		for _, h := range hooks {
			if h != nil {
				o.hooks = append(o.hooks, h)
			}
		}
	}
}

// DefaultSignals 返回 Wait 默认监听的终止信号：
// SIGHUP、SIGINT、SIGTERM、SIGQUIT。
func DefaultSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
}
