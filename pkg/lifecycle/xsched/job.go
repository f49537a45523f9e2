package xsched

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/omeyang/schedkit/pkg/lifecycle/xtoken"
)

// jobOptions 选项构建任务的配置。
type jobOptions struct {
	name      string
	period    time.Duration
	truncate  bool
	run       func()
	runCancel func(*xtoken.Token)
	spec      string
	schedule  cron.Schedule
}

func defaultJobOptions() *jobOptions {
	return &jobOptions{
		period:   DefaultPeriod,
		truncate: true,
	}
}

// JobOption 配置 [NewJob] 构建的任务。
type JobOption func(*jobOptions)

// WithName 设置任务名称，用于日志与统计。
func WithName(name string) JobOption {
	return func(o *jobOptions) {
		o.name = name
	}
}

// WithPeriod 设置执行周期。必须为正数，否则 NewJob 返回
// [ErrInvalidPeriod]。
func WithPeriod(period time.Duration) JobOption {
	return func(o *jobOptions) {
		o.period = period
	}
}

// WithTruncate 设置是否对齐到绝对时间的整周期边界。默认开启。
func WithTruncate(truncate bool) JobOption {
	return func(o *jobOptions) {
		o.truncate = truncate
	}
}

// WithRun 设置不感知取消的执行函数。
func WithRun(run func()) JobOption {
	return func(o *jobOptions) {
		o.run = run
	}
}

// WithRunCancel 设置感知取消的执行函数。
//
// 设置后任务的 WithCancel() 为 true，每次执行收到根令牌派生的
// 子令牌；fn 负责观察令牌并在取消时尽快返回。
func WithRunCancel(fn func(token *xtoken.Token)) JobOption {
	return func(o *jobOptions) {
		o.runCancel = fn
	}
}

// WithSpec 按 cron 表达式调度任务（覆盖固定周期）。
//
// 表达式由 [ParseSpec] 解析，支持可选秒字段与 @every 描述符。
// 解析失败时 NewJob 返回包装了 [ErrInvalidSpec] 的错误。
func WithSpec(spec string) JobOption {
	return func(o *jobOptions) {
		o.spec = spec
	}
}

// WithSchedule 直接设置 cron 时间表（覆盖固定周期）。
// 与 [WithSpec] 二选一；同时设置时以 WithSpec 为准。
func WithSchedule(schedule cron.Schedule) JobOption {
	return func(o *jobOptions) {
		o.schedule = schedule
	}
}

// NewJob 按选项构建任务。
//
// 未设置执行函数时 Run 为空操作（与契约默认一致）。配置错误
// （非正周期、非法 cron 表达式）在此处提前返回，而不是等到
// Spawn 时 panic：
//
//	job, err := xsched.NewJob(
//	    xsched.WithName("cleanup"),
//	    xsched.WithPeriod(time.Hour),
//	    xsched.WithRun(cleanup),
//	)
func NewJob(opts ...JobOption) (Job, error) {
	o := defaultJobOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}

	if o.spec != "" {
		sched, err := ParseSpec(o.spec)
		if err != nil {
			return nil, err
		}
		o.schedule = sched
	}
	if o.schedule == nil && o.period <= 0 {
		return nil, ErrInvalidPeriod
	}

	return &optionJob{o: o}, nil
}

// optionJob 是 NewJob 构建的任务实现。
type optionJob struct {
	o *jobOptions
}

func (j *optionJob) Name() string { return j.o.name }

func (j *optionJob) Period() time.Duration { return j.o.period }

func (j *optionJob) TruncateTime() bool { return j.o.truncate }

func (j *optionJob) WithCancel() bool { return j.o.runCancel != nil }

func (j *optionJob) Run() {
	if j.o.run != nil {
		j.o.run()
	}
}

func (j *optionJob) RunWithCancel(token *xtoken.Token) {
	if j.o.runCancel != nil {
		j.o.runCancel(token)
	}
}

func (j *optionJob) Schedule() cron.Schedule { return j.o.schedule }

var (
	_ Job      = (*optionJob)(nil)
	_ CronJob  = (*optionJob)(nil)
	_ NamedJob = (*optionJob)(nil)
)
