package xsched

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/omeyang/schedkit/pkg/lifecycle/xtoken"
)

// DefaultPeriod 是任务的默认执行周期。
const DefaultPeriod = time.Second

// Job 周期任务契约。
//
// 推荐嵌入 [Base] 获得全部默认实现，再按需覆盖；
// 无配置的纯函数任务可直接使用 [JobFunc]。
type Job interface {
	// Period 返回两次执行之间的间隔，必须为正数。
	// 在 Spawn 时捕获一次，之后的变化不被观察。
	Period() time.Duration

	// TruncateTime 返回是否把唤醒时刻对齐到绝对时间的整周期边界
	// （而非相对循环启动时间）。
	TruncateTime() bool

	// WithCancel 返回循环应调用哪个执行方法：
	// false 调用 Run，true 调用 RunWithCancel。
	WithCancel() bool

	// Run 执行一次任务。WithCancel 为 false 时每个周期被调用。
	Run()

	// RunWithCancel 执行一次任务。WithCancel 为 true 时每个周期被
	// 调用，token 是根令牌为本次执行派生的子令牌；实现方负责观察
	// token 并在取消时尽快返回。
	RunWithCancel(token *xtoken.Token)
}

// Base 提供 [Job] 各方法的默认实现：周期 1s、截断开启、不感知取消、
// 执行为空操作。嵌入后按需覆盖。
type Base struct{}

// Period 返回 [DefaultPeriod]。
func (Base) Period() time.Duration { return DefaultPeriod }

// TruncateTime 返回 true。
func (Base) TruncateTime() bool { return true }

// WithCancel 返回 false。
func (Base) WithCancel() bool { return false }

// Run 空操作。
func (Base) Run() {}

// RunWithCancel 空操作。
func (Base) RunWithCancel(*xtoken.Token) {}

// JobFunc 将无参函数适配为 [Job]，使用 [Base] 的全部默认配置。
//
// 用法：
//
//	s.Spawn(xsched.JobFunc(func() {
//	    collectMetrics()
//	}))
type JobFunc func()

// Period 返回 [DefaultPeriod]。
func (JobFunc) Period() time.Duration { return DefaultPeriod }

// TruncateTime 返回 true。
func (JobFunc) TruncateTime() bool { return true }

// WithCancel 返回 false。
func (JobFunc) WithCancel() bool { return false }

// Run 调用底层函数。
func (f JobFunc) Run() { f() }

// RunWithCancel 空操作。
func (JobFunc) RunWithCancel(*xtoken.Token) {}

// CronJob 可选接口：任务实现后按 cron 时间表而非固定周期唤醒。
//
// Schedule 返回非 nil 时，循环的下一次唤醒时刻由 Next 计算，
// Period/TruncateTime 被忽略。通过 [WithSpec] 构建的任务自动实现
// 此接口；手写任务可用 [ParseSpec] 解析表达式。
type CronJob interface {
	Schedule() cron.Schedule
}

// NamedJob 可选接口：为任务提供稳定名称，用于日志与统计。
// 未实现（或返回空串）时调度器按注册顺序分配 job-1、job-2 等名称。
type NamedJob interface {
	Name() string
}
