package xsched

import (
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/semaphore"

	"github.com/omeyang/schedkit/pkg/lifecycle/xtoken"
	"github.com/omeyang/schedkit/pkg/lifecycle/xtrack"
)

// Scheduler 周期任务调度器。
//
// 每个 Spawn 的任务在独立 goroutine 中循环：睡眠一个周期，醒来后
// 执行一次任务，如此往复，直到根令牌被取消。Stop/Wait/WaitCancel
// 三个终止操作会关闭注册表、取消根令牌并阻塞到全部任务循环退出。
//
// Spawn 返回调度器自身，支持链式注册；终止操作消费调度器，
// 对同一实例第二次调用终止操作会 panic。
//
// 使用方式：
//
//	xsched.New().
//	    Spawn(heartbeat).
//	    Spawn(cleanup).
//	    Wait() // 阻塞到收到终止信号，然后优雅排空
type Scheduler struct {
	token   *xtoken.Token
	tracker *xtrack.Tracker
	opts    *schedulerOptions
	stats   *Stats
	sem     *semaphore.Weighted

	jobSeq   atomic.Int64
	consumed atomic.Bool

	// 测试注入的信号通道，生产环境为 nil（select 永久阻塞该分支）。
	testSigCh <-chan os.Signal
}

// spawnedJob 是 Spawn 时对任务配置的一次性快照。
// 之后任务方法返回值的变化不再被观察。
type spawnedJob struct {
	job        Job
	name       string
	period     time.Duration
	truncate   bool
	withCancel bool
	schedule   cron.Schedule
}

// New 创建调度器。根令牌与任务注册表在此创建，全程由调度器持有。
func New(opts ...Option) *Scheduler {
	options := defaultSchedulerOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(options)
	}

	s := &Scheduler{
		token:   xtoken.New(),
		tracker: xtrack.New(),
		opts:    options,
		stats:   newStats(),
	}
	if options.maxConcurrent > 0 {
		s.sem = semaphore.NewWeighted(options.maxConcurrent)
	}
	return s
}

// Spawn 注册任务并启动其执行循环，返回调度器自身以支持链式调用。
//
// 任务的周期、截断开关、取消感知方式与 cron 时间表在此刻捕获一次。
// job 为 nil 或周期非正（且无 cron 时间表）属于编程错误，直接 panic；
// 用 [NewJob] 构建任务可把这类错误提前为 error 返回。
//
// 终止操作开始后的 Spawn 是静默空操作：任务不会被启动。
func (s *Scheduler) Spawn(job Job) *Scheduler {
	if job == nil {
		panic("xsched: job cannot be nil")
	}

	j := spawnedJob{
		job:        job,
		period:     job.Period(),
		truncate:   job.TruncateTime(),
		withCancel: job.WithCancel(),
	}
	if cj, ok := job.(CronJob); ok {
		j.schedule = cj.Schedule()
	}
	if j.schedule == nil && j.period <= 0 {
		panic("xsched: job period must be positive")
	}

	seq := s.jobSeq.Add(1)
	j.name = "job-" + strconv.FormatInt(seq, 10)
	if nj, ok := job.(NamedJob); ok {
		if name := nj.Name(); name != "" {
			j.name = name
		}
	}

	started := s.tracker.Go(func() {
		s.loop(j)
	})
	if !started {
		s.opts.logger.Debug("spawn ignored, scheduler closed",
			slog.String("scheduler", s.opts.name),
			slog.String("job", j.name),
		)
		return s
	}

	s.opts.logger.Debug("job spawned",
		slog.String("scheduler", s.opts.name),
		slog.String("job", j.name),
		slog.Duration("period", j.period),
		slog.Bool("truncate", j.truncate),
		slog.Bool("with_cancel", j.withCancel),
	)
	return s
}

// loop 是单个任务的执行循环：先睡一个周期再执行，循环直到取消。
// 取消发生在睡眠期间时本周期的执行被放弃。
func (s *Scheduler) loop(j spawnedJob) {
	for {
		d, ok := nextSleep(j.schedule, j.period, j.truncate, time.Now())
		if !ok {
			// 时间表不再有触发时刻，挂起到关闭，避免零时长定时器空转
			s.opts.logger.Warn("schedule has no next activation, job parked",
				slog.String("scheduler", s.opts.name),
				slog.String("job", j.name),
			)
			s.token.AwaitCancelled()
			return
		}

		timer := time.NewTimer(d)
		select {
		case <-s.token.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		if !s.runOnce(j) {
			return
		}
	}
}

// runOnce 执行一次任务。返回 false 表示循环应当退出
// （任务 panic，或等待并发信号量期间被取消）。
func (s *Scheduler) runOnce(j spawnedJob) bool {
	if s.sem != nil {
		if err := s.sem.Acquire(s.token.Context(), 1); err != nil {
			return false
		}
		defer s.sem.Release(1)
	}

	for _, h := range s.opts.hooks {
		h.BeforeRun(j.name)
	}

	start := time.Now()
	recovered := s.invoke(j)
	duration := time.Since(start)

	for i := len(s.opts.hooks) - 1; i >= 0; i-- {
		s.opts.hooks[i].AfterRun(j.name, duration, recovered)
	}
	s.stats.recordRun(j.name, duration, recovered != nil)

	if recovered != nil {
		s.opts.logger.Error("job panicked, loop exits",
			slog.String("scheduler", s.opts.name),
			slog.String("job", j.name),
			slog.Any("panic", recovered),
		)
		return false
	}
	return true
}

// invoke 调用任务的执行方法并吸收 panic，返回 recover 值。
// 感知取消的任务收到根令牌派生的子令牌，执行结束后子令牌被取消，
// 释放其 context 资源。
func (s *Scheduler) invoke(j spawnedJob) (recovered any) {
	defer func() {
		recovered = recover()
	}()

	if j.withCancel {
		child := s.token.Child()
		defer child.Cancel()
		j.job.RunWithCancel(child)
	} else {
		j.job.Run()
	}
	return nil
}

// Token 返回调度器的根令牌。
//
// 调用方可在不终止调度器的前提下观察取消状态，或派生自己的子令牌。
// 直接 Cancel 根令牌会让所有任务循环退出，但不会关闭注册表，
// 之后仍需调用终止操作完成收尾。
func (s *Scheduler) Token() *xtoken.Token {
	return s.token
}

// Stats 返回执行统计。调度器运行期间可随时读取。
func (s *Scheduler) Stats() *Stats {
	return s.stats
}

// Stop 立即发起优雅关闭：拒绝新的 Spawn，取消根令牌，
// 阻塞到所有任务循环退出。消费调度器。
func (s *Scheduler) Stop() {
	s.consume("Stop")
	s.shutdown()
}

// Wait 阻塞等待终止信号（默认 SIGHUP/SIGINT/SIGTERM/SIGQUIT，
// 可用 [WithSignals] 定制），收到后执行与 Stop 相同的优雅关闭。
// 消费调度器。
func (s *Scheduler) Wait() {
	s.consume("Wait")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, s.opts.signals...)
	defer signal.Stop(sigCh)

	var sig os.Signal
	select {
	case sig = <-sigCh:
	case sig = <-s.testSigCh:
	}

	s.opts.logger.Info("received signal",
		slog.String("scheduler", s.opts.name),
		slog.String("signal", sig.String()),
	)
	s.shutdown()
}

// WaitCancel 阻塞等待给定令牌被取消，然后执行与 Stop 相同的优雅
// 关闭。token 通常是外部生命周期令牌，与调度器自身的根令牌无关。
// token 为 nil 属于编程错误，直接 panic。消费调度器。
func (s *Scheduler) WaitCancel(token *xtoken.Token) {
	if token == nil {
		panic("xsched: token cannot be nil")
	}
	s.consume("WaitCancel")

	token.AwaitCancelled()
	s.shutdown()
}

// consume 标记调度器已被终止操作消费，重复消费 panic。
func (s *Scheduler) consume(op string) {
	if !s.consumed.CompareAndSwap(false, true) {
		panic("xsched: " + op + " called on consumed scheduler")
	}
}

// shutdown 关闭注册表、取消根令牌并等待全部任务循环退出。
// 先关注册表再取消令牌，保证关闭瞬间的并发 Spawn 要么完整启动
// 并被等待，要么被静默拒绝。
func (s *Scheduler) shutdown() {
	s.opts.logger.Debug("scheduler stopping",
		slog.String("scheduler", s.opts.name),
		slog.Int("active", s.tracker.Len()),
	)

	s.tracker.Close()
	s.token.Cancel()
	s.tracker.Wait()

	s.opts.logger.Info("scheduler stopped",
		slog.String("scheduler", s.opts.name),
		slog.Int64("total_runs", s.stats.TotalRuns()),
		slog.Int64("panics", s.stats.PanicCount()),
	)
}
