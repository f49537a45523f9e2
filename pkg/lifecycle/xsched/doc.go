// Package xsched 提供周期任务调度器。
//
// # 概述
//
// xsched 为每个注册的任务运行一个独立的循环 goroutine，按固定周期
// （或 cron 时间表）反复执行，直到收到关闭信号后协调退出：
//   - 周期触发：固定间隔，或对齐到绝对时间整周期边界（截断模式）
//   - 协作取消：基于 [xtoken.Token] 的层级取消，不强制中断在途执行
//   - 优雅排空：终止操作关闭注册表、取消根令牌、等待全部循环退出
//   - 故障隔离：单个任务 panic 只终止它自己的循环
//
// # 核心概念
//
// 截断运行时间（truncate time）：启用时每次唤醒对齐到"自 Unix 纪元
// 起周期的整数倍"时刻，与循环启动时间无关。例如周期 2s 的任务在
// :00、:02、:04 唤醒，而不是 启动+2s、启动+4s。
//
// 取消作用域：根令牌覆盖整个调度器；声明 WithCancel 的任务每次执行
// 获得根令牌的新派生子令牌，实现方负责观察令牌并及时返回。
//
// # 快速开始
//
//	s := xsched.New()
//	s.Spawn(xsched.JobFunc(func() {
//	    fmt.Println("tick")
//	}))
//
//	// 阻塞直到收到 SIGINT/SIGTERM 等信号，然后排空退出
//	s.Wait()
//
// 自定义任务嵌入 [Base] 按需覆盖契约方法：
//
//	type syncJob struct{ xsched.Base }
//
//	func (syncJob) Period() time.Duration { return 30 * time.Second }
//	func (syncJob) Run()                  { doSync() }
//
// 或使用选项构建：
//
//	job, err := xsched.NewJob(
//	    xsched.WithName("report"),
//	    xsched.WithPeriod(time.Minute),
//	    xsched.WithRun(generateReport),
//	)
//
// # 生命周期
//
// Scheduler 是一次性对象：Spawn 可链式调用注册任意数量任务；
// Stop、Wait、WaitCancel 是终止操作，调用后 Scheduler 被消费，
// 再次调用终止操作会 panic（程序员错误）。注册表关闭后 Spawn
// 静默失败，不启动新循环也不报错。
//
// # 错误处理
//
// 调度操作按契约不返回错误：配置错误（非正周期、nil 任务）在
// Spawn 处 panic，NewJob 构建路径则提前返回哨兵错误；任务执行中
// 的 panic 被恢复并记录日志，仅终止该任务自己的循环，注册表仍会
// 将其记为完成，排空不受阻塞。
//
// # 设计决策
//
// 1. Run 与 RunWithCancel 分离：简单任务完全无需感知取消，长任务
//    显式选择协作式中途取消。调度器不提供也不可能提供硬抢占。
//
// 2. 周期在 Spawn 时捕获一次：循环运行期间 Period() 的返回值变化
//    不被观察，任务语义与注册时刻绑定。
//
// 3. 非正周期在 Spawn 处立即 panic 而非循环内延迟失败：截断算术
//    对周期取模，延迟失败会表现为难以定位的运行时除零。
package xsched
