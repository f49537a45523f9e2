// Package xtrack 提供 goroutine 汇合组（join group）。
//
// # 概述
//
// Tracker 追踪一组并发任务的存活状态：计数器 + 关闭标志 + 完成信号。
// 典型用于优雅关闭——关闭后拒绝新任务，等待在途任务全部退出。
//
// 生命周期是单向的：
//
//	Go ... Go → Close → Wait 返回
//
// Close 之后 Go 静默失败（返回 false，不启动 goroutine）；
// Wait 仅在 Tracker 已关闭且在途任务数归零时返回。
//
// # 快速开始
//
//	tr := xtrack.New()
//	for _, w := range workers {
//	    tr.Go(w.Run)
//	}
//
//	// 关闭时
//	tr.Close()
//	tr.Wait() // 阻塞直到所有任务退出
//
// # 并发安全
//
// 所有方法可以从任意 goroutine 并发调用；Close 幂等，Wait 可以
// 被多个 goroutine 同时调用。
//
// # 设计决策
//
// 1. Go 接管 goroutine 的启动而非暴露 Add/Done 计数对：启动与
//    计数绑定在一起后，计数泄漏（忘记 Done）在 API 层面不可能
//    发生，任务退出时通过 defer 记账，panic 也不会让 Wait 悬挂。
//
// 2. 关闭后静默拒绝而非返回错误：关闭竞态下"任务没有启动"与
//    "任务启动后立即退出"对调用方等价，布尔返回足以覆盖需要
//    区分的场景。
package xtrack
