package xsched

import (
	"time"

	"github.com/robfig/cron/v3"
)

// ParseSpec 解析 cron 表达式为时间表。
//
// 支持可选的秒字段（5 或 6 段表达式）以及 @every、@hourly 等描述符：
//
//	sched, err := xsched.ParseSpec("*/5 * * * * *") // 每 5 秒
//	sched, err := xsched.ParseSpec("@every 1m")
//
// 解析失败返回包装了 [ErrInvalidSpec] 的错误。
func ParseSpec(spec string) (cron.Schedule, error) {
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, wrapSpecErr(spec, err)
	}
	return sched, nil
}

// truncatedSleep 返回截断模式下的本周期睡眠时长。
//
// 结果落在 (0, period] 区间：now 恰好处于边界时睡满一个周期，
// 否则睡到下一个"自 Unix 纪元起周期的整数倍"时刻。
// 调用方保证 period > 0。
func truncatedSleep(period time.Duration, now time.Time) time.Duration {
	rem := now.UnixNano() % int64(period)
	return period - time.Duration(rem)
}

// nextSleep 计算本周期的睡眠时长。
//
// 优先级：cron 时间表 > 截断周期 > 固定周期。
// cron 时间表的 Next 已经过去时返回 0（立即执行）。
// ok 为 false 表示时间表不再有任何触发时刻（robfig/cron 用零值
// 时间表示五年内无触发，如 "0 0 0 31 2 *"），循环应转为只等待取消。
func nextSleep(schedule cron.Schedule, period time.Duration, truncate bool, now time.Time) (sleep time.Duration, ok bool) {
	switch {
	case schedule != nil:
		next := schedule.Next(now)
		if next.IsZero() {
			return 0, false
		}
		if d := next.Sub(now); d > 0 {
			return d, true
		}
		return 0, true
	case truncate:
		return truncatedSleep(period, now), true
	default:
		return period, true
	}
}
