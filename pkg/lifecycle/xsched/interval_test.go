package xsched

import (
	"errors"
	"testing"
	"time"
)

func TestTruncatedSleep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		period time.Duration
		now    time.Time
		want   time.Duration
	}{
		{
			name:   "mid period sleeps to next boundary",
			period: 4 * time.Nanosecond,
			now:    time.Unix(0, 11),
			want:   1 * time.Nanosecond,
		},
		{
			name:   "on boundary sleeps full period",
			period: 4 * time.Nanosecond,
			now:    time.Unix(0, 12),
			want:   4 * time.Nanosecond,
		},
		{
			name:   "one minute period aligns to minute",
			period: time.Minute,
			now:    time.Date(2025, 6, 1, 10, 30, 45, 0, time.UTC),
			want:   15 * time.Second,
		},
		{
			name:   "one hour period aligns to hour",
			period: time.Hour,
			now:    time.Date(2025, 6, 1, 10, 59, 0, 0, time.UTC),
			want:   time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := truncatedSleep(tt.period, tt.now)
			if got != tt.want {
				t.Errorf("truncatedSleep(%v, %v) = %v, want %v", tt.period, tt.now, got, tt.want)
			}
		})
	}
}

func TestNextSleepPriority(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 30, 45, 0, time.UTC)

	// 时间表优先于周期与截断配置
	got, ok := nextSleep(tickSchedule{d: 7 * time.Second}, time.Minute, true, now)
	if !ok || got != 7*time.Second {
		t.Errorf("schedule sleep = (%v, %v), want (7s, true)", got, ok)
	}

	// 时间表返回过去的时刻时立即执行
	got, ok = nextSleep(tickSchedule{d: -time.Second}, time.Minute, true, now)
	if !ok || got != 0 {
		t.Errorf("past schedule sleep = (%v, %v), want (0, true)", got, ok)
	}

	// 时间表没有任何触发时刻（Next 返回零值）
	_, ok = nextSleep(zeroSchedule{}, time.Minute, true, now)
	if ok {
		t.Error("schedule without next activation should report ok = false")
	}

	// 无时间表且关闭截断时使用固定周期
	got, ok = nextSleep(nil, time.Minute, false, now)
	if !ok || got != time.Minute {
		t.Errorf("fixed sleep = (%v, %v), want (1m, true)", got, ok)
	}

	// 无时间表且开启截断时对齐边界
	got, ok = nextSleep(nil, time.Minute, true, now)
	if !ok || got != 15*time.Second {
		t.Errorf("truncated sleep = (%v, %v), want (15s, true)", got, ok)
	}
}

func TestParseSpec(t *testing.T) {
	t.Parallel()

	valid := []string{
		"* * * * *",       // 5 段
		"*/5 * * * * *",   // 6 段（含秒）
		"@every 90s",
		"@hourly",
		"0 0 12 * * MON-FRI",
	}
	for _, spec := range valid {
		if _, err := ParseSpec(spec); err != nil {
			t.Errorf("ParseSpec(%q) failed: %v", spec, err)
		}
	}

	invalid := []string{
		"",
		"not a spec",
		"61 * * * *",
		"@every",
	}
	for _, spec := range invalid {
		_, err := ParseSpec(spec)
		if err == nil {
			t.Errorf("ParseSpec(%q) should fail", spec)
			continue
		}
		if !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("ParseSpec(%q) error = %v, want wrapped ErrInvalidSpec", spec, err)
		}
	}
}
