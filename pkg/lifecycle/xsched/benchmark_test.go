package xsched

import (
	"testing"
	"time"
)

func BenchmarkTruncatedSleep(b *testing.B) {
	now := time.Now()
	for b.Loop() {
		_ = truncatedSleep(time.Minute, now)
	}
}

func BenchmarkNextSleepSchedule(b *testing.B) {
	now := time.Now()
	sched := tickSchedule{d: time.Minute}
	for b.Loop() {
		_, _ = nextSleep(sched, time.Minute, true, now)
	}
}

func BenchmarkStatsRecordRun(b *testing.B) {
	s := newStats()
	for b.Loop() {
		s.recordRun("bench", time.Millisecond, false)
	}
}

func BenchmarkSpawnStop(b *testing.B) {
	job := &countJob{period: time.Hour}
	for b.Loop() {
		New().Spawn(job).Stop()
	}
}
