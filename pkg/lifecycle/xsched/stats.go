package xsched

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stats 提供调度器的执行统计。
//
// 线程安全，可在调度器运行期间随时读取：
//
//	s := xsched.New().Spawn(job)
//	// ...
//	fmt.Printf("总执行次数: %d\n", s.Stats().TotalRuns())
type Stats struct {
	totalRuns  atomic.Int64
	panicCount atomic.Int64

	mu          sync.RWMutex
	lastRunTime time.Time
	lastRunDur  time.Duration

	totalDuration atomic.Int64 // 纳秒

	// 每个任务的统计
	jobStats sync.Map // map[string]*JobStats
}

// JobStats 单个任务的执行统计。
type JobStats struct {
	Name       string
	totalRuns  atomic.Int64
	panicCount atomic.Int64

	mu          sync.RWMutex
	lastRunTime time.Time
	lastRunDur  time.Duration

	totalDuration atomic.Int64
}

func newStats() *Stats {
	return &Stats{}
}

// TotalRuns 返回所有任务的总执行次数（含 panic 的执行）。
func (s *Stats) TotalRuns() int64 {
	return s.totalRuns.Load()
}

// PanicCount 返回以 panic 结束的执行次数。
func (s *Stats) PanicCount() int64 {
	return s.panicCount.Load()
}

// LastRunTime 返回最后一次执行完成的时间。
func (s *Stats) LastRunTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRunTime
}

// LastRunDuration 返回最后一次执行的耗时。
func (s *Stats) LastRunDuration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRunDur
}

// AvgDuration 返回平均执行耗时。
func (s *Stats) AvgDuration() time.Duration {
	total := s.totalRuns.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(s.totalDuration.Load() / total)
}

// JobStats 返回指定任务的统计，不存在时返回 nil。
func (s *Stats) JobStats(name string) *JobStats {
	if v, ok := s.jobStats.Load(name); ok {
		if js, ok := v.(*JobStats); ok {
			return js
		}
	}
	return nil
}

// AllJobStats 返回所有任务的统计。
func (s *Stats) AllJobStats() map[string]*JobStats {
	result := make(map[string]*JobStats)
	s.jobStats.Range(func(key, value any) bool {
		if name, ok := key.(string); ok {
			if js, ok := value.(*JobStats); ok {
				result[name] = js
			}
		}
		return true
	})
	return result
}

// recordRun 记录一次执行。panicked 表示执行以 panic 结束。
func (s *Stats) recordRun(name string, duration time.Duration, panicked bool) {
	now := time.Now()

	s.totalRuns.Add(1)
	s.totalDuration.Add(int64(duration))
	if panicked {
		s.panicCount.Add(1)
	}

	s.mu.Lock()
	s.lastRunTime = now
	s.lastRunDur = duration
	s.mu.Unlock()

	js := s.getOrCreateJobStats(name)
	js.totalRuns.Add(1)
	js.totalDuration.Add(int64(duration))
	if panicked {
		js.panicCount.Add(1)
	}
	js.mu.Lock()
	js.lastRunTime = now
	js.lastRunDur = duration
	js.mu.Unlock()
}

func (s *Stats) getOrCreateJobStats(name string) *JobStats {
	if v, ok := s.jobStats.Load(name); ok {
		if js, ok := v.(*JobStats); ok {
			return js
		}
	}

	js := &JobStats{Name: name}
	actual, _ := s.jobStats.LoadOrStore(name, js)
	if result, ok := actual.(*JobStats); ok {
		return result
	}
	return js
}

// TotalRuns 返回任务总执行次数。
func (js *JobStats) TotalRuns() int64 {
	return js.totalRuns.Load()
}

// PanicCount 返回任务以 panic 结束的执行次数。
func (js *JobStats) PanicCount() int64 {
	return js.panicCount.Load()
}

// LastRunTime 返回任务最后一次执行完成的时间。
func (js *JobStats) LastRunTime() time.Time {
	js.mu.RLock()
	defer js.mu.RUnlock()
	return js.lastRunTime
}

// LastRunDuration 返回任务最后一次执行的耗时。
func (js *JobStats) LastRunDuration() time.Duration {
	js.mu.RLock()
	defer js.mu.RUnlock()
	return js.lastRunDur
}

// AvgDuration 返回任务平均执行耗时。
func (js *JobStats) AvgDuration() time.Duration {
	total := js.totalRuns.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(js.totalDuration.Load() / total)
}

// StatsSnapshot 统计快照，用于序列化。
type StatsSnapshot struct {
	TotalRuns       int64                        `json:"total_runs"`
	PanicCount      int64                        `json:"panic_count"`
	LastRunTime     time.Time                    `json:"last_run_time,omitempty"`
	LastRunDuration time.Duration                `json:"last_run_duration"`
	AvgDuration     time.Duration                `json:"avg_duration"`
	Jobs            map[string]*JobStatsSnapshot `json:"jobs,omitempty"`
}

// JobStatsSnapshot 任务统计快照。
type JobStatsSnapshot struct {
	Name            string        `json:"name"`
	TotalRuns       int64         `json:"total_runs"`
	PanicCount      int64         `json:"panic_count"`
	LastRunTime     time.Time     `json:"last_run_time,omitempty"`
	LastRunDuration time.Duration `json:"last_run_duration"`
	AvgDuration     time.Duration `json:"avg_duration"`
}

// Snapshot 返回统计快照。
func (s *Stats) Snapshot() *StatsSnapshot {
	snap := &StatsSnapshot{
		TotalRuns:       s.TotalRuns(),
		PanicCount:      s.PanicCount(),
		LastRunTime:     s.LastRunTime(),
		LastRunDuration: s.LastRunDuration(),
		AvgDuration:     s.AvgDuration(),
		Jobs:            make(map[string]*JobStatsSnapshot),
	}

	for name, js := range s.AllJobStats() {
		snap.Jobs[name] = js.Snapshot()
	}

	return snap
}

// Snapshot 返回任务统计快照。
func (js *JobStats) Snapshot() *JobStatsSnapshot {
	return &JobStatsSnapshot{
		Name:            js.Name,
		TotalRuns:       js.TotalRuns(),
		PanicCount:      js.PanicCount(),
		LastRunTime:     js.LastRunTime(),
		LastRunDuration: js.LastRunDuration(),
		AvgDuration:     js.AvgDuration(),
	}
}
