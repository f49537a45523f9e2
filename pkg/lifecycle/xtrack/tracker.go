package xtrack

import "sync"

// Tracker 是并发任务的汇合组。
//
// 零值不可用，必须通过 [New] 创建。
type Tracker struct {
	mu       sync.Mutex
	active   int
	closed   bool
	finished bool
	done     chan struct{}
}

// New 创建新的 Tracker，初始为开启状态。
func New() *Tracker {
	return &Tracker{done: make(chan struct{})}
}

// Go 启动 fn 作为被追踪的 goroutine。
//
// Tracker 已关闭时不启动任何 goroutine，返回 false。
// fn 为 nil 时 panic（程序员错误）。
//
// 任务退出（包括 panic 退出）时自动完成记账。
func (t *Tracker) Go(fn func()) bool {
	if fn == nil {
		panic("xtrack: nil task")
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return false
	}
	t.active++
	t.mu.Unlock()

	go func() {
		// defer 保证 panic 时也完成记账，Wait 不会因此悬挂
		defer t.taskDone()
		fn()
	}()
	return true
}

// Close 关闭 Tracker，此后 Go 不再接受新任务。幂等。
func (t *Tracker) Close() {
	t.mu.Lock()
	if !t.closed {
		t.closed = true
		t.maybeFinishLocked()
	}
	t.mu.Unlock()
}

// Wait 阻塞直到 Tracker 已关闭且所有在途任务退出。
//
// 可以被多个 goroutine 并发调用；条件已满足时立即返回。
func (t *Tracker) Wait() {
	<-t.done
}

// Done 返回在 Tracker 关闭且全部任务退出时关闭的 channel。
// 用于在 select 中等待汇合完成。
func (t *Tracker) Done() <-chan struct{} {
	return t.done
}

// Len 返回当前在途任务数。
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Closed 返回 Tracker 是否已关闭。
func (t *Tracker) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// taskDone 完成单个任务的记账。
func (t *Tracker) taskDone() {
	t.mu.Lock()
	t.active--
	t.maybeFinishLocked()
	t.mu.Unlock()
}

// maybeFinishLocked 在已关闭且计数归零时发出完成信号。
// 调用方必须持有 t.mu。
func (t *Tracker) maybeFinishLocked() {
	if t.closed && t.active == 0 && !t.finished {
		t.finished = true
		close(t.done)
	}
}
