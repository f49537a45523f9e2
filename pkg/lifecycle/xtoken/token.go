package xtoken

import "context"

// Token 是层级化的协作取消令牌。
//
// 零值不可用，必须通过 [New]、[WithParent] 或 [Token.Child] 创建。
// Token 指针可以被任意多个 goroutine 持有，所有持有者共享同一取消状态。
type Token struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// New 创建新的根令牌，初始状态为未取消。
func New() *Token {
	ctx, cancel := context.WithCancel(context.Background())
	return &Token{ctx: ctx, cancel: cancel}
}

// WithParent 创建跟随外部 context 的令牌。
//
// 当 ctx 被取消时令牌随之取消；令牌也可以通过 Cancel 独立取消，
// 不影响 ctx。用于把既有的 context 取消链桥接为 Token。
func WithParent(ctx context.Context) *Token {
	// nil context 归一化为 context.Background()，防止标准库 panic。
	if ctx == nil {
		ctx = context.Background()
	}
	child, cancel := context.WithCancel(ctx)
	return &Token{ctx: child, cancel: cancel}
}

// Child 派生子令牌。
//
// 父令牌取消时子令牌随之取消；子令牌独立取消不影响父令牌和兄弟。
// 典型用法是为单次任务执行划定取消作用域。
func (t *Token) Child() *Token {
	ctx, cancel := context.WithCancel(t.ctx)
	return &Token{ctx: ctx, cancel: cancel}
}

// Cancel 取消令牌及其全部后代。
//
// 幂等：已取消的令牌再次 Cancel 是空操作。可以从任意并发上下文调用。
func (t *Token) Cancel() {
	t.cancel()
}

// IsCancelled 返回令牌当前是否已取消，非阻塞。
func (t *Token) IsCancelled() bool {
	return t.ctx.Err() != nil
}

// Done 返回在令牌（或其祖先）被取消时关闭的 channel。
//
// 用于在 select 中与其他事件竞争：
//
//	select {
//	case <-token.Done():
//	    return
//	case <-timer.C:
//	    run()
//	}
func (t *Token) Done() <-chan struct{} {
	return t.ctx.Done()
}

// AwaitCancelled 阻塞直到令牌（或其祖先）被取消。
// 已取消时立即返回。
func (t *Token) AwaitCancelled() {
	<-t.ctx.Done()
}

// Context 返回令牌的底层 context。
//
// 用于与接受 context.Context 的 API 桥接；该 context 在令牌
// 取消时 Done。
func (t *Token) Context() context.Context {
	return t.ctx
}
