package xtoken

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	token := New()
	defer token.Cancel()

	assert.False(t, token.IsCancelled())

	select {
	case <-token.Done():
		t.Fatal("new token should not be done")
	default:
	}
}

func TestCancel(t *testing.T) {
	token := New()
	token.Cancel()

	assert.True(t, token.IsCancelled())

	select {
	case <-token.Done():
	default:
		t.Fatal("cancelled token should be done")
	}
}

func TestCancel_Idempotent(t *testing.T) {
	token := New()
	token.Cancel()
	token.Cancel()
	token.Cancel()

	assert.True(t, token.IsCancelled())
}

func TestChild_ParentCancelPropagates(t *testing.T) {
	parent := New()
	child := parent.Child()
	grandchild := child.Child()

	parent.Cancel()

	assert.True(t, parent.IsCancelled())
	assert.True(t, child.IsCancelled())
	assert.True(t, grandchild.IsCancelled())
}

func TestChild_CancelDoesNotAffectParent(t *testing.T) {
	parent := New()
	defer parent.Cancel()
	child := parent.Child()
	sibling := parent.Child()
	defer sibling.Cancel()

	child.Cancel()

	assert.True(t, child.IsCancelled())
	assert.False(t, parent.IsCancelled())
	assert.False(t, sibling.IsCancelled())
}

func TestChild_OfCancelledParent(t *testing.T) {
	parent := New()
	parent.Cancel()

	// 已取消的父令牌派生的子令牌直接处于已取消状态
	child := parent.Child()
	assert.True(t, child.IsCancelled())
}

func TestAwaitCancelled(t *testing.T) {
	token := New()

	done := make(chan struct{})
	go func() {
		token.AwaitCancelled()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("AwaitCancelled returned before Cancel")
	case <-time.After(20 * time.Millisecond):
	}

	token.Cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AwaitCancelled did not return after Cancel")
	}
}

func TestAwaitCancelled_AlreadyCancelled(t *testing.T) {
	token := New()
	token.Cancel()

	// 已取消的令牌立即返回
	done := make(chan struct{})
	go func() {
		token.AwaitCancelled()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AwaitCancelled should return immediately")
	}
}

func TestWithParent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	token := WithParent(ctx)

	assert.False(t, token.IsCancelled())

	cancel()
	token.AwaitCancelled()
	assert.True(t, token.IsCancelled())
}

func TestWithParent_IndependentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := WithParent(ctx)

	token.Cancel()

	assert.True(t, token.IsCancelled())
	require.NoError(t, ctx.Err())
}

func TestWithParent_NilContext(t *testing.T) {
	token := WithParent(nil) //nolint:staticcheck // 验证 nil ctx 归一化行为
	defer token.Cancel()

	assert.False(t, token.IsCancelled())
}

func TestContext(t *testing.T) {
	token := New()
	ctx := token.Context()
	require.NoError(t, ctx.Err())

	token.Cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestCancel_Concurrent(t *testing.T) {
	token := New()
	children := make([]*Token, 16)
	for i := range children {
		children[i] = token.Child()
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token.Cancel()
		}()
	}
	wg.Wait()

	assert.True(t, token.IsCancelled())
	for _, c := range children {
		assert.True(t, c.IsCancelled())
	}
}

func TestSharedHandle(t *testing.T) {
	token := New()
	clone := token // 指针复制即共享状态

	clone.Cancel()
	assert.True(t, token.IsCancelled())
}
