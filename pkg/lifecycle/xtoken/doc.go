// Package xtoken 提供层级化的协作取消令牌。
//
// # 概述
//
// Token 是一个可共享的取消信号，按树状组织：取消父令牌会级联取消
// 所有后代，取消子令牌不影响父令牌和兄弟令牌。消费方需要主动观察
// 令牌状态（协作式取消），不存在强制抢占。
//
// # 核心概念
//
// 基于 context 的实现：Token 内部封装一对
// context.Context/context.CancelFunc，父子关系直接复用标准库的
// context 树。级联传播、单调取消（false→true 不可逆）、子令牌
// 取消后从父节点分离，这些语义都由标准库保证。
//
// # 快速开始
//
//	token := xtoken.New()
//
//	go func(t *xtoken.Token) {
//	    for {
//	        select {
//	        case <-t.Done():
//	            return
//	        case job := <-jobs:
//	            process(job)
//	        }
//	    }
//	}(token)
//
//	// 关闭时
//	token.Cancel()
//
// 为单次操作派生作用域令牌：
//
//	child := token.Child()
//	defer child.Cancel() // 只结束本次操作，不影响 token
//	doWork(child)
//
// # 并发安全
//
// 所有方法都可以从任意数量的 goroutine 并发调用。Token 指针本身
// 就是廉价的共享句柄，复制指针即共享底层状态。
//
// # 设计决策
//
// 1. 不维护显式的子令牌列表：context 树已经实现了父→子的取消
//    传播和已取消子节点的回收，自建指针图只会重复标准库的工作。
//
// 2. 所有操作不返回错误：取消是幂等且永远安全的操作，查询是
//    非阻塞的纯读取，没有可失败的路径。
//
// 3. Context() 暴露底层 context：令牌需要与接受 context 的
//    生态 API（信号量、网络调用等）桥接，隐藏它只会迫使调用方
//    重新包装。
package xtoken
