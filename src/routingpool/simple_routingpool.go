// 实现了一个最简单的协程池，每个任务一个协程
// size限制同时运行的任务数，为0时不做限制
// NOTE: 任务自身需要处理panic，当前实现不会恢复崩溃的任务
package routingpool

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

type SimpleRoutingPool struct {
	wg sync.WaitGroup

	ctx  context.Context
	size uint32
	sem  *semaphore.Weighted
}

func NewSimpleRoutingPool(ctx context.Context, size uint32) RoutingPool {
	p := &SimpleRoutingPool{
		ctx:  ctx,
		size: size,
	}
	if size > 0 {
		p.sem = semaphore.NewWeighted(int64(size))
	}
	return p
}

// 即使ctx已经取消，任务依然会被执行，由任务自己根据ctx决定如何结束
// 这样每个提交的任务都一定会走到终态
func (s *SimpleRoutingPool) Go(task func(context.Context)) {
	s.wg.Add(1)
	if s.sem != nil {
		// 使用Background获取，避免ctx取消后任务被丢弃
		// Background永远不会取消，因此Acquire不会返回错误
		_ = s.sem.Acquire(context.Background(), 1)
	}
	go func() {
		defer s.wg.Done()
		if s.sem != nil {
			defer s.sem.Release(1)
		}
		task(s.ctx)
	}()
}

func (s *SimpleRoutingPool) Wait() {
	s.wg.Wait()
}
