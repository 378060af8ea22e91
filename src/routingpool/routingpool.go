package routingpool

import (
	"context"
)

type RoutingPool interface {
	// 提交一个任务，达到并发上限时阻塞直到有空位
	Go(func(context.Context))
	// 等待所有已提交的任务结束
	Wait()
}
