package collector

import (
	"sync"

	"github.com/andrewyi/codeharvest/src/entity"
)

// 整个爬取过程共享的计数器，只增不减
// 每次递增返回的快照中两个值属于同一时刻
type Counters struct {
	mu         sync.Mutex
	downloaded int64
	failed     int64
}

func (c *Counters) AddDownloaded() entity.Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.downloaded++
	return entity.Counters{Downloaded: c.downloaded, Failed: c.failed}
}

func (c *Counters) AddFailed() entity.Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed++
	return entity.Counters{Downloaded: c.downloaded, Failed: c.failed}
}

func (c *Counters) Snapshot() entity.Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return entity.Counters{Downloaded: c.downloaded, Failed: c.failed}
}
