// 处理单个搜索页：抓取 -> 解析 -> 并发下载页内所有文件 -> 等待全部结束
// 只有搜索页本身的抓取结果会影响Usable，文件下载失败不会
package harvester

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/codeharvest/src/analyzer"
	"github.com/andrewyi/codeharvest/src/collector"
	"github.com/andrewyi/codeharvest/src/entity"
	"github.com/andrewyi/codeharvest/src/enum"
	"github.com/andrewyi/codeharvest/src/fetcher"
	"github.com/andrewyi/codeharvest/src/metrics"
	"github.com/andrewyi/codeharvest/src/routingpool"
)

type SimpleHarvester struct {
	logger *log.Logger
	worker uint32

	fetcher   fetcher.Fetcher
	analyzer  analyzer.Analyzer
	collector collector.Collector
}

// worker为单页内同时下载的文件数上限，0表示不限制
func NewSimpleHarvester(f fetcher.Fetcher, a analyzer.Analyzer, c collector.Collector, worker uint32, logger *log.Logger) Harvester {
	return &SimpleHarvester{
		logger:    logger,
		worker:    worker,
		fetcher:   f,
		analyzer:  a,
		collector: c,
	}
}

func (h *SimpleHarvester) Harvest(ctx context.Context, term string, pageNumber int) entity.PageResult {
	var result = entity.PageResult{PageNumber: pageNumber}

	page, err := h.fetcher.Fetch(ctx, term, pageNumber)
	if err != nil {
		// 传输错误与非200状态码同样视为没有更多的页
		h.logger.WithError(err).WithField("page", pageNumber).Warn("fail to fetch search page")
		metrics.ObservePage(false)
		return result
	}
	if page.StatusCode != enum.ExpectedStatusCode {
		h.logger.WithFields(log.Fields{
			"page":   pageNumber,
			"status": page.StatusCode,
		}).Infof("Received unexpected status code %d", page.StatusCode)
		metrics.ObservePage(false)
		return result
	}

	result.Usable = true
	metrics.ObservePage(true)

	items, err := h.analyzer.Analyze(page.Content)
	if err != nil {
		// 无法解析的页面按没有结果处理，继续下一页
		h.logger.WithError(err).WithField("page", pageNumber).Warn("fail to analyze search page")
		return result
	}
	result.Items = len(items)
	if len(items) == 0 {
		h.logger.WithField("page", pageNumber).Debug("no items on page")
		return result
	}

	var (
		mu   sync.Mutex
		pool = routingpool.NewSimpleRoutingPool(ctx, h.worker)
	)
	for _, item := range items {
		pool.Go(func(ctx context.Context) {
			r := h.collector.Collect(ctx, pageNumber, item)
			mu.Lock()
			defer mu.Unlock()
			if r.State == enum.DownloadStateSuccess {
				result.Downloaded++
			} else {
				result.Failed++
			}
		})
	}
	pool.Wait()

	return result
}
