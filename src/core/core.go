package core

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/codeharvest/src/collector"
	"github.com/andrewyi/codeharvest/src/entity"
	"github.com/andrewyi/codeharvest/src/enum"
	"github.com/andrewyi/codeharvest/src/harvester"
)

var ErrAlreadyStopped = errors.New("crawler already stopped")

// 记录爬取过程，记录失败不影响爬取本身
type Recorder interface {
	StartRun(term string, startedAt time.Time) (int64, error)
	RecordPage(runID int64, page entity.PageResult, counters entity.Counters) error
	FinishRun(runID int64, summary entity.Summary) error
}

// 单个搜索词的一次爬取，从第1页开始逐页处理，直到某一页不可用
// 页与页之间严格串行，下一页一定在上一页所有文件下载结束后才开始
type Crawler struct {
	logger    *log.Logger
	delay     time.Duration
	harvester harvester.Harvester
	counters  *collector.Counters
	recorder  Recorder

	mu      sync.Mutex
	state   uint32
	summary entity.Summary
}

// counters需要与harvester内部的collector共享同一个实例
// recorder可以为nil
func NewCrawler(h harvester.Harvester, counters *collector.Counters, delay time.Duration, recorder Recorder, logger *log.Logger) *Crawler {
	return &Crawler{
		logger:    logger,
		delay:     delay,
		harvester: h,
		counters:  counters,
		recorder:  recorder,
		state:     enum.CrawlStateIdle,
	}
}

func (c *Crawler) State() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run阻塞直到爬取结束，ctx取消后在两页之间停止
// 只有Idle状态可以启动，其他状态直接返回上次的结果和ErrAlreadyStopped
func (c *Crawler) Run(ctx context.Context, term string) (entity.Summary, error) {
	c.mu.Lock()
	if c.state != enum.CrawlStateIdle {
		s := c.summary
		c.mu.Unlock()
		return s, ErrAlreadyStopped
	}
	c.state = enum.CrawlStateRunning
	c.mu.Unlock()

	var summary = entity.Summary{
		Term:      term,
		StartedAt: time.Now(),
	}
	runID := c.startRun(term, summary.StartedAt)

	pageNumber := 1
	for {
		if !c.wait(ctx) {
			summary.Cancelled = true
			break
		}

		page := c.harvester.Harvest(ctx, term, pageNumber)
		summary.LastPage = pageNumber
		pageNumber++
		c.recordPage(runID, page)

		if !page.Usable {
			// 抓取过程中ctx被取消同样会得到不可用的页，此时不能当作正常结束
			if ctx.Err() != nil {
				summary.Cancelled = true
			}
			break
		}
		summary.PagesHarvested++
	}

	counters := c.counters.Snapshot()
	summary.Downloaded = counters.Downloaded
	summary.Failed = counters.Failed
	summary.FinishedAt = time.Now()

	c.mu.Lock()
	c.state = enum.CrawlStateStopped
	c.summary = summary
	c.mu.Unlock()

	c.report(summary, pageNumber)
	c.finishRun(runID, summary)
	return summary, nil
}

// 每一页之前都等待固定的时间，ctx取消时返回false
func (c *Crawler) wait(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *Crawler) report(summary entity.Summary, pageNumber int) {
	l := c.logger.WithField("term", summary.Term)
	if summary.Cancelled {
		l.Warn("crawl cancelled")
	}
	l.Infof("Completed at %d page", pageNumber)
	l.Infof("Pages harvested: %d", summary.PagesHarvested)
	l.Infof("Downloaded files count: %d", summary.Downloaded)
	l.Infof("Failed files count: %d", summary.Failed)
}

func (c *Crawler) startRun(term string, startedAt time.Time) int64 {
	if c.recorder == nil {
		return 0
	}
	runID, err := c.recorder.StartRun(term, startedAt)
	if err != nil {
		c.logger.WithError(err).WithField("term", term).Error("fail to record run start")
	}
	return runID
}

func (c *Crawler) recordPage(runID int64, page entity.PageResult) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordPage(runID, page, c.counters.Snapshot()); err != nil {
		c.logger.WithError(err).WithField("page", page.PageNumber).Error("fail to record page")
	}
}

func (c *Crawler) finishRun(runID int64, summary entity.Summary) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.FinishRun(runID, summary); err != nil {
		c.logger.WithError(err).WithField("term", summary.Term).Error("fail to record run finish")
	}
}
