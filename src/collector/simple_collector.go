// 下载单个文件并写入本地存储
// 所有错误在此处消化：计数、打印日志，但不会中断当前页或整个爬取
package collector

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/codeharvest/src/downloader"
	"github.com/andrewyi/codeharvest/src/entity"
	"github.com/andrewyi/codeharvest/src/enum"
	"github.com/andrewyi/codeharvest/src/filestorage"
	"github.com/andrewyi/codeharvest/src/metrics"
)

type SimpleCollector struct {
	logger   *log.Logger
	counters *Counters

	d    downloader.Downloader
	file filestorage.FileStorage
}

func NewSimpleCollector(d downloader.Downloader, file filestorage.FileStorage, counters *Counters, logger *log.Logger) Collector {
	return &SimpleCollector{
		logger:   logger,
		counters: counters,
		d:        d,
		file:     file,
	}
}

func (c *SimpleCollector) Collect(ctx context.Context, pageNumber int, item entity.ItemDescriptor) entity.DownloadResult {
	var result = entity.DownloadResult{
		PageNumber: pageNumber,
		Item:       item,
	}

	path, err := c.fetchAndStore(ctx, item)
	result.Path = path
	if err != nil {
		result.State = enum.DownloadStateFail
		result.Remark = err.Error()
		result.Counters = c.counters.AddFailed()
		metrics.ItemsFailed.Inc()

		c.logger.WithError(err).WithFields(log.Fields{
			"page": pageNumber,
			"url":  item.RetrievalURL,
		}).Warnf("[%d :: %d :: %d] %s = %s",
			pageNumber, result.Counters.Downloaded, result.Counters.Failed, path, err.Error())
		return result
	}

	result.State = enum.DownloadStateSuccess
	result.Counters = c.counters.AddDownloaded()
	metrics.ItemsDownloaded.Inc()

	c.logger.WithField("page", pageNumber).Infof("[%d :: %d :: %d] %s",
		pageNumber, result.Counters.Downloaded, result.Counters.Failed, path)
	return result
}

// 返回的path在失败时也尽量给出，便于日志定位
func (c *SimpleCollector) fetchAndStore(ctx context.Context, item entity.ItemDescriptor) (string, error) {
	page, err := c.d.Download(ctx, item.RetrievalURL)
	if err != nil {
		return item.UniqueID, fmt.Errorf("fail to download %s: %w", item.RetrievalURL, err)
	}

	// 非2xx的响应内容通常是错误页面，不应当作为文件内容保存
	if page.StatusCode < 200 || page.StatusCode > 299 {
		return item.UniqueID, fmt.Errorf("%w: %d", ErrUnexpectedStatus, page.StatusCode)
	}

	return c.file.Store(item.UniqueID, page.Content)
}
