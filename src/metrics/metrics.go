// Package metrics 定义了爬取过程中的prometheus指标
//
//   - codeharvest_items_downloaded_total (Counter): 下载并写入成功的文件数
//   - codeharvest_items_failed_total (Counter): 下载或写入失败的文件数
//   - codeharvest_pages_total{usable} (Counter): 已处理的搜索页数
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ItemsDownloaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codeharvest_items_downloaded_total",
		Help: "Total number of items downloaded and stored",
	})

	ItemsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codeharvest_items_failed_total",
		Help: "Total number of items that failed to download or store",
	})

	Pages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeharvest_pages_total",
		Help: "Total number of search pages fetched, by usability",
	}, []string{"usable"})
)

func ObservePage(usable bool) {
	if usable {
		Pages.WithLabelValues("true").Inc()
	} else {
		Pages.WithLabelValues("false").Inc()
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
