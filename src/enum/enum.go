package enum

import (
	"time"
)

const (
	// 定义了单个文件下载的状态
	DownloadStateSuccess = 1
	DownloadStateFail    = 2
)

const (
	// 爬取流程的状态，Stopped为终态
	CrawlStateIdle    = 0
	CrawlStateRunning = 1
	CrawlStateStopped = 2
)

const (
	// 搜索页返回其他状态码时即认为没有更多的页
	ExpectedStatusCode = 200

	DefaultSearchEndpoint = "https://github.com/search"
	DefaultBaseURL        = "https://github.com/"
	DefaultResultType     = "Code"
	DefaultSelector       = ".code-list .f4 a"
	DefaultStorageRoot    = "files"
	DefaultPageDelay      = 100 * time.Millisecond
	DefaultWorker         = 8
)
