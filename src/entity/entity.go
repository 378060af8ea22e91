package entity

import (
	"time"
)

// 一次GET请求的原始结果，页面抓取和文件下载共用
type PageInfo struct {
	URL        string
	StatusCode int
	Content    []byte
}

// 搜索结果页中解析出的一条文件引用
// UniqueID同时作为本地存储的相对路径，可能包含多级目录
type ItemDescriptor struct {
	DisplayName  string
	UniqueID     string
	PageURL      string // 文件的展示页面
	RetrievalURL string // 文件原始内容的下载地址
}

// 计数快照，Downloaded + Failed 等于已结束的下载尝试次数
type Counters struct {
	Downloaded int64
	Failed     int64
}

// 单个文件下载的结果，仅用于计数、日志以及记录，不作为错误向上传递
type DownloadResult struct {
	PageNumber int
	Item       ItemDescriptor
	Path       string
	State      uint32
	Remark     string // error description, if any
	Counters   Counters
}

// 单页处理结果，Usable为false是整个爬取终止的唯一信号
type PageResult struct {
	PageNumber int
	Usable     bool
	Items      int
	Downloaded int
	Failed     int
}

// 一次完整爬取的汇总
type Summary struct {
	Term           string
	LastPage       int // 最后一次尝试的页码（即导致终止的页码）
	PagesHarvested int
	Downloaded     int64
	Failed         int64
	Cancelled      bool
	StartedAt      time.Time
	FinishedAt     time.Time
}
