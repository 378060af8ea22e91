// 运行历史表，仅用于事后查看，爬取时不会读取
package schema

import (
	"time"
)

type Run struct {
	ID             int64     `xorm:"bigint pk autoincr 'id'"`
	Term           string    `xorm:"text notnull 'term'"`
	LastPage       int       `xorm:"int 'last_page'"`
	PagesHarvested int       `xorm:"int 'pages_harvested'"`
	Downloaded     int64     `xorm:"bigint 'downloaded'"`
	Failed         int64     `xorm:"bigint 'failed'"`
	Cancelled      bool      `xorm:"bool 'cancelled'"`
	StartedAt      time.Time `xorm:"datetime notnull 'started_at'"`
	FinishedAt     time.Time `xorm:"datetime 'finished_at'"`
	CreatedAt      time.Time `xorm:"created notnull 'created_at'"`
	UpdatedAt      time.Time `xorm:"updated notnull 'updated_at'"`
}

func (r *Run) TableName() string {
	return "runs"
}

// TotalDownloaded/TotalFailed 为本页结束时整个运行的累计值
type RunPage struct {
	ID              int64     `xorm:"bigint pk autoincr 'id'"`
	RunID           int64     `xorm:"bigint notnull index(idx_run_page) 'run_id'"`
	PageNumber      int       `xorm:"int notnull index(idx_run_page) 'page_number'"`
	Usable          bool      `xorm:"bool 'usable'"`
	Items           int       `xorm:"int 'items'"`
	Downloaded      int       `xorm:"int 'downloaded'"`
	Failed          int       `xorm:"int 'failed'"`
	TotalDownloaded int64     `xorm:"bigint 'total_downloaded'"`
	TotalFailed     int64     `xorm:"bigint 'total_failed'"`
	CreatedAt       time.Time `xorm:"created notnull 'created_at'"`
}

func (p *RunPage) TableName() string {
	return "run_pages"
}
