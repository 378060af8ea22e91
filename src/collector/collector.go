package collector

import (
	"context"
	"errors"

	"github.com/andrewyi/codeharvest/src/entity"
)

// Collect不返回error，失败只体现在结果的State中
type Collector interface {
	Collect(ctx context.Context, pageNumber int, item entity.ItemDescriptor) entity.DownloadResult
}

var ErrUnexpectedStatus = errors.New("unexpected status code")
