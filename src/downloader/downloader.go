package downloader

import (
	"context"

	"github.com/andrewyi/codeharvest/src/entity"
)

type Downloader interface {
	Download(context.Context, string) (entity.PageInfo, error)
}
