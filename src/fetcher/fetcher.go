package fetcher

import (
	"context"

	"github.com/andrewyi/codeharvest/src/entity"
)

type Fetcher interface {
	Fetch(ctx context.Context, term string, pageNumber int) (entity.PageInfo, error)
}
