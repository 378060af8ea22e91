package harvester

import (
	"context"

	"github.com/andrewyi/codeharvest/src/entity"
)

type Harvester interface {
	Harvest(ctx context.Context, term string, pageNumber int) entity.PageResult
}
