package analyzer

import (
	"github.com/andrewyi/codeharvest/src/entity"
)

type Analyzer interface {
	Analyze(content []byte) ([]entity.ItemDescriptor, error)
}
