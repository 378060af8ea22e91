// 每一页发起一次搜索请求，不重试
// 传输错误直接返回给调用方，由调用方与非200状态码同样处理
package fetcher

import (
	"context"

	"github.com/andrewyi/codeharvest/src/downloader"
	"github.com/andrewyi/codeharvest/src/entity"
	"github.com/andrewyi/codeharvest/src/util"
)

type SimpleFetcher struct {
	endpoint   string
	resultType string

	d downloader.Downloader
}

func NewSimpleFetcher(d downloader.Downloader, endpoint string, resultType string) Fetcher {
	return &SimpleFetcher{
		endpoint:   endpoint,
		resultType: resultType,
		d:          d,
	}
}

func (f *SimpleFetcher) Fetch(ctx context.Context, term string, pageNumber int) (entity.PageInfo, error) {
	u, err := util.SearchURL(f.endpoint, term, pageNumber, f.resultType)
	if err != nil {
		return entity.PageInfo{}, err
	}
	return f.d.Download(ctx, u)
}
