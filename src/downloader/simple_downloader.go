// 仅仅实现了简单的http Get方式下载，不做重试，也不判断状态码
// 状态码是否可接受由调用方决定
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andrewyi/codeharvest/src/entity"
)

type SimpleDownloader struct {
	timeout uint32
	headers map[string]string

	client *http.Client
}

// timeout为0表示不设置超时
// headers会附加到每一个请求上
func NewSimpleDownloader(timeout uint32, headers map[string]string) Downloader {
	h := make(map[string]string, len(headers))
	for k, v := range headers {
		h[k] = v
	}

	return &SimpleDownloader{
		timeout: timeout,
		headers: h,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

func (s *SimpleDownloader) Download(ctx context.Context, url string) (entity.PageInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.PageInfo{URL: url}, fmt.Errorf("fail to create request: %w", err)
	}
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return entity.PageInfo{URL: url}, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.PageInfo{URL: url, StatusCode: resp.StatusCode}, fmt.Errorf("fail to read body: %w", err)
	}

	return entity.PageInfo{
		URL:        url,
		StatusCode: resp.StatusCode,
		Content:    content,
	}, nil
}
