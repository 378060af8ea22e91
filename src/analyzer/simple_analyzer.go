// 从搜索结果页中提取文件引用，仅解析selector命中的a标签
// 没有任何结果不视为错误
package analyzer

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewyi/codeharvest/src/entity"
	"github.com/andrewyi/codeharvest/src/util"
)

type SimpleAnalyzer struct {
	selector string
	baseURL  string
}

func NewSimpleAnalyzer(selector string, baseURL string) Analyzer {
	return &SimpleAnalyzer{
		selector: selector,
		baseURL:  baseURL,
	}
}

func (a *SimpleAnalyzer) Analyze(content []byte) ([]entity.ItemDescriptor, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	items := make([]entity.ItemDescriptor, 0)

	doc.Find(a.selector).Each(func(index int, element *goquery.Selection) {
		href, exists := element.Attr("href")
		if !exists || href == "" {
			return
		}
		// href中的路径是编码过的，解码后才能作为本地路径使用
		// PathUnescape不会将+转为空格
		// 拼接地址时必须使用原始的href，否则 %23 %3F 之类会被当作#和?
		uniqueID, err := url.PathUnescape(href)
		if err != nil {
			return
		}
		pageURL, err := util.JoinURL(a.baseURL, href)
		if err != nil {
			return
		}

		items = append(items, entity.ItemDescriptor{
			DisplayName:  strings.TrimSpace(element.Text()),
			UniqueID:     uniqueID,
			PageURL:      pageURL,
			RetrievalURL: util.RawURL(pageURL),
		})
	})

	return items, nil
}
