package util

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/andrewyi/codeharvest/src/enum"
)

var ErrEmptyBaseURL = errors.New("empty base url")

// 配置文件不存在时直接使用默认值，因此无配置文件也可以运行
func ReadConfig(filePath string, out interface{}) error {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // for nested structure
	v.AutomaticEnv()

	if filePath != "" {
		if _, err := os.Stat(filePath); err == nil {
			v.SetConfigFile(filePath)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return err
	}

	return nil
}

// AutomaticEnv只对已知的key生效，所以需要为每个key设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.context", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)

	v.SetDefault("search.endpoint", enum.DefaultSearchEndpoint)
	v.SetDefault("search.result_type", enum.DefaultResultType)
	v.SetDefault("search.base_url", enum.DefaultBaseURL)

	v.SetDefault("crawler.page_delay", uint32(enum.DefaultPageDelay.Milliseconds()))

	v.SetDefault("database.url", "")

	v.SetDefault("storage.location", enum.DefaultStorageRoot)

	v.SetDefault("downloader.worker", enum.DefaultWorker)
	v.SetDefault("downloader.timeout", 0)

	v.SetDefault("analyzer.selector", enum.DefaultSelector)

	v.SetDefault("metrics.listen", "")
}

// 生成搜索页地址，参数顺序为 p、q、type
// 搜索词按百分号编码，空格编码为%20而不是+
func SearchURL(endpoint string, term string, pageNumber int, resultType string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("fail to parse search endpoint %q: %w", endpoint, err)
	}

	query := fmt.Sprintf("p=%d&q=%s", pageNumber, EscapeTerm(term))
	if resultType != "" {
		query += "&type=" + url.QueryEscape(resultType)
	}
	if u.RawQuery != "" {
		query = u.RawQuery + "&" + query
	}
	u.RawQuery = query
	return u.String(), nil
}

func EscapeTerm(term string) string {
	return strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
}

// 将相对路径拼接到base之后，避免出现重复的/
func JoinURL(base string, p string) (string, error) {
	if base == "" {
		return "", ErrEmptyBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/"), nil
}

// 将文件展示地址转换为原始内容地址，仅替换第一个/blob/
func RawURL(pageURL string) string {
	return strings.Replace(pageURL, "/blob/", "/raw/", 1)
}
