package config

type Config struct {
	Log struct {
		Context    bool   `mapstructure:"context"`
		Level      string `mapstructure:"level"`
		File       string `mapstructure:"file"` // 非空时日志同时写入滚动文件
		MaxSize    int    `mapstructure:"max_size"` // MB
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"` // days
	} `mapstructure:"log"`

	Search struct {
		Endpoint   string `mapstructure:"endpoint"`
		ResultType string `mapstructure:"result_type"`
		BaseURL    string `mapstructure:"base_url"`
	} `mapstructure:"search"`

	Crawler struct {
		PageDelay uint32 `mapstructure:"page_delay"` // ms
	} `mapstructure:"crawler"`

	Database struct {
		URL string `mapstructure:"url"` // 为空时不记录运行历史
	} `mapstructure:"database"`

	Storage struct {
		Location string `mapstructure:"location"`
	} `mapstructure:"storage"`

	Downloader struct {
		Worker  uint32            `mapstructure:"worker"`  // 单页内并发下载数，0表示不限制
		Timeout uint32            `mapstructure:"timeout"` // 秒，0表示不超时
		Headers map[string]string `mapstructure:"headers"`
	} `mapstructure:"downloader"`

	Analyzer struct {
		Selector string `mapstructure:"selector"`
	} `mapstructure:"analyzer"`

	Metrics struct {
		Listen string `mapstructure:"listen"` // 为空时不暴露metrics
	} `mapstructure:"metrics"`
}
