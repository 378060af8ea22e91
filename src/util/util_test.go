package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewyi/codeharvest/src/config"
	"github.com/andrewyi/codeharvest/src/enum"
)

func TestReadConfigDefaults(t *testing.T) {
	var cfg config.Config
	err := ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, enum.DefaultSearchEndpoint, cfg.Search.Endpoint)
	assert.Equal(t, enum.DefaultResultType, cfg.Search.ResultType)
	assert.Equal(t, enum.DefaultStorageRoot, cfg.Storage.Location)
	assert.Equal(t, enum.DefaultSelector, cfg.Analyzer.Selector)
	assert.Equal(t, uint32(100), cfg.Crawler.PageDelay)
	assert.Equal(t, uint32(enum.DefaultWorker), cfg.Downloader.Worker)
	assert.Zero(t, cfg.Downloader.Timeout)
	assert.Empty(t, cfg.Database.URL)
}

func TestReadConfigFileAndEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log:
  level: debug
storage:
  location: /tmp/out
downloader:
  worker: 2
  headers:
    User-Agent: codeharvest
`
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	t.Setenv("CRAWLER_PAGE_DELAY", "5")

	var cfg config.Config
	require.NoError(t, ReadConfig(p, &cfg))

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/out", cfg.Storage.Location)
	assert.Equal(t, uint32(2), cfg.Downloader.Worker)
	assert.Equal(t, uint32(5), cfg.Crawler.PageDelay)
	// viper会将key转为小写
	assert.Equal(t, "codeharvest", cfg.Downloader.Headers["user-agent"])
}

func TestSearchURL(t *testing.T) {
	u, err := SearchURL("https://github.com/search", `from "svelte" language:Svelte`, 3, "Code")
	require.NoError(t, err)
	assert.Equal(t,
		"https://github.com/search?p=3&q=from%20%22svelte%22%20language%3ASvelte&type=Code", u)

	u, err = SearchURL("http://127.0.0.1:8080/search?l=go", "a+b&c", 1, "")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/search?l=go&p=1&q=a%2Bb%26c", u)

	_, err = SearchURL("://bad", "x", 1, "")
	assert.Error(t, err)
}

func TestJoinURL(t *testing.T) {
	u, err := JoinURL("https://github.com/", "/org/repo/blob/main/a.svelte")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/org/repo/blob/main/a.svelte", u)

	u, err = JoinURL("http://host", "org/repo")
	require.NoError(t, err)
	assert.Equal(t, "http://host/org/repo", u)

	_, err = JoinURL("", "x")
	assert.ErrorIs(t, err, ErrEmptyBaseURL)
}

func TestRawURL(t *testing.T) {
	assert.Equal(t,
		"https://github.com/org/repo/raw/main/blob/App.svelte",
		RawURL("https://github.com/org/repo/blob/main/blob/App.svelte"))
	assert.Equal(t, "https://github.com/org/repo", RawURL("https://github.com/org/repo"))
}
