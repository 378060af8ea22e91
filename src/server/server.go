package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/codeharvest/src/analyzer"
	"github.com/andrewyi/codeharvest/src/collector"
	"github.com/andrewyi/codeharvest/src/config"
	"github.com/andrewyi/codeharvest/src/core"
	"github.com/andrewyi/codeharvest/src/dbstorage"
	"github.com/andrewyi/codeharvest/src/downloader"
	"github.com/andrewyi/codeharvest/src/entity"
	"github.com/andrewyi/codeharvest/src/fetcher"
	"github.com/andrewyi/codeharvest/src/filestorage"
	"github.com/andrewyi/codeharvest/src/harvester"
	"github.com/andrewyi/codeharvest/src/metrics"
	"github.com/andrewyi/codeharvest/src/util"
)

var ErrNoSearchTerm = errors.New("at least one search term is required")

type Server struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger
	config *config.Config

	downloader downloader.Downloader
	fetcher    fetcher.Fetcher
	analyzer   analyzer.Analyzer
	file       filestorage.FileStorage

	dbStorage     *dbstorage.SimpleDBStorage
	metricsServer *http.Server
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Server) initLog() {
	var logger = log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	var out io.Writer = os.Stdout
	if s.config.Log.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   s.config.Log.File,
			MaxSize:    s.config.Log.MaxSize,
			MaxBackups: s.config.Log.MaxBackups,
			MaxAge:     s.config.Log.MaxAge,
		})
	}
	logger.SetOutput(out)

	if s.config.Log.Context {
		logger.SetReportCaller(true)
	}

	if logLevel, err := log.ParseLevel(s.config.Log.Level); err != nil {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	s.logger = logger
}

func (s *Server) Start(ctx *cli.Context) error {
	var err error

	terms := []string(ctx.Args())
	if len(terms) == 0 {
		return ErrNoSearchTerm
	}

	configPath := ctx.String("config")
	var cfg = &config.Config{}
	if err = util.ReadConfig(configPath, cfg); err != nil {
		return fmt.Errorf("fail to load config, err: %w", err)
	}
	s.config = cfg

	s.initLog()

	if err = s.init(); err != nil {
		return err
	}
	defer s.Stop()

	go s.wait()

	for _, term := range terms {
		if s.ctx.Err() != nil {
			s.logger.WithField("term", term).Warn("skip search term, server is stopping")
			continue
		}
		s.logger.Infof("Try to download for: %s", term)
		s.Crawl(term)
	}

	return nil
}

// 搜索页与文件下载共用同一个downloader，默认请求头对所有请求生效
func (s *Server) init() error {
	cfg := s.config

	s.downloader = downloader.NewSimpleDownloader(cfg.Downloader.Timeout, cfg.Downloader.Headers)
	s.fetcher = fetcher.NewSimpleFetcher(s.downloader, cfg.Search.Endpoint, cfg.Search.ResultType)
	s.analyzer = analyzer.NewSimpleAnalyzer(cfg.Analyzer.Selector, cfg.Search.BaseURL)
	s.file = filestorage.NewSimpleFileStorage(nil, cfg.Storage.Location)

	if cfg.Database.URL != "" {
		dbStorage, err := dbstorage.NewSimpleDBStorage(cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("fail to create dbstorage handler: %w", err)
		}
		s.dbStorage = dbStorage
	}

	if cfg.Metrics.Listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		s.metricsServer = &http.Server{Addr: cfg.Metrics.Listen, Handler: mux}
		go func() {
			if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				s.logger.WithError(err).WithField("listen", cfg.Metrics.Listen).Error("metrics server stopped")
			}
		}()
	}

	return nil
}

// 每个搜索词拥有独立的计数器和爬取流程
func (s *Server) Crawl(term string) entity.Summary {
	counters := &collector.Counters{}
	c := collector.NewSimpleCollector(s.downloader, s.file, counters, s.logger)
	h := harvester.NewSimpleHarvester(s.fetcher, s.analyzer, c, s.config.Downloader.Worker, s.logger)

	var recorder core.Recorder
	if s.dbStorage != nil {
		recorder = s.dbStorage
	}

	crawler := core.NewCrawler(h, counters, time.Duration(s.config.Crawler.PageDelay)*time.Millisecond, recorder, s.logger)
	summary, _ := crawler.Run(s.ctx, term) // 新建的crawler不会返回ErrAlreadyStopped
	return summary
}

func (s *Server) wait() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)
	select {
	case <-c:
		s.logger.Warn("interrupt signal, server gonna stop after current page")
		s.cancel()
	case <-s.ctx.Done():
	}
}

func (s *Server) Stop() {
	s.cancel()
	if s.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.metricsServer.Shutdown(ctx)
	}
	if s.dbStorage != nil {
		s.dbStorage.Close()
	}
}
