package utils

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

var prefix = os.Getenv("BINCOMPRESS_METRICS_PREFIX")

// 总任务数
var TotalJobs = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "total_jobs",
		Help: "Total number of codec jobs processed",
	},
	[]string{"kind", "app", "status"},
)

// 总耗时
var JobDurations = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    prefix + "job_durations",
		Help:    "Total seconds of durations for codec jobs",
		Buckets: []float64{0.02, 0.05, 0.08, 0.1, 0.25, 0.5, 0.85, 1, 2, 5, 10},
	},
	[]string{"kind", "app"},
)

// 输入源请求数
var TotalSources = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "total_sources",
		Help: "Total number of input sources resolved",
	},
	[]string{"scheme", "status"},
)

// 输入源耗时
var SourceDurations = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    prefix + "source_durations",
		Help:    "Total seconds of durations for resolving input sources",
		Buckets: []float64{0.02, 0.05, 0.08, 0.1, 0.25, 0.5, 0.85, 1, 2, 5, 10},
	},
	[]string{"scheme"},
)

// 缓存数
var TotalCaches = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "total_caches",
		Help: "Total number of encode results cached",
	},
	[]string{"kind", "status"},
)

// 消息数
var TotalAmqpMessages = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "total_amqp_messages",
		Help: "Total number of publish messaged",
	},
	[]string{"kind", "app"},
)

var CompressionRatioSummaryName = prefix + "compression_ratios"
var CompressionRatioSummary = prometheus.NewSummaryVec(
	prometheus.SummaryOpts{
		Name:       CompressionRatioSummaryName,
		Help:       "Packed size over original size per encode job",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"app"},
)
