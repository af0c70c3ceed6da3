package storage

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels used in metrics and logs.
const (
	opEnsureBucket      = "ensure_bucket"
	opUploadFile        = "upload_file"
	opDeleteFile        = "delete_file"
	opGetFileURL        = "get_file_url"
	opGenerateUploadURL = "generate_upload_url"
)

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aaelink_storage_operations_total",
			Help: "Total number of object storage gateway operations.",
		},
		[]string{"operation", "result"},
	)
	operationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aaelink_storage_operation_duration_seconds",
			Help:    "Duration of object storage gateway operations, including every backend round trip.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	uploadedBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aaelink_storage_uploaded_bytes_total",
			Help: "Total payload bytes successfully stored through UploadFile.",
		},
	)
)

func init() {
	prometheus.MustRegister(operationsTotal)
	prometheus.MustRegister(operationDurationSeconds)
	prometheus.MustRegister(uploadedBytesTotal)
}

// observe records the outcome of one gateway operation started at start.
func observe(op string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	operationsTotal.WithLabelValues(op, result).Inc()
	operationDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
