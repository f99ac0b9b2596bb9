// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder はメトリクス記録のインターフェース。
// APIクライアント・ストア・usecaseから利用する。
type Recorder interface {
	RecordAPICall(operation string, statusCode int, duration time.Duration)
	RecordCartMutation(kind string)
	RecordCheckout(outcome string)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	apiCalls      *prometheus.CounterVec
	apiLatency    *prometheus.HistogramVec
	cartMutations *prometheus.CounterVec
	checkouts     *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		apiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quickkart_api_calls_total",
			Help: "バックエンドAPI呼び出し数（操作・ステータス別）",
		}, []string{"operation", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quickkart_api_latency_seconds",
			Help:    "バックエンドAPI呼び出しのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quickkart_cart_mutations_total",
			Help: "カート更新操作の数",
		}, []string{"kind"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quickkart_checkouts_total",
			Help: "チェックアウト結果の数",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.apiCalls,
		c.apiLatency,
		c.cartMutations,
		c.checkouts,
	)

	return c
}

// RecordAPICall はAPI呼び出しを記録する。通信エラーはstatusCode=0で"error"になる。
func (c *Collector) RecordAPICall(operation string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	c.apiCalls.WithLabelValues(operation, status).Inc()
	c.apiLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCartMutation はカート更新を記録する。
func (c *Collector) RecordCartMutation(kind string) {
	c.cartMutations.WithLabelValues(kind).Inc()
}

// RecordCheckout はチェックアウト結果を記録する。
func (c *Collector) RecordCheckout(outcome string) {
	c.checkouts.WithLabelValues(outcome).Inc()
}

// Nop は何も記録しないRecorder。
type Nop struct{}

func (Nop) RecordAPICall(string, int, time.Duration) {}
func (Nop) RecordCartMutation(string)                {}
func (Nop) RecordCheckout(string)                    {}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
