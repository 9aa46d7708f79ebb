package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/postpilot-ai/postpilot/pkg/metrics"
)

type Metrics struct {
	apiResponseTime   *prometheus.HistogramVec
	apiErrorCounter   *prometheus.CounterVec
	generationCounter *prometheus.CounterVec
	retrievalTime     *prometheus.HistogramVec
	llmRequestTime    *prometheus.HistogramVec
	llmError          *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	return &Metrics{
		apiResponseTime:   metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:   metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		generationCounter: metrics.NewCounterVec("post_generation", []string{"post_type", "platform"}),
		retrievalTime:     metrics.NewHistogramVec("rag_retrieval_time", nil),
		llmRequestTime:    metrics.NewHistogramVec("llm_request_time", []string{"target"}),
		llmError:          metrics.NewCounterVec("llm_error", []string{"type"}),
	}
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) GenerationInc(postType, platform string) {
	m.generationCounter.WithLabelValues(postType, platform).Inc()
}

func (m *Metrics) RetrievalTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.retrievalTime.WithLabelValues())
}

func (m *Metrics) LLMRequestTimer(target string) *prometheus.Timer {
	return prometheus.NewTimer(m.llmRequestTime.WithLabelValues(target))
}

func (m *Metrics) LLMErrorInc(types string) {
	m.llmError.WithLabelValues(types).Inc()
}
