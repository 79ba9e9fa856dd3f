package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector is safe to use as a nil pointer; every method becomes a no-op.
type Collector struct {
	aiRequests       *prometheus.CounterVec
	responses        *prometheus.CounterVec
	chatIntents      *prometheus.CounterVec
	productsReturned *prometheus.HistogramVec
}

func New() *Collector {
	c := &Collector{}

	c.aiRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wardrobe",
		Name:      "ai_requests_total",
		Help:      "Text completion calls by purpose and outcome (ok or fallback)",
	}, []string{"purpose", "outcome"})

	c.responses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wardrobe",
		Name:      "responses_total",
		Help:      "Recommendation responses by endpoint and success",
	}, []string{"endpoint", "success"})

	c.chatIntents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wardrobe",
		Name:      "chat_intents_total",
		Help:      "Classified chat messages by intent",
	}, []string{"intent"})

	c.productsReturned = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wardrobe",
		Name:      "recommended_products",
		Help:      "Number of products returned per recommendation",
		Buckets:   []float64{0, 1, 3, 6, 9, 12},
	}, []string{"endpoint"})

	return c
}

func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		c.aiRequests,
		c.responses,
		c.chatIntents,
		c.productsReturned,
	)
}

func (c *Collector) ObserveAI(purpose string, ok bool) {
	if c == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "fallback"
	}
	c.aiRequests.WithLabelValues(purpose, outcome).Inc()
}

func (c *Collector) ObserveResponse(endpoint string, success bool, products int) {
	if c == nil {
		return
	}
	s := "true"
	if !success {
		s = "false"
	}
	c.responses.WithLabelValues(endpoint, s).Inc()
	if success {
		c.productsReturned.WithLabelValues(endpoint).Observe(float64(products))
	}
}

func (c *Collector) ObserveIntent(intent string) {
	if c == nil {
		return
	}
	c.chatIntents.WithLabelValues(intent).Inc()
}
