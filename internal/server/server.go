package server

import (
	"slices"

	"github.com/agenthands/wardrobe/internal/config"
	"github.com/agenthands/wardrobe/internal/core"
	"github.com/agenthands/wardrobe/internal/logger"
	"github.com/agenthands/wardrobe/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Stylist  *core.Stylist
	Config   *config.Config
	Log      *logger.Logger
	Metrics  *metrics.Collector
	Registry *prometheus.Registry
}

func NewServer(stylist *core.Stylist, cfg *config.Config, log *logger.Logger, m *metrics.Collector) *Server {
	reg := prometheus.NewRegistry()
	if m != nil {
		m.Register(reg)
	}
	return &Server{
		Stylist:  stylist,
		Config:   cfg,
		Log:      log,
		Metrics:  m,
		Registry: reg,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), accessLog(s.Log), recovery(s.Log))
	r.Use(cors.New(s.corsConfig()))

	r.POST("/recommendations", s.Recommendations)
	r.POST("/chat", s.Chat)
	r.POST("/fashion-tips", s.FashionTips)
	r.GET("/categories/compatibility", s.Compatibility)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})))

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
	}
	origins := s.Config.Server.AllowOrigins
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
