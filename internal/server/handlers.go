package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/agenthands/wardrobe/internal/core"
	"github.com/agenthands/wardrobe/internal/core/common"
	"github.com/agenthands/wardrobe/internal/core/model"
	"github.com/gin-gonic/gin"
)

type RecommendationRequest struct {
	ProductID      int64  `json:"productId"`
	CategoryFilter string `json:"categoryFilter"`
}

type ChatRequest struct {
	ProductID   int64  `json:"productId"`
	UserMessage string `json:"userMessage"`
}

type FashionTipsRequest struct {
	ProductID int64  `json:"productId"`
	Question  string `json:"question"`
}

type RecommendationResponse struct {
	Success             bool                   `json:"success"`
	Message             string                 `json:"message"`
	RecommendedProducts []model.ProductSummary `json:"recommendedProducts"`
}

func (s *Server) Recommendations(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, "recommendations", errInvalidRequest)
		return
	}

	res, err := s.Stylist.GetMatchingProducts(c.Request.Context(), req.ProductID, req.CategoryFilter)
	s.respond(c, "recommendations", res, err)
}

func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, "chat", errInvalidRequest)
		return
	}

	res, err := s.Stylist.Chat(c.Request.Context(), req.ProductID, req.UserMessage)
	s.respond(c, "chat", res, err)
}

func (s *Server) FashionTips(c *gin.Context) {
	var req FashionTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, "fashion_tips", errInvalidRequest)
		return
	}

	res, err := s.Stylist.GetFashionAdvice(c.Request.Context(), req.ProductID, req.Question)
	s.respond(c, "fashion_tips", res, err)
}

func (s *Server) Compatibility(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusOK, gin.H{"categories": s.Stylist.Graph.Categories()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category":   common.Normalize(category),
		"compatible": s.Stylist.Graph.Compatible(category),
	})
}

var errInvalidRequest = errors.New("invalid request body")

func (s *Server) respond(c *gin.Context, endpoint string, res core.Result, err error) {
	if err != nil {
		s.fail(c, endpoint, err)
		return
	}

	products := res.Products
	if products == nil {
		products = []model.ProductSummary{}
	}
	s.Metrics.ObserveResponse(endpoint, true, len(products))
	c.JSON(http.StatusOK, RecommendationResponse{
		Success:             true,
		Message:             res.Message,
		RecommendedProducts: products,
	})
}

// fail answers every error with 400 and success=false.
func (s *Server) fail(c *gin.Context, endpoint string, err error) {
	s.Log.Warn("request failed", "endpoint", endpoint, "request_id", c.GetString(requestIDKey), "error", err)
	s.Metrics.ObserveResponse(endpoint, false, 0)
	c.JSON(http.StatusBadRequest, failure(err))
}

func failure(err error) RecommendationResponse {
	msg := "Unable to process request: " + err.Error()
	switch {
	case errors.Is(err, model.ErrProductNotFound):
		msg = fmt.Sprintf("Error: %v", err)
	case errors.Is(err, errInvalidRequest):
		msg = "Error: invalid request body"
	}
	return RecommendationResponse{
		Success:             false,
		Message:             msg,
		RecommendedProducts: []model.ProductSummary{},
	}
}
