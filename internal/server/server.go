package server

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/kamsam/internal/core"
	"github.com/agenthands/kamsam/internal/core/model"
)

// Server exposes a Game over HTTP. The game itself is single-threaded, so
// every handler holds mu for the whole operation.
type Server struct {
	Game   *core.Game
	Logger *zap.Logger

	mu sync.Mutex
}

func NewServer(game *core.Game, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Game:   game,
		Logger: logger,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/state", s.GetState)
	r.GET("/round", s.GetRound)
	r.GET("/history", s.GetHistory)
	r.POST("/words", s.SubmitWord)
	r.POST("/round/remove-last", s.RemoveLast)
	r.POST("/round/close", s.CloseRound)
	r.PUT("/policy", s.SetPolicy)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Info("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

type SubmitRequest struct {
	Word string `json:"word"`
}

type PolicyRequest struct {
	Policy string `json:"policy"`
}

func (s *Server) GetState(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, s.Game.Snapshot())
}

func (s *Server) GetRound(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"entries": s.Game.Round()})
}

func (s *Server) GetHistory(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"records": s.Game.History()})
}

func (s *Server) SubmitWord(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.Game.Submit(req.Word)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) RemoveLast(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Game.ResolveByRemoving(); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Game.Snapshot())
}

func (s *Server) CloseRound(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.Game.ResolveByClosing()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) SetPolicy(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	policy, err := model.ParsePolicy(req.Policy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Game.SetPolicy(policy); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Game.Snapshot())
}

func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		s.Logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
	}
}
