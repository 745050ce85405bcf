// Package server exposes the coverage engine over HTTP for external
// renderers and dashboards.
package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"rf-heatmap.klederson.com/internal/coverage"
	"rf-heatmap.klederson.com/internal/export"
	"rf-heatmap.klederson.com/internal/store"
)

// Server wires the coverage engine and optional run history store into a
// gin router.
type Server struct {
	engine   *coverage.Engine
	runs     *store.RunStore // nil disables the /runs endpoint
	defaults coverage.Params
	log      *logrus.Logger
}

// New creates a server. runs may be nil when no history database is
// configured.
func New(engine *coverage.Engine, runs *store.RunStore, defaults coverage.Params, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{engine: engine, runs: runs, defaults: defaults, log: log}
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/emitters", s.handleEmitters)
		api.GET("/coverage", s.handleCoverage)
		api.GET("/coverage/stats", s.handleStats)
		api.GET("/coverage/heatmap", s.handleHeatmap)
		api.GET("/runs", s.handleRuns)
	}

	return r
}

// paramsFromQuery applies query-string overrides to the server defaults.
func (s *Server) paramsFromQuery(c *gin.Context) (coverage.Params, error) {
	p := s.defaults

	if v := c.Query("max_range"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.New("max_range must be a number")
		}
		p.MaxRange = f
	}
	if v := c.Query("min_range"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.New("min_range must be a number")
		}
		p.MinRange = f
	}
	if v := c.Query("points"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, errors.New("points must be an integer")
		}
		p.PointsPerEmitter = n
	}
	if v := c.Query("point_size"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.New("point_size must be a number")
		}
		p.PointSize = f
	}

	return p, nil
}

// run parses params, executes the engine and maps failures to HTTP codes.
// Invalid parameters are the caller's fault (400); anything else is a
// scene/backend failure (500). A nil result means the response was already
// written.
func (s *Server) run(c *gin.Context) *coverage.Result {
	params, err := s.paramsFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}

	res, err := s.engine.Run(params)
	if err != nil {
		if errors.Is(err, coverage.ErrInvalidParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil
		}
		s.log.WithError(err).Error("coverage run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "coverage run failed"})
		return nil
	}

	if s.runs != nil {
		if _, err := s.runs.Record(res); err != nil {
			// History is best-effort; the coverage response still stands.
			s.log.WithError(err).Warn("failed to record run")
		}
	}
	return res
}

func (s *Server) handleEmitters(c *gin.Context) {
	emitters, err := s.engine.Emitters()
	if err != nil {
		s.log.WithError(err).Error("emitter discovery failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "emitter discovery failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"emitters": emitters, "count": len(emitters)})
}

func (s *Server) handleCoverage(c *gin.Context) {
	res := s.run(c)
	if res == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stream": export.Stream(res),
		"stats":  res.Stats,
	})
}

func (s *Server) handleStats(c *gin.Context) {
	res := s.run(c)
	if res == nil {
		return
	}
	c.JSON(http.StatusOK, res.Stats)
}

func (s *Server) handleHeatmap(c *gin.Context) {
	res := s.run(c)
	if res == nil {
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := export.WriteHTML(c.Writer, res); err != nil {
		s.log.WithError(err).Error("failed to render heatmap")
	}
}

func (s *Server) handleRuns(c *gin.Context) {
	if s.runs == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run history is not configured"})
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	records, err := s.runs.Recent(limit)
	if err != nil {
		s.log.WithError(err).Error("failed to load run history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load run history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": records, "count": len(records)})
}
