package server

import (
	"errors"
	"fmt"
	"strings"

	"etf-matcher-loader/src/helpers"
	"etf-matcher-loader/src/interfaces"
	"etf-matcher-loader/src/logger"
	"etf-matcher-loader/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// APIServer
// -----------------------------------------------------------------------------

// APIServer exposes the resolver and fetcher over HTTP. Handlers are plain
// pass-throughs: every request re-fetches the remote manifest or resource,
// matching the no-cache semantics of the underlying layer.
type APIServer struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	Resolver interfaces.IConfigResolver
	Fetcher  interfaces.IResourceFetcher
	engine   *gin.Engine
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewAPIServer(cfg *models.MConfig, log *logger.Logger, res interfaces.IConfigResolver, fet interfaces.IResourceFetcher) *APIServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &APIServer{
		Config:   cfg,
		Logger:   log,
		Resolver: res,
		Fetcher:  fet,
		engine:   gin.Default(),
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *APIServer) setupRoutes() {
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/configs", s.getConfigs)
	s.engine.GET("/api/configs/:key", s.getConfigByKey)
	s.engine.GET("/api/symbol-map", s.getSymbolMap)
	s.engine.GET("/api/resources/*name", s.getResource)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *APIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)
	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *APIServer) getHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":   "ok",
		"base_url": s.Config.Remote.BaseURL,
		"manifest": s.Config.Remote.ManifestFile,
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getConfigs(c *gin.Context) {
	configs, err := s.Resolver.GetAllConfigs()
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"keys":    configs.SortedKeys(),
		"configs": configs,
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getConfigByKey(c *gin.Context) {
	key := c.Param("key")

	config, err := s.Resolver.GetConfigByKeyRemote(key)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(200, config)
}

// -----------------------------------------------------------------------------

func (s *APIServer) getSymbolMap(c *gin.Context) {
	data, err := s.Fetcher.FetchSymbolMap()
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.Data(200, "application/octet-stream", data)
}

// -----------------------------------------------------------------------------

// getResource proxies a named data file. Names are filenames relative to the
// base URL; full URLs are a library-level feature and are not accepted here.
func (s *APIServer) getResource(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")
	if name == "" {
		c.JSON(400, gin.H{"error": "resource name is required"})
		return
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		c.JSON(400, gin.H{"error": "resource name must be a filename, not a URL"})
		return
	}

	data, err := s.Fetcher.FetchResource(name)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.Data(200, "application/octet-stream", data)
}

// -----------------------------------------------------------------------------
// Error Mapping
// -----------------------------------------------------------------------------

// writeError maps loader error kinds onto HTTP statuses: missing key is the
// client's problem (404), an unreachable upstream is a bad gateway (502), a
// malformed manifest is our 500.
func (s *APIServer) writeError(c *gin.Context, err error) {
	var notFound *helpers.NotFoundError
	var transport *helpers.TransportError
	var parse *helpers.ParseError

	switch {
	case errors.As(err, &notFound):
		c.JSON(404, gin.H{"error": notFound.Error(), "key": notFound.Key})
	case errors.As(err, &transport):
		s.Logger.Error("Upstream fetch failed: %v", err)
		c.JSON(502, gin.H{"error": transport.Error()})
	case errors.As(err, &parse):
		s.Logger.Error("Manifest parse failed: %v", err)
		c.JSON(500, gin.H{"error": parse.Error()})
	default:
		s.Logger.Error("Unexpected error: %v", err)
		c.JSON(500, gin.H{"error": err.Error()})
	}
}
