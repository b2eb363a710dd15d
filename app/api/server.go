package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP server with all routes configured
func NewServer(handler *Handler, debug bool) *gin.Engine {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// Feed readers and browser extensions fetch cross-origin
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	// Feed endpoints; f and n query parameters override the configured mix
	r.GET("/atom", handler.GetAtom)
	r.GET("/rss", handler.GetRSS)
	r.GET("/json", handler.GetJSON)

	r.GET("/health", handler.GetHealth)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "FeedMixer",
			"description": "Combines entries from multiple feeds into a single Atom, RSS or JSON feed",
			"endpoints": map[string]string{
				"atom":   "/atom?f=<url>&f=<url>&n=<num_keep>",
				"rss":    "/rss?f=<url>&f=<url>&n=<num_keep>",
				"json":   "/json?f=<url>&f=<url>&n=<num_keep>",
				"health": "/health",
			},
		})
	})

	// Return 204 to avoid 404s from browsers
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
