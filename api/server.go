package api

import (
	"net/http"

	"notesbot/config"
	"notesbot/extraction"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(extractor *extraction.Extractor) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())
	r.Use(corsMiddleware)
	r.Use(limitRequestBody)

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterExtractionRoutes(r, extractor)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Endpoint not found"})
	})

	return r
}

// corsMiddleware allows cross-origin access from browser clients.
func corsMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// limitRequestBody caps request bodies before any handler reads them.
func limitRequestBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxRequestBodyBytes)
	c.Next()
}
