package handlers

import (
	"net/http"

	"article_board/internal/logger"
	"article_board/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services    *service.Service
	log         *logger.Logger
	corsOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, corsOrigins []string) *Handler {
	return &Handler{services: services, log: log, corsOrigins: corsOrigins}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger)
	router.Use(corsMiddleware(h.corsOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Root and health endpoints
	router.GET("/", h.root)
	router.GET("/health", h.health)

	// Public resources
	router.GET("/users", h.listUsers)
	router.GET("/articles", h.listArticles)

	// Live article feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	h.registerAuthRoutes(router)

	// Authenticated resources
	router.POST("/articles", h.authRequired, h.createArticle)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

// @Summary      Root greeting
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello world!"})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
