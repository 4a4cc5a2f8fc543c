package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice_control_system/internal/logger"
	"voice_control_system/internal/service"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services   *service.Service
	log        *logger.Logger
	uploadsDir string
}

// NewHandler constructs a new HTTP handler with dependencies.
// uploadsDir is where profile images land; served back under
// /uploads/images.
func NewHandler(services *service.Service, log *logger.Logger, uploadsDir string) *Handler {
	return &Handler{services: services, log: log, uploadsDir: uploadsDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	// Auth
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Profiles
	router.GET("/users/:adminId", h.listProfiles)
	router.POST("/add-profile/:adminId", h.addProfile)
	router.PUT("/edit-profile/:userId", h.editProfile)
	router.GET("/user-details/:userId", h.userDetails)

	// Voice pipeline + history
	router.POST("/transcribe/:userId", h.transcribe)
	router.GET("/conversation-logs/:userId", h.conversationLogs)

	// Virtual home
	router.GET("/home-state/:userId", h.homeState)
	router.PUT("/home-state/:userId/:room", h.setRoomLevel)
	router.GET("/ws/:userId", h.wsHome)

	// Profile images uploaded via add/edit-profile
	router.Static("/uploads/images", filepath.Join(h.uploadsDir, "images"))

	// Bearer-protected account details
	account := router.Group("/account", h.adminAuthMiddleware)
	{
		account.GET("", h.account)
	}

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
