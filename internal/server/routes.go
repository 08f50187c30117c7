package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.GET("/api/health", s.healthHandler)

	var authGroup = e.Group("/api/v1/auth")
	authGroup.POST("/register", s.RegisterCustomer)
	authGroup.POST("/login", s.Login)

	var trackGroup = e.Group("/api/v1/tracks")
	trackGroup.GET("", s.ListTracks)
	trackGroup.POST("", s.CreateTrack, s.AuthMiddleware)
	trackGroup.GET("/:id", s.GetTrackByID)
	trackGroup.PUT("/:id", s.UpdateTrack, s.AuthMiddleware)
	trackGroup.DELETE("/:id", s.DeleteTrack, s.AuthMiddleware)
	trackGroup.POST("/upload", s.UploadFile, s.AuthMiddleware)

	var adminGroup = e.Group("/api/v1/admin")
	adminGroup.POST("/reconcile", s.ReconcileStorage, s.AuthMiddleware)
	adminGroup.GET("/customers", s.ListCustomers, s.AuthMiddleware)

	return e
}
