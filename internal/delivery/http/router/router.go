// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"carhub/config"
	"carhub/internal/delivery/http/middleware"
	"carhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CarHandler     *handler.CarHandler
	ImageHandler   *handler.ImageHandler `optional:"true"`
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	carHandler     *handler.CarHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		carHandler:     params.CarHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Locally hosted images are public, like a CDN URL would be.
	if prefix, ok := r.imageRoutePrefix(); ok && r.imageHandler != nil {
		e.GET(prefix+"/*", r.imageHandler.ServeImage)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	userGroup := apiV1.Group("/user")
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}

	carsGroup := apiV1.Group("/cars")
	{
		carsGroup.POST("", r.carHandler.CreateCar)
		carsGroup.GET("", r.carHandler.ListMyCars)
		carsGroup.GET("/search/:query", r.carHandler.SearchCars)
		carsGroup.POST("/images", r.carHandler.UploadImages)
		carsGroup.DELETE("/images", r.carHandler.DeleteImage)
		carsGroup.GET("/:id", r.carHandler.GetCar)
		carsGroup.PUT("/:id", r.carHandler.UpdateCar)
		carsGroup.DELETE("/:id", r.carHandler.DeleteCar)
	}
}

// imageRoutePrefix returns the path images are served under when the public
// base URL is relative to this server.
func (r *router) imageRoutePrefix() (string, bool) {
	if r.config == nil || r.config.ImageStore == nil {
		return "", false
	}

	base := strings.TrimRight(r.config.ImageStore.PublicBaseURL, "/")
	if !strings.HasPrefix(base, "/") || strings.HasPrefix(base, "//") {
		return "", false
	}

	return base, true
}
