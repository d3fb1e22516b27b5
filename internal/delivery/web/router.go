package web

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// NewRouter wires handlers and middleware into an Echo instance.
func NewRouter(h *Handler, auth *AuthMiddleware, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	api := e.Group("/api")

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.POST("/reset_password", h.RequestPasswordReset)
	api.POST("/reset_password/:token", h.ResetPassword)
	api.GET("/users/:username", h.Profile)

	authed := api.Group("", auth.RequireUser)
	authed.GET("/me", h.CurrentUser)
	authed.PUT("/me", h.UpdateProfile)
	authed.GET("/feed", h.Feed)
	authed.POST("/posts", h.CreatePost)
	authed.POST("/users/:username/follow", h.Follow)
	authed.DELETE("/users/:username/follow", h.Unfollow)

	return e
}
