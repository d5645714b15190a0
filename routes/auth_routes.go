package routes

import (
	"github.com/gin-gonic/gin"

	"govportal/internal/handlers"
	"govportal/internal/middleware"
)

// SetupAuthRoutes wires the admin account surface. Login is public;
// creating accounts requires an existing admin session. The first account
// is seeded out of band.
func SetupAuthRoutes(r *gin.RouterGroup, handler *handlers.AuthHandler, jwtSecret string) {
	users := r.Group("/user")

	users.POST("/login", handler.Login)

	admin := users.Group("")
	admin.Use(middleware.AuthRequired(jwtSecret))
	{
		admin.POST("/create", handler.Register)
	}
}
