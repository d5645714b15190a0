package routes

import (
	"github.com/gin-gonic/gin"

	"govportal/internal/handlers"
	"govportal/internal/middleware"
)

// SetupContentRoutes registers the uniform per-entity surface:
// create/update/delete behind auth, getAll and getActive public.
// The route noun and the getActive variant come from the descriptor, so
// every entity in the registry is wired by the same few lines.
func SetupContentRoutes(r *gin.RouterGroup, handler *handlers.ContentHandler, jwtSecret string) {
	desc := handler.Descriptor()

	group := r.Group("/" + desc.Name)

	admin := group.Group("")
	admin.Use(middleware.AuthRequired(jwtSecret))
	{
		admin.POST("/create", handler.Create)
		admin.PUT("/update/:id", handler.Update)
		admin.DELETE("/delete/:id", handler.Delete)
	}

	group.GET("/getAll/:lang", handler.GetAllLocalized)
	group.GET("/getAll", handler.GetAllRaw)

	if desc.HasActiveFlag {
		group.GET("/getActive/:lang", handler.GetActive)
	}
}
