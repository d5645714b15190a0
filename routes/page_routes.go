package routes

import (
	"github.com/gin-gonic/gin"

	"govportal/internal/handlers"
	"govportal/internal/middleware"
)

// SetupPageRoutes wires the navigation-page surface. Beyond the uniform
// CRUD verbs, pages expose the public menu plus the derived-role admin
// views that separate grouping containers from leaf pages.
func SetupPageRoutes(r *gin.RouterGroup, handler *handlers.PageHandler, jwtSecret string) {
	pages := r.Group("/page")

	admin := pages.Group("")
	admin.Use(middleware.AuthRequired(jwtSecret))
	{
		admin.POST("/create", handler.Create)
		admin.PUT("/update/:id", handler.Update)
		admin.DELETE("/delete/:id", handler.Delete)
	}

	pages.GET("/getAll", handler.GetAll)
	pages.GET("/getMenu/:lang", handler.GetMenu)
	pages.GET("/getMain/:lang", handler.GetMain)
	pages.GET("/getAdditional/:lang", handler.GetAdditional)
	pages.GET("/getMainOne/:id", handler.GetOne)

	// Legacy admin views: top-level pages that are not containers, and
	// child pages that are not themselves parents.
	pages.GET("/MainCon", handler.GetMainLeaf)
	pages.GET("/AdditCon", handler.GetChildLeaf)
}
