package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"govportal/internal/services"
	"govportal/internal/utils"
	"govportal/pkg/logger"
)

type PageHandler struct {
	service services.PageService
	log     *logger.Logger
}

func NewPageHandler(service services.PageService, log *logger.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		log:     log.WithEntity("page"),
	}
}

func (h *PageHandler) Create(c *gin.Context) {
	var request services.PageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	page, err := h.service.Create(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "page created", "page", page)
}

func (h *PageHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid id")
		return
	}

	var request services.PageUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	page, err := h.service.Update(c.Request.Context(), id, &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "page updated", "page", page)
}

func (h *PageHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid id")
		return
	}

	err = h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "page deleted", "", nil)
}

// GetMenu serves the public two-level navigation tree.
func (h *PageHandler) GetMenu(c *gin.Context) {
	menu, err := h.service.Menu(c.Request.Context(), c.Param("lang"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(menu) == 0 {
		utils.EmptyListResponse(c, "no pages found", "pages")
		return
	}

	utils.SuccessResponse(c, "menu retrieved", "pages", menu)
}

func (h *PageHandler) GetMain(c *gin.Context) {
	pages, err := h.service.MainPages(c.Request.Context(), c.Param("lang"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(pages) == 0 {
		utils.EmptyListResponse(c, "no pages found", "pages")
		return
	}

	utils.SuccessResponse(c, "main pages retrieved", "pages", pages)
}

func (h *PageHandler) GetAdditional(c *gin.Context) {
	pages, err := h.service.AdditionalPages(c.Request.Context(), c.Param("lang"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(pages) == 0 {
		utils.EmptyListResponse(c, "no pages found", "pages")
		return
	}

	utils.SuccessResponse(c, "additional pages retrieved", "pages", pages)
}

func (h *PageHandler) GetOne(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid id")
		return
	}

	page, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "page retrieved", "page", page)
}

func (h *PageHandler) GetAll(c *gin.Context) {
	pages, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(pages) == 0 {
		utils.EmptyListResponse(c, "no pages found", "pages")
		return
	}

	utils.SuccessResponse(c, "pages retrieved", "pages", pages)
}

// GetMainLeaf lists top-level pages not referenced as any page's parent,
// i.e. the leaf pages editable in the main-navigation admin view.
func (h *PageHandler) GetMainLeaf(c *gin.Context) {
	pages, err := h.service.MainLeafPages(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(pages) == 0 {
		utils.EmptyListResponse(c, "no pages found", "pages")
		return
	}

	utils.SuccessResponse(c, "pages retrieved", "pages", pages)
}

// GetChildLeaf lists child pages that are not themselves used as a parent.
func (h *PageHandler) GetChildLeaf(c *gin.Context) {
	pages, err := h.service.ChildLeafPages(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(pages) == 0 {
		utils.EmptyListResponse(c, "no pages found", "pages")
		return
	}

	utils.SuccessResponse(c, "pages retrieved", "pages", pages)
}

func (h *PageHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "page")
	case services.IsValidation(err):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrDuplicate):
		utils.BadRequestResponse(c, "slug already exists")
	default:
		h.log.WithError(err).Error("page operation failed")
		utils.InternalServerErrorResponse(c)
	}
}
