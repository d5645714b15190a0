package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"govportal/internal/services"
	"govportal/internal/utils"
	"govportal/pkg/logger"
)

type AuthHandler struct {
	service services.AuthService
	log     *logger.Logger
}

func NewAuthHandler(service services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var request services.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			utils.BadRequestResponse(c, utils.ErrMsgUserExists)
			return
		}
		h.log.WithError(err).Error("user registration failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "user created", "user", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	response, err := h.service.Login(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.BadRequestResponse(c, utils.ErrMsgInvalidCredentials)
			return
		}
		h.log.WithError(err).Error("login failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "login successful", "data", response)
}
