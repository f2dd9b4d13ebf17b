package handlers

import (
	"strconv"

	"skillswap-api/helper"
	"skillswap-api/models"
	"skillswap-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(h.Helper, c, err)
		return
	}

	profile, err := h.userService.UpdateProfile(currentUserID(c), req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile updated", profile)
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.Helper.SendBadRequest(c, "No avatar file provided", h.Helper.EmptyJsonMap())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, "Unable to read avatar file", h.Helper.EmptyJsonMap())
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.userService.UploadAvatar(c.Request.Context(), currentUserID(c), contentType, fileHeader.Size, file)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Avatar uploaded successfully", gin.H{"avatar_url": url})
}

func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	if err := h.userService.DeleteAvatar(c.Request.Context(), currentUserID(c)); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Avatar deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(currentUserID(c), c.Query("search"))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.GetUser(uint(id))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}
