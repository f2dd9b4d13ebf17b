package handlers

import (
	"encoding/csv"
	"strconv"

	"skillswap-api/helper"
	"skillswap-api/models"
	"skillswap-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminHandler struct {
	adminService services.AdminService
	Helper       *helper.HTTPHelper
}

func NewAdminHandler(adminService services.AdminService, h *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{adminService: adminService, Helper: h}
}

func (h *AdminHandler) ListUserSkills(c *gin.Context) {
	rows, err := h.adminService.ListUserSkills()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", rows)
}

func (h *AdminHandler) ApproveSkill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user skill ID", h.Helper.EmptyJsonMap())
		return
	}

	userSkill, err := h.adminService.ApproveSkill(uint(id))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Skill approved", gin.H{"success": true, "id": userSkill.ID})
}

func (h *AdminHandler) RejectSkill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user skill ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RejectSkillRequest
	// Body is optional; a missing reason falls back to the default.
	_ = c.ShouldBindJSON(&req)

	userSkill, err := h.adminService.RejectSkill(uint(id), req.RejectionReason)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Skill rejected", gin.H{"success": true, "id": userSkill.ID})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	rows, err := h.adminService.ListUsers()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", rows)
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	h.setBanned(c, true)
}

func (h *AdminHandler) UnbanUser(c *gin.Context) {
	h.setBanned(c, false)
}

func (h *AdminHandler) setBanned(c *gin.Context, banned bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.adminService.SetBanned(uint(id), banned)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "User updated", gin.H{"success": true, "id": user.ID})
}

func (h *AdminHandler) ListSwaps(c *gin.Context) {
	swaps, err := h.adminService.ListSwaps()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", swaps)
}

func (h *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := h.adminService.ListMessages()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", messages)
}

// ListPublicMessages serves the user-facing broadcast feed: active and
// unexpired only.
func (h *AdminHandler) ListPublicMessages(c *gin.Context) {
	messages, err := h.adminService.PublicMessages()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", messages)
}

func (h *AdminHandler) CreateMessage(c *gin.Context) {
	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(h.Helper, c, err)
		return
	}

	message, err := h.adminService.CreateMessage(req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Message created", message)
}

func (h *AdminHandler) UpdateMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid message ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(h.Helper, c, err)
		return
	}

	message, err := h.adminService.UpdateMessage(uint(id), req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Message updated", message)
}

func (h *AdminHandler) ExportUsersCSV(c *gin.Context) {
	rows, err := h.adminService.UsersCSV()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}
	h.writeCSV(c, "users.csv", rows)
}

func (h *AdminHandler) ExportSwapsCSV(c *gin.Context) {
	rows, err := h.adminService.SwapsCSV()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}
	h.writeCSV(c, "swaps.csv", rows)
}

func (h *AdminHandler) ExportRatingsCSV(c *gin.Context) {
	rows, err := h.adminService.RatingsCSV()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}
	h.writeCSV(c, "ratings.csv", rows)
}

func (h *AdminHandler) writeCSV(c *gin.Context, filename string, rows [][]string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(c.Writer)
	if err := writer.WriteAll(rows); err != nil {
		log.Error().Err(err).Str("file", filename).Msg("csv export write failed")
	}
}
