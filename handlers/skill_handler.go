package handlers

import (
	"strconv"

	"skillswap-api/helper"
	"skillswap-api/models"
	"skillswap-api/services"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillService services.SkillService
	Helper       *helper.HTTPHelper
}

func NewSkillHandler(skillService services.SkillService, h *helper.HTTPHelper) *SkillHandler {
	return &SkillHandler{skillService: skillService, Helper: h}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.ListSkills()
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", skills)
}

func (h *SkillHandler) CreateUserSkill(c *gin.Context) {
	var req models.CreateUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(h.Helper, c, err)
		return
	}

	userSkill, err := h.skillService.AddUserSkill(currentUserID(c), req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Skill submitted for review", userSkill)
}

func (h *SkillHandler) ListUserSkills(c *gin.Context) {
	userSkills, err := h.skillService.ListUserSkills(currentUserID(c), currentUserIsAdmin(c))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", userSkills)
}

func (h *SkillHandler) ListUserSkillsByType(c *gin.Context) {
	skillType := models.SkillType(c.Param("skill_type"))
	if skillType != models.SkillOffered && skillType != models.SkillWanted {
		h.Helper.SendBadRequest(c, "Invalid skill type", h.Helper.EmptyJsonMap())
		return
	}

	userSkills, err := h.skillService.ListUserSkillsByType(currentUserID(c), currentUserIsAdmin(c), skillType)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", userSkills)
}

func (h *SkillHandler) DeleteUserSkill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user skill ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.skillService.DeleteUserSkill(currentUserID(c), uint(id)); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Skill removed", h.Helper.EmptyJsonMap())
}
