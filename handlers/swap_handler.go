package handlers

import (
	"strconv"

	"skillswap-api/helper"
	"skillswap-api/models"
	"skillswap-api/services"

	"github.com/gin-gonic/gin"
)

type SwapHandler struct {
	swapService services.SwapService
	Helper      *helper.HTTPHelper
}

func NewSwapHandler(swapService services.SwapService, h *helper.HTTPHelper) *SwapHandler {
	return &SwapHandler{swapService: swapService, Helper: h}
}

func (h *SwapHandler) CreateRequest(c *gin.Context) {
	var req models.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(h.Helper, c, err)
		return
	}

	request, err := h.swapService.CreateRequest(currentUserID(c), req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Swap request sent", request)
}

func (h *SwapHandler) ListRequests(c *gin.Context) {
	requests, err := h.swapService.ListRequests(currentUserID(c), models.SwapStatus(c.Query("status")))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", requests)
}

func (h *SwapHandler) ListReceived(c *gin.Context) {
	requests, err := h.swapService.ListReceived(currentUserID(c), models.SwapStatus(c.Query("status")))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", requests)
}

func (h *SwapHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid request ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateSwapStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(h.Helper, c, err)
		return
	}

	request, err := h.swapService.UpdateStatus(currentUserID(c), uint(id), req.Status)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Request updated", request)
}

func (h *SwapHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(h.Helper, c, err)
		return
	}

	session, err := h.swapService.CreateSession(currentUserID(c), req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Session scheduled", session)
}

func (h *SwapHandler) ListSessions(c *gin.Context) {
	sessions, err := h.swapService.ListSessions(currentUserID(c))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", sessions)
}

func (h *SwapHandler) RateSession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid session ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(h.Helper, c, err)
		return
	}

	rating, err := h.swapService.RateSession(currentUserID(c), uint(id), req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Rating recorded", rating)
}
