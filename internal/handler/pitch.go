package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreatePitch(c *ginext.Context) {
	var req dto.CreatePitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreatePitchInput{
		OwnerID:      req.OwnerID,
		Name:         req.Name,
		Location:     req.Location,
		HourlyPrice:  req.HourlyPrice,
		SlotInterval: req.SlotIntervalMinutes,
		OpensAt:      req.OpensAt,
		ClosesAt:     req.ClosesAt,
	}
	if input.SlotInterval == 0 {
		input.SlotInterval = 60
	}

	pitch, err := h.pitchService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPitchResponse(pitch))
}

func (h *Handler) GetPitch(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pitch id"})
		return
	}

	pitch, err := h.pitchService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPitchResponse(pitch))
}

func (h *Handler) ListPitches(c *ginext.Context) {
	pitches, err := h.pitchService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PitchResponse, 0, len(pitches))
	for _, p := range pitches {
		resp = append(resp, dto.ToPitchResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdatePitchStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pitch id"})
		return
	}

	var req dto.UpdatePitchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.pitchService.SetStatus(c.Request.Context(), id, req.OwnerID, domain.PitchStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pitch id"})
		return
	}

	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	availability, err := h.availabilityService.ListAvailable(c.Request.Context(), id, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}
