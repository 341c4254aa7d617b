package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/PitchBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SendCode(c *ginext.Context) {
	var req dto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	expiresAt, err := h.verificationService.Send(c.Request.Context(), req.UserID, req.Purpose)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ginext.H{"status": "sent", "expires_at": expiresAt.Format(time.RFC3339)})
}

func (h *Handler) CheckCode(c *ginext.Context) {
	var req dto.CheckCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.verificationService.Check(c.Request.Context(), req.UserID, req.Purpose, req.Code); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "verified"})
}
