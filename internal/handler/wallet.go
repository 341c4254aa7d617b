package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const defaultFlagWindow = 7 * 24 * time.Hour

func (h *Handler) GetBalance(c *ginext.Context) {
	accountType := domain.AccountType(c.Param("type"))
	switch accountType {
	case domain.AccountOwner, domain.AccountPlayer, domain.AccountPlatform:
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "account type must be owner, player or platform"})
		return
	}

	balance, err := h.ledgerService.Balance(c.Request.Context(), accountType, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

func (h *Handler) GetRevenue(c *ginext.Context) {
	summary, err := h.ledgerService.Revenue(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueResponse(summary))
}

// ListReconciliationFlags returns payments parked for manual review, newest first.
// "since" is RFC3339 and defaults to the last seven days.
func (h *Handler) ListReconciliationFlags(c *ginext.Context) {
	since := time.Now().UTC().Add(-defaultFlagWindow)
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid since format, expected RFC3339"})
			return
		}
		since = parsed
	}

	flags, err := h.settlementService.ListFlags(c.Request.Context(), since)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReconciliationFlagResponse, 0, len(flags))
	for _, f := range flags {
		resp = append(resp, dto.ToReconciliationFlagResponse(f))
	}

	c.JSON(http.StatusOK, resp)
}
