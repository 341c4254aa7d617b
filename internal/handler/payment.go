package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/gateway"
	"github.com/stpnv0/PitchBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	maxWebhookBytes     = 1 << 20
	paymentNotAppliable = "payment could not be applied to this booking, please contact support"
)

func (h *Handler) VerifyPayment(c *ginext.Context) {
	ref := c.Param("ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "payment reference is required"})
		return
	}

	res, err := h.settlementService.VerifyPayment(c.Request.Context(), ref)
	if err != nil {
		// Детали расхождения остаются в логах и флагах сверки
		if errors.Is(err, domain.ErrAmountMismatch) ||
			errors.Is(err, domain.ErrBookingExpired) ||
			errors.Is(err, domain.ErrBookingNotPending) {
			c.Set("error", err.Error())
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: paymentNotAppliable})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVerifyResponse(res))
}

// PaymentWebhook answers 200 for everything the gateway should not redeliver, 401 for a bad
// signature and 500 when a retry may succeed.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable body"})
		return
	}

	err = h.settlementService.HandleWebhook(c.Request.Context(), payload, c.GetHeader(gateway.SignatureHeader))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}
