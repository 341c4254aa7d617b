package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stpnv0/PitchBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Reserve holds the slots and opens a charge right away. A failed charge does not undo the
// hold: the booking is returned with an empty payment_link and can be checked out again.
func (h *Handler) Reserve(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slots := make([]domain.SlotTime, 0, len(req.Slots))
	for _, s := range req.Slots {
		slot, err := domain.ParseSlotTime(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		slots = append(slots, slot)
	}

	booking, err := h.bookingService.Reserve(c.Request.Context(), domain.ReserveInput{
		PitchID:  req.PitchID,
		PlayerID: req.UserID,
		Date:     date,
		Slots:    slots,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if checkedOut, err := h.bookingService.Checkout(c.Request.Context(), booking.ID); err != nil {
		c.Set("error", err.Error())
	} else {
		booking = checkedOut
	}

	c.JSON(http.StatusCreated, dto.ToReserveResponse(booking))
}

func (h *Handler) Checkout(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Checkout(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReserveResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), bookingID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RefundBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.settlementService.Refund(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBookingLedger(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if _, err := h.bookingService.GetByID(c.Request.Context(), bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	entries, err := h.ledgerService.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToLedgerEntryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}
