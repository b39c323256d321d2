package api

import (
	"errors"
	"net/http"

	reqdto "museum-booking/internal/handler/dto/request"
	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/handler/httperr"
	"museum-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Submit booking
// @Description Submit a chosen (day, time, quantity) tuple to the remote booking endpoint
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params := commands.SubmitBookingParams{
		ExhibitID: req.ExhibitID,
		DayIndex:  req.DayIndex,
		TimeLabel: req.TimeLabel,
		Quantity:  req.Quantity,
	}

	result, err := h.bookingCommands.SubmitBooking(c.Request.Context(), params)
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmitBookingResult(result))
}

func (h *BookingHandler) abortCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrExhibitNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Exhibit not found", nil)
	case errors.Is(err, commands.ErrDayOutOfRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Day index out of range", nil)
	case errors.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Selected time is not available", nil)
	case errors.Is(err, commands.ErrSelectionIncomplete):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Selection incomplete", nil)
	case errors.Is(err, commands.ErrGatewayUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking service unavailable, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
