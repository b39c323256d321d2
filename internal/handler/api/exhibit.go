package api

import (
	"errors"
	"net/http"

	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/handler/httperr"
	"museum-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExhibitHandler struct {
	exhibitQueries queries.ExhibitQueries
}

func NewExhibitHandler(exhibitQueries queries.ExhibitQueries) *ExhibitHandler {
	return &ExhibitHandler{
		exhibitQueries: exhibitQueries,
	}
}

// @Summary List exhibits
// @Description List all bookable exhibits in the catalog
// @Tags exhibits
// @Produce json
// @Success 200 {array} resdto.ExhibitResponse
// @Router /exhibits [get]
func (h *ExhibitHandler) List(c *gin.Context) {
	views, err := h.exhibitQueries.ListExhibits(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ExhibitResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromExhibitView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get exhibit
// @Description Get one exhibit by ID
// @Tags exhibits
// @Produce json
// @Param id path string true "Exhibit ID"
// @Success 200 {object} resdto.ExhibitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exhibits/{id} [get]
func (h *ExhibitHandler) Get(c *gin.Context) {
	id, ok := h.exhibitID(c)
	if !ok {
		return
	}

	view, err := h.exhibitQueries.GetExhibit(c.Request.Context(), id)
	if err != nil {
		h.abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExhibitView(view))
}

// @Summary Get exhibit slots
// @Description Get the 7-day grid of reservable windows for an exhibit
// @Tags exhibits
// @Produce json
// @Param id path string true "Exhibit ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exhibits/{id}/slots [get]
func (h *ExhibitHandler) GetSlots(c *gin.Context) {
	id, ok := h.exhibitID(c)
	if !ok {
		return
	}

	view, err := h.exhibitQueries.GetExhibitSlots(c.Request.Context(), id)
	if err != nil {
		h.abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Quote booking fee
// @Description Derive the total fee for a visitor quantity. Invalid quantities clamp to 1.
// @Tags exhibits
// @Produce json
// @Param id path string true "Exhibit ID"
// @Param quantity query string false "Visitor quantity (default 1)"
// @Success 200 {object} resdto.FeeQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exhibits/{id}/quote [get]
func (h *ExhibitHandler) QuoteFee(c *gin.Context) {
	id, ok := h.exhibitID(c)
	if !ok {
		return
	}

	rawQuantity := c.DefaultQuery("quantity", "1")
	view, err := h.exhibitQueries.QuoteFee(c.Request.Context(), id, rawQuantity)
	if err != nil {
		h.abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFeeQuoteView(view))
}

func (h *ExhibitHandler) exhibitID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid exhibit ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ExhibitHandler) abortQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrExhibitNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Exhibit not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
