//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"museum-booking/internal/handler/api"
	resdto "museum-booking/internal/handler/dto/response"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/commands"
	"museum-booking/tests/common/builder"
	"museum-booking/tests/common/httptest"
	"museum-booking/tests/common/testutil"
	commandsmock "museum-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/bookings", s.handler.Submit)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/bookings"

	exhibit := builder.NewExhibitBuilder()
	reqBody := exhibit.BuildSubmitRequestDTO(1, "10:30 AM", 2)

	s.Run("success: returns 200 with confirmed booking", func() {
		expected := &commands.SubmitBookingResult{
			Success:       true,
			Message:       "confirmed",
			ExhibitID:     exhibit.ID,
			SlotDate:      "6_6_2024",
			SlotTime:      "10:30 AM",
			Quantity:      2,
			TotalFeeCents: 10000,
		}
		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), commands.SubmitBookingParams{
			ExhibitID: exhibit.ID,
			DayIndex:  1,
			TimeLabel: "10:30 AM",
			Quantity:  2,
		}).Return(expected, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("6_6_2024", body.SlotDate)
		s.Equal("10:30 AM", body.SlotTime)
		s.Equal(int64(10000), body.TotalFeeCents)
	})

	s.Run("success: rejected booking still returns 200", func() {
		rejected := &commands.SubmitBookingResult{
			Success:   false,
			Message:   "slot already taken",
			ExhibitID: exhibit.ID,
			SlotDate:  "6_6_2024",
			SlotTime:  "10:30 AM",
			Quantity:  2,
		}
		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).Return(rejected, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal("slot already taken", body.Message)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: exhibit_id (required)", mutate: testutil.Field("exhibit_id", nil)},
			{name: "missing field: time_label (required)", mutate: testutil.Field("time_label", nil)},
			{name: "day_index below range", mutate: testutil.Field("day_index", -1)},
			{name: "malformed exhibit_id", mutate: testutil.Field("exhibit_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: day_index past the horizon is judged by the usecase, not binding", func() {
		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), commands.SubmitBookingParams{
			ExhibitID: exhibit.ID,
			DayIndex:  7,
			TimeLabel: "10:30 AM",
			Quantity:  2,
		}).Return(nil, errs.Mark(errors.New("bad index"), commands.ErrDayOutOfRange))

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("day_index", 7))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Day index out of range")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "exhibit not found",
				commandsError:  errs.Mark(errors.New("no rows"), commands.ErrExhibitNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Exhibit not found",
			},
			{
				name:           "day out of range",
				commandsError:  errs.Mark(errors.New("bad index"), commands.ErrDayOutOfRange),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Day index out of range",
			},
			{
				name:           "slot unavailable",
				commandsError:  errs.Mark(errors.New("reserved"), commands.ErrSlotUnavailable),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Selected time is not available",
			},
			{
				name:           "selection incomplete",
				commandsError:  errs.Mark(errors.New("no day"), commands.ErrSelectionIncomplete),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Selection incomplete",
			},
			{
				name:           "gateway unavailable",
				commandsError:  errs.Mark(errors.New("connection refused"), commands.ErrGatewayUnavailable),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Booking service unavailable",
			},
			{
				name:           "unexpected failure",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
