//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	dombooking "shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/datetime"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	ownerID  int64 = 1
	bookerID int64 = 2
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/bookings", middleware.RequireSharerID())
	g.POST("", s.handler.Create)
	g.GET("", s.handler.ListByBooker)
	g.GET("/owner", s.handler.ListByOwner)
	g.GET("/:id", s.handler.Get)
	g.PATCH("/:id", s.handler.Decide)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	expectedResult := &commands.CreateBookingResult{BookingID: returnView.ID}

	validation := []testCaseBooking{
		{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "itemId must be positive", mutate: testutil.Field("itemId", 0), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "missing field: start (required)", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "missing field: end (required)", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		{name: "unparseable start", mutate: testutil.Field("start", "tomorrow"), expectCode: http.StatusBadRequest, expectInBody: "Invalid booking dates"},
		{name: "end equal to start", mutate: testutil.Field("end", reqBody.Start), expectCode: http.StatusBadRequest, expectInBody: "Invalid booking dates"},
		{name: "end before start", mutate: testutil.Field("end", "2030-01-09T12:00:00"), expectCode: http.StatusBadRequest, expectInBody: "Invalid booking dates"},
	}

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), bookerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req commands.CreateBookingRequest) (*commands.CreateBookingResult, error) {
				s.Equal(b.ItemID, req.ItemID)
				s.True(req.Start.Equal(b.Start))
				s.True(req.End.Equal(b.End))
				return expectedResult, nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), bookerID, returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bookerID)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("WAITING", body.Status)
		s.Equal(datetime.Format(b.Start), body.Start)
		s.Equal(datetime.Format(b.End), body.End)
		s.Equal(b.ItemID, body.Item.ID)
		s.Equal(bookerID, body.Booker.ID)
	})

	s.Run("success: RFC 3339 dates are accepted", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), bookerID, gomock.Any()).Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), bookerID, returnView.ID).Return(returnView, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("start", "2030-01-11T10:00:00Z"),
			testutil.Field("end", "2030-01-12T10:00:00Z"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bookerID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bookerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 400 Bad Request without the sharer header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, httptest.NoSharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing request header")
	})

	s.Run("error: 400 Bad Request with a malformed sharer header", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{middleware.SharerUserIDHeader: "abc"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request header")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown item", commandsError: errs.ErrItemNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Item not found"},
			{name: "unknown booker", commandsError: errs.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "User not found"},
			{name: "owner books own item", commandsError: dombooking.ErrOwnerCannotBook, expectedStatus: http.StatusNotFound, expectedMsg: "Item not found"},
			{name: "item unavailable", commandsError: dombooking.ErrItemNotAvailable, expectedStatus: http.StatusBadRequest, expectedMsg: "Item not available"},
			{name: "start in the past", commandsError: dombooking.ErrStartInPast, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid booking dates"},
			{name: "wrapped store failure", commandsError: errs.Wrap(errors.New("connection reset"), "create booking"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), bookerID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bookerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "connection reset")
			})
		}
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	approved := builder.NewBookingBuilder().WithStatus(dombooking.StatusApproved).BuildView()
	rejected := builder.NewBookingBuilder().WithStatus(dombooking.StatusRejected).BuildView()

	s.Run("success: approve", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), ownerID, int64(1), true).Return(nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), ownerID, int64(1)).Return(approved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1?approved=true", nil, ownerID)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body.Status)
	})

	s.Run("success: reject", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), ownerID, int64(1), false).Return(nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), ownerID, int64(1)).Return(rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1?approved=false", nil, ownerID)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("REJECTED", body.Status)
	})

	s.Run("error: 400 Bad Request on a bad approved flag", func() {
		for _, path := range []string{"/bookings/1", "/bookings/1?approved=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, nil, ownerID)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 400 Bad Request on a bad id", func() {
		for _, path := range []string{"/bookings/abc?approved=true", "/bookings/0?approved=true"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, nil, ownerID)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "already decided", commandsError: dombooking.ErrWrongStatus, expectedStatus: http.StatusBadRequest, expectedMsg: "Wrong booking status"},
			{name: "caller does not own the item", commandsError: errs.ErrNotItemOwner, expectedStatus: http.StatusNotFound, expectedMsg: "Item not found"},
			{name: "unknown booking", commandsError: errs.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), ownerID, int64(1), true).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1?approved=true", nil, ownerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: participant sees the booking", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), bookerID, int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/1", nil, bookerID)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Booker.Email, body.Booker.Email)
		s.Equal(view.Item.Name, body.Item.Name)
	})

	s.Run("error: 404 Not Found for other users", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), int64(3), int64(1)).Return(nil, errs.ErrNotBookingParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/1", nil, 3)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success: defaults to ALL and the first page", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), bookerID, dombooking.RoleBooker, dombooking.StateAll, queries.DefaultPage()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, bookerID)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: owner listing with state and paging", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), ownerID, dombooking.RoleOwner, dombooking.StateWaiting, queries.Page{From: 4, Size: 2}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=waiting&from=4&size=2", nil, ownerID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on an unknown state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", nil, bookerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")
	})

	s.Run("error: 400 Bad Request on bad paging", func() {
		for _, q := range []string{"from=-1", "size=0", "size=abc", "from=2147483648", "size=2147483648", "from=4294967296&size=1"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?"+q, nil, bookerID)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 404 Not Found when nothing matches", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), bookerID, dombooking.RoleBooker, dombooking.StateAll, gomock.Any()).
			Return(nil, errs.ErrNoBookings).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, bookerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Bookings not found")
	})
}
