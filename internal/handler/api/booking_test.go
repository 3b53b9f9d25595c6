//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/handler/api"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/tests/common/httptest"
	"salon-scheduler/tests/common/testutil"
	commandsmock "salon-scheduler/tests/mock/commands"
	queriesmock "salon-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	clientID     uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.clientID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("client_id", s.clientID)
		c.Set("client_verified", true)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.POST("/bookings/multi", authMiddleware, s.handler.CreateMultiServiceBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) createRequestBody() map[string]any {
	return map[string]any{
		"salon_id":   uuid.New().String(),
		"service_id": uuid.New().String(),
		"staff_id":   uuid.New().String(),
		"start_time": "2026-09-01T10:00:00Z",
	}
}

func (s *BookingHandlerTestSuite) sampleResult() *commands.CreateBookingResult {
	start := time.Date(2026, 9, 1, 9, 50, 0, 0, time.UTC)
	return &commands.CreateBookingResult{
		BookingID:  uuid.New(),
		Status:     booking.StatusConfirmed,
		StaffID:    uuid.New(),
		Span:       booking.MustInterval(start, start.Add(55*time.Minute)),
		PriceCents: 5000,
	}
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("成功: 201 と作成結果を返す", func() {
		expected := s.sampleResult()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createRequestBody(), "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expected.BookingID, body.ID)
		s.Equal("CONFIRMED", body.Status)
		s.Equal(int64(5000), body.PriceCents)
		s.Nil(body.HoldExpiresAt)
	})

	s.Run("保留ホールドは holdExpiresAt 付きで返す", func() {
		expected := s.sampleResult()
		expected.Status = booking.StatusPending
		expiresAt := time.Date(2026, 9, 1, 9, 10, 0, 0, time.UTC)
		expected.HoldExpiresAt = &expiresAt

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createRequestBody(), "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("PENDING", body.Status)
		s.Require().NotNil(body.HoldExpiresAt)
		s.True(expiresAt.Equal(*body.HoldExpiresAt))
	})

	s.Run("未認証は 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createRequestBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("必須フィールド欠落は 400", func() {
		for _, field := range []string{"salon_id", "service_id", "start_time"} {
			s.Run("missing "+field, func() {
				body := testutil.DtoMap(s.T(), s.createRequestBody(), testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("ユースケースエラーの HTTP マッピング", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"invalid time range -> 400", errs.ErrInvalidTimeRange, http.StatusBadRequest},
			{"salon not found -> 404", errs.ErrSalonNotFound, http.StatusNotFound},
			{"staff mismatch -> 404", errs.ErrStaffSalonMismatch, http.StatusNotFound},
			{"service inactive -> 422", errs.ErrServiceInactive, http.StatusUnprocessableEntity},
			{"staff conflict -> 409", errs.ErrStaffConflict, http.StatusConflict},
			{"client conflict -> 409", errs.ErrClientConflict, http.StatusConflict},
			{"already booked -> 409", errs.ErrClientAlreadyBooked, http.StatusConflict},
			{"no staff available -> 409", errs.ErrNoStaffAvailable, http.StatusConflict},
			{"retries exhausted -> 503", errs.ErrConcurrencyExhausted, http.StatusServiceUnavailable},
			{"notification failed -> 502", errs.ErrNotificationFailed, http.StatusBadGateway},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createRequestBody(), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// CreateMultiServiceBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateMultiServiceBooking() {
	url := "/bookings/multi"

	requestBody := func() map[string]any {
		return map[string]any{
			"salon_id": uuid.New().String(),
			"services": []map[string]any{
				{"service_id": uuid.New().String(), "staff_id": uuid.New().String()},
				{"service_id": uuid.New().String(), "staff_id": uuid.New().String()},
			},
			"start_time": "2026-09-01T10:00:00Z",
		}
	}

	s.Run("成功: 201 と作成結果を返す", func() {
		expected := s.sampleResult()
		s.mockCommands.EXPECT().CreateMultiServiceBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestBody(), "bearer-token")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expected.BookingID, body.ID)
	})

	s.Run("staff_id を省いた行は指名なしとして渡る", func() {
		expected := s.sampleResult()
		var captured commands.CreateMultiServiceBookingInput
		s.mockCommands.EXPECT().CreateMultiServiceBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.Principal, input commands.CreateMultiServiceBookingInput) (*commands.CreateBookingResult, error) {
				captured = input
				return expected, nil
			}).Times(1)

		body := requestBody()
		body["services"] = []map[string]any{
			{"service_id": uuid.New().String(), "staff_id": uuid.New().String()},
			{"service_id": uuid.New().String()},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Require().Len(captured.Items, 2)
		s.False(captured.Items[0].Staff.IsAny())
		s.True(captured.Items[1].Staff.IsAny())
	})

	s.Run("1サービスだけの指定は 400", func() {
		body := requestBody()
		body["services"] = []map[string]any{
			{"service_id": uuid.New().String(), "staff_id": uuid.New().String()},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("services 欠落は 400", func() {
		body := testutil.DtoMap(s.T(), requestBody(), testutil.Field("services", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// GetBooking / ListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()

	s.Run("成功: 200 と予約詳細を返す", func() {
		view := &queries.BookingView{
			ID:        bookingID,
			SalonID:   uuid.New(),
			ClientID:  s.clientID,
			StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
			Status:    "CONFIRMED",
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.clientID, bookingID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.ID)
		s.Equal("CONFIRMED", body.Status)
	})

	s.Run("見つからなければ 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.clientID, bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("不正な ID は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("成功: 200 と一覧を返す", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), SalonID: uuid.New(), Status: "CONFIRMED"},
			{ID: uuid.New(), SalonID: uuid.New(), Status: "CANCELED"},
		}
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), s.clientID, 0).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}

// ================================================================================
// CancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("成功: 204 を返す", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("取消不可ステータスは 422", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), bookingID).
			Return(errs.ErrBookingNotCancelable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("見つからなければ 404", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), bookingID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
