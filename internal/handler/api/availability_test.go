//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-scheduler/internal/handler/api"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/tests/common/httptest"
	queriesmock "salon-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAvl  *queriesmock.MockAvailabilityQueries
	handler  *api.AvailabilityHandler
	salonID  uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvl = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvl)
	s.salonID = uuid.New()

	s.router.GET("/salons/:id/slots", s.handler.GetSlots)
	s.router.GET("/salons/:id/availability", s.handler.CheckAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// GetSlots
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGetSlots() {
	serviceID := uuid.New()
	base := "/salons/" + s.salonID.String() + "/slots"

	s.Run("成功: 200 とスロット一覧を返す", func() {
		slotTime := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		s.mockAvl.EXPECT().GetAvailableSlots(gomock.Any(), gomock.Any()).
			Return([]queries.SlotView{
				{Time: slotTime, Available: true},
				{Time: slotTime.Add(20 * time.Minute), Available: false},
			}, nil).Times(1)

		url := base + "?service_id=" + serviceID.String() + "&date=2026-09-01"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-09-01", body.Date)
		s.Require().Len(body.Slots, 2)
		s.True(body.Slots[0].Available)
		s.False(body.Slots[1].Available)
	})

	s.Run("service_id 欠落は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2026-09-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("不正な日付は 400", func() {
		url := base + "?service_id=" + serviceID.String() + "&date=09-01-2026"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("存在しないサロンは 404", func() {
		s.mockAvl.EXPECT().GetAvailableSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSalonNotFound).Times(1)

		url := base + "?service_id=" + serviceID.String() + "&date=2026-09-01"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// CheckAvailability
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCheckAvailability() {
	serviceID := uuid.New()
	staffID := uuid.New()
	base := "/salons/" + s.salonID.String() + "/availability"
	okURL := base + "?service_id=" + serviceID.String() +
		"&staff_id=" + staffID.String() + "&start=2026-09-01T10:00:00Z"

	s.Run("成功: available=true", func() {
		s.mockAvl.EXPECT().CheckAvailability(gomock.Any(), queries.CheckAvailabilityInput{
			SalonID:   s.salonID,
			ServiceID: serviceID,
			StaffID:   staffID,
			Start:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		}).Return(&queries.AvailabilityReport{Available: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, okURL, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Empty(body.Reason)
	})

	s.Run("競合は理由と詳細付きで返す", func() {
		conflictStart := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		s.mockAvl.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			Return(&queries.AvailabilityReport{
				Available: false,
				Reason:    queries.ReasonStaffConflict,
				Conflicts: []queries.ConflictDetail{
					{StaffID: staffID, StartTime: conflictStart, EndTime: conflictStart.Add(time.Hour)},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, okURL, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal(queries.ReasonStaffConflict, body.Reason)
		s.Require().Len(body.Conflicts, 1)
		s.Equal(staffID, body.Conflicts[0].StaffID)
	})

	s.Run("staff_id 欠落は 400", func() {
		url := base + "?service_id=" + serviceID.String() + "&start=2026-09-01T10:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("不正な exclude_booking_id は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, okURL+"&exclude_booking_id=not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("不正な start は 400", func() {
		url := base + "?service_id=" + serviceID.String() + "&staff_id=" + staffID.String() + "&start=next-monday"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
