//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/shared"
	commandsmock "salon-scheduler/tests/mock/commands"
	sharedmock "salon-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testHoldDuration = 10 * time.Minute

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	bookings  *sharedmock.MockBookingRepository
	conflicts *sharedmock.MockConflictReads
	salons    *commandsmock.MockSalonReads
	staff     *commandsmock.MockStaffReads
	services  *commandsmock.MockServiceReads
	clients   *commandsmock.MockClientReads
	notifier  *commandsmock.MockNotifier
	clk       *clock.MockClock
	uc        commands.BookingCommands

	now       time.Time
	salonID   uuid.UUID
	staffID   uuid.UUID
	serviceID uuid.UUID
	clientID  uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.conflicts = sharedmock.NewMockConflictReads(s.ctrl)
	s.salons = commandsmock.NewMockSalonReads(s.ctrl)
	s.staff = commandsmock.NewMockStaffReads(s.ctrl)
	s.services = commandsmock.NewMockServiceReads(s.ctrl)
	s.clients = commandsmock.NewMockClientReads(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)

	s.now = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	s.clk = clock.NewMockClock(s.now)

	s.salonID = uuid.New()
	s.staffID = uuid.New()
	s.serviceID = uuid.New()
	s.clientID = uuid.New()

	s.uc = commands.NewBookingCommands(
		s.uow, s.salons, s.staff, s.services, s.clients,
		s.notifier, s.clk, testHoldDuration,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) salonSnapshot() *commands.SalonSnapshot {
	return &commands.SalonSnapshot{
		ID:       s.salonID,
		Name:     "テストサロン",
		Location: time.UTC,
		Buffers: booking.Buffers{
			Before:     10 * time.Minute,
			After:      10 * time.Minute,
			Processing: 5 * time.Minute,
		},
		IsActive: true,
	}
}

func (s *BookingCommandsTestSuite) staffSnapshot(id uuid.UUID) *commands.StaffSnapshot {
	return &commands.StaffSnapshot{ID: id, SalonID: s.salonID, Name: "スタッフ", IsActive: true}
}

func (s *BookingCommandsTestSuite) serviceSnapshot() *commands.ServiceSnapshot {
	return &commands.ServiceSnapshot{
		ID:         s.serviceID,
		SalonID:    s.salonID,
		Name:       "カット",
		Duration:   30 * time.Minute,
		PriceCents: 5000,
		IsActive:   true,
	}
}

func (s *BookingCommandsTestSuite) clientSnapshot(verified bool) *commands.ClientSnapshot {
	return &commands.ClientSnapshot{ID: s.clientID, Email: "client@example.com", Name: "顧客", Verified: verified}
}

// expectTx routes WithinSerializable straight to the callback with the
// mocked transaction.
func (s *BookingCommandsTestSuite) expectTx(times int) {
	s.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(times)
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Conflicts().Return(s.conflicts).AnyTimes()
}

func (s *BookingCommandsTestSuite) expectMasterData(verified bool) {
	s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(s.salonSnapshot(), nil)
	s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).Return(s.serviceSnapshot(), nil)
	s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(verified), nil)
}

func notFound() error {
	return infra.WrapRepoErr(infra.KindNotFound, "no rows", nil)
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	start := s.now.Add(24 * time.Hour) // 翌日 09:00
	principal := commands.Principal{ClientID: s.clientID, Verified: true}
	input := commands.CreateBookingInput{
		SalonID:   s.salonID,
		ServiceID: s.serviceID,
		Staff:     booking.SpecificStaff(s.staffID),
		Start:     start,
	}

	s.Run("成功: 指定スタッフで確定予約を作成する", func() {
		s.expectMasterData(true)
		s.staff.EXPECT().FindByID(gomock.Any(), s.staffID).Return(s.staffSnapshot(s.staffID), nil)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(),
			[]string{shared.ClientLockKey(s.clientID), shared.StaffLockKey(s.staffID)}).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), s.staffID, gomock.Any()).Return(nil, nil)

		var persisted *booking.Booking
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				persisted = b
				return nil
			})
		s.notifier.EXPECT().SendBookingConfirmed(gomock.Any(), *s.clientSnapshot(true), gomock.Any()).Return(nil)

		result, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.Require().NoError(err)
		s.Require().NotNil(persisted)

		s.Equal(booking.StatusConfirmed, result.Status)
		s.Equal(s.staffID, result.StaffID)
		s.Nil(result.HoldExpiresAt)
		s.Equal(int64(5000), result.PriceCents)
		// before=10, duration=30, processing=5, after=10 -> 55 minutes
		s.Equal(start.Add(-10*time.Minute), result.Span.Start())
		s.Equal(start.Add(45*time.Minute), result.Span.End())
	})

	s.Run("未認証クライアントは保留ホールドになる", func() {
		s.expectMasterData(false)
		s.staff.EXPECT().FindByID(gomock.Any(), s.staffID).Return(s.staffSnapshot(s.staffID), nil)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), s.staffID, gomock.Any()).Return(nil, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		expiresAt := s.now.Add(testHoldDuration)
		s.notifier.EXPECT().
			SendVerificationRequest(gomock.Any(), *s.clientSnapshot(false), gomock.Any(), expiresAt).
			Return(nil)

		result, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.Require().NoError(err)
		s.Equal(booking.StatusPending, result.Status)
		s.Require().NotNil(result.HoldExpiresAt)
		s.Equal(expiresAt, *result.HoldExpiresAt)
	})

	s.Run("認証通知の失敗はホールドを補償取消して 502 相当を返す", func() {
		s.expectMasterData(false)
		s.staff.EXPECT().FindByID(gomock.Any(), s.staffID).Return(s.staffSnapshot(s.staffID), nil)

		// 作成トランザクションと補償トランザクションで 2 回
		s.expectTx(2)
		s.tx.EXPECT().AcquireLocks(gomock.Any(),
			[]string{shared.ClientLockKey(s.clientID), shared.StaffLockKey(s.staffID)}).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), s.staffID, gomock.Any()).Return(nil, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		s.notifier.EXPECT().
			SendVerificationRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("webhook unreachable"))

		// 補償取消
		s.tx.EXPECT().AcquireLocks(gomock.Any(), []string{shared.ClientLockKey(s.clientID)}).Return(nil)
		s.bookings.EXPECT().Cancel(gomock.Any(), gomock.Any(), s.now).Return(nil)

		result, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.Nil(result)
		s.ErrorIs(err, errs.ErrNotificationFailed)
	})

	s.Run("過去の開始時刻は拒否", func() {
		past := input
		past.Start = s.now.Add(-time.Hour)
		_, err := s.uc.CreateBooking(context.Background(), principal, past)
		s.ErrorIs(err, errs.ErrInvalidTimeRange)
	})

	s.Run("サロンが存在しない場合は ErrSalonNotFound", func() {
		s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(nil, notFound())
		_, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrSalonNotFound)
	})

	s.Run("停止中のサービスは ErrServiceInactive", func() {
		s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(s.salonSnapshot(), nil)
		svc := s.serviceSnapshot()
		svc.IsActive = false
		s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).Return(svc, nil)
		_, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrServiceInactive)
	})

	s.Run("スタッフの予定が重なる場合は ErrStaffConflict", func() {
		s.expectMasterData(true)
		s.staff.EXPECT().FindByID(gomock.Any(), s.staffID).Return(s.staffSnapshot(s.staffID), nil)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), s.staffID, gomock.Any()).
			Return([]booking.Commitment{{
				BookingID: uuid.New(),
				SubjectID: s.staffID,
				Interval:  booking.MustInterval(start, start.Add(time.Hour)),
				Status:    booking.StatusConfirmed,
			}}, nil)

		_, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrStaffConflict)
	})

	s.Run("クライアント自身の予定が重なる場合は ErrClientConflict", func() {
		s.expectMasterData(true)
		s.staff.EXPECT().FindByID(gomock.Any(), s.staffID).Return(s.staffSnapshot(s.staffID), nil)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).
			Return([]booking.Commitment{{
				BookingID: uuid.New(),
				SubjectID: s.clientID,
				Interval:  booking.MustInterval(start, start.Add(time.Hour)),
				Status:    booking.StatusConfirmed,
			}}, nil)

		_, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrClientConflict)
	})

	s.Run("同一サロンに有効な予約が残っていれば ErrClientAlreadyBooked", func() {
		s.expectMasterData(true)
		s.staff.EXPECT().FindByID(gomock.Any(), s.staffID).Return(s.staffSnapshot(s.staffID), nil)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).
			Return(&booking.Commitment{
				BookingID: uuid.New(),
				SubjectID: s.clientID,
				Interval:  booking.MustInterval(s.now.Add(time.Hour), s.now.Add(2*time.Hour)),
				Status:    booking.StatusConfirmed,
			}, nil)

		_, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrClientAlreadyBooked)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookingAnyStaff() {
	start := s.now.Add(24 * time.Hour)
	principal := commands.Principal{ClientID: s.clientID, Verified: true}
	input := commands.CreateBookingInput{
		SalonID:   s.salonID,
		ServiceID: s.serviceID,
		Staff:     booking.AnyAvailableStaff(),
		Start:     start,
	}

	s.Run("先頭スタッフが埋まっていれば次のスタッフに割り当てる", func() {
		first := uuid.New()
		second := uuid.New()

		s.expectMasterData(true)
		s.staff.EXPECT().ListActiveBySalon(gomock.Any(), s.salonID).
			Return([]commands.StaffSnapshot{*s.staffSnapshot(first), *s.staffSnapshot(second)}, nil)

		s.expectTx(1)
		// 候補全員分のロックを先に取る
		s.tx.EXPECT().AcquireLocks(gomock.Any(),
			[]string{shared.ClientLockKey(s.clientID), shared.StaffLockKey(first), shared.StaffLockKey(second)}).
			Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).Return(nil, nil).Times(2)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), first, gomock.Any()).
			Return([]booking.Commitment{{
				BookingID: uuid.New(),
				SubjectID: first,
				Interval:  booking.MustInterval(start, start.Add(time.Hour)),
				Status:    booking.StatusConfirmed,
			}}, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), second, gomock.Any()).Return(nil, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().SendBookingConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.Require().NoError(err)
		s.Equal(second, result.StaffID)
	})

	s.Run("全候補が埋まっていれば ErrNoStaffAvailable", func() {
		first := uuid.New()

		s.expectMasterData(true)
		s.staff.EXPECT().ListActiveBySalon(gomock.Any(), s.salonID).
			Return([]commands.StaffSnapshot{*s.staffSnapshot(first)}, nil)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), first, gomock.Any()).
			Return([]booking.Commitment{{
				BookingID: uuid.New(),
				SubjectID: first,
				Interval:  booking.MustInterval(start, start.Add(time.Hour)),
				Status:    booking.StatusConfirmed,
			}}, nil)

		_, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrNoStaffAvailable)
	})

	s.Run("在籍スタッフがいなければ ErrNoStaffAvailable", func() {
		s.expectMasterData(true)
		s.staff.EXPECT().ListActiveBySalon(gomock.Any(), s.salonID).Return(nil, nil)

		_, err := s.uc.CreateBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrNoStaffAvailable)
	})
}

// ================================================================================
// CreateMultiServiceBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateMultiServiceBooking() {
	start := s.now.Add(24 * time.Hour)
	principal := commands.Principal{ClientID: s.clientID, Verified: true}

	s.Run("成功: 2サービスを連続枠として確定する", func() {
		staffA := uuid.New()
		staffB := uuid.New()
		secondService := uuid.New()

		input := commands.CreateMultiServiceBookingInput{
			SalonID: s.salonID,
			Items: []commands.MultiServiceItemInput{
				{ServiceID: s.serviceID, Staff: booking.SpecificStaff(staffA)},
				{ServiceID: secondService, Staff: booking.SpecificStaff(staffB)},
			},
			Start: start,
		}

		s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(s.salonSnapshot(), nil)
		s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(true), nil)
		s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).Return(s.serviceSnapshot(), nil)
		s.staff.EXPECT().FindByID(gomock.Any(), staffA).Return(s.staffSnapshot(staffA), nil)
		s.services.EXPECT().FindByID(gomock.Any(), secondService).Return(&commands.ServiceSnapshot{
			ID:         secondService,
			SalonID:    s.salonID,
			Name:       "カラー",
			Duration:   45 * time.Minute,
			PriceCents: 8000,
			IsActive:   true,
		}, nil)
		s.staff.EXPECT().FindByID(gomock.Any(), staffB).Return(s.staffSnapshot(staffB), nil)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(),
			[]string{shared.ClientLockKey(s.clientID), shared.StaffLockKey(staffA), shared.StaffLockKey(staffB)}).
			Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), staffA, gomock.Any()).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), staffB, gomock.Any()).Return(nil, nil)

		var persisted *booking.Booking
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				persisted = b
				return nil
			})
		s.notifier.EXPECT().SendBookingConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.CreateMultiServiceBooking(context.Background(), principal, input)
		s.Require().NoError(err)
		s.Require().NotNil(persisted)

		// before=10 + (30+5) + (45+10) -> 100 minutes
		s.Equal(start.Add(-10*time.Minute), result.Span.Start())
		s.Equal(start.Add(90*time.Minute), result.Span.End())
		s.Equal(int64(13000), result.PriceCents)
		s.Len(persisted.Items(), 2)
	})

	s.Run("指名なしの行は空いている候補スタッフに割り当てる", func() {
		staffA := uuid.New()
		cand1 := uuid.New()
		cand2 := uuid.New()
		secondService := uuid.New()

		input := commands.CreateMultiServiceBookingInput{
			SalonID: s.salonID,
			Items: []commands.MultiServiceItemInput{
				{ServiceID: s.serviceID, Staff: booking.SpecificStaff(staffA)},
				{ServiceID: secondService, Staff: booking.AnyAvailableStaff()},
			},
			Start: start,
		}

		s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(s.salonSnapshot(), nil)
		s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(true), nil)
		s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).Return(s.serviceSnapshot(), nil)
		s.staff.EXPECT().FindByID(gomock.Any(), staffA).Return(s.staffSnapshot(staffA), nil)
		s.services.EXPECT().FindByID(gomock.Any(), secondService).Return(&commands.ServiceSnapshot{
			ID:         secondService,
			SalonID:    s.salonID,
			Name:       "カラー",
			Duration:   45 * time.Minute,
			PriceCents: 8000,
			IsActive:   true,
		}, nil)
		s.staff.EXPECT().ListActiveBySalon(gomock.Any(), s.salonID).
			Return([]commands.StaffSnapshot{*s.staffSnapshot(cand1), *s.staffSnapshot(cand2)}, nil)

		// 行 1: [start-10, start+35), 行 2: [start+35, start+90)
		leg2 := booking.MustInterval(start.Add(35*time.Minute), start.Add(90*time.Minute))
		span := booking.MustInterval(start.Add(-10*time.Minute), start.Add(90*time.Minute))

		s.expectTx(1)
		// 指名スタッフと候補全員分のロックを先に取る
		s.tx.EXPECT().AcquireLocks(gomock.Any(),
			[]string{shared.ClientLockKey(s.clientID), shared.StaffLockKey(staffA),
				shared.StaffLockKey(cand1), shared.StaffLockKey(cand2)}).
			Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, span).Return(nil, nil)

		// 候補 1 は 2 本目の枠が埋まっている
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), cand1, leg2).
			Return([]booking.Commitment{{
				BookingID: uuid.New(),
				SubjectID: cand1,
				Interval:  booking.MustInterval(start.Add(35*time.Minute), start.Add(65*time.Minute)),
				Status:    booking.StatusConfirmed,
			}}, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), cand2, leg2).Return(nil, nil)

		// 確定レイアウト全体の最終チェック
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), staffA, span).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), cand2, span).Return(nil, nil)

		var persisted *booking.Booking
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				persisted = b
				return nil
			})
		s.notifier.EXPECT().SendBookingConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.CreateMultiServiceBooking(context.Background(), principal, input)
		s.Require().NoError(err)
		s.Require().NotNil(persisted)
		s.Equal(int64(13000), result.PriceCents)
		s.Require().Len(persisted.Items(), 2)
		s.Equal(staffA, persisted.Items()[0].StaffID)
		s.Equal(cand2, persisted.Items()[1].StaffID)
	})

	s.Run("指名なしの行に空きが無ければ ErrNoStaffAvailable", func() {
		cand1 := uuid.New()
		input := commands.CreateMultiServiceBookingInput{
			SalonID: s.salonID,
			Items:   []commands.MultiServiceItemInput{{ServiceID: s.serviceID, Staff: booking.AnyAvailableStaff()}},
			Start:   start,
		}

		s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(s.salonSnapshot(), nil)
		s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(true), nil)
		s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).Return(s.serviceSnapshot(), nil)
		s.staff.EXPECT().ListActiveBySalon(gomock.Any(), s.salonID).
			Return([]commands.StaffSnapshot{*s.staffSnapshot(cand1)}, nil)

		span := booking.MustInterval(start.Add(-10*time.Minute), start.Add(45*time.Minute))

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(),
			[]string{shared.ClientLockKey(s.clientID), shared.StaffLockKey(cand1)}).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, span).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), cand1, span).
			Return([]booking.Commitment{{
				BookingID: uuid.New(),
				SubjectID: cand1,
				Interval:  booking.MustInterval(start, start.Add(time.Hour)),
				Status:    booking.StatusConfirmed,
			}}, nil)

		_, err := s.uc.CreateMultiServiceBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrNoStaffAvailable)
	})

	s.Run("指名なしの行があるのに在籍スタッフがいなければ ErrNoStaffAvailable", func() {
		input := commands.CreateMultiServiceBookingInput{
			SalonID: s.salonID,
			Items:   []commands.MultiServiceItemInput{{ServiceID: s.serviceID, Staff: booking.AnyAvailableStaff()}},
			Start:   start,
		}

		s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(s.salonSnapshot(), nil)
		s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(true), nil)
		s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).Return(s.serviceSnapshot(), nil)
		s.staff.EXPECT().ListActiveBySalon(gomock.Any(), s.salonID).Return(nil, nil)

		_, err := s.uc.CreateMultiServiceBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrNoStaffAvailable)
	})

	s.Run("別サロンのスタッフ指定は ErrStaffSalonMismatch", func() {
		foreign := uuid.New()
		input := commands.CreateMultiServiceBookingInput{
			SalonID: s.salonID,
			Items:   []commands.MultiServiceItemInput{{ServiceID: s.serviceID, Staff: booking.SpecificStaff(foreign)}},
			Start:   start,
		}

		s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(s.salonSnapshot(), nil)
		s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(true), nil)
		s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).Return(s.serviceSnapshot(), nil)
		mismatched := s.staffSnapshot(foreign)
		mismatched.SalonID = uuid.New()
		s.staff.EXPECT().FindByID(gomock.Any(), foreign).Return(mismatched, nil)

		_, err := s.uc.CreateMultiServiceBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrStaffSalonMismatch)
	})

	s.Run("いずれかの行が競合すると全体が失敗する", func() {
		staffA := uuid.New()
		input := commands.CreateMultiServiceBookingInput{
			SalonID: s.salonID,
			Items:   []commands.MultiServiceItemInput{{ServiceID: s.serviceID, Staff: booking.SpecificStaff(staffA)}},
			Start:   start,
		}

		s.salons.EXPECT().FindByID(gomock.Any(), s.salonID).Return(s.salonSnapshot(), nil)
		s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(true), nil)
		s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).Return(s.serviceSnapshot(), nil)
		s.staff.EXPECT().FindByID(gomock.Any(), staffA).Return(s.staffSnapshot(staffA), nil)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.conflicts.EXPECT().ActiveClientBookingAtSalon(gomock.Any(), s.clientID, s.salonID, s.now).Return(nil, nil)
		s.conflicts.EXPECT().ClientOverlapping(gomock.Any(), s.clientID, gomock.Any()).Return(nil, nil)
		s.conflicts.EXPECT().StaffOverlapping(gomock.Any(), staffA, gomock.Any()).
			Return([]booking.Commitment{{
				BookingID: uuid.New(),
				SubjectID: staffA,
				Interval:  booking.MustInterval(start, start.Add(time.Hour)),
				Status:    booking.StatusConfirmed,
			}}, nil)

		_, err := s.uc.CreateMultiServiceBooking(context.Background(), principal, input)
		s.ErrorIs(err, errs.ErrStaffConflict)
	})
}

// ================================================================================
// CancelBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	principal := commands.Principal{ClientID: s.clientID, Verified: true}
	bookingID := uuid.New()

	head := func(status booking.Status, owner uuid.UUID) *booking.Booking {
		return booking.Reconstruct(
			bookingID, s.salonID, owner,
			&s.staffID, &s.serviceID,
			booking.MustInterval(s.now.Add(time.Hour), s.now.Add(2*time.Hour)),
			5000, status, nil, false, nil, "", s.now.Add(-time.Hour),
		)
	}

	s.Run("成功: 自分の予約を取り消す", func() {
		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), []string{shared.ClientLockKey(s.clientID)}).Return(nil)
		s.bookings.EXPECT().Head(gomock.Any(), bookingID).Return(head(booking.StatusConfirmed, s.clientID), nil)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), []string{shared.StaffLockKey(s.staffID)}).Return(nil)
		s.bookings.EXPECT().Cancel(gomock.Any(), bookingID, s.now).Return(nil)

		s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(true), nil)
		s.notifier.EXPECT().SendBookingCanceled(gomock.Any(), *s.clientSnapshot(true), bookingID).Return(nil)

		err := s.uc.CancelBooking(context.Background(), principal, bookingID)
		s.NoError(err)
	})

	s.Run("取消通知の失敗は結果を変えない", func() {
		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.bookings.EXPECT().Head(gomock.Any(), bookingID).Return(head(booking.StatusPending, s.clientID), nil)
		s.bookings.EXPECT().Cancel(gomock.Any(), bookingID, s.now).Return(nil)

		s.clients.EXPECT().FindByID(gomock.Any(), s.clientID).Return(s.clientSnapshot(true), nil)
		s.notifier.EXPECT().SendBookingCanceled(gomock.Any(), gomock.Any(), bookingID).
			Return(errors.New("webhook unreachable"))

		err := s.uc.CancelBooking(context.Background(), principal, bookingID)
		s.NoError(err)
	})

	s.Run("他人の予約は存在しない扱いになる", func() {
		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.bookings.EXPECT().Head(gomock.Any(), bookingID).Return(head(booking.StatusConfirmed, uuid.New()), nil)

		err := s.uc.CancelBooking(context.Background(), principal, bookingID)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("存在しない予約は ErrBookingNotFound", func() {
		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.bookings.EXPECT().Head(gomock.Any(), bookingID).Return(nil, notFound())

		err := s.uc.CancelBooking(context.Background(), principal, bookingID)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("進行中の予約は取り消せない", func() {
		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.bookings.EXPECT().Head(gomock.Any(), bookingID).Return(head(booking.StatusInProgress, s.clientID), nil)

		err := s.uc.CancelBooking(context.Background(), principal, bookingID)
		s.ErrorIs(err, errs.ErrBookingNotCancelable)
	})

	s.Run("終了済みの予約は取り消せない", func() {
		ended := booking.Reconstruct(
			bookingID, s.salonID, s.clientID,
			&s.staffID, &s.serviceID,
			booking.MustInterval(s.now.Add(-2*time.Hour), s.now.Add(-time.Hour)),
			5000, booking.StatusConfirmed, nil, false, nil, "", s.now.Add(-3*time.Hour),
		)

		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.bookings.EXPECT().Head(gomock.Any(), bookingID).Return(ended, nil)

		err := s.uc.CancelBooking(context.Background(), principal, bookingID)
		s.ErrorIs(err, errs.ErrBookingNotCancelable)
	})

	s.Run("取消済みの予約は取り消せない", func() {
		s.expectTx(1)
		s.tx.EXPECT().AcquireLocks(gomock.Any(), gomock.Any()).Return(nil)
		s.bookings.EXPECT().Head(gomock.Any(), bookingID).Return(head(booking.StatusCanceled, s.clientID), nil)

		err := s.uc.CancelBooking(context.Background(), principal, bookingID)
		s.ErrorIs(err, errs.ErrBookingNotCancelable)
	})
}
