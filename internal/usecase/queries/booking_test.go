//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/queries"
	queriesmock "salon-scheduler/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetByID(t *testing.T) {
	owner := uuid.New()
	bookingID := uuid.New()

	view := &queries.BookingView{
		ID:        bookingID,
		SalonID:   uuid.New(),
		ClientID:  owner,
		StartTime: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		Status:    "CONFIRMED",
	}

	t.Run("所有者は自分の予約を参照できる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(view, nil)

		got, err := queries.NewBookingQueries(repo).GetByID(context.Background(), owner, bookingID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("他人の予約は存在しない扱いになる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(view, nil)

		_, err := queries.NewBookingQueries(repo).GetByID(context.Background(), uuid.New(), bookingID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("見つからない場合は ErrBookingNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "no rows", nil))

		_, err := queries.NewBookingQueries(repo).GetByID(context.Background(), owner, bookingID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestListByClient(t *testing.T) {
	clientID := uuid.New()

	t.Run("上限を超える limit は既定値に丸める", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		repo.EXPECT().FindByClient(gomock.Any(), clientID, int32(50)).Return(nil, nil)

		_, err := queries.NewBookingQueries(repo).ListByClient(context.Background(), clientID, 1000)
		require.NoError(t, err)
	})

	t.Run("範囲内の limit はそのまま使う", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		repo.EXPECT().FindByClient(gomock.Any(), clientID, int32(20)).Return([]*queries.BookingListItem{}, nil)

		rows, err := queries.NewBookingQueries(repo).ListByClient(context.Background(), clientID, 20)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
