//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wc(t *testing.T, s string) schedule.WallClock {
	t.Helper()
	w, err := schedule.ParseWallClock(s)
	require.NoError(t, err)
	return w
}

// Monday
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func salonHours(t *testing.T) schedule.WeeklyHours {
	return schedule.WeeklyHours{
		time.Monday: {
			Windows: []schedule.WallWindow{
				{Start: wc(t, "09:00"), End: wc(t, "12:00")},
				{Start: wc(t, "13:00"), End: wc(t, "18:00")},
			},
		},
		time.Tuesday: {Closed: true},
	}
}

func TestResolveDay(t *testing.T) {
	t.Run("サロンの営業時間がそのまま返る", func(t *testing.T) {
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       monday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
		})

		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Ordinal)
		assert.Equal(t, monday.Add(9*time.Hour), got[0].Interval.Start())
		assert.Equal(t, monday.Add(12*time.Hour), got[0].Interval.End())
		assert.Equal(t, 1, got[1].Ordinal)
		assert.Equal(t, monday.Add(13*time.Hour), got[1].Interval.Start())
		assert.Equal(t, monday.Add(18*time.Hour), got[1].Interval.End())
	})

	t.Run("定休日は空", func(t *testing.T) {
		tuesday := monday.AddDate(0, 0, 1)
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       tuesday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
		})
		assert.Empty(t, got)
	})

	t.Run("未設定の曜日は空", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, -1)
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       sunday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
		})
		assert.Empty(t, got)
	})

	t.Run("臨時休業はすべてに優先する", func(t *testing.T) {
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       monday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
			Closed:     true,
		})
		assert.Empty(t, got)
	})

	t.Run("スタッフの勤務時間と交差する", func(t *testing.T) {
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       monday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
			StaffHours: schedule.StaffHours{
				time.Monday: {Start: wc(t, "10:00"), End: wc(t, "15:00")},
			},
		})

		require.Len(t, got, 2)
		assert.Equal(t, monday.Add(10*time.Hour), got[0].Interval.Start())
		assert.Equal(t, monday.Add(12*time.Hour), got[0].Interval.End())
		assert.Equal(t, monday.Add(13*time.Hour), got[1].Interval.Start())
		assert.Equal(t, monday.Add(15*time.Hour), got[1].Interval.End())
	})

	t.Run("その曜日に勤務しないスタッフは空", func(t *testing.T) {
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       monday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
			StaffHours: schedule.StaffHours{
				time.Friday: {Start: wc(t, "09:00"), End: wc(t, "17:00")},
			},
		})
		assert.Empty(t, got)
	})

	t.Run("交差が空になる窓は落ちる", func(t *testing.T) {
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       monday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
			StaffHours: schedule.StaffHours{
				time.Monday: {Start: wc(t, "13:00"), End: wc(t, "18:00")},
			},
		})
		require.Len(t, got, 1)
		assert.Equal(t, monday.Add(13*time.Hour), got[0].Interval.Start())
	})
}

func TestResolveDayAbsences(t *testing.T) {
	staffID := uuid.New()

	staffAllDay := schedule.StaffHours{
		time.Monday: {Start: wc(t, "09:00"), End: wc(t, "18:00")},
	}

	t.Run("承認済み不在は窓を分割する", func(t *testing.T) {
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       monday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
			StaffHours: staffAllDay,
			Absences: []schedule.Absence{{
				StaffID:  staffID,
				Interval: booking.MustInterval(monday.Add(10*time.Hour), monday.Add(11*time.Hour)),
				Status:   schedule.AbsenceApproved,
			}},
		})

		// morning window splits into two, afternoon untouched
		require.Len(t, got, 3)
		assert.Equal(t, monday.Add(9*time.Hour), got[0].Interval.Start())
		assert.Equal(t, monday.Add(10*time.Hour), got[0].Interval.End())
		assert.Equal(t, monday.Add(11*time.Hour), got[1].Interval.Start())
		assert.Equal(t, monday.Add(12*time.Hour), got[1].Interval.End())
		assert.Equal(t, monday.Add(13*time.Hour), got[2].Interval.Start())
		// ordinals stay sequential after the split
		assert.Equal(t, []int{0, 1, 2}, []int{got[0].Ordinal, got[1].Ordinal, got[2].Ordinal})
	})

	t.Run("承認されていない不在は無視", func(t *testing.T) {
		for _, st := range []schedule.AbsenceStatus{schedule.AbsencePending, schedule.AbsenceRejected} {
			got := schedule.ResolveDay(schedule.DayQuery{
				Date:       monday,
				Location:   time.UTC,
				SalonHours: salonHours(t),
				StaffHours: staffAllDay,
				Absences: []schedule.Absence{{
					StaffID:  staffID,
					Interval: booking.MustInterval(monday, monday.Add(24*time.Hour)),
					Status:   st,
				}},
			})
			assert.Len(t, got, 2, "status %s", st)
		}
	})

	t.Run("終日不在ならすべて消える", func(t *testing.T) {
		got := schedule.ResolveDay(schedule.DayQuery{
			Date:       monday,
			Location:   time.UTC,
			SalonHours: salonHours(t),
			StaffHours: staffAllDay,
			Absences: []schedule.Absence{{
				StaffID:  staffID,
				Interval: booking.MustInterval(monday, monday.Add(24*time.Hour)),
				Status:   schedule.AbsenceApproved,
			}},
		})
		assert.Empty(t, got)
	})
}
