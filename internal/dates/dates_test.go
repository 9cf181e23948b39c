package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		base   time.Time
		offset int
		want   time.Time
	}{
		{"zero_offset_is_identity", day(2024, 1, 31), 0, day(2024, 1, 31)},
		{"plain_month", day(2024, 1, 15), 1, day(2024, 2, 15)},
		{"clamps_to_leap_february", day(2024, 1, 31), 1, day(2024, 2, 29)},
		{"clamps_to_common_february", day(2023, 1, 31), 1, day(2023, 2, 28)},
		{"clamps_to_thirty_day_month", day(2024, 3, 31), 1, day(2024, 4, 30)},
		{"keeps_day_after_clamped_month", day(2024, 1, 31), 2, day(2024, 3, 31)},
		{"rolls_year_forward", day(2024, 11, 30), 3, day(2025, 2, 28)},
		{"rolls_year_backward", day(2024, 1, 10), -1, day(2023, 12, 10)},
		{"negative_with_clamp", day(2024, 3, 31), -1, day(2024, 2, 29)},
		{"many_years", day(2020, 2, 29), 48, day(2024, 2, 29)},
		{"many_years_clamped", day(2020, 2, 29), 12, day(2021, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project(tt.base, tt.offset))
		})
	}
}

func TestProject_Properties(t *testing.T) {
	base := day(2023, 1, 1)
	for i := 0; i < 365*2; i++ {
		b := base.AddDate(0, 0, i)
		for _, k := range []int{-25, -13, -1, 1, 2, 11, 12, 13, 37} {
			got := Project(b, k)

			wantMonths := PeriodOf(b).MonthsSince(Period{Year: 1, Month: time.January}) + k
			gotMonths := PeriodOf(got).MonthsSince(Period{Year: 1, Month: time.January})
			require.Equal(t, wantMonths, gotMonths, "month arithmetic for %s%+d", b, k)

			last := DaysIn(got.Year(), got.Month())
			if b.Day() <= last {
				require.Equal(t, b.Day(), got.Day())
			} else {
				require.Equal(t, last, got.Day())
			}
		}
	}
}

func TestProject_PreservesClock(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	base := time.Date(2024, 5, 31, 14, 30, 5, 0, loc)

	got := Project(base, 1)

	assert.Equal(t, time.Date(2024, 6, 30, 14, 30, 5, 0, loc), got)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2100, time.February))
	assert.Equal(t, 29, DaysIn(2000, time.February))
	assert.Equal(t, 31, DaysIn(2024, time.December))
	assert.Equal(t, 30, DaysIn(2024, time.November))
}

func TestParseDay(t *testing.T) {
	t.Run("calendar_day", func(t *testing.T) {
		got, err := ParseDay("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, day(2024, 2, 29), got)
	})

	t.Run("rfc3339_truncated", func(t *testing.T) {
		got, err := ParseDay("2024-02-29T18:45:00Z")
		require.NoError(t, err)
		assert.Equal(t, day(2024, 2, 29), got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseDay("29/02/2024")
		assert.Error(t, err)
	})
}
