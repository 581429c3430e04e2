package dtformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRangeShortDate(t *testing.T) {
	f := newTestFormatter(t, []string{"en-US"}, map[string]string{KeyDateStyle: "short"})

	tests := []struct {
		name string
		from []int
		to   []int
		want string
	}{
		{"day difference", []int{2023, 1, 5}, []int{2023, 1, 10}, "1/5/23 – 1/10/23"},
		{"year difference", []int{2022, 12, 30}, []int{2023, 1, 2}, "12/30/22 – 1/2/23"},
		{"identical endpoints", []int{2023, 1, 5}, []int{2023, 1, 5}, "1/5/23"},
		{"difference below pattern granularity", []int{2023, 1, 5, 9}, []int{2023, 1, 5, 17}, "1/5/23"},
		{"reversed endpoints", []int{2023, 1, 10}, []int{2023, 1, 5}, "1/10/23 – 1/5/23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.FormatRange(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRangeElidesSharedFields(t *testing.T) {
	f := newTestFormatter(t, []string{"en-US"}, map[string]string{
		KeyYear:  WidthNumeric,
		KeyMonth: WidthLong,
		KeyDay:   WidthTwoDigit,
	})
	require.Equal(t, "MMMM dd, y", f.Pattern())

	got, err := f.FormatRange([]int{2023, 1, 5}, []int{2023, 1, 10})
	require.NoError(t, err)
	assert.Equal(t, "January 05 – 10, 2023", got)

	got, err = f.FormatRange([]int{2023, 1, 5}, []int{2023, 3, 10})
	require.NoError(t, err)
	assert.Equal(t, "January 05 – March 10, 2023", got)
}

func TestFormatRangeDateTimePattern(t *testing.T) {
	f := newTestFormatter(t, []string{"en-US"}, map[string]string{
		KeyDateStyle: "medium",
		KeyTimeStyle: "short",
	})

	got, err := f.FormatRange([]int{2023, 1, 5, 10, 0}, []int{2023, 1, 5, 11, 30})
	require.NoError(t, err)
	assert.Equal(t, "Jan 5, 2023, 10:00 – 11:30 AM", got)

	got, err = f.FormatRange([]int{2023, 1, 5, 10, 0}, []int{2023, 1, 5, 15, 0})
	require.NoError(t, err)
	assert.Equal(t, "Jan 5, 2023, 10:00 AM – 3:00 PM", got)

	got, err = f.FormatRange([]int{2023, 1, 5, 10, 0}, []int{2023, 1, 6, 11, 30})
	require.NoError(t, err)
	assert.Equal(t, "Jan 5, 2023, 10:00 AM – Jan 6, 2023, 11:30 AM", got)
}

func TestFormatRangeLocaleFallbackFormat(t *testing.T) {
	f := newTestFormatter(t, []string{"ja-JP"}, map[string]string{
		KeyDateStyle: "full",
	})

	got, err := f.FormatRange([]int{2023, 1, 5}, []int{2023, 1, 6})
	require.NoError(t, err)
	assert.Equal(t, "2023年1月5日木曜日～2023年1月6日金曜日", got)
}

func TestFormatRangeCalendarError(t *testing.T) {
	f := newTestFormatter(t, []string{"en-US"}, map[string]string{KeyDateStyle: "short"})

	_, err := f.FormatRange([]int{2023, 1, 5}, []int{5_000_000, 1, 1})
	assert.ErrorIs(t, err, ErrRangeCalendar)

	_, err = f.FormatRange([]int{-5_000_000}, []int{2023, 1, 5})
	assert.ErrorIs(t, err, ErrRangeCalendar)
}

func TestFormatTimeRange(t *testing.T) {
	f := newTestFormatter(t, []string{"en-GB"}, map[string]string{
		KeyHour:   WidthTwoDigit,
		KeyMinute: WidthTwoDigit,
	})
	require.Equal(t, "HH:mm", f.Pattern())

	from := time.Date(2023, 1, 5, 9, 15, 0, 0, time.UTC)
	got, err := f.FormatTimeRange(from, from.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "09:15 – 10:45", got)

	got, err = f.FormatTimeRange(from, from.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "09:15 – 09:25", got)
}

func TestGreatestDifference(t *testing.T) {
	base := time.Date(2023, 1, 5, 10, 30, 15, 0, time.UTC)

	tests := []struct {
		name  string
		other time.Time
		want  difference
	}{
		{"same", base, diffNone},
		{"year", base.AddDate(1, 0, 0), diffYear},
		{"month", base.AddDate(0, 1, 0), diffMonth},
		{"day", base.AddDate(0, 0, 1), diffDay},
		{"day period", base.Add(3 * time.Hour), diffDayPeriod},
		{"hour", base.Add(time.Hour), diffHour},
		{"minute", base.Add(time.Minute), diffMinute},
		{"second", base.Add(time.Second), diffSecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, greatestDifference(base, tt.other))
		})
	}
}

func TestSplitDateTime(t *testing.T) {
	date, glue, clock, ok := splitDateTime(ParsePattern("MMM d, y, h:mm a"))
	require.True(t, ok)
	assert.Equal(t, "MMM d, y", date.String())
	assert.Equal(t, ", ", glue.String())
	assert.Equal(t, "h:mm a", clock.String())

	_, _, _, ok = splitDateTime(ParsePattern("H:mm d.M."))
	assert.False(t, ok)

	_, _, _, ok = splitDateTime(ParsePattern("M/d/yy"))
	assert.False(t, ok)
}
