package timeclock

import (
	"testing"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func rec(t model.RecordType, ts time.Time) model.TimeRecord {
	return model.TimeRecord{RecordType: t, RecordTime: ts}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name    string
		records []model.TimeRecord
		want    StatusResult
	}{
		{
			name:    "no records",
			records: nil,
			want:    StatusResult{Status: StatusNotStarted},
		},
		{
			name:    "clocked in",
			records: []model.TimeRecord{rec(model.RecordClockIn, at(9, 0))},
			want:    StatusResult{Status: StatusWorking, IsWorking: true},
		},
		{
			name: "on break",
			records: []model.TimeRecord{
				rec(model.RecordClockIn, at(9, 0)),
				rec(model.RecordBreakStart, at(12, 0)),
			},
			want: StatusResult{Status: StatusBreak, IsOnBreak: true},
		},
		{
			name: "back from break",
			records: []model.TimeRecord{
				rec(model.RecordClockIn, at(9, 0)),
				rec(model.RecordBreakStart, at(12, 0)),
				rec(model.RecordBreakEnd, at(12, 30)),
			},
			want: StatusResult{Status: StatusWorking, IsWorking: true},
		},
		{
			name: "clocked out",
			records: []model.TimeRecord{
				rec(model.RecordClockIn, at(9, 0)),
				rec(model.RecordClockOut, at(17, 0)),
			},
			want: StatusResult{Status: StatusFinished},
		},
		{
			name: "re-entry after clock out",
			records: []model.TimeRecord{
				rec(model.RecordClockIn, at(8, 0)),
				rec(model.RecordClockOut, at(12, 0)),
				rec(model.RecordClockIn, at(13, 0)),
			},
			want: StatusResult{Status: StatusWorking, IsWorking: true},
		},
		{
			name: "closed break pair does not leak into finished state",
			records: []model.TimeRecord{
				rec(model.RecordClockIn, at(9, 0)),
				rec(model.RecordBreakStart, at(12, 0)),
				rec(model.RecordBreakEnd, at(12, 30)),
				rec(model.RecordClockOut, at(17, 0)),
			},
			want: StatusResult{Status: StatusFinished},
		},
		{
			name: "latest of repeated type wins",
			records: []model.TimeRecord{
				rec(model.RecordClockIn, at(9, 0)),
				rec(model.RecordClockOut, at(17, 0)),
				rec(model.RecordClockOut, at(17, 5)),
			},
			want: StatusResult{Status: StatusFinished},
		},
		{
			name:    "stray break start without clock in",
			records: []model.TimeRecord{rec(model.RecordBreakStart, at(10, 0))},
			want:    StatusResult{Status: StatusNotStarted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(tt.records)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.IsWorking && got.IsOnBreak, "working and on break are mutually exclusive")
		})
	}
}

func TestSummarize_EmptyDay(t *testing.T) {
	s := Summarize(nil, at(10, 0))

	assert.Nil(t, s.ArrivalTime)
	assert.Nil(t, s.DepartureTime)
	assert.Equal(t, "00:00", FormatDuration(s.WorkingTime))
	assert.Equal(t, "00:00", FormatDuration(s.BreakTime))
	assert.Equal(t, "-08:00", FormatFlexTime(s.FlexTime))
	assert.Equal(t, StatusNotStarted, s.Status)
}

func TestSummarize_JustClockedIn(t *testing.T) {
	records := []model.TimeRecord{rec(model.RecordClockIn, at(9, 0))}

	s := Summarize(records, at(9, 0))

	require.NotNil(t, s.ArrivalTime)
	assert.Equal(t, at(9, 0), *s.ArrivalTime)
	assert.Equal(t, "00:00", FormatDuration(s.WorkingTime))
	assert.Equal(t, "-08:00", FormatFlexTime(s.FlexTime))
	assert.Equal(t, StatusWorking, s.Status)
	assert.True(t, s.IsWorking)
}

func TestSummarize_OngoingBreak(t *testing.T) {
	records := []model.TimeRecord{
		rec(model.RecordClockIn, at(9, 0)),
		rec(model.RecordBreakStart, at(12, 0)),
	}

	s := Summarize(records, at(12, 30))

	assert.Equal(t, "03:00", FormatDuration(s.WorkingTime))
	assert.Equal(t, "00:30", FormatDuration(s.BreakTime))
	assert.Equal(t, StatusBreak, s.Status)
	assert.True(t, s.IsOnBreak)
	assert.False(t, s.IsWorking)
}

func TestSummarize_FullDay(t *testing.T) {
	records := []model.TimeRecord{
		rec(model.RecordClockIn, at(9, 0)),
		rec(model.RecordBreakStart, at(12, 0)),
		rec(model.RecordBreakEnd, at(12, 30)),
		rec(model.RecordClockOut, at(17, 0)),
	}

	s := Summarize(records, at(23, 0))

	require.NotNil(t, s.ArrivalTime)
	require.NotNil(t, s.DepartureTime)
	assert.Equal(t, at(9, 0), *s.ArrivalTime)
	assert.Equal(t, at(17, 0), *s.DepartureTime)
	assert.Equal(t, "00:30", FormatDuration(s.BreakTime))
	assert.Equal(t, "08:00", FormatDuration(s.WorkingTime))
	assert.Equal(t, "+00:00", FormatFlexTime(s.FlexTime))
	assert.Equal(t, StatusFinished, s.Status)
}

func TestSummarize_ReEntry(t *testing.T) {
	records := []model.TimeRecord{
		rec(model.RecordClockIn, at(8, 0)),
		rec(model.RecordClockOut, at(12, 0)),
		rec(model.RecordClockIn, at(13, 0)),
	}

	s := Summarize(records, at(15, 0))

	require.NotNil(t, s.ArrivalTime)
	require.NotNil(t, s.DepartureTime)
	assert.Equal(t, at(8, 0), *s.ArrivalTime, "first clock-in wins arrival")
	assert.Equal(t, at(12, 0), *s.DepartureTime, "last clock-out wins departure")
	assert.Equal(t, "06:00", FormatDuration(s.WorkingTime))
	assert.Equal(t, StatusWorking, s.Status)
}

func TestSummarize_DoubleClockOut(t *testing.T) {
	records := []model.TimeRecord{
		rec(model.RecordClockIn, at(9, 0)),
		rec(model.RecordClockOut, at(17, 0)),
		rec(model.RecordClockOut, at(17, 5)),
	}

	s := Summarize(records, at(18, 0))

	require.NotNil(t, s.DepartureTime)
	assert.Equal(t, at(17, 5), *s.DepartureTime)
	assert.Equal(t, StatusFinished, s.Status)
}

// A day that ends with a clock-out must summarize identically no matter what
// clock value is supplied.
func TestSummarize_ClosedDayIgnoresNow(t *testing.T) {
	records := []model.TimeRecord{
		rec(model.RecordClockIn, at(9, 0)),
		rec(model.RecordBreakStart, at(12, 0)),
		rec(model.RecordBreakEnd, at(12, 45)),
		rec(model.RecordClockOut, at(16, 30)),
	}

	a := Summarize(records, at(16, 30))
	b := Summarize(records, at(16, 30).Add(48*time.Hour))

	assert.Equal(t, a, b)
}

func TestSummarize_StatusMatchesClassify(t *testing.T) {
	cases := [][]model.TimeRecord{
		nil,
		{rec(model.RecordClockIn, at(9, 0))},
		{rec(model.RecordClockIn, at(9, 0)), rec(model.RecordBreakStart, at(11, 0))},
		{rec(model.RecordClockIn, at(9, 0)), rec(model.RecordClockOut, at(17, 0))},
		{rec(model.RecordBreakEnd, at(10, 0))},
	}

	for _, records := range cases {
		want := ClassifyStatus(records)
		got := Summarize(records, at(18, 0))
		assert.Equal(t, want.Status, got.Status)
		assert.Equal(t, want.IsWorking, got.IsWorking)
		assert.Equal(t, want.IsOnBreak, got.IsOnBreak)
	}
}

func TestSummarize_NetWorkingNeverNegative(t *testing.T) {
	// Open work session with "now" before the session start, as happens when
	// a caller replays a past day with a too-early day end.
	records := []model.TimeRecord{rec(model.RecordClockIn, at(9, 0))}

	s := Summarize(records, at(8, 0))

	assert.GreaterOrEqual(t, s.WorkingTime, time.Duration(0))
}

func TestSortChronological_StableOnTies(t *testing.T) {
	breakEnd := rec(model.RecordBreakEnd, at(12, 30))
	breakStart := rec(model.RecordBreakStart, at(12, 30))
	records := []model.TimeRecord{
		rec(model.RecordClockIn, at(14, 0)),
		breakEnd,
		breakStart,
		rec(model.RecordClockIn, at(9, 0)),
	}

	SortChronological(records)

	assert.Equal(t, at(9, 0), records[0].RecordTime)
	assert.Equal(t, breakEnd, records[1], "insertion order kept for equal timestamps")
	assert.Equal(t, breakStart, records[2])
	assert.Equal(t, at(14, 0), records[3].RecordTime)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "00:30", FormatDuration(30*time.Minute))
	assert.Equal(t, "08:00", FormatDuration(8*time.Hour))
	assert.Equal(t, "10:05", FormatDuration(10*time.Hour+5*time.Minute+59*time.Second))
	assert.Equal(t, "00:00", FormatDuration(-time.Hour))
}

func TestFormatFlexTime(t *testing.T) {
	assert.Equal(t, "+00:00", FormatFlexTime(0))
	assert.Equal(t, "+01:15", FormatFlexTime(75*time.Minute))
	assert.Equal(t, "-08:00", FormatFlexTime(-8*time.Hour))
	assert.Equal(t, "-00:01", FormatFlexTime(-time.Minute))
}
