// Package timeclock derives an employee's current work status and daily
// summary from the day's time records. All functions are pure: they take an
// event snapshot and a clock value and never touch storage or globals.
package timeclock

import (
	"fmt"
	"sort"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
)

// StandardWorkDay is the reference length a day's flex time is measured
// against.
const StandardWorkDay = 8 * time.Hour

// WorkStatus is the derived state of an employee on a given day.
type WorkStatus string

const (
	StatusNotStarted WorkStatus = "Not Started"
	StatusWorking    WorkStatus = "Working"
	StatusBreak      WorkStatus = "Break"
	StatusFinished   WorkStatus = "Finished"
)

// StatusResult is the outcome of classifying a day's records.
type StatusResult struct {
	Status    WorkStatus
	IsWorking bool
	IsOnBreak bool
}

// DailySummary aggregates one employee's day. ArrivalTime and DepartureTime
// are nil when the day has no clock-in or clock-out yet.
type DailySummary struct {
	ArrivalTime   *time.Time
	DepartureTime *time.Time
	BreakTime     time.Duration
	WorkingTime   time.Duration
	FlexTime      time.Duration

	Status    WorkStatus
	IsWorking bool
	IsOnBreak bool
}

// SortChronological orders records by timestamp, stably, so that records
// punched in the same instant keep their insertion order. Insertion order is
// the documented tie-break for equal timestamps.
func SortChronological(records []model.TimeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordTime.Before(records[j].RecordTime)
	})
}

// ClassifyStatus derives the employee's current state from one day's records,
// which must be in ascending timestamp order. It is total: any finite record
// list yields a result.
//
// A single scan keeps the latest occurrence of each record type; the employee
// counts as clocked in when the latest clock-in is strictly after the latest
// clock-out (or no clock-out exists), and as on break when the latest
// break-start is strictly after the latest break-end (or no break-end exists).
func ClassifyStatus(records []model.TimeRecord) StatusResult {
	if len(records) == 0 {
		return StatusResult{Status: StatusNotStarted}
	}

	var lastClockIn, lastClockOut, lastBreakStart, lastBreakEnd *time.Time
	for i := range records {
		t := records[i].RecordTime
		switch records[i].RecordType {
		case model.RecordClockIn:
			lastClockIn = &t
		case model.RecordClockOut:
			lastClockOut = &t
		case model.RecordBreakStart:
			lastBreakStart = &t
		case model.RecordBreakEnd:
			lastBreakEnd = &t
		}
	}

	clockedIn := lastClockIn != nil && (lastClockOut == nil || lastClockIn.After(*lastClockOut))
	onBreak := lastBreakStart != nil && (lastBreakEnd == nil || lastBreakStart.After(*lastBreakEnd))

	switch {
	case clockedIn && !onBreak:
		return StatusResult{Status: StatusWorking, IsWorking: true}
	case clockedIn && onBreak:
		return StatusResult{Status: StatusBreak, IsOnBreak: true}
	case lastClockOut != nil:
		return StatusResult{Status: StatusFinished}
	default:
		return StatusResult{Status: StatusNotStarted}
	}
}

type sessionKind int

const (
	sessionNone sessionKind = iota
	sessionWork
	sessionBreak
)

// Summarize walks one day's records once and accumulates work and break
// session durations. An open session at the end of the scan is extended to
// now, so for a past day the caller should pass that day's end as now.
//
// The status fields come from ClassifyStatus over the same records, never
// from the session totals, so the two derivations cannot disagree.
func Summarize(records []model.TimeRecord, now time.Time) DailySummary {
	var (
		arrival, departure *time.Time
		sessionStart       time.Time
		session            = sessionNone
		totalWorking       time.Duration
		totalBreak         time.Duration
	)

	for i := range records {
		t := records[i].RecordTime
		switch records[i].RecordType {
		case model.RecordClockIn:
			if arrival == nil {
				arrival = &t
			}
			// A clock-in always opens a fresh work session; any session
			// still open at this point loses its time attribution. The
			// write gate keeps that state unreachable for normal punches.
			sessionStart = t
			session = sessionWork
		case model.RecordBreakStart:
			if session == sessionWork {
				totalWorking += t.Sub(sessionStart)
			}
			sessionStart = t
			session = sessionBreak
		case model.RecordBreakEnd:
			if session == sessionBreak {
				totalBreak += t.Sub(sessionStart)
			}
			sessionStart = t
			session = sessionWork
		case model.RecordClockOut:
			departure = &t
			switch session {
			case sessionWork:
				totalWorking += t.Sub(sessionStart)
			case sessionBreak:
				totalBreak += t.Sub(sessionStart)
			}
			session = sessionNone
		}
	}

	switch session {
	case sessionWork:
		totalWorking += now.Sub(sessionStart)
	case sessionBreak:
		totalBreak += now.Sub(sessionStart)
	}

	if totalWorking < 0 {
		totalWorking = 0
	}

	status := ClassifyStatus(records)

	return DailySummary{
		ArrivalTime:   arrival,
		DepartureTime: departure,
		BreakTime:     totalBreak,
		WorkingTime:   totalWorking,
		FlexTime:      totalWorking - StandardWorkDay,
		Status:        status.Status,
		IsWorking:     status.IsWorking,
		IsOnBreak:     status.IsOnBreak,
	}
}

// FormatDuration renders a non-negative duration as zero-padded HH:MM,
// truncated to whole minutes.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatFlexTime renders a signed duration as ±HH:MM; zero gets a plus sign.
func FormatFlexTime(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	m := int(d.Minutes())
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}
