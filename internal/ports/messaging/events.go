package messaging

import "time"

// DayClosedEvent is the JSON payload published when an employee clocks out.
// Both the notify queue and the payroll-export queue receive it.
type DayClosedEvent struct {
	SummaryID      int64     `json:"summaryId"`
	EmployeeID     string    `json:"employeeId"`
	WorkDate       string    `json:"workDate"`
	WorkingMinutes int       `json:"workingMinutes"`
	BreakMinutes   int       `json:"breakMinutes"`
	FlexMinutes    int       `json:"flexMinutes"`
	ClockOutTime   time.Time `json:"clockOutTime"`
}
