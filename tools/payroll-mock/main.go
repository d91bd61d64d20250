package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// A simple struct to capture the incoming event data
type DayClosedEvent struct {
	SummaryID      int64     `json:"summaryId"`
	EmployeeID     string    `json:"employeeId"`
	WorkDate       string    `json:"workDate"`
	WorkingMinutes int       `json:"workingMinutes"`
	BreakMinutes   int       `json:"breakMinutes"`
	FlexMinutes    int       `json:"flexMinutes"`
	ClockOutTime   time.Time `json:"clockOutTime"`
}

func exportHandler(w http.ResponseWriter, r *http.Request) {
	var event DayClosedEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	log.Printf("Received day export for EmployeeID: %s, Date: %s, Working minutes: %d",
		event.EmployeeID, event.WorkDate, event.WorkingMinutes)
	w.WriteHeader(http.StatusOK)
}

func main() {
	http.HandleFunc("/", exportHandler)
	log.Println("Payroll API mock server starting on port 8081...")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
