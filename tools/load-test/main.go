package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Registers a batch of throwaway accounts and punches each one in and out,
// measuring throughput of the write path end to end.
func main() {
	baseURL := "http://localhost:8080/api/v1"
	contentType := "application/json"

	numEmployees := 1000
	concurrency := 50 // Limit concurrent requests to avoid local port exhaustion

	fmt.Printf("Starting load test: %d employees against %s with concurrency %d\n", numEmployees, baseURL, concurrency)

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	var successCount int64
	var failCount int64

	startTime := time.Now()

	for i := 0; i < numEmployees; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(n int) {
			defer wg.Done()
			defer func() { <-sem }()

			email := fmt.Sprintf("load-test-%d@example.com", n)
			payload := []byte(fmt.Sprintf(
				`{"email": %q, "password": "load-test-pass", "firstName": "Load", "lastName": "Tester %d"}`,
				email, n))

			resp, err := http.Post(baseURL+"/auth/register", contentType, bytes.NewBuffer(payload))
			if err != nil {
				atomic.AddInt64(&failCount, 1)
				return
			}
			var login struct {
				Token string `json:"token"`
			}
			err = json.NewDecoder(resp.Body).Decode(&login)
			resp.Body.Close()
			if err != nil || login.Token == "" {
				atomic.AddInt64(&failCount, 1)
				return
			}

			for _, path := range []string{"/timetrack/clock-in", "/timetrack/clock-out"} {
				req, _ := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewBufferString("{}"))
				req.Header.Set("Content-Type", contentType)
				req.Header.Set("Authorization", "Bearer "+login.Token)

				resp, err := http.DefaultClient.Do(req)
				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}
				if resp.StatusCode >= 200 && resp.StatusCode < 300 {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
				resp.Body.Close()
			}
		}(i)
	}

	wg.Wait()
	duration := time.Since(startTime)

	fmt.Println("\n--- Load Test Results ---")
	fmt.Printf("Total Duration: %v\n", duration)
	fmt.Printf("Successful:     %d\n", successCount)
	fmt.Printf("Failed:         %d\n", failCount)
	fmt.Printf("Requests/Sec:   %.2f\n", float64(successCount+failCount)/duration.Seconds())
}
