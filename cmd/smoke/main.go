// Command smoke exercises a running server started with the memory catalog.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("WARDROBE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test...")

	steps := []struct {
		name       string
		endpoint   string
		payload    interface{}
		wantStatus int
	}{
		{"Recommendations", "/recommendations", map[string]interface{}{"productId": 5}, http.StatusOK},
		{"Filtered recommendations", "/recommendations", map[string]interface{}{"productId": 5, "categoryFilter": "bags"}, http.StatusOK},
		{"Chat greeting", "/chat", map[string]interface{}{"productId": 5, "userMessage": "Hi there"}, http.StatusOK},
		{"Chat category request", "/chat", map[string]interface{}{"productId": 5, "userMessage": "show me other bags"}, http.StatusOK},
		{"Chat style tips", "/chat", map[string]interface{}{"productId": 5, "userMessage": "any style tips?"}, http.StatusOK},
		{"Unknown product", "/recommendations", map[string]interface{}{"productId": 999}, http.StatusBadRequest},
	}

	for i, step := range steps {
		fmt.Printf("%d. %s...\n", i+1, step.name)
		if !sendRequest(baseURL, step.endpoint, step.payload, step.wantStatus) {
			fmt.Printf("FAILED: %s\n", step.name)
			os.Exit(1)
		}
		fmt.Printf("PASSED: %s\n", step.name)
	}
}

func sendRequest(baseURL, endpoint string, payload interface{}, wantStatus int) bool {
	jsonBytes, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, baseURL+endpoint, bytes.NewBuffer(jsonBytes))
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}

	var decoded struct {
		Success             bool              `json:"success"`
		RecommendedProducts []json.RawMessage `json:"recommendedProducts"`
	}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		fmt.Printf("Response is not JSON: %v\n", err)
		return false
	}
	if decoded.Success != (wantStatus == http.StatusOK) || len(decoded.RecommendedProducts) > 12 {
		fmt.Printf("Unexpected response: %s\n", string(respBody))
		return false
	}

	fmt.Printf("Response: %s\n", string(respBody))
	return true
}
