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

const (
	baseURL = "http://localhost:8080"
)

type submitResult struct {
	Outcome   string `json:"outcome"`
	Positions []int  `json:"positions"`
}

type historyRecord struct {
	Entries []struct {
		Text        string `json:"text"`
		Color       string `json:"color"`
		Highlighted bool   `json:"highlighted"`
	} `json:"entries"`
}

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Exact mode
	fmt.Println("1. Switching to exact mode...")
	if _, ok := sendRequest("PUT", "/policy", map[string]string{"policy": "exact"}); !ok {
		fail("Set policy")
	}
	fmt.Println("PASSED: Set policy")

	// 2. Enter words
	fmt.Println("2. Entering words...")
	var last submitResult
	for _, word := range []string{"apple", "banana", "cherry", "apple"} {
		body, ok := sendRequest("POST", "/words", map[string]string{"word": word})
		if !ok {
			fail("Submit " + word)
		}
		if err := json.Unmarshal(body, &last); err != nil {
			fail("Decode submit result: " + err.Error())
		}
	}
	if last.Outcome != "duplicate" || len(last.Positions) != 1 || last.Positions[0] != 1 {
		fail(fmt.Sprintf("Expected duplicate at position 1, got %+v", last))
	}
	fmt.Println("PASSED: Duplicate detected at position 1")

	// 3. Close the round
	fmt.Println("3. Closing round...")
	body, ok := sendRequest("POST", "/round/close", nil)
	if !ok {
		fail("Close round")
	}
	var rec historyRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		fail("Decode history record: " + err.Error())
	}
	if len(rec.Entries) != 4 {
		fail(fmt.Sprintf("Expected 4 entries in history record, got %d", len(rec.Entries)))
	}
	first, dup := rec.Entries[0], rec.Entries[3]
	if !first.Highlighted || !dup.Highlighted || first.Color != dup.Color {
		fail("Expected both apples highlighted with the same color")
	}
	fmt.Println("PASSED: Round recorded in history")

	fmt.Println("Integration Test Completed Successfully")
}

func fail(step string) {
	fmt.Println("FAILED:", step)
	os.Exit(1)
}

func sendRequest(method, path string, payload interface{}) ([]byte, bool) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Error marshaling payload: %v\n", err)
			return nil, false
		}
		reader = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Response Status: %s\n", resp.Status)
	fmt.Printf("Response Body: %s\n", string(body))

	return body, resp.StatusCode == http.StatusOK
}
