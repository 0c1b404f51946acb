package db

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// SolveRecord represents a record in the PocketBase "solves" collection.
type SolveRecord struct {
	ID       string `json:"id"`
	Puzzle   string `json:"puzzle"`
	Solution string `json:"solution"`
	Nodes    int    `json:"nodes"`
	Millis   int64  `json:"millis"`
	Created  string `json:"created"`
	Updated  string `json:"updated"`
}

var client *pocketbase.Client

// Connect loads credentials from the environment (and a .env file when
// present), creates the PocketBase client and performs the initial
// authorization. A background ticker re-authenticates every 30 minutes so
// long-running batch uploads keep a valid token.
func Connect() error {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		return fmt.Errorf("POCKETBASE_URL is not set")
	}

	client = pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
		))

	if err := client.Authorize(); err != nil {
		return fmt.Errorf("authentication failed: %v", err)
	}

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := client.Authorize(); err != nil {
				logrus.Warnf("re-authentication failed: %v", err)
			}
		}
	}()
	return nil
}

// UploadSolve stores one solve result and returns the created record.
// Puzzles already present in the collection are rejected so repeated runs
// do not pile up duplicates.
func UploadSolve(puzzle, solution string, nodes int, dur time.Duration) (*pocketbase.ResponseCreate, error) {
	if client == nil {
		return nil, fmt.Errorf("not connected: call Connect first")
	}

	exists, err := SolveExists(puzzle)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing solve: %v", err)
	}
	if exists {
		return nil, fmt.Errorf("solve for this puzzle already exists")
	}

	data := map[string]any{
		"puzzle":   puzzle,
		"solution": solution,
		"nodes":    nodes,
		"millis":   dur.Milliseconds(),
	}
	record, err := client.Create("solves", data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload solve: %v", err)
	}
	return &record, nil
}

// GetSolve loads a stored solve by record ID.
func GetSolve(id string) (*SolveRecord, error) {
	if client == nil {
		return nil, fmt.Errorf("not connected: call Connect first")
	}

	record, err := client.One("solves", id)
	if err != nil {
		return nil, fmt.Errorf("failed to load solve %s: %v", id, err)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal solve record: %v", err)
	}
	var rec SolveRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solve record: %v", err)
	}
	return &rec, nil
}

// ListSolves returns one page of stored solves, newest first.
func ListSolves(page, perPage int) (*pocketbase.ResponseList[map[string]any], error) {
	if client == nil {
		return nil, fmt.Errorf("not connected: call Connect first")
	}

	params := pocketbase.ParamsList{
		Page: page,
		Size: perPage,
		Sort: "-created",
	}
	result, err := client.List("solves", params)
	return &result, err
}

// SolveExists reports whether a solve for the given puzzle string is
// already stored.
func SolveExists(puzzle string) (bool, error) {
	params := pocketbase.ParamsList{
		Page:    1,
		Size:    1,
		Filters: fmt.Sprintf("puzzle = %q", puzzle),
	}
	result, err := client.List("solves", params)
	if err != nil {
		return false, err
	}
	return len(result.Items) > 0, nil
}
