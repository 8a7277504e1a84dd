package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"boxdrop/internal/domain"
	"boxdrop/internal/utility"
)

const defaultBaseURL = "http://localhost:8080"

const (
	maxRetries = 5
	retryDelay = 1 * time.Second
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	baseURL := os.Getenv("BOXDROP_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	switch os.Args[1] {
	case "create":
		if len(os.Args) != 4 && len(os.Args) != 5 {
			fmt.Fprintf(os.Stderr, "Usage: %s create <text> <deleteAfter> [password]\n", os.Args[0])
			os.Exit(1)
		}
		password := ""
		if len(os.Args) == 5 {
			password = os.Args[4]
		}
		res, err := createBox(baseURL, os.Args[2], os.Args[3], password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create box: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Your box is ready to share:")
		fmt.Printf("Code: %s\n", res.Code)
		fmt.Printf("Token: %s\n", res.Token)
	case "get":
		if len(os.Args) != 3 && len(os.Args) != 4 {
			fmt.Fprintf(os.Stderr, "Usage: %s get <code> [password]\n", os.Args[0])
			os.Exit(1)
		}
		password := ""
		if len(os.Args) == 4 {
			password = os.Args[3]
		}
		box, err := getBox(baseURL, os.Args[2], password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to get box: %v\n", err)
			os.Exit(1)
		}
		printBox(box)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("Usage: %s <command> [arguments]\n", os.Args[0])
	fmt.Println("A simple CLI to drop and pick up boxes.")
	fmt.Println("\nCommands:")
	fmt.Println("  create <text> <deleteAfter> [password]  Create a box with one text message")
	fmt.Println("                                          (deleteAfter: ONE_HOUR, SIX_HOURS, ONE_DAY, THREE_DAYS, ONE_WEEK)")
	fmt.Println("  get <code> [password]                   Retrieve a box by code")
	fmt.Println("  help                                    Show this help message")
	fmt.Println("\nEnvironment variables:")
	fmt.Println("  BOXDROP_API_URL                         Base URL of the boxdrop API (default: http://localhost:8080)")
}

// doRequestWithRetry handles retries for serverless instances that may
// need to wake up.
func doRequestWithRetry(req *http.Request) (*http.Response, error) {
	client := &http.Client{}

	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			fmt.Fprintf(os.Stderr, "server returned 502, retrying in %v... (%d/%d)\n", retryDelay, i, maxRetries-1)
			time.Sleep(retryDelay)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusBadGateway {
			return resp, nil
		}

		resp.Body.Close()
	}

	return nil, fmt.Errorf("server unavailable after %d retries", maxRetries)
}

func postJSON(url string, body, out any) error {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(reqBody)), nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := doRequestWithRetry(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errRes utility.ErrorRes
		if err := json.NewDecoder(resp.Body).Decode(&errRes); err == nil && errRes.Error != "" {
			return fmt.Errorf("%s: %s", errRes.Error, errRes.Message)
		}
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func createBox(baseURL, text, deleteAfter, password string) (*domain.CreateBoxRes, error) {
	req := domain.CreateBoxReq{
		Data:        []domain.Message{{Type: domain.MessageText, Text: text}},
		DeleteAfter: deleteAfter,
		Password:    password,
	}
	var res domain.CreateBoxRes
	if err := postJSON(baseURL+"/box", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func getBox(baseURL, code, password string) (*domain.GetBoxRes, error) {
	req := domain.GetBoxReq{Code: code, Password: password}
	var res domain.GetBoxRes
	if err := postJSON(baseURL+"/box/get", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func printBox(box *domain.GetBoxRes) {
	fmt.Printf("Box %s (%s)\n", box.Code, box.Name)
	if box.Description != "" {
		fmt.Printf("Description: %s\n", box.Description)
	}
	fmt.Printf("Expires: %s\n", box.DeleteAfter.Format(time.RFC1123))
	for i, m := range box.Data {
		switch m.Type {
		case domain.MessageFile:
			fmt.Printf("%d. file %s (%s)\n", i+1, m.FileName, m.FileURL)
		default:
			fmt.Printf("%d. %s\n", i+1, m.Text)
		}
	}
}
