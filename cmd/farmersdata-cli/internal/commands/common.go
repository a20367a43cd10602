package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/config"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// apiClient issues JSON requests against the FarmersData REST API.
type apiClient struct {
	httpClient *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do sends a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil. Non-2xx responses surface the
// server's error message.
func (c *apiClient) do(method, url string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errorResponse struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(payload, &errorResponse); err == nil && errorResponse.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, errorResponse.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// apiURLFlag reads the shared --api-url flag.
func apiURLFlag(cmd *cobra.Command) (string, error) {
	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		return "", fmt.Errorf("invalid api-url flag: %w", err)
	}
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return apiURL, nil
}
