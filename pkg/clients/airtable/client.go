package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client defines the interface for interacting with Airtable API
type Client interface {
	RecordExists(ctx context.Context, table, hash string) (bool, error)
	CreateRecord(ctx context.Context, table string, fields map[string]interface{}) error
}

type clientImpl struct {
	apiKey     string
	baseID     string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Airtable client. endpoint is the API root,
// normally https://api.airtable.com/v0.
func NewClient(apiKey, baseID, endpoint string, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &clientImpl{
		apiKey:     apiKey,
		baseID:     baseID,
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger.Named("airtable"),
	}
}

func (c *clientImpl) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.endpoint, url.PathEscape(c.baseID), url.PathEscape(table))
}

func (c *clientImpl) RecordExists(ctx context.Context, table, hash string) (bool, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf(`{hash}="%s"`, hash))
	query.Set("maxRecords", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(table)+"?"+query.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)

	body, err := c.do(req)
	if err != nil {
		return false, fmt.Errorf("error checking Airtable: %w", err)
	}

	var response struct {
		Records []struct {
			ID string `json:"id"`
		} `json:"records"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return false, fmt.Errorf("error parsing response: %w", err)
	}

	exists := len(response.Records) > 0
	c.logger.Debug("record check",
		zap.String("table", table),
		zap.String("hash", hash),
		zap.Bool("exists", exists))
	return exists, nil
}

func (c *clientImpl) CreateRecord(ctx context.Context, table string, fields map[string]interface{}) error {
	payload := map[string]interface{}{
		"records": []map[string]interface{}{
			{"fields": fields},
		},
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("error creating Airtable record: %w", err)
	}

	c.logger.Info("created record", zap.String("table", table))
	return nil
}

func (c *clientImpl) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airtable returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
