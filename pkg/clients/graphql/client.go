package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrTransport marks failures to reach the server or read its reply.
var ErrTransport = errors.New("graphql transport error")

// ResponseError carries the errors array returned by the server.
type ResponseError struct {
	Messages []string
}

func (e *ResponseError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// Client defines the interface for calling a GraphQL endpoint
type Client interface {
	// Do posts query with variables and decodes the data object into out.
	Do(ctx context.Context, query string, variables map[string]any, out any) error
}

type clientImpl struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new GraphQL client
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) Client {
	return &clientImpl{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *clientImpl) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	jsonPayload, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: error calling %s: %v", ErrTransport, c.endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: error reading response: %v", ErrTransport, err)
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Debug("unparseable graphql response", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("%w: error parsing response (status %d): %v", ErrTransport, resp.StatusCode, err)
	}

	if len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			msgs = append(msgs, e.Message)
		}
		c.logger.Warn("graphql errors", "status", resp.StatusCode, "errors", msgs)
		return &ResponseError{Messages: msgs}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if len(parsed.Data) == 0 || string(parsed.Data) == "null" {
		return fmt.Errorf("%w: response carried no data", ErrTransport)
	}
	if err := json.Unmarshal(parsed.Data, out); err != nil {
		return fmt.Errorf("%w: error decoding data: %v", ErrTransport, err)
	}
	return nil
}
