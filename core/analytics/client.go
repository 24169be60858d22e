// Package analytics publishes named session events to an ingestion endpoint
// over a websocket. It implements the session core's analytics publisher
// contract; publish failures are logged, never surfaced to the caller.
package analytics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type IngestClient struct {
	connMu sync.Mutex
	conn   *websocket.Conn

	source string
}

type IngestOption func(*IngestClient)

// WithSource tags every published event with an originating source label.
func WithSource(source string) IngestOption {
	return func(c *IngestClient) { c.source = source }
}

// Dial opens the ingestion websocket. token, when non-empty, is sent as a
// bearer authorization header.
func Dial(ingestURL, token string, opts ...IngestOption) (*IngestClient, error) {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := websocket.DefaultDialer.Dial(ingestURL, header)
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to analytics ingest: %w", err)
	}

	client := &IngestClient{conn: conn, source: "meet-core"}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

type ingestRecord struct {
	ID          string            `json:"id"`
	Source      string            `json:"source"`
	Name        string            `json:"name"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	TimestampMs int64             `json:"timestampMs"`
}

// Publish sends one named event with optional attributes. Events are
// fire-and-forget: a write failure is logged and the event dropped.
func (c *IngestClient) Publish(name string, attributes map[string]string) {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return
	}

	record := ingestRecord{
		ID:          uuid.NewString(),
		Source:      c.source,
		Name:        name,
		Attributes:  attributes,
		TimestampMs: time.Now().UnixMilli(),
	}
	if err := c.conn.WriteJSON(record); err != nil {
		logger.Warn("failed to write analytics event", "event", name, "error", err)
	}
}

// Close sends a normal closure frame and releases the connection.
func (c *IngestClient) Close() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return nil
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	err := c.conn.Close()
	c.conn = nil
	if err != nil {
		return fmt.Errorf("failed to close analytics ingest connection: %w", err)
	}
	return nil
}
