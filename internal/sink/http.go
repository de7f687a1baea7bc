package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrTransportFailure = errors.New("transport failure")

const maxErrorBody = 512

// TransportError describes a batch the API did not accept.
type TransportError struct {
	Kind       entity.Kind
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("POST %s (%s) failed: %v", e.URL, e.Kind, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("POST %s (%s) returned %d: %s", e.URL, e.Kind, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("POST %s (%s) returned %d", e.URL, e.Kind, e.StatusCode)
}

func (e *TransportError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrTransportFailure, e.Err}
	}
	return []error{ErrTransportFailure}
}

type HTTPSink struct {
	baseURL string
	client  *http.Client
	log     logrus.FieldLogger
}

type Option func(*HTTPSink)

func WithClient(c *http.Client) Option {
	return func(s *HTTPSink) { s.client = c }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *HTTPSink) { s.log = l }
}

func NewHTTPSink(baseURL string, timeout time.Duration, opts ...Option) *HTTPSink {
	s := &HTTPSink{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSink) URL(kind entity.Kind) (string, error) {
	endpoint, err := Endpoint(kind)
	if err != nil {
		return "", err
	}
	return s.baseURL + endpoint, nil
}

// Submit posts the whole batch as one JSON array. Anything but a 2xx
// response is a TransportError; nothing is retried.
func (s *HTTPSink) Submit(ctx context.Context, kind entity.Kind, batch []entity.Record) error {
	url, err := s.URL(kind)
	if err != nil {
		return err
	}

	if batch == nil {
		batch = []entity.Record{}
	}
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to encode %s batch: %w", kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Kind: kind, URL: url, Err: err}
	}
	q := req.URL.Query()
	q.Set("batch", "true")
	req.URL.RawQuery = q.Encode()

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := s.log.WithFields(logrus.Fields{
		"kind":       kind.String(),
		"url":        url,
		"count":      len(batch),
		"request_id": requestID,
	})
	log.Debug("sending batch")

	resp, err := s.client.Do(req)
	if err != nil {
		log.WithError(err).Error("request failed")
		return &TransportError{Kind: kind, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.WithField("status", resp.StatusCode).Error("batch rejected")
		return &TransportError{
			Kind:       kind,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		log.WithError(err).Debug("failed to drain response body")
	}
	log.WithField("status", resp.StatusCode).Info("batch accepted")
	return nil
}
