// seehuhn.de/go/ink - freehand ink capture and math markup
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package client talks to the remote recognition and tutoring service:
// handwriting recognition of exported ink, question generation and
// answer checking. All requests are JSON over HTTP POST.
package client

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

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/markup"
)

// DefaultBaseURL is the address of the public service.
const DefaultBaseURL = "https://back-eduhpro.onrender.com"

// ErrNoImage is returned when a request needs an image but none was given.
var ErrNoImage = errors.New("no image to send")

// Subject is the topic of generated questions.
type Subject string

const (
	Math      Subject = "math"
	Physics   Subject = "physics"
	Chemistry Subject = "chemistry"
)

// Subjects lists all supported subjects.
var Subjects = []Subject{Math, Physics, Chemistry}

// Level is the difficulty of generated questions.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

// Levels lists all supported difficulty levels.
var Levels = []Level{Easy, Medium, Hard}

// APIError is returned when the service answers with a non-2xx status.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Endpoint, e.Message, e.StatusCode)
}

// Client is a client for the remote service. It is safe for concurrent
// use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the service address.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request tracing.
// The default is the logger of the ink package at the time New is called.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New returns a client for the service.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: ink.Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = ink.Logger()
	}
	return c
}

// Recognition is the text read from an image of handwriting.
type Recognition struct {
	Text       string `json:"text"`
	TokenCount int    `json:"tokenCount"`
}

// OCR sends an exported image (in data URL form) for handwriting
// recognition.
func (c *Client) OCR(ctx context.Context, image string) (*Recognition, error) {
	if image == "" {
		return nil, ErrNoImage
	}
	req := struct {
		ImageBase64 string `json:"imageBase64"`
	}{image}

	res := &Recognition{}
	if err := c.post(ctx, "/api/ocr", "OCR failed", req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Question is a generated exercise.
type Question struct {
	// Latex is the question text, already passed through
	// [markup.CleanQuestion].
	Latex      string `json:"questionLatex"`
	AnswerText string `json:"answerText"`
	TokenCount int    `json:"tokenCount"`
}

// Question requests a new exercise.
func (c *Client) Question(ctx context.Context, subject Subject, level Level) (*Question, error) {
	if err := validate(subject, level); err != nil {
		return nil, err
	}
	req := struct {
		Subject Subject `json:"subject"`
		Level   Level   `json:"level"`
	}{subject, level}

	res := &Question{}
	if err := c.post(ctx, "/api/question", "Question failed to load", req, res); err != nil {
		return nil, err
	}
	res.Latex = markup.CleanQuestion(res.Latex)
	return res, nil
}

// Feedback is the service's assessment of a handwritten answer. The text
// may contain inline formulas, see [markup.SplitInline].
type Feedback struct {
	Text       string `json:"feedback"`
	TokenCount int    `json:"tokenCount"`
}

// Check sends an exported image of a handwritten answer to q for
// assessment.
func (c *Client) Check(ctx context.Context, image string, q *Question, subject Subject, level Level) (*Feedback, error) {
	if image == "" {
		return nil, ErrNoImage
	}
	if q == nil {
		return nil, errors.New("no question to check against")
	}
	if err := validate(subject, level); err != nil {
		return nil, err
	}
	req := struct {
		ImageBase64   string  `json:"imageBase64"`
		QuestionLatex string  `json:"questionLatex"`
		AnswerText    string  `json:"answerText"`
		Subject       Subject `json:"subject"`
		Level         Level   `json:"level"`
	}{image, q.Latex, q.AnswerText, subject, level}

	res := &Feedback{}
	if err := c.post(ctx, "/api/check", "Check failed", req, res); err != nil {
		return nil, err
	}
	return res, nil
}

func validate(subject Subject, level Level) error {
	switch subject {
	case Math, Physics, Chemistry:
	default:
		return fmt.Errorf("unknown subject %q", subject)
	}
	switch level {
	case Easy, Medium, Hard:
	default:
		return fmt.Errorf("unknown level %q", level)
	}
	return nil
}

// errorBody is the shape of error responses.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// post sends body as JSON to endpoint and decodes the response into res.
func (c *Client) post(ctx context.Context, endpoint, failure string, body, res any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", endpoint, err)
	}
	c.logger.Debug("service request", "endpoint", endpoint,
		"status", resp.StatusCode, "bytes", len(data), "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    failure,
		}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			if eb.Details != "" {
				apiErr.Message = eb.Details
			} else if eb.Error != "" {
				apiErr.Message = eb.Error
			}
		}
		c.logger.Warn("service error", "endpoint", endpoint,
			"status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if err := json.Unmarshal(data, res); err != nil {
		return fmt.Errorf("%s: failed to parse response: %w", endpoint, err)
	}
	return nil
}
