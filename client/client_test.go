package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer returns a client talking to a server that records the
// last request body and answers with the given status and response.
func newTestServer(t *testing.T, path string, status int, response string) (*Client, *map[string]any) {
	t.Helper()
	got := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, path, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL + "/")), &got
}

func TestOCR(t *testing.T) {
	c, got := newTestServer(t, "/api/ocr", http.StatusOK, `{"text":"x = 2","tokenCount":17}`)

	res, err := c.OCR(context.Background(), "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "x = 2", res.Text)
	assert.Equal(t, 17, res.TokenCount)
	assert.Equal(t, map[string]any{"imageBase64": "data:image/png;base64,AAAA"}, *got)
}

func TestOCRNoImage(t *testing.T) {
	_, err := New(WithBaseURL("http://127.0.0.1:1")).OCR(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestQuestion(t *testing.T) {
	c, got := newTestServer(t, "/api/question", http.StatusOK,
		`{"questionLatex":"question_latex: $$\\text{Find x}; x+1=2$$","answerText":"1","tokenCount":3}`)

	q, err := c.Question(context.Background(), Physics, Hard)
	require.NoError(t, err)
	assert.Equal(t, `\text{Find x} \\ x+1=2`, q.Latex)
	assert.Equal(t, "1", q.AnswerText)
	assert.Equal(t, 3, q.TokenCount)
	assert.Equal(t, map[string]any{"subject": "physics", "level": "hard"}, *got)
}

func TestQuestionInvalid(t *testing.T) {
	c := New(WithBaseURL("http://127.0.0.1:1"))
	_, err := c.Question(context.Background(), "history", Easy)
	assert.Error(t, err)
	_, err = c.Question(context.Background(), Math, "impossible")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	c, got := newTestServer(t, "/api/check", http.StatusOK,
		`{"feedback":"Correct: $x=1$.","tokenCount":40}`)

	q := &Question{Latex: `x+1=2`, AnswerText: "1"}
	fb, err := c.Check(context.Background(), "data:image/png;base64,AAAA", q, Math, Medium)
	require.NoError(t, err)
	assert.Equal(t, "Correct: $x=1$.", fb.Text)
	assert.Equal(t, 40, fb.TokenCount)
	assert.Equal(t, map[string]any{
		"imageBase64":   "data:image/png;base64,AAAA",
		"questionLatex": "x+1=2",
		"answerText":    "1",
		"subject":       "math",
		"level":         "medium",
	}, *got)
}

func TestCheckMissingInput(t *testing.T) {
	c := New(WithBaseURL("http://127.0.0.1:1"))
	_, err := c.Check(context.Background(), "", &Question{}, Math, Easy)
	assert.ErrorIs(t, err, ErrNoImage)
	_, err = c.Check(context.Background(), "data:,", nil, Math, Easy)
	assert.Error(t, err)
}

func TestAPIError(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     string
	}{
		{"details", `{"error":"bad","details":"image too small"}`, "image too small"},
		{"error", `{"error":"quota exceeded"}`, "quota exceeded"},
		{"empty", `{}`, "OCR failed"},
		{"not_json", `<html>gateway</html>`, "OCR failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestServer(t, "/api/ocr", http.StatusBadGateway, tc.response)
			_, err := c.OCR(context.Background(), "data:,")

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "got %v", err)
			assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
			assert.Equal(t, tc.want, apiErr.Message)
			assert.Equal(t, "/api/ocr", apiErr.Endpoint)
		})
	}
}

func TestBadResponse(t *testing.T) {
	c, _ := newTestServer(t, "/api/check", http.StatusOK, `not json`)
	_, err := c.Check(context.Background(), "data:,", &Question{}, Chemistry, Easy)
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestContextCanceled(t *testing.T) {
	c, _ := newTestServer(t, "/api/ocr", http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.OCR(ctx, "data:,")
	assert.ErrorIs(t, err, context.Canceled)
}
