// Package client talks to the panel API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"alfredoptarigan/virtual-panel/internal/models"
)

const DefaultBaseURL = "http://localhost:5000"

// APIError is a non-2xx answer decoded from the failure envelope.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api http %d: %s (%s)", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api http %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var out models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateQuestions(ctx context.Context, role, name string) (*models.QuestionsResponse, error) {
	var out models.QuestionsResponse
	if err := c.postJSON(ctx, "/api/interview/questions", models.QuestionsRequest{Role: role, Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeInterview(ctx context.Context, transcript []models.TranscriptEntry, role, name string) (*models.InterviewAnalysisResponse, error) {
	req := models.AnalyzeInterviewRequest{Transcript: transcript, Role: role, Name: name}

	var out models.InterviewAnalysisResponse
	if err := c.postJSON(ctx, "/api/interview/analyze", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeResume uploads pdf as the multipart field "resume".
func (c *Client) AnalyzeResume(ctx context.Context, filename string, pdf io.Reader) (*models.ResumeAnalysisResponse, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, filepath.Base(filename)))
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, pdf); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var out models.ResumeAnalysisResponse
	if err := c.do(ctx, http.MethodPost, "/api/resume/analyze", &body, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope models.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Message == "" {
			envelope.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message, Detail: envelope.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
