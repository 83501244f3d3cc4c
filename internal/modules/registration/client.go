package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"usersignup/internal/domain"
)

const registerPath = "/users/register"

// maxErrorBody bounds how much of an error answer is read.
const maxErrorBody = 1 << 20

// Client calls the backend registration endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL. A nil httpClient means
// http.DefaultClient; no timeout is imposed beyond the caller's context.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Register issues a single POST <baseURL>/users/register.
func (c *Client) Register(ctx context.Context, req RegisterRequest) Result {
	body, err := json.Marshal(req)
	if err != nil {
		return TransportFailure{Err: fmt.Errorf("encode register request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+registerPath, bytes.NewReader(body))
	if err != nil {
		return TransportFailure{Err: fmt.Errorf("build register request: %w", err)}
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("registration_request request_id=%s error=%q", requestID, err.Error())
		return TransportFailure{Err: err}
	}
	defer resp.Body.Close()

	log.Printf("registration_request request_id=%s status=%d latency=%s", requestID, resp.StatusCode, time.Since(start))

	return decodeResponse(resp)
}

func decodeResponse(resp *http.Response) Result {
	switch {
	case resp.StatusCode == http.StatusCreated:
		var out registerResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return TransportFailure{Err: fmt.Errorf("decode register response: %w", err)}
		}
		return Registered{Session: sessionFrom(out)}

	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return Unexpected{Status: resp.StatusCode}
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	body := parseErrorBody(raw)

	if len(body.Errors) > 0 {
		errs := make([]FieldError, 0, len(body.Errors))
		for _, e := range body.Errors {
			errs = append(errs, fieldErrorFrom(e))
		}
		return ValidationFailed{Status: resp.StatusCode, Errors: errs}
	}
	if msg, ok := body.Message.(string); ok {
		return Rejected{Status: resp.StatusCode, Message: msg}
	}

	return TransportFailure{Err: &StatusError{Status: resp.StatusCode}}
}

// parseErrorBody decodes what it can; a body that is not JSON, or whose
// "errors" is not an array of objects, yields an empty errorBody.
func parseErrorBody(raw []byte) errorBody {
	var envelope struct {
		Errors  json.RawMessage `json:"errors"`
		Message any             `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return errorBody{}
	}

	body := errorBody{Message: envelope.Message}
	var items []json.RawMessage
	if err := json.Unmarshal(envelope.Errors, &items); err != nil {
		return body
	}
	for _, item := range items {
		var obj map[string]any
		// non-object entries still count, they just carry no message
		_ = json.Unmarshal(item, &obj)
		body.Errors = append(body.Errors, obj)
	}
	return body
}

func fieldErrorFrom(e map[string]any) FieldError {
	var fe FieldError
	fe.Message, _ = e["msg"].(string)
	if path, ok := e["path"].(string); ok {
		fe.Field = path
	} else if param, ok := e["param"].(string); ok {
		fe.Field = param
	}
	return fe
}

func sessionFrom(out registerResponse) domain.Session {
	return domain.Session{User: out.User, Token: out.Token}
}
