// Package intake implements the IntakeGateway port: delivery of assembled
// payloads to the external intake endpoint as a multipart POST.
package intake

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"resumeflow/internal/core/domain/model/dispatch"
	"resumeflow/internal/pkg/errs"
)

const defaultTimeout = 30 * time.Second

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Client posts delivery payloads to the fixed intake endpoint. One call is
// one attempt: the client never retries, and the http.Client timeout bounds
// each call so a slow endpoint cannot stall a dispatch batch.
type Client struct {
	endpointURL string
	httpClient  *http.Client
}

// NewClient creates an intake client for the given endpoint URL. A
// non-positive timeout falls back to 30 seconds.
func NewClient(endpointURL string, timeout time.Duration) (*Client, error) {
	if endpointURL == "" {
		return nil, errs.NewValueIsRequiredError("endpointURL")
	}
	if _, err := url.Parse(endpointURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("endpointURL", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

// Deliver posts one payload as multipart form data. The resume binary goes
// under the "resume" field with its original file name and an explicit
// application/pdf part header; the contact number and feed field follow as
// plain form fields. Any non-2xx status is an error whose text becomes the
// per-user report message.
func (c *Client) Deliver(ctx context.Context, payload dispatch.Payload) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(
		`form-data; name="%s"; filename="%s"`,
		dispatch.FieldResume,
		quoteEscaper.Replace(payload.FileName()),
	))
	header.Set("Content-Type", dispatch.ResumeContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("intake payload encoding failed: %w", err)
	}
	if _, err = part.Write(payload.Content()); err != nil {
		return fmt.Errorf("intake payload encoding failed: %w", err)
	}

	if err = writer.WriteField(dispatch.FieldWhatsAppNumber, payload.WhatsAppNumber()); err != nil {
		return fmt.Errorf("intake payload encoding failed: %w", err)
	}
	if err = writer.WriteField(payload.FeedFieldName(), payload.FeedFieldValue()); err != nil {
		return fmt.Errorf("intake payload encoding failed: %w", err)
	}

	if err = writer.Close(); err != nil {
		return fmt.Errorf("intake payload encoding failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, &body)
	if err != nil {
		return fmt.Errorf("intake request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("intake request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("intake endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
