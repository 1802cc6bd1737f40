// Package client is a typed Go client for the marriage bureau HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	bureau "github.com/mzafar/marriage-bureau"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func New(baseURL string) *Client {
	return &Client{
		client:    &http.Client{Timeout: defaultTimeout},
		baseURL:   baseURL,
		userAgent: "bureau-client/1.0",
	}
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, response any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if response == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

func (c *Client) CreatePerson(ctx context.Context, in bureau.PersonCreate) (*bureau.Person, error) {
	var person bureau.Person
	if err := c.do(ctx, http.MethodPost, "/api/v1/persons", in, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *Client) GetPerson(ctx context.Context, id int64) (*bureau.Person, error) {
	var person bureau.Person
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/persons/%d", id), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *Client) ListPersons(ctx context.Context, limit, offset int) ([]bureau.Person, error) {
	path := fmt.Sprintf("/api/v1/persons?limit=%d&offset=%d", limit, offset)
	var people []bureau.Person
	if err := c.do(ctx, http.MethodGet, path, nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (c *Client) UpdatePerson(ctx context.Context, id int64, in bureau.PersonCreate) (*bureau.Person, error) {
	var person bureau.Person
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/persons/%d", id), in, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/persons/%d", id), nil, nil)
}

func (c *Client) CreateLetter(ctx context.Context, in bureau.MarriageLetterCreate) (*bureau.MarriageLetterResponse, error) {
	var resp bureau.MarriageLetterResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/letters", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetLetter(ctx context.Context, id int64) (*bureau.MarriageLetter, error) {
	var letter bureau.MarriageLetter
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/letters/%d", id), nil, &letter); err != nil {
		return nil, err
	}
	return &letter, nil
}

// ListLettersOptions narrows a letter listing. Zero values are omitted.
type ListLettersOptions struct {
	LetterType bureau.LetterType
	Printed    *bool
	Limit      int
	Offset     int
}

func (c *Client) ListLetters(ctx context.Context, opts ListLettersOptions) ([]bureau.LetterSummary, error) {
	query := url.Values{}
	if opts.LetterType != "" {
		query.Set("type", string(opts.LetterType))
	}
	if opts.Printed != nil {
		query.Set("printed", strconv.FormatBool(*opts.Printed))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}

	path := "/api/v1/letters"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var summaries []bureau.LetterSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *Client) PrintLetter(ctx context.Context, id int64, req bureau.LetterPrintRequest) (*bureau.MarriageLetterResponse, error) {
	var resp bureau.MarriageLetterResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/letters/%d/print", id), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteLetter(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/letters/%d", id), nil, nil)
}
