package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/module/booking/models/request"
	"tour-booking/internal/module/booking/models/response"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/log"

	"github.com/goccy/go-json"
	"go.elastic.co/apm"
	"golang.org/x/time/rate"
)

const apiPrefix = "/api/v1"

// Doer is satisfied by *http.Client and *circuit.HTTPClient.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	http    Doer
	limiter *rate.Limiter
	log     log.Logger
}

type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

func WithLogger(l log.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for the booking API rooted at baseURL
// (e.g. http://localhost:8000; the /api/v1 prefix is added here).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + apiPrefix,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTours returns the tour instances of date (YYYY-MM-DD).
func (c *Client) ListTours(ctx context.Context, date string) ([]entity.TourInstance, error) {
	u := fmt.Sprintf("%s/tours/available?tour_date=%s", c.baseURL, url.QueryEscape(date))

	var tours []response.Tour
	if err := c.do(ctx, "list tours", http.MethodGet, u, nil, &tours); err != nil {
		return nil, err
	}

	out := make([]entity.TourInstance, 0, len(tours))
	for _, t := range tours {
		out = append(out, NormalizeTour(t))
	}
	return out, nil
}

// CreateBooking never returns an error for business rejections; those come
// back as Success=false with the server's message.
func (c *Client) CreateBooking(ctx context.Context, req entity.BookingRequest) (entity.CreateBookingResult, error) {
	payload := request.CreateBooking{
		TourID:       req.TourInstanceID,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		NumPeople:    req.NumPeople,
		TotalPrice:   helpers.RoundMoney(req.TotalPrice),
		SpecialNotes: req.SpecialNotes,
	}

	var created response.BookingCreated
	err := c.do(ctx, "create booking", http.MethodPost, c.baseURL+"/bookings", payload, &created)
	if err != nil {
		if fe, ok := err.(*FetchError); ok {
			msg := fe.Detail
			if msg == "" {
				msg = fmt.Sprintf("Server error: %d", fe.Status)
			}
			return entity.CreateBookingResult{Success: false, Message: msg}, nil
		}
		return entity.CreateBookingResult{}, err
	}

	return entity.CreateBookingResult{
		Success:     true,
		Booking:     normalizeBooking(created.Booking),
		PaymentInfo: normalizePayment(created.PaymentInfo),
	}, nil
}

func (c *Client) GetBookingStatus(ctx context.Context, uuid string) (entity.BookingStatus, error) {
	u := fmt.Sprintf("%s/bookings/status/%s", c.baseURL, url.PathEscape(uuid))

	var status response.BookingStatus
	if err := c.do(ctx, "get booking status", http.MethodGet, u, nil, &status); err != nil {
		return entity.BookingStatus{}, err
	}
	return entity.BookingStatus{Status: status.Status}, nil
}

func (c *Client) do(ctx context.Context, op, method, u string, body interface{}, out interface{}) error {
	span, ctx := apm.StartSpan(ctx, op, "external.http")
	defer span.End()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &NetworkError{Op: op, Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "booking api unreachable", op, err)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr response.Error
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &apiErr)
		c.log.Warn(ctx, "booking api error", op, resp.StatusCode, apiErr.Detail)
		return &FetchError{Op: op, Status: resp.StatusCode, Detail: apiErr.Detail}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
