// Package contactform is the client side of the contact form: it owns the
// field values, validates them with the same rules as the server, posts the
// submission and keeps a dismissible notification for the outcome.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"portfolio-backend/pkg/validation"
)

const (
	// DefaultDisplayWindow is how long an outcome notification stays visible
	DefaultDisplayWindow = 5 * time.Second

	FallbackSuccessMessage = "Thanks! I will reply soon."
	FallbackErrorMessage   = "Something went wrong. Please try again."
	NetworkErrorMessage    = "Network error. Please try again."
)

var (
	ErrSubmitInProgress = errors.New("contactform: a submission is already in progress")
	ErrUnknownField     = errors.New("contactform: unknown field")
)

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Fields are the raw values typed by the user
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Outcome is the JSON body returned by the contact endpoint
type Outcome struct {
	OK      bool                   `json:"ok"`
	Message string                 `json:"message,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Errors  validation.FieldErrors `json:"errors,omitempty"`
}

// State is a snapshot of the controller
type State struct {
	Fields              Fields
	Errors              validation.FieldErrors
	Status              Status
	Message             string
	NotificationVisible bool
}

// Validate applies the shared contact rules to f
func Validate(f Fields) validation.FieldErrors {
	return validation.ValidateContact(validation.ContactForm{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	})
}

type Option func(*Controller)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) { c.client = client }
}

// WithDisplayWindow overrides the auto-dismiss delay; zero disables it
func WithDisplayWindow(d time.Duration) Option {
	return func(c *Controller) { c.window = d }
}

// WithOnChange registers a callback invoked with a snapshot after every
// state change. It runs outside the controller lock.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

type Controller struct {
	endpoint string
	client   *http.Client
	window   time.Duration
	onChange func(State)

	mu      sync.Mutex
	fields  Fields
	errors  validation.FieldErrors
	status  Status
	message string
	visible bool
	timer   *time.Timer
	// bumped whenever the notification is shown or hidden so a stale timer
	// cannot hide a newer notification
	generation uint64
}

// New creates a controller posting to endpoint
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint: endpoint,
		client:   http.DefaultClient,
		window:   DefaultDisplayWindow,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetField updates one field by its JSON name
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	switch name {
	case "name":
		c.fields.Name = value
	case "email":
		c.fields.Email = value
	case "message":
		c.fields.Message = value
	default:
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(state)
	return nil
}

func (c *Controller) SetFields(f Fields) {
	c.mu.Lock()
	c.fields = f
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(state)
}

// Validate checks the current fields without touching stored errors
func (c *Controller) Validate() validation.FieldErrors {
	c.mu.Lock()
	f := c.fields
	c.mu.Unlock()
	return Validate(f)
}

// Submit validates the current fields and, if they pass, posts them to the
// endpoint and records the outcome. Invalid fields abort without a request;
// the returned State carries their errors. There are no automatic retries.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		state := c.snapshotLocked()
		c.mu.Unlock()
		return state, ErrSubmitInProgress
	}

	fields := c.fields
	c.errors = Validate(fields)
	if len(c.errors) > 0 {
		state := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(state)
		return state, nil
	}

	c.status = StatusSubmitting
	c.message = ""
	c.hideLocked()
	state := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(state)

	outcome, code, err := c.post(ctx, fields)

	c.mu.Lock()
	switch {
	case err != nil:
		c.status = StatusFailed
		c.message = NetworkErrorMessage
	case code >= 200 && code < 300:
		c.status = StatusSucceeded
		c.message = orDefault(outcome.Message, FallbackSuccessMessage)
		c.fields = Fields{}
		c.errors = nil
	default:
		c.status = StatusFailed
		c.message = orDefault(outcome.Error, FallbackErrorMessage)
		if len(outcome.Errors) > 0 {
			c.errors = outcome.Errors
		}
	}
	c.showLocked()
	state = c.snapshotLocked()
	c.mu.Unlock()

	c.emit(state)
	return state, nil
}

// DismissNotification hides the current notification. Fields are untouched.
func (c *Controller) DismissNotification() {
	c.mu.Lock()
	if !c.visible {
		c.mu.Unlock()
		return
	}
	c.hideLocked()
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(state)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close stops a pending auto-dismiss timer
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) post(ctx context.Context, fields Fields) (Outcome, int, error) {
	var outcome Outcome

	body, err := json.Marshal(fields)
	if err != nil {
		return outcome, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return outcome, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return outcome, 0, err
	}
	defer resp.Body.Close()

	// A response we cannot read is treated like no response at all
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return outcome, resp.StatusCode, fmt.Errorf("decode contact response: %w", err)
	}
	return outcome, resp.StatusCode, nil
}

func (c *Controller) showLocked() {
	c.visible = true
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.window <= 0 {
		return
	}
	gen := c.generation
	c.timer = time.AfterFunc(c.window, func() { c.expire(gen) })
}

func (c *Controller) hideLocked() {
	c.visible = false
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || !c.visible {
		c.mu.Unlock()
		return
	}
	c.visible = false
	c.timer = nil
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(state)
}

func (c *Controller) snapshotLocked() State {
	var errs validation.FieldErrors
	if len(c.errors) > 0 {
		errs = make(validation.FieldErrors, len(c.errors))
		for k, v := range c.errors {
			errs[k] = v
		}
	}
	return State{
		Fields:              c.fields,
		Errors:              errs,
		Status:              c.status,
		Message:             c.message,
		NotificationVisible: c.visible,
	}
}

func (c *Controller) emit(state State) {
	if c.onChange != nil {
		c.onChange(state)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
