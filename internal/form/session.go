package form

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

// TokenState tracks the verification widget lifecycle.
type TokenState string

const (
	TokenUnloaded TokenState = "unloaded"
	TokenLoading  TokenState = "loading"
	TokenVerified TokenState = "verified"
	TokenFailed   TokenState = "failed"
	TokenExpired  TokenState = "expired"
)

const (
	maxWidgetRetries = 3
	retryBaseDelay   = 2 * time.Second
)

const (
	msgVerificationFailed  = "Verification failed"
	msgVerificationExpired = "Verification expired, please verify again"
)

var (
	ErrSubmissionInFlight   = errors.New("submission already in flight")
	ErrValidationFailed     = errors.New("form validation failed")
	ErrVerificationRequired = errors.New("verification not completed")
)

// Submitter delivers a finished payload to the intake endpoint.
type Submitter interface {
	Submit(ctx context.Context, payload domain.SubmissionPayload) (domain.IntakeResult, error)
}

// Notification is a user-facing toast raised by the session.
type Notification struct {
	Title   string
	Message string
	Error   bool
}

// Config wires a Session to its collaborators. Scheduler defaults to real
// timers, ReloadWidget and Notify may be nil.
type Config struct {
	Submitter    Submitter
	Scheduler    Scheduler
	ReloadWidget func()
	Notify       func(Notification)
}

// Session holds the state of one contact form: draft values, per-field
// errors, and the verification token lifecycle. A session starts with the
// widget loading and lives until the form is abandoned or submitted.
type Session struct {
	cfg Config

	mu          sync.Mutex
	values      map[Field]string
	fieldErrors map[Field]string
	token       string
	tokenState  TokenState
	tokenError  string
	submitting  bool

	retryAttempts int
	retryTimer    Timer
}

func NewSession(cfg Config) *Session {
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewScheduler()
	}
	return &Session{
		cfg:         cfg,
		values:      make(map[Field]string),
		fieldErrors: make(map[Field]string),
		tokenState:  TokenLoading,
	}
}

// SetField records a new value for a field and re-validates it, mirroring
// per-keystroke validation in the form UI.
func (s *Session) SetField(field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[field] = value
	if msg := validateValue(field, value); msg != "" {
		s.fieldErrors[field] = msg
	} else {
		delete(s.fieldErrors, field)
	}
}

// FieldError returns the current error message for a field, "" when valid.
func (s *Session) FieldError(field Field) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrors[field]
}

// Submittable reports whether a submission would be allowed right now:
// every field valid, a verification token present, and no submission in
// flight.
func (s *Session) Submittable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fieldErrors) == 0 && s.token != "" && !s.submitting
}

func (s *Session) TokenState() TokenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenState
}

func (s *Session) TokenError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenError
}

// HandleWidgetLoad marks the widget as ready. No token exists yet.
func (s *Session) HandleWidgetLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenState = TokenUnloaded
	s.tokenError = ""
}

// HandleVerified stores a fresh token and clears any prior widget error or
// pending retry.
func (s *Session) HandleVerified(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRetryLocked()
	s.retryAttempts = 0
	s.token = token
	s.tokenState = TokenVerified
	s.tokenError = ""
}

// HandleWidgetError records a provider failure and schedules a bounded
// widget reload with doubling delay. After the retry budget is spent the
// session stays failed until ResetWidget is called.
func (s *Session) HandleWidgetError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.tokenState = TokenFailed
	s.tokenError = msgVerificationFailed

	if s.retryAttempts >= maxWidgetRetries {
		log.WithField("attempts", s.retryAttempts).Warning("verification widget retries exhausted")
		return
	}

	delay := retryBaseDelay << s.retryAttempts
	s.retryAttempts++
	s.stopRetryLocked()
	s.retryTimer = s.cfg.Scheduler.AfterFunc(delay, s.retryWidget)
}

// HandleTokenExpired clears a stale token. Expiry never auto-retries, the
// user has to complete the challenge again.
func (s *Session) HandleTokenExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRetryLocked()
	s.token = ""
	s.tokenState = TokenExpired
	s.tokenError = msgVerificationExpired
}

// ResetWidget restarts the widget on user request, clearing the retry
// budget.
func (s *Session) ResetWidget() {
	s.mu.Lock()
	s.stopRetryLocked()
	s.retryAttempts = 0
	s.token = ""
	s.tokenState = TokenLoading
	s.tokenError = ""
	reload := s.cfg.ReloadWidget
	s.mu.Unlock()

	if reload != nil {
		reload()
	}
}

// Close cancels any pending widget retry. Call when the form goes away.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRetryLocked()
}

func (s *Session) retryWidget() {
	s.mu.Lock()
	if s.tokenState != TokenFailed {
		s.mu.Unlock()
		return
	}
	s.tokenState = TokenLoading
	s.tokenError = ""
	reload := s.cfg.ReloadWidget
	s.mu.Unlock()

	if reload != nil {
		reload()
	}
}

func (s *Session) stopRetryLocked() {
	if s.retryTimer != nil {
		s.retryTimer.Stop()
		s.retryTimer = nil
	}
}

// Submit validates the whole draft, requires a verification token, and
// delivers the payload. The token is single use and is cleared after every
// attempt regardless of outcome. Draft values survive failures so the user
// can retry without retyping.
func (s *Session) Submit(ctx context.Context) (domain.IntakeResult, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return domain.IntakeResult{}, ErrSubmissionInFlight
	}

	for _, field := range allFields {
		if msg := validateValue(field, s.values[field]); msg != "" {
			s.fieldErrors[field] = msg
		} else {
			delete(s.fieldErrors, field)
		}
	}
	if len(s.fieldErrors) > 0 {
		s.mu.Unlock()
		s.notify(Notification{
			Title:   "Validation Error",
			Message: "Please fix the errors in the form before submitting.",
			Error:   true,
		})
		return domain.IntakeResult{}, ErrValidationFailed
	}

	if s.token == "" {
		s.mu.Unlock()
		s.notify(Notification{
			Title:   "Verification Required",
			Message: "Please complete the security verification.",
			Error:   true,
		})
		return domain.IntakeResult{}, ErrVerificationRequired
	}

	payload := domain.SubmissionPayload{
		FirstName:         strings.TrimSpace(s.values[FieldFirstName]),
		LastName:          strings.TrimSpace(s.values[FieldLastName]),
		Email:             strings.TrimSpace(s.values[FieldEmail]),
		Company:           strings.TrimSpace(s.values[FieldCompany]),
		Subject:           strings.TrimSpace(s.values[FieldSubject]),
		Message:           strings.TrimSpace(s.values[FieldMessage]),
		VerificationToken: s.token,
	}
	s.submitting = true
	s.mu.Unlock()

	result, err := s.cfg.Submitter.Submit(ctx, payload)

	s.mu.Lock()
	s.submitting = false
	s.token = ""
	s.tokenState = TokenUnloaded
	if err == nil && result.Accepted() {
		s.values = make(map[Field]string)
		s.fieldErrors = make(map[Field]string)
	}
	s.mu.Unlock()

	if err != nil {
		log.WithError(err).Error("contact submission failed")
		s.notify(Notification{
			Title:   "Error",
			Message: "Failed to send message. Please try again later.",
			Error:   true,
		})
		return domain.IntakeResult{}, err
	}

	if result.Accepted() {
		s.notify(Notification{
			Title:   "Message Sent Successfully",
			Message: "Your secure message has been sent. I'll get back to you within 24 hours.",
		})
		return result, nil
	}

	message := result.Message
	if message == "" {
		message = "Failed to send message. Please try again later."
	}
	s.notify(Notification{Title: "Error", Message: message, Error: true})
	return result, nil
}

func (s *Session) notify(n Notification) {
	if s.cfg.Notify != nil {
		s.cfg.Notify(n)
	}
}
