package reconcile

import (
	"context"
	"fmt"
	"time"

	"till-backend/internal/config"
	"till-backend/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every action answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// FetchResponse is used for fetch_records so an empty store still renders
// "records": [].
type FetchResponse struct {
	Status  string               `json:"status"`
	Records []models.DailyRecord `json:"records"`
}

// Engine dispatches the reconciliation actions against a Store. It keeps
// no mutable state of its own and is safe for concurrent use.
type Engine struct {
	store        Store
	logger       *logrus.Logger
	now          func() time.Time
	storeTimeout time.Duration
}

type Option func(*Engine)

// WithClock replaces time.Now as the source of record dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithStoreTimeout bounds every store call. Zero disables the bound.
func WithStoreTimeout(d time.Duration) Option {
	return func(e *Engine) { e.storeTimeout = d }
}

func NewEngine(store Store, logger *logrus.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// correctionRoles may change the unaccounted amount of a record.
var correctionRoles = []models.UserRole{models.RoleEditor, models.RoleAdmin}

// Dispatch checks the session identity, parses body and runs the action.
func (e *Engine) Dispatch(ctx context.Context, user *models.Identity, body []byte) (any, error) {
	if user == nil {
		return nil, &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
	}
	req, err := ParseRequest(body)
	if err != nil {
		return nil, err
	}
	return e.Handle(ctx, user, req)
}

// Handle runs one typed request for user. The returned value is a
// *Response or a *FetchResponse; errors are always *Error.
func (e *Engine) Handle(ctx context.Context, user *models.Identity, req Request) (any, error) {
	if user == nil {
		return nil, &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
	}
	if !user.Role.Valid() {
		return nil, &Error{Kind: KindForbidden, Message: "Unknown role"}
	}

	switch r := req.(type) {
	case SubmitForm:
		return e.submit(ctx, r)
	case FetchRecords:
		records, err := e.Records(ctx)
		if err != nil {
			return nil, err
		}
		return &FetchResponse{Status: StatusSuccess, Records: records}, nil
	case UpdateUnaccounted:
		if !user.HasRole(correctionRoles...) {
			return nil, &Error{Kind: KindForbidden, Message: "You are not allowed to correct records"}
		}
		return e.updateUnaccounted(ctx, r)
	default:
		return nil, &Error{Kind: KindInvalidAction, Message: "Invalid action"}
	}
}

func (e *Engine) submit(ctx context.Context, form SubmitForm) (*Response, error) {
	rec := NewRecord(form, e.now())

	ctx, cancel := e.storeContext(ctx)
	defer cancel()

	id, err := e.store.Insert(ctx, &rec)
	if err != nil {
		config.LogError(e.logger, "reconcile", "submit", string(ActionSubmitForm), rec, err)
		return nil, storeUnavailable(err)
	}
	e.logger.WithFields(logrus.Fields{"record_id": id, "expected_diff": rec.ExpectedDiff}).Info("record saved")
	return &Response{Status: StatusSuccess, Message: "Record saved successfully!"}, nil
}

// Records returns every record, newest first.
func (e *Engine) Records(ctx context.Context) ([]models.DailyRecord, error) {
	ctx, cancel := e.storeContext(ctx)
	defer cancel()

	records, err := e.store.FindAllByDateDesc(ctx)
	if err != nil {
		config.LogError(e.logger, "reconcile", "Records", string(ActionFetchRecords), nil, err)
		return nil, storeUnavailable(err)
	}
	if records == nil {
		records = []models.DailyRecord{}
	}
	return records, nil
}

func (e *Engine) updateUnaccounted(ctx context.Context, r UpdateUnaccounted) (*Response, error) {
	ctx, cancel := e.storeContext(ctx)
	defer cancel()

	n, err := e.store.UpdateField(ctx, r.ID, FieldExpectedDiff, r.Unaccounted)
	if err != nil {
		config.LogError(e.logger, "reconcile", "updateUnaccounted", string(ActionUpdateUnaccounted), r, err)
		return nil, storeUnavailable(err)
	}
	if n == 0 {
		return nil, &Error{Kind: KindRecordNotFound, Message: fmt.Sprintf("Record %d not found", r.ID)}
	}
	e.logger.WithFields(logrus.Fields{"record_id": r.ID, "expected_diff": r.Unaccounted}).Info("unaccounted amount corrected")
	return &Response{Status: StatusSuccess, Message: "Record updated successfully!"}, nil
}

func (e *Engine) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.storeTimeout)
}
