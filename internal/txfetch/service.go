// Package txfetch orchestrates fetch sessions: for every requested address it
// pulls native and token transfers from an Explorer, strictly one request at a
// time with fixed pauses in between, and aggregates the datasets and failures.
//
// A failing address never aborts the session. Failed addresses can be retried
// one by one afterwards.
package txfetch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/ethledger/internal/activity"
	"github.com/gabapcia/ethledger/internal/addressbook"
	"github.com/gabapcia/ethledger/internal/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrSessionRunning is returned when a session is started, retried or
	// restored while another one is in progress.
	ErrSessionRunning = errors.New("fetch session already running")

	// ErrNoAddresses is returned by FetchAll when the address list is empty.
	ErrNoAddresses = errors.New("no addresses to fetch")
)

const (
	// DefaultAddressDelay is the pause between two addresses.
	DefaultAddressDelay = 500 * time.Millisecond

	// DefaultEndpointDelay is the pause between the native and the token call
	// of the same address.
	DefaultEndpointDelay = 300 * time.Millisecond

	instrumentationName = "github.com/gabapcia/ethledger/internal/txfetch"
)

// Progress is reported before each address is fetched. Index starts at 1.
type Progress struct {
	Index    int
	Total    int
	Address  string
	Nickname string
}

// ProgressFunc receives progress events. It runs on the fetching goroutine and
// should return quickly.
type ProgressFunc func(Progress)

// Service runs fetch sessions and owns their aggregate.
type Service interface {
	// FetchAll starts a new session for addresses, replacing the previous
	// aggregate. Addresses are fetched in order. ctx is checked between
	// addresses and during the pause between them, never during a request;
	// a canceled session returns what was gathered so far along with ctx.Err().
	FetchAll(ctx context.Context, addresses []addressbook.ParsedAddress, apiKey string, onProgress ProgressFunc) (Result, error)

	// Retry fetches a single address again. On success its dataset is
	// inserted or replaced and its failure removed; on failure its failure is
	// inserted or replaced and the error is returned.
	Retry(ctx context.Context, address, apiKey string) (activity.AddressDataset, error)

	// Snapshot returns a copy of the current aggregate.
	Snapshot() Snapshot

	// Restore replaces the aggregate with the last persisted session.
	Restore(ctx context.Context) (Snapshot, error)

	// State reports the lifecycle stage of the current session.
	State() State
}

type service struct {
	mu        sync.Mutex
	state     State
	sessionID string
	result    Result

	explorer      Explorer
	storage       SessionStorage
	tracer        trace.Tracer
	addressDelay  time.Duration
	endpointDelay time.Duration
}

var _ Service = (*service)(nil)

type config struct {
	storage       SessionStorage
	tracer        trace.Tracer
	addressDelay  time.Duration
	endpointDelay time.Duration
}

type Option func(*config)

// WithSessionStorage persists every finished session and retry.
func WithSessionStorage(s SessionStorage) Option {
	return func(c *config) {
		c.storage = s
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}

// WithAddressDelay sets the pause between two addresses. Default: 500ms.
func WithAddressDelay(d time.Duration) Option {
	return func(c *config) {
		c.addressDelay = d
	}
}

// WithEndpointDelay sets the pause between the two calls made for one
// address. Default: 300ms.
func WithEndpointDelay(d time.Duration) Option {
	return func(c *config) {
		c.endpointDelay = d
	}
}

func New(explorer Explorer, opts ...Option) *service {
	cfg := config{
		storage:       nopSessionStorage{},
		tracer:        otel.Tracer(instrumentationName),
		addressDelay:  DefaultAddressDelay,
		endpointDelay: DefaultEndpointDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		state:         StateIdle,
		explorer:      explorer,
		storage:       cfg.storage,
		tracer:        cfg.tracer,
		addressDelay:  cfg.addressDelay,
		endpointDelay: cfg.endpointDelay,
	}
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *service) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID: s.sessionID,
		State:     s.state,
		Result:    s.result.clone(),
	}
}

func (s *service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *service) Restore(ctx context.Context) (Snapshot, error) {
	snapshot, err := s.storage.LoadSession(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		return Snapshot{}, ErrSessionRunning
	}

	// A session is only saved once it stopped running.
	if snapshot.State == StateRunning {
		snapshot.State = StateIdle
	}

	s.sessionID = snapshot.SessionID
	s.state = snapshot.State
	s.result = snapshot.Result.clone()
	return s.snapshotLocked(), nil
}

// begin resets the aggregate and marks a new session as running.
func (s *service) begin() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		return "", ErrSessionRunning
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	s.state = StateRunning
	s.sessionID = id.String()
	s.result = Result{}
	return s.sessionID, nil
}

// record stores the outcome of one address fetch.
func (s *service) record(dataset activity.AddressDataset, failure *activity.FailureRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if failure != nil {
		s.result.putFailure(*failure)
		return
	}

	s.result.putDataset(dataset)
}

// finish moves the session to state and persists it.
func (s *service) finish(ctx context.Context, state State) (Result, error) {
	s.mu.Lock()
	s.state = state
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.storage.SaveSession(ctx, snapshot); err != nil {
		logger.Error(ctx, "failed to persist fetch session", "error", err)
		return snapshot.Result, err
	}

	return snapshot.Result, nil
}

func (s *service) FetchAll(ctx context.Context, addresses []addressbook.ParsedAddress, apiKey string, onProgress ProgressFunc) (Result, error) {
	if len(addresses) == 0 {
		return Result{}, ErrNoAddresses
	}

	sessionID, err := s.begin()
	if err != nil {
		return Result{}, err
	}

	ctx = logger.Derive(ctx, "session.id", sessionID)
	requestCtx := context.WithoutCancel(ctx)

	logger.Info(ctx, "fetch session started", "addresses", len(addresses))

	for i, a := range addresses {
		if err := ctx.Err(); err != nil {
			return s.cancel(requestCtx, err)
		}

		address := addressbook.Normalize(a.Address)
		if onProgress != nil {
			onProgress(Progress{Index: i + 1, Total: len(addresses), Address: address, Nickname: a.Nickname})
		}

		dataset, err := s.fetchAddress(requestCtx, address, a.Nickname, apiKey)
		if err != nil {
			s.record(dataset, &activity.FailureRecord{Address: address, Nickname: a.Nickname, Error: err.Error()})
		} else {
			s.record(dataset, nil)
		}

		if i < len(addresses)-1 {
			if err := sleep(ctx, s.addressDelay); err != nil {
				return s.cancel(requestCtx, err)
			}
		}
	}

	result, err := s.finish(requestCtx, StateCompleted)
	logger.Info(ctx, "fetch session completed",
		"datasets", len(result.Datasets),
		"failures", len(result.Failures),
	)

	return result, err
}

// cancel ends an interrupted session, keeping the partial aggregate.
func (s *service) cancel(ctx context.Context, cause error) (Result, error) {
	logger.Warn(ctx, "fetch session canceled", "error", cause)

	result, err := s.finish(ctx, StateIdle)
	return result, errors.Join(cause, err)
}

func (s *service) Retry(ctx context.Context, address, apiKey string) (activity.AddressDataset, error) {
	if err := addressbook.Validate(address); err != nil {
		return activity.AddressDataset{}, err
	}
	address = addressbook.Normalize(address)

	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()
		return activity.AddressDataset{}, ErrSessionRunning
	}
	nickname := s.result.nickname(address)
	ctx = logger.Derive(ctx, "session.id", s.sessionID)
	s.mu.Unlock()

	dataset, fetchErr := s.fetchAddress(ctx, address, nickname, apiKey)
	if fetchErr != nil {
		s.record(dataset, &activity.FailureRecord{Address: address, Nickname: nickname, Error: fetchErr.Error()})
	} else {
		s.record(dataset, nil)
	}

	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.storage.SaveSession(ctx, snapshot); err != nil {
		logger.Error(ctx, "failed to persist fetch session", "error", err)
		return dataset, errors.Join(fetchErr, err)
	}

	return dataset, fetchErr
}
