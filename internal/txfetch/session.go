package txfetch

import (
	"context"
	"errors"
	"slices"

	"github.com/gabapcia/ethledger/internal/activity"
)

// ErrSessionNotFound is returned by SessionStorage.LoadSession when nothing
// has been saved yet.
var ErrSessionNotFound = errors.New("no fetch session found")

// State is the lifecycle stage of a fetch session.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
)

// Result is the outcome of a fetch session: one dataset per address that was
// fetched successfully and one failure per address that was not.
type Result struct {
	Datasets []activity.AddressDataset `json:"datasets"`
	Failures []activity.FailureRecord  `json:"failures"`
}

// Snapshot is an immutable copy of the orchestrator's aggregate.
type Snapshot struct {
	SessionID string `json:"sessionId"`
	State     State  `json:"state"`
	Result
}

// SessionStorage persists the latest session snapshot so separate processes
// can fetch, retry and generate in turn.
type SessionStorage interface {
	// SaveSession overwrites the stored snapshot.
	SaveSession(ctx context.Context, snapshot Snapshot) error

	// LoadSession returns the stored snapshot, or ErrSessionNotFound.
	LoadSession(ctx context.Context) (Snapshot, error)
}

// nopSessionStorage keeps nothing.
type nopSessionStorage struct{}

func (nopSessionStorage) SaveSession(context.Context, Snapshot) error { return nil }

func (nopSessionStorage) LoadSession(context.Context) (Snapshot, error) {
	return Snapshot{}, ErrSessionNotFound
}

func cloneDataset(d activity.AddressDataset) activity.AddressDataset {
	d.NativeTransfers = slices.Clone(d.NativeTransfers)
	d.TokenTransfers = slices.Clone(d.TokenTransfers)
	return d
}

func (r Result) clone() Result {
	out := Result{
		Datasets: make([]activity.AddressDataset, 0, len(r.Datasets)),
		Failures: slices.Clone(r.Failures),
	}
	for _, d := range r.Datasets {
		out.Datasets = append(out.Datasets, cloneDataset(d))
	}
	if out.Failures == nil {
		out.Failures = []activity.FailureRecord{}
	}

	return out
}

func (r Result) datasetIndex(address string) int {
	return slices.IndexFunc(r.Datasets, func(d activity.AddressDataset) bool { return d.Address == address })
}

func (r Result) failureIndex(address string) int {
	return slices.IndexFunc(r.Failures, func(f activity.FailureRecord) bool { return f.Address == address })
}

// nickname returns the nickname known for address, if any.
func (r Result) nickname(address string) string {
	if i := r.failureIndex(address); i >= 0 {
		return r.Failures[i].Nickname
	}
	if i := r.datasetIndex(address); i >= 0 {
		return r.Datasets[i].Nickname
	}

	return ""
}

// putDataset inserts or replaces the dataset of its address and clears any
// failure recorded for it.
func (r *Result) putDataset(d activity.AddressDataset) {
	if i := r.failureIndex(d.Address); i >= 0 {
		r.Failures = slices.Delete(r.Failures, i, i+1)
	}

	if i := r.datasetIndex(d.Address); i >= 0 {
		r.Datasets[i] = d
		return
	}

	r.Datasets = append(r.Datasets, d)
}

// putFailure inserts or replaces the failure of its address and drops any
// dataset recorded for it, so an address is never both fetched and failed.
func (r *Result) putFailure(f activity.FailureRecord) {
	if i := r.datasetIndex(f.Address); i >= 0 {
		r.Datasets = slices.Delete(r.Datasets, i, i+1)
	}

	if i := r.failureIndex(f.Address); i >= 0 {
		r.Failures[i] = f
		return
	}

	r.Failures = append(r.Failures, f)
}
