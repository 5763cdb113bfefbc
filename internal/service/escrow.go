package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hold is a payment parked in escrow.
type Hold struct {
	Reference string
	SitterID  int
	Amount    int64
	HeldAt    time.Time
	Released  bool
}

// EscrowVault holds a booking payment until the stay closes.
type EscrowVault interface {
	Hold(ctx context.Context, sitterID int, amount int64) (Hold, error)
	Release(ctx context.Context, reference string) error
}

var ErrUnknownHold = errors.New("escrow: unknown reference")

// LocalVault is an in-memory EscrowVault. Nothing is charged; holds live only
// as long as the process.
type LocalVault struct {
	Log *zap.Logger

	mu    sync.Mutex
	holds map[string]Hold
}

func NewLocalVault(log *zap.Logger) *LocalVault {
	if log == nil {
		log = zap.NewNop()
	}
	return &LocalVault{Log: log, holds: map[string]Hold{}}
}

func (v *LocalVault) Hold(_ context.Context, sitterID int, amount int64) (Hold, error) {
	h := Hold{
		Reference: uuid.NewString(),
		SitterID:  sitterID,
		Amount:    amount,
		HeldAt:    time.Now().UTC(),
	}
	v.mu.Lock()
	v.holds[h.Reference] = h
	v.mu.Unlock()
	v.Log.Info("escrow hold", zap.String("ref", h.Reference), zap.Int("sitter_id", sitterID), zap.Int64("amount", amount))
	return h, nil
}

func (v *LocalVault) Release(_ context.Context, reference string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	h, ok := v.holds[reference]
	if !ok {
		return ErrUnknownHold
	}
	if h.Released {
		return nil
	}
	h.Released = true
	v.holds[reference] = h
	v.Log.Info("escrow release", zap.String("ref", reference), zap.Int64("amount", h.Amount))
	return nil
}

// Lookup returns the hold for reference.
func (v *LocalVault) Lookup(reference string) (Hold, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	h, ok := v.holds[reference]
	return h, ok
}
