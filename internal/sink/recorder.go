package sink

import (
	"context"
	"sync"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
)

type Delivery struct {
	Kind  entity.Kind
	Batch []entity.Record
}

// Recorder keeps every delivered batch in memory.
type Recorder struct {
	mu         sync.Mutex
	deliveries []Delivery
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Submit(ctx context.Context, kind entity.Kind, batch []entity.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	copied := make([]entity.Record, len(batch))
	for i, rec := range batch {
		copied[i] = rec.Clone()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, Delivery{Kind: kind, Batch: copied})
	return nil
}

func (r *Recorder) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out
}
