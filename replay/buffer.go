// Package replay implements the in-memory experience buffer the
// learning algorithm samples minibatches from.
package replay

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

// Transition is a single environment step.
type Transition struct {
	ID        string
	State     []float64
	Action    []float64
	Reward    float64
	NextState []float64
	Done      bool
}

// Batch holds sampled transitions as batch-major matrices, ready for a
// network forward pass. Rewards and Done masks are column vectors.
type Batch struct {
	States     *mat.Dense
	Actions    *mat.Dense
	Rewards    *mat.VecDense
	NextStates *mat.Dense
	Done       []bool
}

// Buffer is a fixed-capacity ring of transitions with uniform
// sampling. Oldest transitions are evicted first.
type Buffer struct {
	mu        sync.RWMutex
	items     []*Transition
	capacity  int
	next      int
	stateLen  int
	actionLen int
	rng       *rand.Rand
}

// New creates a buffer holding at most capacity transitions of the
// given state and action widths.
func New(capacity, stateLen, actionLen int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("replay: capacity must be positive, got %d", capacity)
	}
	if stateLen <= 0 || actionLen <= 0 {
		return nil, fmt.Errorf("replay: state and action widths must be positive, got %d and %d", stateLen, actionLen)
	}
	return &Buffer{
		items:     make([]*Transition, 0, min(capacity, 1024)),
		capacity:  capacity,
		stateLen:  stateLen,
		actionLen: actionLen,
		rng:       rand.New(rand.NewSource(1)),
	}, nil
}

// Seed reseeds the sampling source.
func (b *Buffer) Seed(seed int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rng = rand.New(rand.NewSource(seed))
}

// Store appends a transition, assigning an ID if it has none and
// evicting the oldest entry once the buffer is full.
func (b *Buffer) Store(t *Transition) error {
	if len(t.State) != b.stateLen || len(t.NextState) != b.stateLen {
		return fmt.Errorf("replay: state width %d/%d, buffer expects %d", len(t.State), len(t.NextState), b.stateLen)
	}
	if len(t.Action) != b.actionLen {
		return fmt.Errorf("replay: action width %d, buffer expects %d", len(t.Action), b.actionLen)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) < b.capacity {
		b.items = append(b.items, t)
	} else {
		b.items[b.next] = t
	}
	b.next = (b.next + 1) % b.capacity
	return nil
}

// Len returns the number of stored transitions.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// Capacity returns the maximum number of stored transitions.
func (b *Buffer) Capacity() int { return b.capacity }

// Sample draws batchSize transitions uniformly with replacement and
// packs them into batch matrices.
func (b *Buffer) Sample(batchSize int) (*Batch, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("replay: batch size must be positive, got %d", batchSize)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.items) == 0 {
		return nil, fmt.Errorf("replay: no transitions available for sampling")
	}

	batch := &Batch{
		States:     mat.NewDense(batchSize, b.stateLen, nil),
		Actions:    mat.NewDense(batchSize, b.actionLen, nil),
		Rewards:    mat.NewVecDense(batchSize, nil),
		NextStates: mat.NewDense(batchSize, b.stateLen, nil),
		Done:       make([]bool, batchSize),
	}
	for i := 0; i < batchSize; i++ {
		t := b.items[b.rng.Intn(len(b.items))]
		batch.States.SetRow(i, t.State)
		batch.Actions.SetRow(i, t.Action)
		batch.Rewards.SetVec(i, t.Reward)
		batch.NextStates.SetRow(i, t.NextState)
		batch.Done[i] = t.Done
	}
	return batch, nil
}
