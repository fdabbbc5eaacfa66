package replay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transitionAt(i int) *Transition {
	return &Transition{
		State:     []float64{float64(i), 0, 0},
		Action:    []float64{float64(i)},
		Reward:    float64(i),
		NextState: []float64{float64(i + 1), 0, 0},
		Done:      i%2 == 0,
	}
}

func TestBufferStoreAssignsID(t *testing.T) {
	b, err := New(10, 3, 1)
	require.NoError(t, err)

	tr := transitionAt(0)
	require.NoError(t, b.Store(tr))
	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, 1, b.Len())
}

func TestBufferEvictsOldest(t *testing.T) {
	b, err := New(5, 3, 1)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		require.NoError(t, b.Store(transitionAt(i)))
	}
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, 5, b.Capacity())

	// the oldest three were overwritten: every stored reward is >= 3
	batch, err := b.Sample(64)
	require.NoError(t, err)
	for i := 0; i < 64; i++ {
		assert.GreaterOrEqual(t, batch.Rewards.AtVec(i), 3.0)
	}
}

func TestBufferSampleShapes(t *testing.T) {
	b, err := New(100, 3, 2)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, b.Store(&Transition{
			State:     []float64{1, 2, 3},
			Action:    []float64{4, 5},
			Reward:    1,
			NextState: []float64{6, 7, 8},
		}))
	}

	batch, err := b.Sample(32)
	require.NoError(t, err)

	r, c := batch.States.Dims()
	assert.Equal(t, []int{32, 3}, []int{r, c})
	r, c = batch.Actions.Dims()
	assert.Equal(t, []int{32, 2}, []int{r, c})
	r, c = batch.NextStates.Dims()
	assert.Equal(t, []int{32, 3}, []int{r, c})
	assert.Equal(t, 32, batch.Rewards.Len())
	assert.Len(t, batch.Done, 32)
}

func TestBufferSampleEmpty(t *testing.T) {
	b, err := New(10, 3, 1)
	require.NoError(t, err)
	_, err = b.Sample(4)
	assert.Error(t, err)
}

func TestBufferRejectsWrongWidths(t *testing.T) {
	b, err := New(10, 3, 1)
	require.NoError(t, err)

	err = b.Store(&Transition{State: []float64{1}, Action: []float64{1}, NextState: []float64{1, 2, 3}})
	assert.Error(t, err)

	err = b.Store(&Transition{State: []float64{1, 2, 3}, Action: []float64{1, 2}, NextState: []float64{1, 2, 3}})
	assert.Error(t, err)
}

func TestBufferInvalidConstruction(t *testing.T) {
	for _, c := range []struct{ cap, state, action int }{
		{0, 3, 1}, {-1, 3, 1}, {10, 0, 1}, {10, 3, 0},
	} {
		_, err := New(c.cap, c.state, c.action)
		assert.Error(t, err, fmt.Sprintf("capacity=%d state=%d action=%d", c.cap, c.state, c.action))
	}
}

func TestBufferSeedReproducible(t *testing.T) {
	b, err := New(100, 3, 1)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		require.NoError(t, b.Store(transitionAt(i)))
	}

	b.Seed(42)
	first, err := b.Sample(10)
	require.NoError(t, err)
	b.Seed(42)
	second, err := b.Sample(10)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Rewards.AtVec(i), second.Rewards.AtVec(i))
	}
}
