package discord

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewStatesLoadCycle(t *testing.T) {
	views := NewViewStates()
	assert.Equal(t, ViewIdle, views.Get("c1").Status)

	require.NoError(t, views.BeginLoad("c1"))
	assert.Equal(t, ViewLoading, views.Get("c1").Status)

	require.NoError(t, views.Finish("c1", nil, ""))
	assert.Equal(t, ViewIdle, views.Get("c1").Status)
}

func TestViewStatesSaveFailure(t *testing.T) {
	views := NewViewStates()

	require.NoError(t, views.BeginSave("c1"))
	require.NoError(t, views.Finish("c1", errors.New("boom"), "Could not save scores."))

	state := views.Get("c1")
	assert.Equal(t, ViewError, state.Status)
	assert.Equal(t, "Could not save scores.", state.Message)

	// Error can retry either way
	require.NoError(t, views.BeginLoad("c1"))
	assert.Equal(t, ViewLoading, views.Get("c1").Status)
	require.NoError(t, views.Finish("c1", errors.New("again"), "still broken"))
	require.NoError(t, views.BeginSave("c1"))
	assert.Equal(t, ViewSaving, views.Get("c1").Status)
}

func TestViewStatesRejectsSaveWhileBusy(t *testing.T) {
	views := NewViewStates()

	require.NoError(t, views.BeginLoad("c1"))
	assert.ErrorIs(t, views.BeginSave("c1"), ErrViewBusy)

	require.NoError(t, views.Finish("c1", nil, ""))
	require.NoError(t, views.BeginSave("c1"))
	assert.ErrorIs(t, views.BeginSave("c1"), ErrViewBusy)
	assert.ErrorIs(t, views.BeginLoad("c1"), ErrViewBusy)

	// Other channels are independent
	assert.NoError(t, views.BeginSave("c2"))
}

func TestViewStatesFinishRequiresInFlight(t *testing.T) {
	views := NewViewStates()
	assert.ErrorIs(t, views.Finish("c1", nil, ""), ErrInvalidTransition)

	require.NoError(t, views.BeginLoad("c1"))
	require.NoError(t, views.Finish("c1", errors.New("boom"), "failed"))
	assert.ErrorIs(t, views.Finish("c1", nil, ""), ErrInvalidTransition)
}

func TestViewStatesConcurrentSaves(t *testing.T) {
	views := NewViewStates()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for n := 0; n < 20; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if views.BeginSave("c1") == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
}
