package discord

import (
	"sync"
)

// ViewStatus is the state of an in-flight interaction on a channel
type ViewStatus string

const (
	ViewIdle    ViewStatus = "idle"
	ViewLoading ViewStatus = "loading"
	ViewSaving  ViewStatus = "saving"
	ViewError   ViewStatus = "error"
)

// IsBusy reports whether a load or save is in flight
func (s ViewStatus) IsBusy() bool {
	return s == ViewLoading || s == ViewSaving
}

// ViewStateError is a custom error type for view state transitions
type ViewStateError string

// Error implements the error interface
func (e ViewStateError) Error() string {
	return string(e)
}

const (
	ErrViewBusy          ViewStateError = "another request is still running in this channel"
	ErrInvalidTransition ViewStateError = "invalid view state transition"
)

// ViewState is a channel's current state
type ViewState struct {
	Status ViewStatus

	// Message is the last failure, set in ViewError
	Message string
}

// ViewStates tracks one state machine per channel:
// Idle -> Loading|Saving, Loading|Saving -> Idle|Error, Error -> Loading|Saving
type ViewStates struct {
	mu     sync.Mutex
	states map[string]ViewState
}

// NewViewStates creates an empty tracker; every channel starts Idle
func NewViewStates() *ViewStates {
	return &ViewStates{
		states: make(map[string]ViewState),
	}
}

// Get returns the channel's state
func (v *ViewStates) Get(channelID string) ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state, ok := v.states[channelID]
	if !ok {
		return ViewState{Status: ViewIdle}
	}
	return state
}

// BeginLoad moves the channel into Loading
func (v *ViewStates) BeginLoad(channelID string) error {
	return v.begin(channelID, ViewLoading)
}

// BeginSave moves the channel into Saving
func (v *ViewStates) BeginSave(channelID string) error {
	return v.begin(channelID, ViewSaving)
}

// Finish ends the in-flight load or save. A nil err returns the channel to
// Idle, anything else leaves it in Error with message shown to users.
func (v *ViewStates) Finish(channelID string, err error, message string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	state, ok := v.states[channelID]
	if !ok || !state.Status.IsBusy() {
		return ErrInvalidTransition
	}

	if err == nil {
		// Idle is the zero state
		delete(v.states, channelID)
		return nil
	}

	v.states[channelID] = ViewState{Status: ViewError, Message: message}
	return nil
}

func (v *ViewStates) begin(channelID string, next ViewStatus) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if state, ok := v.states[channelID]; ok && state.Status.IsBusy() {
		return ErrViewBusy
	}

	v.states[channelID] = ViewState{Status: next}
	return nil
}
