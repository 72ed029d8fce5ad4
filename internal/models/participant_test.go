package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSessionParticipant_Validate(t *testing.T) {
	tests := []struct {
		name        string
		participant SessionParticipant
		wantErr     bool
	}{
		{name: "registered user", participant: SessionParticipant{UserID: strPtr("u1")}},
		{name: "guest", participant: SessionParticipant{GuestName: strPtr("Grandma")}},
		{name: "neither", participant: SessionParticipant{}, wantErr: true},
		{name: "blank guest", participant: SessionParticipant{GuestName: strPtr("  ")}, wantErr: true},
		{name: "both", participant: SessionParticipant{UserID: strPtr("u1"), GuestName: strPtr("Grandma")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.participant.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParticipant)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSessionParticipant_DisplayName(t *testing.T) {
	assert.Equal(t, "Grandma", (&SessionParticipant{GuestName: strPtr("Grandma")}).DisplayName())
	assert.Equal(t, "meeple", (&SessionParticipant{UserID: strPtr("u1"), Username: "meeple"}).DisplayName())
	assert.Equal(t, "u1", (&SessionParticipant{UserID: strPtr("u1")}).DisplayName())
	assert.Equal(t, "Unknown", (&SessionParticipant{}).DisplayName())
}
