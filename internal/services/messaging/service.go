package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/SamSam-01/Gamebrary/internal/services/catalog"
	"github.com/SamSam-01/Gamebrary/internal/services/community"
	"github.com/SamSam-01/Gamebrary/internal/services/session"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/samber/lo"
)

// persistenceMessage hides store details from users
const persistenceMessage = "Something went wrong talking to the database. Please try again."

var notFoundErrors = []error{
	table.ErrNotFound,
	catalog.ErrGameNotFound,
	session.ErrSessionNotFound,
	session.ErrGameNotFound,
	session.ErrParticipantNotFound,
	community.ErrProfileNotFound,
	community.ErrFriendshipNotFound,
	transfer.ErrGameNotFound,
}

var validationErrors = []error{
	table.ErrDuplicate,
	table.ErrInvalidColumn,
	models.ErrInvalidParticipant,
	catalog.ErrTitleRequired,
	catalog.ErrNotCreator,
	catalog.ErrInvalidStatus,
	catalog.ErrAlreadyInLibrary,
	session.ErrNoPlayers,
	session.ErrNotHost,
	community.ErrUsernameRequired,
	community.ErrUsernameTaken,
	community.ErrSelfRequest,
	community.ErrAlreadyRequested,
	community.ErrNotAddressee,
	community.ErrNotPending,
	transfer.ErrInvalidJSON,
	transfer.ErrNoValidGames,
}

var importedLines = []string{
	"Another one for the shelf!",
	"Shuffle up and deal.",
	"The collection grows.",
	"Time to read the rulebook.",
}

var failedLines = []string{
	"Even the best meeples stumble.",
	"Check the box for missing pieces.",
	"Roll again?",
}

// service implements the Service interface
type service struct {
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	r := config.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

// GetErrorMessage classifies an error and returns a user-friendly message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input cannot be nil")
	}

	is := func(target error) bool { return errors.Is(input.Err, target) }

	switch {
	case lo.ContainsBy(notFoundErrors, is):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindNotFound,
			Message: sentence(sentinelText(input.Err, notFoundErrors)),
		}, nil
	case lo.ContainsBy(validationErrors, is):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindValidation,
			Message: sentence(sentinelText(input.Err, validationErrors)),
		}, nil
	}

	return &GetErrorMessageOutput{
		Kind:    ErrorKindPersistence,
		Message: persistenceMessage,
	}, nil
}

// GetImportMessage describes the outcome of a single game import
func (s *service) GetImportMessage(ctx context.Context, input *GetImportMessageInput) (*GetImportMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Result.Success {
		return &GetImportMessageOutput{
			Title:   "Import failed",
			Message: sentence(input.Result.Error),
			Flavor:  s.pick(failedLines),
		}, nil
	}

	message := fmt.Sprintf("Game ID: %s", input.Result.GameID)
	if input.Title != "" {
		message = fmt.Sprintf("**%s** was added to your library. %s", input.Title, message)
	}

	return &GetImportMessageOutput{
		Title:   "Game imported",
		Message: message,
		Flavor:  s.pick(importedLines),
		Success: true,
	}, nil
}

// GetBulkImportMessage describes the outcome of a CSV import
func (s *service) GetBulkImportMessage(ctx context.Context, input *GetBulkImportMessageInput) (*GetBulkImportMessageOutput, error) {
	if input == nil || input.Output == nil {
		return nil, errors.New("input cannot be nil")
	}

	out := input.Output
	if out.Error != "" {
		return &GetBulkImportMessageOutput{
			Title:   "Import failed",
			Summary: sentence(out.Error),
			Flavor:  s.pick(failedLines),
		}, nil
	}

	failures := make([]string, 0, len(out.Failed()))
	for _, row := range out.Failed() {
		title := row.Title
		if title == "" {
			title = "untitled"
		}
		failures = append(failures, fmt.Sprintf("Row %d (%s): %s", row.Row, title, row.Result.Error))
	}

	flavor := s.pick(importedLines)
	if out.Succeeded == 0 {
		flavor = s.pick(failedLines)
	}

	return &GetBulkImportMessageOutput{
		Title:    "CSV import finished",
		Summary:  out.Summary() + " games imported",
		Failures: failures,
		Flavor:   flavor,
	}, nil
}

func (s *service) pick(lines []string) string {
	return lines[s.rand.Intn(len(lines))]
}

// sentinelText returns the text of the first matching sentinel, dropping
// any wrapping context the error picked up on its way out
func sentinelText(err error, sentinels []error) string {
	target, ok := lo.Find(sentinels, func(target error) bool { return errors.Is(err, target) })
	if !ok {
		return err.Error()
	}
	return target.Error()
}

// sentence capitalizes the first letter and ends with a period
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
