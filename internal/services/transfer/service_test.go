package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SamSam-01/Gamebrary/internal/interchange"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	tableMocks "github.com/SamSam-01/Gamebrary/internal/repositories/table/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// insertInto matches an InsertInput for the given table
type insertInto table.Name

func (m insertInto) Matches(x any) bool {
	input, ok := x.(*table.InsertInput)
	return ok && input.Table == table.Name(m)
}

func (m insertInto) String() string {
	return "insert into " + string(m)
}

// selectFrom matches a Query against the given table
type selectFrom table.Name

func (m selectFrom) Matches(x any) bool {
	query, ok := x.(*table.Query)
	return ok && query.Table == table.Name(m)
}

func (m selectFrom) String() string {
	return "select from " + string(m)
}

type TransferServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *tableMocks.MockStore
	service   Service
	ctx       context.Context

	testUserID string
	testGameID string
}

func (s *TransferServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = tableMocks.NewMockStore(s.mockCtrl)
	s.ctx = context.Background()

	s.testUserID = "test-user-id"
	s.testGameID = "test-game-id"

	svc, err := New(&Config{Store: s.mockStore})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TransferServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTransferServiceSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

// captureInsert expects one insert into t and records the row written
func (s *TransferServiceTestSuite) captureInsert(t table.Name, id string, into *table.Row) *gomock.Call {
	return s.mockStore.EXPECT().
		Insert(s.ctx, insertInto(t)).
		DoAndReturn(func(_ context.Context, input *table.InsertInput) (table.Row, error) {
			*into = input.Row
			return table.Row{"id": id}, nil
		})
}

func (s *TransferServiceTestSuite) TestNew() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilStore)

	_, err = New(&Config{Store: s.mockStore, Concurrency: -1})
	s.ErrorIs(err, ErrBadConcurrent)
}

func (s *TransferServiceTestSuite) TestImportGameWritesRecordsInOrder() {
	var gameRow, rulesRow, scoringRow, libraryRow table.Row
	gomock.InOrder(
		s.captureInsert(table.Games, s.testGameID, &gameRow),
		s.captureInsert(table.GameRules, "rules-id", &rulesRow),
		s.captureInsert(table.ScoringSystems, "scoring-id", &scoringRow),
		s.captureInsert(table.UserLibraries, "library-id", &libraryRow),
	)

	result := s.service.ImportGame(s.ctx, &ImportGameInput{
		Game: &interchange.Game{
			Title:      "Catan",
			MinPlayers: 3,
			MaxPlayers: 4,
			Rules:      json.RawMessage(`{"sections":[{"title":"Setup","content":"Place hexes"}]}`),
			ScoringSystem: &interchange.ScoringSystem{
				Name:   "Standard",
				Config: models.PointsConfig(),
			},
		},
		UserID:   s.testUserID,
		IsPublic: true,
	})

	s.True(result.Success)
	s.Equal(s.testGameID, result.GameID)
	s.Empty(result.Error)

	s.Equal("Catan", gameRow["title"])
	s.Equal(3, gameRow["min_players"])
	s.Equal(s.testUserID, gameRow["creator_id"])
	s.Equal(true, gameRow["is_public"])

	s.Equal(s.testGameID, rulesRow["game_id"])
	s.Equal("1.0", rulesRow["version"])
	s.Equal("en", rulesRow["language"])
	s.JSONEq(`{"sections":[{"title":"Setup","content":"Place hexes"}]}`, string(rulesRow["content"].(json.RawMessage)))

	s.Equal("Standard", scoringRow["name"])
	s.Equal(false, scoringRow["is_automated"])
	s.Equal(models.PointsConfig(), scoringRow["config"])

	s.Equal(s.testUserID, libraryRow["user_id"])
	s.Equal(s.testGameID, libraryRow["game_id"])
	s.Equal("owned", libraryRow["ownership_status"])
}

func (s *TransferServiceTestSuite) TestImportGameTitleOnlyPopulatesDefaults() {
	var gameRow, libraryRow table.Row
	gomock.InOrder(
		s.captureInsert(table.Games, s.testGameID, &gameRow),
		s.captureInsert(table.UserLibraries, "library-id", &libraryRow),
	)

	result := s.service.ImportGame(s.ctx, &ImportGameInput{
		Game:   &interchange.Game{Title: "Hive"},
		UserID: s.testUserID,
	})

	s.Require().True(result.Success)
	s.Equal("", gameRow["description"])
	s.Equal(2, gameRow["min_players"])
	s.Equal(4, gameRow["max_players"])
	s.Equal(60, gameRow["duration_minutes"])
	s.Equal(8, gameRow["age_min"])
	s.Equal(3, gameRow["complexity"])
	s.Equal(false, gameRow["is_public"])
}

func (s *TransferServiceTestSuite) TestImportGameOmitsEmptyScoringConfig() {
	var gameRow, scoringRow, libraryRow table.Row
	gomock.InOrder(
		s.captureInsert(table.Games, s.testGameID, &gameRow),
		s.captureInsert(table.ScoringSystems, "scoring-id", &scoringRow),
		s.captureInsert(table.UserLibraries, "library-id", &libraryRow),
	)

	result := s.service.ImportGame(s.ctx, &ImportGameInput{
		Game: &interchange.Game{
			Title:         "Hive",
			ScoringSystem: &interchange.ScoringSystem{Name: "Standard"},
		},
		UserID: s.testUserID,
	})

	s.Require().True(result.Success)
	s.NotContains(scoringRow, "config")
}

func (s *TransferServiceTestSuite) TestImportGameRequiresTitle() {
	result := s.service.ImportGame(s.ctx, &ImportGameInput{
		Game:   &interchange.Game{Title: "   ", MinPlayers: 3},
		UserID: s.testUserID,
	})

	s.False(result.Success)
	s.Equal("title is required", result.Error)
}

func (s *TransferServiceTestSuite) TestImportGameStopsAtFirstFailure() {
	var gameRow table.Row
	gomock.InOrder(
		s.captureInsert(table.Games, s.testGameID, &gameRow),
		s.mockStore.EXPECT().
			Insert(s.ctx, insertInto(table.GameRules)).
			Return(nil, errors.New("connection reset")),
	)

	result := s.service.ImportGame(s.ctx, &ImportGameInput{
		Game: &interchange.Game{
			Title:         "Catan",
			Rules:         json.RawMessage(`{"sections":[]}`),
			ScoringSystem: &interchange.ScoringSystem{Name: "Standard", Config: models.PointsConfig()},
		},
		UserID: s.testUserID,
	})

	s.False(result.Success)
	s.Empty(result.GameID)
	s.Contains(result.Error, "failed to create rules")
	s.Contains(result.Error, "connection reset")
}

func (s *TransferServiceTestSuite) TestImportFromJSONMalformed() {
	result := s.service.ImportFromJSON(s.ctx, &ImportFromJSONInput{
		Data:   "{not json",
		UserID: s.testUserID,
	})

	s.False(result.Success)
	s.Equal("Invalid JSON format", result.Error)
}

func (s *TransferServiceTestSuite) TestImportFromJSON() {
	var gameRow, scoringRow, libraryRow table.Row
	gomock.InOrder(
		s.captureInsert(table.Games, s.testGameID, &gameRow),
		s.captureInsert(table.ScoringSystems, "scoring-id", &scoringRow),
		s.captureInsert(table.UserLibraries, "library-id", &libraryRow),
	)

	result := s.service.ImportFromJSON(s.ctx, &ImportFromJSONInput{
		Data:   `{"title":"Azul","complexity":2,"scoringSystem":{"name":"Tiles","config":{"type":"schedule","points":[10,6,3]},"isAutomated":true}}`,
		UserID: s.testUserID,
	})

	s.Require().True(result.Success)
	s.Equal(2, gameRow["complexity"])
	s.Equal(true, scoringRow["is_automated"])
	s.Equal(models.ScheduleConfig(10, 6, 3), scoringRow["config"])
}

func (s *TransferServiceTestSuite) TestImportCSVContinuesPastFailedRow() {
	var attempted []string
	s.mockStore.EXPECT().
		Insert(s.ctx, insertInto(table.Games)).
		DoAndReturn(func(_ context.Context, input *table.InsertInput) (table.Row, error) {
			title := input.Row["title"].(string)
			attempted = append(attempted, title)
			if title == "Brass" {
				return nil, errors.New("insert rejected")
			}
			return table.Row{"id": "id-" + title}, nil
		}).
		Times(3)
	s.mockStore.EXPECT().
		Insert(s.ctx, insertInto(table.UserLibraries)).
		Return(table.Row{"id": "library-id"}, nil).
		Times(2)

	output := s.service.ImportCSV(s.ctx, &ImportCSVInput{
		Text:   "title,minplayers\nAzul,2\nBrass,3\nCarcassonne,2",
		UserID: s.testUserID,
	})

	s.Empty(output.Error)
	s.Equal("2 of 3", output.Summary())
	s.Equal([]string{"Azul", "Brass", "Carcassonne"}, attempted)

	s.Require().Len(output.Rows, 3)
	s.True(output.Rows[0].Result.Success)
	s.False(output.Rows[1].Result.Success)
	s.Equal(2, output.Rows[1].Row)
	s.Equal("Brass", output.Rows[1].Title)
	s.Contains(output.Rows[1].Result.Error, "insert rejected")
	s.True(output.Rows[2].Result.Success)
	s.Equal("id-Carcassonne", output.Rows[2].Result.GameID)

	failed := output.Failed()
	s.Require().Len(failed, 1)
	s.Equal("Brass", failed[0].Title)
}

func (s *TransferServiceTestSuite) TestImportCSVNoValidRows() {
	output := s.service.ImportCSV(s.ctx, &ImportCSVInput{
		Text:   "title,minplayers",
		UserID: s.testUserID,
	})

	s.Equal("No valid games found in CSV", output.Error)
	s.Equal(0, output.Attempted)
	s.Empty(output.Rows)
}

func (s *TransferServiceTestSuite) TestImportCSVConcurrentKeepsRowOrder() {
	svc, err := New(&Config{Store: s.mockStore, Concurrency: 4})
	s.Require().NoError(err)

	s.mockStore.EXPECT().
		Insert(gomock.Any(), insertInto(table.Games)).
		DoAndReturn(func(_ context.Context, input *table.InsertInput) (table.Row, error) {
			return table.Row{"id": "id-" + input.Row["title"].(string)}, nil
		}).
		Times(5)
	s.mockStore.EXPECT().
		Insert(gomock.Any(), insertInto(table.UserLibraries)).
		Return(table.Row{"id": "library-id"}, nil).
		Times(5)

	output := svc.ImportCSV(s.ctx, &ImportCSVInput{Text: "title\nA\nB\nC\nD\nE", UserID: s.testUserID})

	s.Equal("5 of 5", output.Summary())
	for i, title := range []string{"A", "B", "C", "D", "E"} {
		s.Equal(i+1, output.Rows[i].Row)
		s.Equal("id-"+title, output.Rows[i].Result.GameID)
	}
}

func (s *TransferServiceTestSuite) TestExportGameNotFound() {
	s.mockStore.EXPECT().
		SelectOne(s.ctx, selectFrom(table.Games)).
		Return(nil, table.ErrNotFound)

	out, ok := s.service.ExportGame(s.ctx, &ExportGameInput{GameID: s.testGameID})
	s.False(ok)
	s.Nil(out)
}

func (s *TransferServiceTestSuite) TestExportGameReadFailure() {
	s.mockStore.EXPECT().
		SelectOne(s.ctx, selectFrom(table.Games)).
		Return(table.Row{"id": s.testGameID, "title": "Catan"}, nil)
	s.mockStore.EXPECT().
		SelectOne(s.ctx, selectFrom(table.GameRules)).
		Return(nil, errors.New("permission denied"))

	out, ok := s.service.ExportGame(s.ctx, &ExportGameInput{GameID: s.testGameID})
	s.False(ok)
	s.Nil(out)
}

func (s *TransferServiceTestSuite) TestExportGameWithoutRulesOrScoring() {
	s.mockStore.EXPECT().
		SelectOne(s.ctx, selectFrom(table.Games)).
		Return(table.Row{
			"id": s.testGameID, "title": "Catan", "description": "Trade",
			"min_players": 3.0, "max_players": 4.0, "duration_minutes": 90.0,
			"age_min": 10.0, "complexity": 2.0,
		}, nil)
	s.mockStore.EXPECT().
		SelectOne(s.ctx, selectFrom(table.GameRules)).
		Return(nil, table.ErrNotFound)
	s.mockStore.EXPECT().
		SelectOne(s.ctx, selectFrom(table.ScoringSystems)).
		Return(nil, table.ErrNotFound)

	out, ok := s.service.ExportGame(s.ctx, &ExportGameInput{GameID: s.testGameID})
	s.Require().True(ok)
	s.Equal("Catan", out.Title)
	s.Equal(`{
  "title": "Catan",
  "description": "Trade",
  "minPlayers": 3,
  "maxPlayers": 4,
  "durationMinutes": 90,
  "ageMin": 10,
  "complexity": 2
}`, out.JSON)
}
