package transfer

import (
	"context"
	"testing"

	"github.com/SamSam-01/Gamebrary/internal/interchange"
	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RoundTripTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	store   table.Store
	service Service
	ctx     context.Context
}

func (s *RoundTripTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	store, err := table.NewRedis(&table.RedisConfig{RedisClient: s.client})
	s.Require().NoError(err)
	s.store = store

	svc, err := New(&Config{Store: store})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func (s *RoundTripTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRoundTripTestSuite(t *testing.T) {
	suite.Run(t, new(RoundTripTestSuite))
}

func (s *RoundTripTestSuite) TestCatanRoundTrip() {
	result := s.service.ImportFromJSON(s.ctx, &ImportFromJSONInput{
		Data:   `{"title":"Catan","minPlayers":3,"maxPlayers":4,"rules":{"sections":[]},"scoringSystem":{"name":"Standard","config":{"type":"points"}}}`,
		UserID: "user-1",
	})
	s.Require().True(result.Success, result.Error)

	out, ok := s.service.ExportGame(s.ctx, &ExportGameInput{GameID: result.GameID})
	s.Require().True(ok)

	exported, err := interchange.ParseJSON([]byte(out.JSON))
	s.Require().NoError(err)

	s.Equal("Catan", exported.Title)
	s.Equal(3, exported.MinPlayers)
	s.Equal(4, exported.MaxPlayers)
	s.Equal(interchange.DefaultDurationMinutes, exported.DurationMinutes)
	s.JSONEq(`{"sections":[]}`, string(exported.Rules))
	s.Require().NotNil(exported.ScoringSystem)
	s.Equal("Standard", exported.ScoringSystem.Name)
	s.Equal(models.PointsConfig(), exported.ScoringSystem.Config)
	s.False(exported.ScoringSystem.IsAutomated)
}

func (s *RoundTripTestSuite) TestCustomScoringConfigSurvivesRoundTrip() {
	result := s.service.ImportFromJSON(s.ctx, &ImportFromJSONInput{
		Data:   `{"title":"Wingspan","scoringSystem":{"name":"Birds","config":{"type":"tiers","tiers":[1,2]}}}`,
		UserID: "user-1",
	})
	s.Require().True(result.Success, result.Error)

	out, ok := s.service.ExportGame(s.ctx, &ExportGameInput{GameID: result.GameID})
	s.Require().True(ok)

	exported, err := interchange.ParseJSON([]byte(out.JSON))
	s.Require().NoError(err)
	s.Equal(models.ScoringKindCustom, exported.ScoringSystem.Config.Kind)
	s.JSONEq(`{"type":"tiers","tiers":[1,2]}`, string(exported.ScoringSystem.Config.Raw()))
	s.Nil(exported.Rules)
}

func (s *RoundTripTestSuite) TestImportAddsLibraryEntry() {
	result := s.service.ImportGame(s.ctx, &ImportGameInput{
		Game:     &interchange.Game{Title: "Hive"},
		UserID:   "user-1",
		IsPublic: true,
	})
	s.Require().True(result.Success, result.Error)

	row, err := s.store.SelectOne(s.ctx, &table.Query{
		Table:   table.UserLibraries,
		Filters: []table.Filter{table.Eq("user_id", "user-1"), table.Eq("game_id", result.GameID)},
	})
	s.Require().NoError(err)
	s.Equal("owned", row["ownership_status"])

	game, err := s.store.SelectOne(s.ctx, &table.Query{
		Table:   table.Games,
		Filters: []table.Filter{table.Eq("id", result.GameID)},
	})
	s.Require().NoError(err)
	s.Equal("user-1", game["creator_id"])
	s.Equal(true, game["is_public"])
}

func (s *RoundTripTestSuite) TestExportUnknownGame() {
	_, ok := s.service.ExportGame(s.ctx, &ExportGameInput{GameID: "missing"})
	s.False(ok)
}
