package api

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SamSam-01/Gamebrary/internal/common/clock"
	"github.com/SamSam-01/Gamebrary/internal/repositories/table"
	"github.com/SamSam-01/Gamebrary/internal/services/catalog"
	"github.com/SamSam-01/Gamebrary/internal/services/community"
	"github.com/SamSam-01/Gamebrary/internal/services/messaging"
	"github.com/SamSam-01/Gamebrary/internal/services/session"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

const catanJSON = `{"title":"Catan","minPlayers":3,"maxPlayers":4,"rules":{"sections":[{"title":"Setup","content":"Place the board"}]},"scoringSystem":{"name":"Standard","config":{"type":"points"}}}`

type ServerTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	handler http.Handler
	ctx     context.Context
}

func (s *ServerTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.ctx = context.Background()

	clk := clock.New()
	store, err := table.NewRedis(&table.RedisConfig{RedisClient: s.client, Clock: clk})
	s.Require().NoError(err)

	transferSvc, err := transfer.New(&transfer.Config{Store: store, Concurrency: 2})
	s.Require().NoError(err)
	catalogSvc, err := catalog.New(&catalog.Config{Store: store, Importer: transferSvc, Clock: clk})
	s.Require().NoError(err)
	sessionSvc, err := session.New(&session.Config{Store: store, Clock: clk})
	s.Require().NoError(err)
	communitySvc, err := community.New(&community.Config{Store: store, Clock: clk})
	s.Require().NoError(err)
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Rand: rand.New(rand.NewSource(1))})
	s.Require().NoError(err)

	server, err := New(&Config{
		TransferService:  transferSvc,
		CatalogService:   catalogSvc,
		SessionService:   sessionSvc,
		CommunityService: communitySvc,
		MessagingService: messagingSvc,
	})
	s.Require().NoError(err)
	s.handler = server.Routes()
}

func (s *ServerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

// do sends a request as userID; an empty userID sends no identity header
func (s *ServerTestSuite) do(method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(UserHeader, userID)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.NewDecoder(w.Body).Decode(v))
}

func (s *ServerTestSuite) importCatan() string {
	w := s.do(http.MethodPost, "/api/v1/imports/json?public=true", "user-1", catanJSON)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp ImportResponse
	s.decode(w, &resp)
	s.Require().True(resp.Success)
	return resp.GameID
}

func (s *ServerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestMutationsRequireUser() {
	w := s.do(http.MethodPost, "/api/v1/imports/json", "", catanJSON)
	s.Equal(http.StatusUnauthorized, w.Code)

	var resp errorResponse
	s.decode(w, &resp)
	s.Equal("X-User-ID header is required", resp.Error)
}

func (s *ServerTestSuite) TestImportAndExport() {
	gameID := s.importCatan()

	w := s.do(http.MethodGet, "/api/v1/games/"+gameID+"/export", "", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(`attachment; filename="catan.json"`, w.Header().Get("Content-Disposition"))

	var exported map[string]any
	s.decode(w, &exported)
	s.Equal("Catan", exported["title"])
	s.EqualValues(3, exported["minPlayers"])
	s.Contains(exported, "rules")
	s.Contains(exported, "scoringSystem")

	w = s.do(http.MethodGet, "/api/v1/games/"+gameID, "", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var game map[string]any
	s.decode(w, &game)
	s.Equal("Catan", game["title"])
	s.Equal(true, game["is_public"])
}

func (s *ServerTestSuite) TestImportInvalidJSON() {
	w := s.do(http.MethodPost, "/api/v1/imports/json", "user-1", "{not json")
	s.Equal(http.StatusBadRequest, w.Code)

	var resp ImportResponse
	s.decode(w, &resp)
	s.False(resp.Success)
	s.Equal("Invalid JSON format", resp.Error)
}

func (s *ServerTestSuite) TestImportCSV() {
	w := s.do(http.MethodPost, "/api/v1/imports/csv", "user-1", "title,minplayers\nFoo,3\n,5")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp CSVImportResponse
	s.decode(w, &resp)
	s.Equal(1, resp.Attempted)
	s.Equal(1, resp.Succeeded)
	s.Equal("1 of 1", resp.Summary)
	s.Require().Len(resp.Rows, 1)
	s.Equal("Foo", resp.Rows[0].Title)

	w = s.do(http.MethodPost, "/api/v1/imports/csv", "user-1", "title,minplayers\n")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestExportUnknownGame() {
	w := s.do(http.MethodGet, "/api/v1/games/missing/export", "", "")
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/v1/games/missing", "", "")
	s.Equal(http.StatusNotFound, w.Code)
	var resp errorResponse
	s.decode(w, &resp)
	s.Equal("Game not found.", resp.Error)
}

func (s *ServerTestSuite) TestListGamesSearch() {
	s.importCatan()

	w := s.do(http.MethodGet, "/api/v1/games?search=cat", "", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var resp struct {
		Games []map[string]any `json:"games"`
	}
	s.decode(w, &resp)
	s.Len(resp.Games, 1)

	w = s.do(http.MethodGet, "/api/v1/games?search=azul", "", "")
	s.Require().Equal(http.StatusOK, w.Code)
	resp.Games = nil
	s.decode(w, &resp)
	s.Empty(resp.Games)

	w = s.do(http.MethodGet, "/api/v1/games?limit=-1", "", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestSessionLifecycle() {
	gameID := s.importCatan()

	w := s.do(http.MethodPost, "/api/v1/sessions", "user-1",
		`{"game_id":"`+gameID+`","players":[{"guest_name":"Alice"},{"guest_name":"Bob"}]}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created SessionResponse
	s.decode(w, &created)
	s.Require().Len(created.Participants, 2)
	sessionID := created.Session.ID
	alice, bob := created.Participants[0].ID, created.Participants[1].ID

	// Only the host may record scores
	w = s.do(http.MethodPut, "/api/v1/sessions/"+sessionID+"/scores", "user-2", `{"scores":{"`+alice+`":1}}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/v1/sessions/"+sessionID+"/scores", "user-1",
		`{"scores":{"`+alice+`":7,"`+bob+`":"12.5"}}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/sessions/"+sessionID, "", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var got SessionResponse
	s.decode(w, &got)
	s.Equal("Catan", got.GameTitle)
	s.Require().NotNil(got.Standings)
	s.True(got.Standings.Ended)
	s.Require().Len(got.Standings.Entries, 2)
	s.Equal("Bob", got.Standings.Entries[0].Name)
	s.Equal(1, got.Standings.Entries[0].Position)
	s.Equal("12.5", got.Standings.Entries[0].Score.String())
	s.Equal("Alice", got.Standings.Entries[1].Name)

	w = s.do(http.MethodPost, "/api/v1/sessions/"+sessionID+"/end", "user-1", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var ended EndSessionResponse
	s.decode(w, &ended)
	s.True(ended.AlreadyEnded)

	w = s.do(http.MethodGet, "/api/v1/sessions", "user-1", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var list SessionsResponse
	s.decode(w, &list)
	s.Len(list.Sessions, 1)
}

func (s *ServerTestSuite) TestCreateSessionValidation() {
	gameID := s.importCatan()

	w := s.do(http.MethodPost, "/api/v1/sessions", "user-1", `{"game_id":"`+gameID+`","players":[]}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/sessions", "user-1", `{"game_id":"`+gameID+`","players":[{}]}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/sessions", "user-1", `{"game_id":"missing","players":[{"guest_name":"A"}]}`)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/v1/sessions", "user-1", `{"game_id":`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestAddGameAndLibrary() {
	w := s.do(http.MethodPost, "/api/v1/games", "user-1", `{"title":"Azul"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created ImportResponse
	s.decode(w, &created)

	w = s.do(http.MethodGet, "/api/v1/library", "user-1", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var library LibraryResponse
	s.decode(w, &library)
	s.Require().Len(library.Items, 1)
	s.Equal("Azul", library.Items[0].Game.Title)

	w = s.do(http.MethodDelete, "/api/v1/library/"+created.GameID, "user-1", "")
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodPost, "/api/v1/games", "user-1", `{"title":"  "}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestFriendRequests() {
	w := s.do(http.MethodPut, "/api/v1/profile", "alice", `{"username":"Alice"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	w = s.do(http.MethodPut, "/api/v1/profile", "bob", `{"username":"Bob","bio":"Likes trains"}`)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, "/api/v1/friends/requests", "alice", `{"friend_id":"bob"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var sent FriendshipResponse
	s.decode(w, &sent)
	s.Equal("Bob", sent.Friend.Username)

	w = s.do(http.MethodGet, "/api/v1/friends/requests", "bob", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var pending FriendshipsResponse
	s.decode(w, &pending)
	s.Require().Len(pending.Friendships, 1)
	s.Equal("Alice", pending.Friendships[0].Friend.Username)

	w = s.do(http.MethodPost, "/api/v1/friends/requests/"+sent.ID+"/accept", "bob", "")
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/v1/friends", "alice", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var friends FriendshipsResponse
	s.decode(w, &friends)
	s.Require().Len(friends.Friendships, 1)
	s.Equal("Bob", friends.Friendships[0].Friend.Username)

	w = s.do(http.MethodPost, "/api/v1/friends/requests", "alice", `{"friend_id":"alice"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}
