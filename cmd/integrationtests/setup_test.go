package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	artist "bidstar/internal/artistService"
	auction "bidstar/internal/auctionService"
	"bidstar/internal/fixtures"
	label "bidstar/internal/labelService"
	"bidstar/internal/repository"
	"bidstar/internal/server"
	"bidstar/internal/trial"

	"github.com/gin-gonic/gin"
)

var testTrialSettings = trial.Settings{Days: 20, MaxPosts: 20}

// SetupTestRouter initializes the router with an empty in-memory repository
// for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	return routerFor(repo)
}

// SetupSeededRouter initializes the router with the demo marketplace data:
// three artists, two labels and one live, one upcoming and one ended auction.
func SetupSeededRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	now := time.Now().UTC()
	for _, a := range fixtures.Artists(now, testTrialSettings) {
		_ = repo.AddArtist(a)
	}
	for _, l := range fixtures.Labels() {
		_ = repo.AddLabel(l)
	}
	for _, a := range fixtures.Auctions(now) {
		_ = repo.AddAuction(a)
	}

	return routerFor(repo)
}

func routerFor(repo *repository.MemoryRepo) *gin.Engine {
	auctionSvc := auction.NewAuctionService(repo)
	artistSvc := artist.NewArtistService(repo, testTrialSettings, 3)
	labelSvc := label.NewLabelService(repo, 0)
	return server.SetupRouter(auctionSvc, artistSvc, labelSvc)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
