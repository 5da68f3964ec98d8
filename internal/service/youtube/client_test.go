package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorlens/creatorlens/internal/domain"
)

func newTestClient(serverURL string) *Client {
	analyticsBaseURL = serverURL
	dataBaseURL = serverURL
	oauthTokenURL = serverURL + "/token"
	oauthAuthURL = serverURL + "/auth"

	return &Client{
		http:         resty.New(),
		clientID:     "test-client",
		clientSecret: "test-secret",
		redirectURL:  "http://localhost/callback",
	}
}

func TestDailyReport(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		gotQuery = map[string]string{
			"ids":     r.URL.Query().Get("ids"),
			"metrics": r.URL.Query().Get("metrics"),
			"sort":    r.URL.Query().Get("sort"),
		}
		w.Write([]byte(`{"rows":[
			["2025-01-01",120,45.5,3,1,1.25],
			["2025-01-02",80,20,0,0],
			["2025-01-03",null,null,null,null,null]
		]}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	rows, err := cli.DailyReport(context.Background(), "tok", "UC-x", "2025-01-01", "2025-01-03")
	require.NoError(t, err)

	assert.Equal(t, "channel==UC-x", gotQuery["ids"])
	assert.Equal(t, dailyMetrics, gotQuery["metrics"])
	assert.Equal(t, "day", gotQuery["sort"])

	require.Len(t, rows, 3)
	assert.Equal(t, domain.DailyRow{
		Date:              "2025-01-01",
		Views:             120,
		WatchTimeMinutes:  45.5,
		SubscribersGained: 3,
		SubscribersLost:   1,
		EstimatedRevenue:  1.25,
	}, rows[0])
	// short row: the missing revenue cell reads as zero
	assert.Zero(t, rows[1].EstimatedRevenue)
	assert.Equal(t, int64(80), rows[1].Views)
	// null cells read as zero too
	assert.Equal(t, domain.DailyRow{Date: "2025-01-03"}, rows[2])
}

func TestDailyReportEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	rows, err := cli.DailyReport(context.Background(), "tok", "UC-x", "2025-01-01", "2025-01-03")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQueryReportRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"rows":[["2025-01-01",1,1,0,0,0]]}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	rows, err := cli.DailyReport(context.Background(), "tok", "UC-x", "2025-01-01", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, rows, 1)
}

func TestQueryReportClientErrorIsPermanent(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		calls++
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"insufficient scope"}}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	_, err := cli.DailyReport(context.Background(), "tok", "UC-x", "2025-01-01", "2025-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient scope")
	assert.Equal(t, 1, calls)
}

func TestCountryRevenueReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.Equal(t, "country", r.URL.Query().Get("dimensions"))
		w.Write([]byte(`{"rows":[["US",10.5],["DE",2.25]]}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	rows, err := cli.CountryRevenueReport(context.Background(), "tok", "UC-x", "2025-01-01", "2025-01-31")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.CountryRevenueRow{CountryCode: "US", Revenue: 10.5}, rows[0])
	assert.Equal(t, domain.CountryRevenueRow{CountryCode: "DE", Revenue: 2.25}, rows[1])
}

func TestContentTypeReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.Equal(t, "day,creatorContentType", r.URL.Query().Get("dimensions"))
		w.Write([]byte(`{"rows":[
			["2025-01-01","VIDEO_ON_DEMAND",200,90.5],
			["2025-01-01","SHORTS",50,10]
		]}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	rows, err := cli.ContentTypeReport(context.Background(), "tok", "UC-x", "2025-01-01", "2025-01-01")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.ContentTypeRow{
		Date:             "2025-01-01",
		ContentType:      "VIDEO_ON_DEMAND",
		Views:            200,
		WatchTimeMinutes: 90.5,
	}, rows[0])
}

func TestMyChannel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.Equal(t, "true", r.URL.Query().Get("mine"))
		w.Write([]byte(`{"items":[{"id":"UC-x","snippet":{"title":"My Channel","thumbnails":{"default":{"url":"http://img"}}}}]}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	snippet, err := cli.MyChannel(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, &ChannelSnippet{ID: "UC-x", Title: "My Channel", Thumbnail: "http://img"}, snippet)
}

func TestMyChannelNoChannel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	_, err := cli.MyChannel(context.Background(), "tok")
	assert.Error(t, err)
}

func TestLongFormVideoCount(t *testing.T) {
	// videos over 20 minutes land in the "long" bucket, both buckets count
	counts := map[string]string{
		"medium": `{"pageInfo":{"totalResults":7}}`,
		"long":   `{"pageInfo":{"totalResults":2}}`,
	}
	var queried []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.Equal(t, "2025-01-01T00:00:00Z", r.URL.Query().Get("publishedAfter"))
		duration := r.URL.Query().Get("videoDuration")
		queried = append(queried, duration)
		w.Write([]byte(counts[duration]))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	count, err := cli.LongFormVideoCount(context.Background(), "tok", "UC-x", "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, int64(9), count)
	assert.ElementsMatch(t, []string{"medium", "long"}, queried)
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "test-client", r.PostForm.Get("client_id"))
		w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	token, err := cli.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)

	assert.Equal(t, "at", token.AccessToken)
	assert.Equal(t, "rt", token.RefreshToken)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	expiry := token.Expiry(now)
	require.NotNil(t, expiry)
	assert.Equal(t, now.Add(time.Hour), *expiry)
}

func TestRefreshTokenError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"invalid_grant"}}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	_, err := cli.RefreshToken(context.Background(), "stale")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestRefreshTokenEmptyAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	_, err := cli.RefreshToken(context.Background(), "rt")
	assert.Error(t, err)
}

func TestAuthCodeURL(t *testing.T) {
	cli := newTestClient("http://example")

	got := cli.AuthCodeURL("state-123")

	assert.Contains(t, got, "http://example/auth?")
	assert.Contains(t, got, "client_id=test-client")
	assert.Contains(t, got, "access_type=offline")
	assert.Contains(t, got, "prompt=consent")
	assert.Contains(t, got, "state=state-123")
}

func TestTokenExpiryZero(t *testing.T) {
	token := Token{AccessToken: "at"}
	assert.Nil(t, token.Expiry(time.Now()))
}
