package cheapshark_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"gamedeals/internal/domain"
	"gamedeals/internal/infrastructure/cheapshark"
	"gamedeals/pkg/errcodes"
)

const dealsBody = `[
	{"dealID":"X8sebHhbc1Ga0dTkgg59WgyM506af9oNZZJLU9uSrX8%3D","title":"Hades","storeID":"1",
	 "thumb":"https://example.com/t.jpg","salePrice":"9.99","normalPrice":"24.99","metacriticScore":"93"},
	{"dealID":"abc","title":"Dead Cells","storeID":"7","salePrice":"7.49","normalPrice":"24.99"}
]`

type upstream struct {
	server *httptest.Server
	hits   atomic.Int32
}

func newUpstream(t *testing.T, status int, body string) *upstream {
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		u.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(u.server.Close)

	return u
}

func newClient(t *testing.T, direct, proxy string) *cheapshark.Client {
	client, err := cheapshark.NewClient(cheapshark.Config{
		BaseURL:    direct + "/api/1.0/deals",
		ProxyURL:   proxy + "/raw",
		ProxyParam: "url",
		StoreIDs:   []string{"1", "7", "11", "23", "25"},
		UpperPrice: 30,
		Metacritic: 70,
		PageSize:   40,
	}, &http.Client{})
	require.NoError(t, err)

	return client
}

func TestClientDealsURL(t *testing.T) {
	rq := require.New(t)

	client, err := cheapshark.NewClient(cheapshark.Config{
		BaseURL:    "https://www.cheapshark.com/api/1.0/deals",
		ProxyURL:   "https://api.allorigins.win/raw",
		StoreIDs:   []string{"1", "7", "11", "23", "25"},
		UpperPrice: 30,
		Metacritic: 70,
		PageSize:   40,
	}, nil)
	rq.NoError(err)

	rq.Equal(
		"https://www.cheapshark.com/api/1.0/deals?storeID=1,7,11,23,25&upperPrice=30&metacritic=70&pageSize=40",
		client.DealsURL(),
	)
}

func TestNewClientInvalidURL(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		baseURL  string
		proxyURL string
	}{
		{name: "Relative base", baseURL: "/api/deals"},
		{name: "Unsupported scheme", baseURL: "ftp://example.com/deals"},
		{name: "Broken proxy", baseURL: "https://example.com/deals", proxyURL: "::"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			_, err := cheapshark.NewClient(cheapshark.Config{BaseURL: tc.baseURL, ProxyURL: tc.proxyURL}, nil)
			rq.Error(err)
			rq.True(domain.HasCode(err, errcodes.InvalidURL))
		})
	}
}

func TestClientFetchDeals(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name         string
		directStatus int
		directBody   string
		proxyStatus  int
		proxyBody    string
		wantTitles   []string
		wantDirect   int32
		wantProxy    int32
	}{
		{
			name:         "Direct success skips proxy",
			directStatus: http.StatusOK,
			directBody:   dealsBody,
			proxyStatus:  http.StatusOK,
			proxyBody:    `[]`,
			wantTitles:   []string{"Hades", "Dead Cells"},
			wantDirect:   1,
		},
		{
			name:         "Direct 500 falls back to proxy",
			directStatus: http.StatusInternalServerError,
			directBody:   `oops`,
			proxyStatus:  http.StatusOK,
			proxyBody:    dealsBody,
			wantTitles:   []string{"Hades", "Dead Cells"},
			wantDirect:   1,
			wantProxy:    1,
		},
		{
			name:         "Proxy empty list is returned as is",
			directStatus: http.StatusInternalServerError,
			proxyStatus:  http.StatusOK,
			proxyBody:    `[]`,
			wantTitles:   []string{},
			wantDirect:   1,
			wantProxy:    1,
		},
		{
			name:         "Malformed direct body falls back",
			directStatus: http.StatusOK,
			directBody:   `<html>blocked</html>`,
			proxyStatus:  http.StatusOK,
			proxyBody:    dealsBody,
			wantTitles:   []string{"Hades", "Dead Cells"},
			wantDirect:   1,
			wantProxy:    1,
		},
		{
			name:         "Null direct body falls back",
			directStatus: http.StatusOK,
			directBody:   `null`,
			proxyStatus:  http.StatusOK,
			proxyBody:    dealsBody,
			wantTitles:   []string{"Hades", "Dead Cells"},
			wantDirect:   1,
			wantProxy:    1,
		},
		{
			name:         "Both fail",
			directStatus: http.StatusBadGateway,
			proxyStatus:  http.StatusServiceUnavailable,
			wantTitles:   []string{},
			wantDirect:   1,
			wantProxy:    1,
		},
		{
			name:         "Proxy returns object",
			directStatus: http.StatusNotFound,
			proxyStatus:  http.StatusOK,
			proxyBody:    `{"error":"rate limited"}`,
			wantTitles:   []string{},
			wantDirect:   1,
			wantProxy:    1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			direct := newUpstream(t, tc.directStatus, tc.directBody)
			proxy := newUpstream(t, tc.proxyStatus, tc.proxyBody)

			got := newClient(t, direct.server.URL, proxy.server.URL).FetchDeals(context.Background())

			rq.NotNil(got)

			titles := make([]string, 0, len(got))
			for _, deal := range got {
				titles = append(titles, deal.Title)
			}

			rq.Equal(tc.wantTitles, titles)
			rq.Equal(tc.wantDirect, direct.hits.Load())
			rq.Equal(tc.wantProxy, proxy.hits.Load())
		})
	}
}

func TestClientDecodesDeal(t *testing.T) {
	rq := require.New(t)

	direct := newUpstream(t, http.StatusOK, dealsBody)

	got := newClient(t, direct.server.URL, direct.server.URL).FetchDeals(context.Background())
	rq.Len(got, 2)

	rq.Equal("X8sebHhbc1Ga0dTkgg59WgyM506af9oNZZJLU9uSrX8%3D", got[0].DealID)
	rq.Equal("1", got[0].StoreID)
	rq.Equal("https://example.com/t.jpg", got[0].Thumb)
	rq.Equal("9.99", got[0].SalePrice)
	rq.Equal("24.99", got[0].NormalPrice)
	rq.Equal("93", got[0].MetacriticScore)
}

func TestClientProxyReceivesEncodedURL(t *testing.T) {
	rq := require.New(t)

	direct := newUpstream(t, http.StatusInternalServerError, "")

	var relayed string

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/raw", r.URL.Path)
		relayed = r.URL.Query().Get("url")
		w.Write([]byte(dealsBody))
	}))
	defer proxy.Close()

	client := newClient(t, direct.server.URL, proxy.URL)

	rq.Len(client.FetchDeals(context.Background()), 2)
	rq.Equal(client.DealsURL(), relayed)
}

func TestClientTransportError(t *testing.T) {
	rq := require.New(t)

	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()

	proxy := newUpstream(t, http.StatusOK, dealsBody)

	got := newClient(t, closed.URL, proxy.server.URL).FetchDeals(context.Background())

	rq.Len(got, 2)
	rq.EqualValues(1, proxy.hits.Load())
}

func TestClientCancelledContext(t *testing.T) {
	rq := require.New(t)

	direct := newUpstream(t, http.StatusOK, dealsBody)
	proxy := newUpstream(t, http.StatusOK, dealsBody)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := newClient(t, direct.server.URL, proxy.server.URL).FetchDeals(ctx)

	rq.NotNil(got)
	rq.Empty(got)
	rq.Zero(direct.hits.Load())
	rq.Zero(proxy.hits.Load())
}

func TestClientWithoutProxy(t *testing.T) {
	rq := require.New(t)

	direct := newUpstream(t, http.StatusInternalServerError, "")

	client, err := cheapshark.NewClient(cheapshark.Config{BaseURL: direct.server.URL + "/deals"}, nil)
	rq.NoError(err)

	got := client.FetchDeals(context.Background())

	rq.NotNil(got)
	rq.Empty(got)
	rq.EqualValues(1, direct.hits.Load())
}
