package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) *HttpRegistryClient {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := routes[r.URL.EscapedPath()]
		if !ok {
			http.NotFound(w, r)
			return
		}

		handler(w, r)
	}))

	t.Cleanup(server.Close)

	return NewHttpRegistryClient(HttpRegistryClientConfig{
		BaseURL:   server.URL + "/",
		Timeout:   5 * time.Second,
		UserAgent: "outdated-test",
	})
}

func jsonResponse(body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestHttpRegistryClient_FetchLatestManifest(t *testing.T) {
	cases := []struct {
		name     string
		pkg      string
		routes   map[string]func(w http.ResponseWriter, r *http.Request)
		assertFn func(t *testing.T, m *PackageManifest, err error)
	}{
		{
			name: "returns latest version",
			pkg:  "left-pad",
			routes: map[string]func(w http.ResponseWriter, r *http.Request){
				"/left-pad/latest": jsonResponse(`{"name":"left-pad","version":"1.3.0"}`),
			},
			assertFn: func(t *testing.T, m *PackageManifest, err error) {
				require.NoError(t, err)
				assert.Equal(t, "left-pad", m.Name)
				assert.Equal(t, "1.3.0", m.Version)
			},
		},
		{
			name: "escapes scoped package names",
			pkg:  "@types/node",
			routes: map[string]func(w http.ResponseWriter, r *http.Request){
				"/@types%2fnode/latest": jsonResponse(`{"name":"@types/node","version":"22.0.0"}`),
			},
			assertFn: func(t *testing.T, m *PackageManifest, err error) {
				require.NoError(t, err)
				assert.Equal(t, "22.0.0", m.Version)
			},
		},
		{
			name:   "not found is a lookup error",
			pkg:    "does-not-exist",
			routes: map[string]func(w http.ResponseWriter, r *http.Request){},
			assertFn: func(t *testing.T, m *PackageManifest, err error) {
				require.Error(t, err)
				assert.Nil(t, m)
				assert.ErrorIs(t, err, ErrPackageNotFound)

				var lookupErr *RegistryLookupError
				require.ErrorAs(t, err, &lookupErr)
				assert.Equal(t, "does-not-exist", lookupErr.Package)
				assert.Equal(t, OpFetchLatestManifest, lookupErr.Op)
			},
		},
		{
			name: "server error is a lookup error",
			pkg:  "flaky",
			routes: map[string]func(w http.ResponseWriter, r *http.Request){
				"/flaky/latest": func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusBadGateway)
				},
			},
			assertFn: func(t *testing.T, m *PackageManifest, err error) {
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrPackageNotFound)
				assert.Contains(t, err.Error(), "502")
			},
		},
		{
			name: "malformed json",
			pkg:  "broken",
			routes: map[string]func(w http.ResponseWriter, r *http.Request){
				"/broken/latest": jsonResponse(`{"name":`),
			},
			assertFn: func(t *testing.T, m *PackageManifest, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
		{
			name: "manifest without version",
			pkg:  "empty",
			routes: map[string]func(w http.ResponseWriter, r *http.Request){
				"/empty/latest": jsonResponse(`{"name":"empty"}`),
			},
			assertFn: func(t *testing.T, m *PackageManifest, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedResponse)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestRegistry(t, tc.routes)

			m, err := client.FetchLatestManifest(context.Background(), tc.pkg)
			tc.assertFn(t, m, err)
		})
	}
}

func TestHttpRegistryClient_FetchAllVersions(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		assertFn func(t *testing.T, versions []string, err error)
	}{
		{
			name: "returns sorted version keys",
			body: `{"name":"left-pad","versions":{"1.3.0":{},"1.0.0":{},"1.1.0":{}}}`,
			assertFn: func(t *testing.T, versions []string, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"1.0.0", "1.1.0", "1.3.0"}, versions)
			},
		},
		{
			name: "empty versions object is an empty list",
			body: `{"name":"left-pad","versions":{}}`,
			assertFn: func(t *testing.T, versions []string, err error) {
				require.NoError(t, err)
				assert.Empty(t, versions)
			},
		},
		{
			name: "unpublished package has no versions",
			body: `{"name":"left-pad","time":{"unpublished":{}}}`,
			assertFn: func(t *testing.T, versions []string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedResponse)

				var lookupErr *RegistryLookupError
				require.ErrorAs(t, err, &lookupErr)
				assert.Equal(t, OpFetchAllVersions, lookupErr.Op)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var accept, userAgent string
			client := newTestRegistry(t, map[string]func(w http.ResponseWriter, r *http.Request){
				"/left-pad": func(w http.ResponseWriter, r *http.Request) {
					accept = r.Header.Get("Accept")
					userAgent = r.Header.Get("User-Agent")
					jsonResponse(tc.body)(w, r)
				},
			})

			versions, err := client.FetchAllVersions(context.Background(), "left-pad")
			tc.assertFn(t, versions, err)

			assert.Equal(t, acceptPackument, accept)
			assert.Equal(t, "outdated-test", userAgent)
		})
	}
}

func TestHttpRegistryClient_CanceledContext(t *testing.T) {
	client := newTestRegistry(t, map[string]func(w http.ResponseWriter, r *http.Request){
		"/left-pad/latest": jsonResponse(`{"name":"left-pad","version":"1.3.0"}`),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchLatestManifest(ctx, "left-pad")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientFactory_CreateClient(t *testing.T) {
	factory := NewClientFactory(ClientFactoryConfig{BaseURL: "https://registry.example.com/"})

	client, err := factory.CreateClient(ClientTypeHttp)
	require.NoError(t, err)

	httpClient, ok := client.(*HttpRegistryClient)
	require.True(t, ok)
	assert.Equal(t, "https://registry.example.com", httpClient.baseURL)

	_, err = factory.CreateClient(ClientType("gopher"))
	assert.ErrorContains(t, err, "unsupported registry client")
}
