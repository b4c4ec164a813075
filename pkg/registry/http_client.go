package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/safedep/dry/log"
)

const (
	DefaultRegistryURL = "https://registry.npmjs.org"

	// Abbreviated packument, same preference order as the npm CLI
	acceptPackument = "application/vnd.npm.install-v1+json; q=1.0, application/json; q=0.8, */*"
	acceptManifest  = "application/json"
)

type HttpRegistryClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

func DefaultHttpRegistryClientConfig() HttpRegistryClientConfig {
	return HttpRegistryClientConfig{
		BaseURL: DefaultRegistryURL,
		Timeout: 60 * time.Second,
	}
}

// HttpRegistryClient talks to the registry HTTP API directly
type HttpRegistryClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

var _ Client = (*HttpRegistryClient)(nil)

func NewHttpRegistryClient(config HttpRegistryClientConfig) *HttpRegistryClient {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultRegistryURL
	}

	return &HttpRegistryClient{
		httpClient: &http.Client{Timeout: config.Timeout},
		baseURL:    baseURL,
		userAgent:  config.UserAgent,
	}
}

func (c *HttpRegistryClient) FetchLatestManifest(ctx context.Context, packageName string) (*PackageManifest, error) {
	body, err := c.get(ctx, c.packageURL(packageName)+"/latest", acceptManifest)
	if err != nil {
		return nil, newLookupError(packageName, OpFetchLatestManifest, err)
	}

	var manifest PackageManifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		return nil, newLookupError(packageName, OpFetchLatestManifest,
			fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}

	if manifest.Version == "" {
		return nil, newLookupError(packageName, OpFetchLatestManifest,
			fmt.Errorf("%w: no version in latest manifest", ErrMalformedResponse))
	}

	log.Debugf("Registry: %s latest is %s", packageName, manifest.Version)
	return &manifest, nil
}

func (c *HttpRegistryClient) FetchAllVersions(ctx context.Context, packageName string) ([]string, error) {
	body, err := c.get(ctx, c.packageURL(packageName), acceptPackument)
	if err != nil {
		return nil, newLookupError(packageName, OpFetchAllVersions, err)
	}

	var packument struct {
		Versions map[string]json.RawMessage `json:"versions"`
	}

	if err := json.Unmarshal(body, &packument); err != nil {
		return nil, newLookupError(packageName, OpFetchAllVersions,
			fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}

	// Unpublished packages keep a packument without versions
	if packument.Versions == nil {
		return nil, newLookupError(packageName, OpFetchAllVersions,
			fmt.Errorf("%w: no versions in packument", ErrMalformedResponse))
	}

	versions := make([]string, 0, len(packument.Versions))
	for version := range packument.Versions {
		versions = append(versions, version)
	}

	sort.Strings(versions)

	log.Debugf("Registry: %s has %d published versions", packageName, len(versions))
	return versions, nil
}

// packageURL escapes the slash of scoped names the way the registry expects
// (@scope/name -> @scope%2fname)
func (c *HttpRegistryClient) packageURL(packageName string) string {
	escaped := strings.Replace(url.PathEscape(packageName), "%2F", "%2f", 1)
	return c.baseURL + "/" + escaped
}

func (c *HttpRegistryClient) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", accept)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.Debugf("Registry: GET %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: registry returned status %s for GET %s",
			ErrPackageNotFound, resp.Status, url)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %s for GET %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return body, nil
}
