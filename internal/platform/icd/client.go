package icd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	// ErrNotConfigured is returned when no API credentials are set.
	ErrNotConfigured = errors.New("icd: lookup not configured")
	// ErrUpstream wraps any failure talking to the ICD API.
	ErrUpstream = errors.New("icd: upstream request failed")
)

const scope = "icdapi_access"

type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	SearchURL    string
	Language     string
	Timeout      time.Duration
}

// Code is a single search hit.
type Code struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Searcher looks up diagnosis codes by free text.
type Searcher interface {
	Search(ctx context.Context, q string, limit int) ([]Code, error)
}

// Client queries the WHO ICD API. Access tokens are fetched with the
// client-credentials grant and reused until shortly before they expire.
type Client struct {
	searchURL string
	language  string
	http      *http.Client
	logger    zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	c := &Client{
		searchURL: cfg.SearchURL,
		language:  cfg.Language,
		logger:    logger.With().Str("component", "icd").Logger(),
	}
	if c.language == "" {
		c.language = "de"
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.TokenURL == "" || cfg.SearchURL == "" {
		return c
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{scope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	c.http = cc.Client(ctx)
	c.http.Timeout = timeout
	return c
}

// Enabled reports whether credentials were configured.
func (c *Client) Enabled() bool {
	return c.http != nil
}

type searchResponse struct {
	Error               bool           `json:"error"`
	ErrorMessage        string         `json:"errorMessage"`
	DestinationEntities []searchEntity `json:"destinationEntities"`
}

type searchEntity struct {
	TheCode string          `json:"theCode"`
	Title   json.RawMessage `json:"title"`
}

var markup = regexp.MustCompile(`</?em[^>]*>`)

// Search returns at most limit codes matching q. Entities without a code
// (chapters and blocks) are skipped.
func (c *Client) Search(ctx context.Context, q string, limit int) ([]Code, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("flatResults", "true")
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building icd request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.language)
	req.Header.Set("API-Version", "v2")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("icd search request failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("icd search returned error status")
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	if sr.Error {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, sr.ErrorMessage)
	}

	codes := make([]Code, 0, len(sr.DestinationEntities))
	for _, ent := range sr.DestinationEntities {
		if ent.TheCode == "" {
			continue
		}
		codes = append(codes, Code{Code: ent.TheCode, Title: titleText(ent.Title)})
		if limit > 0 && len(codes) == limit {
			break
		}
	}
	return codes, nil
}

// titleText accepts both the plain string form and the JSON-LD
// {"@value": ...} form of a title.
func titleText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var obj struct {
			At    string `json:"@value"`
			Plain string `json:"value"`
		}
		if json.Unmarshal(raw, &obj) != nil {
			return ""
		}
		s = obj.At
		if s == "" {
			s = obj.Plain
		}
	}
	return strings.TrimSpace(markup.ReplaceAllString(s, ""))
}
