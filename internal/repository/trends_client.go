package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"seo-keyword-finder/internal/domain"
)

// Google Trends has no official API; these are the endpoints its own
// front end calls. The explore call issues a widget token, which the
// multiline call exchanges for the interest-over-time series.
const (
	trendsBaseURL = "https://trends.google.com"

	trendsHostLanguage = "en-US"
	trendsTimezone     = "360"
)

// TrendsAPIClient implements domain.TrendsClient against the Google
// Trends widget endpoints.
type TrendsAPIClient struct {
	httpClient *http.Client
	baseURL    string
	geo        string
	timeframe  string
	logger     domain.Logger

	primeMu sync.Mutex
	primed  bool
}

// NewTrendsClient creates a Google Trends client. The cookie jar matters:
// the widget endpoints reject sessions without the NID cookie handed out
// on the first page load.
func NewTrendsClient(config domain.Config, logger domain.Logger) *TrendsAPIClient {
	jar, _ := cookiejar.New(nil)
	return &TrendsAPIClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		baseURL:   trendsBaseURL,
		geo:       config.GetTrendsGeo(),
		timeframe: config.GetTrendsTimeframe(),
		logger:    logger,
	}
}

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Geo     string `json:"geo"`
	Time    string `json:"time"`
}

type exploreResponse struct {
	Widgets []struct {
		ID      string          `json:"id"`
		Token   string          `json:"token"`
		Request json.RawMessage `json:"request"`
	} `json:"widgets"`
}

type multilineResponse struct {
	Default struct {
		TimelineData []struct {
			Value     []float64 `json:"value"`
			IsPartial bool      `json:"isPartial"`
		} `json:"timelineData"`
	} `json:"default"`
}

// InterestOverTime returns the raw 0-100 interest series per keyword for
// the configured timeframe and geo. Callers must respect the five-keyword
// request limit.
func (c *TrendsAPIClient) InterestOverTime(ctx context.Context, keywords []string) (map[string][]float64, error) {
	if len(keywords) == 0 {
		return map[string][]float64{}, nil
	}
	if len(keywords) > 5 {
		return nil, fmt.Errorf("trends allows at most 5 keywords per request, got %d", len(keywords))
	}

	if err := c.primeSession(); err != nil {
		return nil, err
	}

	token, widgetReq, err := c.explore(ctx, keywords)
	if err != nil {
		return nil, err
	}

	timeline, err := c.fetchTimeline(ctx, token, widgetReq)
	if err != nil {
		return nil, err
	}

	// Column i of each timeline point belongs to keywords[i].
	series := make(map[string][]float64, len(keywords))
	for _, point := range timeline.Default.TimelineData {
		for i, keyword := range keywords {
			if i < len(point.Value) {
				series[keyword] = append(series[keyword], point.Value[i])
			}
		}
	}

	return series, nil
}

// primeSession loads the Trends front page so the jar holds the session
// cookies the API endpoints require. Only success latches; a transient
// failure is retried on the next call instead of poisoning the client.
// The request runs on its own context so a cancelled first request
// cannot taint the shared session.
func (c *TrendsAPIClient) primeSession() error {
	c.primeMu.Lock()
	defer c.primeMu.Unlock()

	if c.primed {
		return nil
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, c.baseURL+"/?geo=US", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to initialize trends session: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.primed = true
	return nil
}

func (c *TrendsAPIClient) explore(ctx context.Context, keywords []string) (string, json.RawMessage, error) {
	items := make([]comparisonItem, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, comparisonItem{
			Keyword: keyword,
			Geo:     c.geo,
			Time:    c.timeframe,
		})
	}

	reqPayload, err := json.Marshal(exploreRequest{ComparisonItem: items, Category: 0, Property: ""})
	if err != nil {
		return "", nil, err
	}

	body, err := c.get(ctx, c.baseURL+"/trends/api/explore", url.Values{
		"hl":  {trendsHostLanguage},
		"tz":  {trendsTimezone},
		"req": {string(reqPayload)},
	})
	if err != nil {
		return "", nil, err
	}

	var explore exploreResponse
	if err := json.Unmarshal(stripResponsePrefix(body), &explore); err != nil {
		return "", nil, fmt.Errorf("failed to parse explore response: %w", err)
	}

	for _, widget := range explore.Widgets {
		if widget.ID == "TIMESERIES" {
			return widget.Token, widget.Request, nil
		}
	}
	return "", nil, fmt.Errorf("explore response has no TIMESERIES widget")
}

func (c *TrendsAPIClient) fetchTimeline(ctx context.Context, token string, widgetReq json.RawMessage) (*multilineResponse, error) {
	body, err := c.get(ctx, c.baseURL+"/trends/api/widgetdata/multiline", url.Values{
		"hl":    {trendsHostLanguage},
		"tz":    {trendsTimezone},
		"req":   {string(widgetReq)},
		"token": {token},
	})
	if err != nil {
		return nil, err
	}

	var timeline multilineResponse
	if err := json.Unmarshal(stripResponsePrefix(body), &timeline); err != nil {
		return nil, fmt.Errorf("failed to parse timeline response: %w", err)
	}
	return &timeline, nil
}

func (c *TrendsAPIClient) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	fullURL := endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Calling Google Trends API", "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trends request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends request returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// stripResponsePrefix drops the anti-hijacking junk (`)]}',`) Google
// prepends to these responses, leaving the JSON object.
func stripResponsePrefix(body []byte) []byte {
	if idx := strings.IndexByte(string(body), '{'); idx > 0 {
		return body[idx:]
	}
	return body
}
