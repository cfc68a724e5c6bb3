package metar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Client fetches METAR observations from an aviationweather.gov-style JSON
// endpoint. No retries or circuit breaking: a dropped fetch surfaces as an
// error and the dashboard recovers on its next poll.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// upstreamMetar mirrors the upstream JSON loosely: wind fields may arrive as
// numbers, numeric strings, or markers like "VRB", so they are coerced after
// decoding.
type upstreamMetar struct {
	IcaoID     string          `json:"icaoId"`
	RawOb      string          `json:"rawOb"`
	Temp       *float64        `json:"temp"`
	Dewp       *float64        `json:"dewp"`
	Altim      *float64        `json:"altim"`
	Wdir       json.RawMessage `json:"wdir"`
	Wspd       json.RawMessage `json:"wspd"`
	ObsTime    *int64          `json:"obsTime"` // epoch seconds
	ReportTime string          `json:"reportTime"`
}

// Fetch returns normalized observations for the station over the lookback
// window, sorted ascending by observation time. Entries whose observation
// time is missing or unparseable are silently dropped.
func (c *Client) Fetch(ctx context.Context, station string, hours int) ([]MetarReading, error) {
	values := url.Values{}
	values.Set("ids", station)
	values.Set("format", "json")
	values.Set("hours", strconv.Itoa(hours))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build metar request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("metar upstream returned status %d", resp.StatusCode)
	}

	var raw []upstreamMetar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode metar response: %w", err)
	}

	return normalize(raw), nil
}

func normalize(raw []upstreamMetar) []MetarReading {
	out := make([]MetarReading, 0, len(raw))
	for _, m := range raw {
		observedAt, ok := observationMillis(m)
		if !ok {
			continue
		}
		out = append(out, MetarReading{
			StationID:   m.IcaoID,
			RawText:     m.RawOb,
			TempC:       m.Temp,
			DewpointC:   m.Dewp,
			PressureHpa: m.Altim,
			WindDirDeg:  coerceInt(m.Wdir),
			WindSpeedKt: coerceInt(m.Wspd),
			ObservedAt:  observedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ObservedAt < out[j].ObservedAt })
	return out
}

// observationMillis resolves the observation time, preferring the epoch
// obsTime field over the textual reportTime.
func observationMillis(m upstreamMetar) (int64, bool) {
	if m.ObsTime != nil {
		return *m.ObsTime * 1000, true
	}
	s := strings.TrimSpace(m.ReportTime)
	if s == "" {
		return 0, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().UnixMilli(), true
		}
	}
	return 0, false
}

// coerceInt extracts an integer from a field that may be a JSON number, a
// numeric string, or a non-numeric marker such as "VRB" (which maps to nil).
func coerceInt(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
			return &v
		}
	}
	return nil
}
