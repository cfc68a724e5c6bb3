package metar

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://example.test/api/data/metar"

func newMockedClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient(testBaseURL, 5*time.Second)
	httpmock.ActivateNonDefault(c.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClient_Fetch_NormalizesAndSorts(t *testing.T) {
	c := newMockedClient(t)

	// Out of order upstream, mixed wind encodings.
	body := `[
		{"icaoId":"LSZH","rawOb":"LSZH 211450Z 24008KT ...","temp":14.0,"dewp":9.0,"altim":1018.2,"wdir":240,"wspd":8,"obsTime":1700000400},
		{"icaoId":"LSZH","rawOb":"LSZH 211350Z VRB02KT ...","temp":13.0,"dewp":8.5,"altim":1018.0,"wdir":"VRB","wspd":"2","obsTime":1700000000}
	]`
	httpmock.RegisterResponder(http.MethodGet, testBaseURL,
		httpmock.NewStringResponder(http.StatusOK, body))

	readings, err := c.Fetch(context.Background(), "LSZH", 24)
	require.NoError(t, err)
	require.Len(t, readings, 2)

	// Ascending by observation time.
	assert.Equal(t, int64(1700000000000), readings[0].ObservedAt)
	assert.Equal(t, int64(1700000400000), readings[1].ObservedAt)

	// Variable wind direction coerces to nil, numeric string coerces to int.
	assert.Nil(t, readings[0].WindDirDeg)
	require.NotNil(t, readings[0].WindSpeedKt)
	assert.Equal(t, 2, *readings[0].WindSpeedKt)
	require.NotNil(t, readings[1].WindDirDeg)
	assert.Equal(t, 240, *readings[1].WindDirDeg)

	require.NotNil(t, readings[1].TempC)
	assert.InDelta(t, 14.0, *readings[1].TempC, 0.001)
	assert.Equal(t, "LSZH", readings[1].StationID)
}

func TestClient_Fetch_DropsEntriesWithoutObservationTime(t *testing.T) {
	c := newMockedClient(t)

	body := `[
		{"icaoId":"LSZH","rawOb":"no time at all","temp":10.0},
		{"icaoId":"LSZH","rawOb":"bad report time","temp":11.0,"reportTime":"yesterdayish"},
		{"icaoId":"LSZH","rawOb":"textual time","temp":12.0,"reportTime":"2023-11-14 22:00:00"}
	]`
	httpmock.RegisterResponder(http.MethodGet, testBaseURL,
		httpmock.NewStringResponder(http.StatusOK, body))

	readings, err := c.Fetch(context.Background(), "LSZH", 24)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	require.NotNil(t, readings[0].TempC)
	assert.InDelta(t, 12.0, *readings[0].TempC, 0.001)

	want := time.Date(2023, 11, 14, 22, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, want, readings[0].ObservedAt)
}

func TestClient_Fetch_SendsStationAndHours(t *testing.T) {
	c := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL,
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "LFSB", q.Get("ids"))
			assert.Equal(t, "6", q.Get("hours"))
			assert.Equal(t, "json", q.Get("format"))
			return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
		})

	readings, err := c.Fetch(context.Background(), "LFSB", 6)
	require.NoError(t, err)
	assert.Empty(t, readings)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestClient_Fetch_UpstreamFailure(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad_request", http.StatusBadRequest},
		{"internal_server_error", http.StatusInternalServerError},
		{"service_unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newMockedClient(t)
			httpmock.RegisterResponder(http.MethodGet, testBaseURL,
				httpmock.NewStringResponder(tt.statusCode, "upstream sad"))

			readings, err := c.Fetch(context.Background(), "LSZH", 24)
			require.Error(t, err)
			assert.Nil(t, readings)
			assert.Contains(t, err.Error(), "status")
		})
	}
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	c := newMockedClient(t)
	httpmock.RegisterResponder(http.MethodGet, testBaseURL,
		httpmock.NewStringResponder(http.StatusOK, `{"not":"an array"}`))

	_, err := c.Fetch(context.Background(), "LSZH", 24)
	require.Error(t, err)
}
