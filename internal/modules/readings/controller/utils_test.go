package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

var errTest = errors.New("boom")

func TestParseWindowQuery(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantHours    int
		wantLocation string
		wantErr      bool
	}{
		{name: "defaults", target: "/api/temperature/stats", wantHours: 24},
		{name: "explicit hours", target: "/api/temperature/stats?hours=6", wantHours: 6},
		{name: "location passthrough", target: "/api/temperature/stats?location=attic", wantHours: 24, wantLocation: "attic"},
		{name: "non-integer hours", target: "/api/temperature/stats?hours=six", wantErr: true},
		{name: "zero hours", target: "/api/temperature/stats?hours=0", wantErr: true},
		{name: "negative hours", target: "/api/temperature/stats?hours=-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			hours, location, err := parseWindowQuery(req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("err = nil; want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v; want nil", err)
			}
			if hours != tt.wantHours {
				t.Errorf("hours = %d; want %d", hours, tt.wantHours)
			}
			if location != tt.wantLocation {
				t.Errorf("location = %q; want %q", location, tt.wantLocation)
			}
		})
	}
}

func TestParseListQuery(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantLimit int
		wantErr   bool
	}{
		{name: "default limit", target: "/api/temperature", wantLimit: 500},
		{name: "explicit limit", target: "/api/temperature?limit=100", wantLimit: 100},
		{name: "limit at cap", target: "/api/temperature?limit=1000", wantLimit: 1000},
		{name: "limit above cap", target: "/api/temperature?limit=1001", wantErr: true},
		{name: "zero limit", target: "/api/temperature?limit=0", wantErr: true},
		{name: "non-integer limit", target: "/api/temperature?limit=many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			_, _, limit, err := parseListQuery(req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("err = nil; want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v; want nil", err)
			}
			if limit != tt.wantLimit {
				t.Errorf("limit = %d; want %d", limit, tt.wantLimit)
			}
		})
	}
}
