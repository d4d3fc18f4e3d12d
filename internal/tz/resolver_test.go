package tz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestUTCOffset_Resolved(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2.1/get-time-zone" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","gmtOffset":10800}`))
	}))
	t.Cleanup(srv.Close)

	c := NewTimezoneDBClient(srv.URL, "test-key", time.Second)
	offset := c.UTCOffset(context.Background(), 41.0082, 28.9784, 946728000)

	if offset.Hours != 3.0 || offset.Source != SourceResolved {
		t.Fatalf("unexpected offset %+v", offset)
	}
	if gotQuery.Get("key") != "test-key" || gotQuery.Get("by") != "position" {
		t.Fatalf("unexpected query %v", gotQuery)
	}
	if gotQuery.Get("time") != "946728000" {
		t.Fatalf("time=%q", gotQuery.Get("time"))
	}
}

func TestUTCOffset_NegativeAndFractional(t *testing.T) {
	cases := []struct {
		name      string
		gmtOffset string
		want      float64
	}{
		{"negative", `-18000`, -5.0},
		{"fractional", `20700`, 5.75},
		{"zero is still resolved", `0`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"status":"OK","gmtOffset":` + tc.gmtOffset + `}`))
			}))
			t.Cleanup(srv.Close)

			c := NewTimezoneDBClient(srv.URL, "k", time.Second)
			offset := c.UTCOffset(context.Background(), 0, 0, 0)
			if offset.Hours != tc.want || offset.Source != SourceResolved {
				t.Fatalf("offset %+v, want hours %v resolved", offset, tc.want)
			}
		})
	}
}

func TestUTCOffset_DefaultsOnFailure(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "missing field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"status":"FAILED"}`))
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			t.Cleanup(srv.Close)

			c := NewTimezoneDBClient(srv.URL, "k", time.Second)
			offset := c.UTCOffset(context.Background(), 41, 29, 0)
			if offset.Hours != 0 || offset.Source != SourceDefaulted {
				t.Fatalf("offset %+v, want defaulted UTC", offset)
			}
		})
	}
}

func TestUTCOffset_UnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewTimezoneDBClient(srv.URL, "k", time.Second)
	offset := c.UTCOffset(context.Background(), 41, 29, 0)
	if offset.Hours != 0 || offset.Source != SourceDefaulted {
		t.Fatalf("offset %+v, want defaulted UTC", offset)
	}
}
