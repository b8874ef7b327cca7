package smartthings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientNoToken(t *testing.T) {
	if _, err := NewClient(""); !errors.Is(err, ErrNoToken) {
		t.Errorf("err = %v, want ErrNoToken", err)
	}
}

func TestDevices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.Header.Get("Authorization"), "Bearer tok-1"; got != want {
			t.Errorf("Authorization = %q, want %q", got, want)
		}
		if r.URL.Path != "/devices" {
			t.Errorf("path = %q, want /devices", r.URL.Path)
		}
		w.Write([]byte(`{"items": [
			{"deviceId": "dev-1", "label": "hall sensor", "name": "multi-sensor"},
			{"deviceId": "dev-2", "name": "plug"}
		]}`))
	}))
	defer srv.Close()

	c, err := NewClient("tok-1", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	devices, err := c.Devices(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(devices) != 2 {
		t.Fatalf("got %d devices, want 2", len(devices))
	}
	if got, want := devices[0].DisplayName(), "hall sensor"; got != want {
		t.Errorf("DisplayName = %q, want %q", got, want)
	}
	if got, want := devices[1].DisplayName(), "plug"; got != want {
		t.Errorf("DisplayName = %q, want %q", got, want)
	}
}

func TestRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/devices/dev-1/status" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"components": {"main": {
			"battery": {"battery": {"value": 87, "unit": "%"}}
		}}}`))
	}))
	defer srv.Close()

	c, err := NewClient("tok-1", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	dev := &Device{DeviceID: "dev-1"}
	if err := c.Refresh(context.Background(), dev); err != nil {
		t.Fatal(err)
	}

	s := dev.Main().Get(CapabilityBattery, AttributeBattery)
	if f, ok := s.Float(); !ok || f != 87 {
		t.Errorf("battery = %v, want 87", s.Value)
	}
	if s.Unit != "%" {
		t.Errorf("unit = %q, want %%", s.Unit)
	}
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid token"}}`))
	}))
	defer srv.Close()

	c, err := NewClient("bad", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Devices(context.Background())
	if err == nil {
		t.Fatal("no error")
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized = false for %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Message != "invalid token" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestAPIErrorPredicates(t *testing.T) {
	for _, tt := range []struct {
		code int
		pred func(error) bool
		name string
	}{
		{http.StatusNotFound, IsNotFound, "IsNotFound"},
		{http.StatusTooManyRequests, IsRateLimited, "IsRateLimited"},
		{http.StatusUnauthorized, IsUnauthorized, "IsUnauthorized"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			}))
			defer srv.Close()

			c, err := NewClient("test-token", WithBaseURL(srv.URL))
			if err != nil {
				t.Fatal(err)
			}
			_, err = c.Devices(context.Background())
			if err == nil {
				t.Fatal("no error")
			}
			if !tt.pred(err) {
				t.Errorf("%s = false for %v", tt.name, err)
			}
		})
	}
}
