package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fen-lake/st2mqtt/advisory"
	"github.com/fen-lake/st2mqtt/sensor"
	"github.com/fen-lake/st2mqtt/smartthings"
)

type fakeState struct {
	devices []*smartthings.Device
}

func (s *fakeState) Devices() []*smartthings.Device { return s.devices }

func (s *fakeState) Entities() []*sensor.Entity {
	var entities []*sensor.Entity
	for _, d := range s.devices {
		entities = append(entities, sensor.Entities(d)...)
	}
	return entities
}

func testState() *fakeState {
	return &fakeState{devices: []*smartthings.Device{{
		DeviceID: "dev-1",
		Label:    "hall sensor",
		Status: smartthings.DeviceStatus{
			smartthings.MainComponent: smartthings.ComponentStatus{
				smartthings.CapabilityBattery: {
					smartthings.AttributeBattery: {Value: 42.0, Unit: "%"},
				},
			},
		},
	}}}
}

func testRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := NewServer("127.0.0.1:0", testState(), nil, nil)
	w := testRequest(t, s, "/api/v1/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
}

func TestDevices(t *testing.T) {
	s := NewServer("127.0.0.1:0", testState(), nil, nil)
	w := testRequest(t, s, "/api/v1/devices")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var devs []deviceJSON
	if err := json.Unmarshal(w.Body.Bytes(), &devs); err != nil {
		t.Fatal(err)
	}
	if len(devs) != 1 || devs[0].DeviceID != "dev-1" {
		t.Errorf("devices = %+v", devs)
	}
	if devs[0].Entities != 1 {
		t.Errorf("entities = %d, want 1", devs[0].Entities)
	}
}

func TestDeviceEntities(t *testing.T) {
	s := NewServer("127.0.0.1:0", testState(), nil, nil)

	w := testRequest(t, s, "/api/v1/devices/dev-1/entities")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var entities []entityJSON
	if err := json.Unmarshal(w.Body.Bytes(), &entities); err != nil {
		t.Fatal(err)
	}
	if len(entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(entities))
	}
	if got, want := entities[0].Capability, "battery"; got != want {
		t.Errorf("capability = %q, want %q", got, want)
	}

	if w := testRequest(t, s, "/api/v1/devices/nope/entities"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

type fakeRefs struct {
	refs map[string]advisory.Reference
}

func (f *fakeRefs) References(_ context.Context, entityID string) ([]advisory.Reference, error) {
	var out []advisory.Reference
	for _, r := range f.refs {
		if r.EntityID == entityID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRefs) AddReference(_ context.Context, r advisory.Reference) (string, error) {
	if r.ID == "" {
		r.ID = "ref-1"
	}
	f.refs[r.ID] = r
	return r.ID, nil
}

func (f *fakeRefs) RemoveReference(_ context.Context, id string) error {
	delete(f.refs, id)
	return nil
}

func TestEntityRefs(t *testing.T) {
	refs := &fakeRefs{refs: make(map[string]advisory.Reference)}
	s := NewServer("127.0.0.1:0", testState(), nil, refs)

	body := strings.NewReader(`{"kind": "automation", "name": "Night mode"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities/ent-1/refs", body)
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	var created advisory.Reference
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.EntityID != "ent-1" || created.ID == "" {
		t.Errorf("created = %+v", created)
	}

	w = testRequest(t, s, "/api/v1/entities/ent-1/refs")
	var listed []advisory.Reference
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0].Name != "Night mode" {
		t.Errorf("refs = %+v", listed)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/refs/"+created.ID, nil)
	w = httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if len(refs.refs) != 0 {
		t.Errorf("refs = %+v, want empty", refs.refs)
	}
}

func TestAddRefMissingName(t *testing.T) {
	refs := &fakeRefs{refs: make(map[string]advisory.Reference)}
	s := NewServer("127.0.0.1:0", testState(), nil, refs)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entities/ent-1/refs", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAdvisoriesDisabled(t *testing.T) {
	s := NewServer("127.0.0.1:0", testState(), nil, nil)
	w := testRequest(t, s, "/api/v1/advisories")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want []", got)
	}
}
