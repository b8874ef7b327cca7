// Package api exposes a local HTTP API for inspecting the bridge (known
// devices, their sensor entities, flagged advisories) and for managing
// the automation references that gate deprecation advisories.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fen-lake/st2mqtt/advisory"
	"github.com/fen-lake/st2mqtt/internal/build"
	"github.com/fen-lake/st2mqtt/log"
	"github.com/fen-lake/st2mqtt/sensor"
	"github.com/fen-lake/st2mqtt/smartthings"
)

// State is the bridge state the API reads. Snapshots are taken per
// request; the API never mutates.
type State interface {
	Devices() []*smartthings.Device
	Entities() []*sensor.Entity
}

// ReferenceStore manages the automations and scenes registered as
// readers of an entity. Deprecation advisories are only raised for
// entities with at least one reference.
type ReferenceStore interface {
	References(ctx context.Context, entityID string) ([]advisory.Reference, error)
	AddReference(ctx context.Context, r advisory.Reference) (string, error)
	RemoveReference(ctx context.Context, id string) error
}

// Server serves the diagnostics API.
type Server struct {
	state State
	advs  advisory.Store // may be nil
	refs  ReferenceStore // may be nil

	srv *http.Server
}

// NewServer returns a server listening on addr. advs and refs may be nil
// if advisories are disabled.
func NewServer(addr string, state State, advs advisory.Store, refs ReferenceStore) *Server {
	s := &Server{state: state, advs: advs, refs: refs}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/devices", s.handleDevices)
		r.Get("/devices/{deviceID}/entities", s.handleDeviceEntities)
		r.Get("/entities", s.handleEntities)
		r.Get("/advisories", s.handleAdvisories)
		r.Get("/entities/{entityID}/refs", s.handleListRefs)
		r.Post("/entities/{entityID}/refs", s.handleAddRef)
		r.Delete("/refs/{refID}", s.handleRemoveRef)
	})

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Start begins serving in a new goroutine.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	log.Info("API listening", "addr", ln.Addr().String())
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("API server error", err)
		}
	}()
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": build.Version(),
	})
}

type deviceJSON struct {
	DeviceID string `json:"device_id"`
	Label    string `json:"label,omitempty"`
	Name     string `json:"name,omitempty"`
	Entities int    `json:"entities"`
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	devs := s.state.Devices()
	out := make([]deviceJSON, 0, len(devs))
	for _, d := range devs {
		out = append(out, deviceJSON{
			DeviceID: d.DeviceID,
			Label:    d.Label,
			Name:     d.Name,
			Entities: len(sensor.Entities(d)),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type entityJSON struct {
	UniqueID    string   `json:"unique_id"`
	DeviceID    string   `json:"device_id"`
	Capability  string   `json:"capability"`
	Attribute   string   `json:"attribute"`
	Value       any      `json:"value"`
	Unit        string   `json:"unit,omitempty"`
	Options     []string `json:"options,omitempty"`
	Deprecation string   `json:"deprecation,omitempty"`
}

func entityToJSON(e *sensor.Entity) entityJSON {
	return entityJSON{
		UniqueID:    e.UniqueID(),
		DeviceID:    e.Device().DeviceID,
		Capability:  string(e.Capability()),
		Attribute:   string(e.Attribute()),
		Value:       e.Value(),
		Unit:        e.Unit(),
		Options:     e.Options(),
		Deprecation: e.Deprecation(),
	}
}

func (s *Server) handleEntities(w http.ResponseWriter, r *http.Request) {
	entities := s.state.Entities()
	out := make([]entityJSON, 0, len(entities))
	for _, e := range entities {
		out = append(out, entityToJSON(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeviceEntities(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceID")
	var out []entityJSON
	for _, e := range s.state.Entities() {
		if e.Device().DeviceID == deviceID {
			out = append(out, entityToJSON(e))
		}
	}
	if out == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "unknown device " + deviceID,
		})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAdvisories(w http.ResponseWriter, r *http.Request) {
	if s.advs == nil {
		writeJSON(w, http.StatusOK, []*advisory.Advisory{})
		return
	}
	advs, err := s.advs.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}
	if advs == nil {
		advs = []*advisory.Advisory{}
	}
	writeJSON(w, http.StatusOK, advs)
}

func (s *Server) handleListRefs(w http.ResponseWriter, r *http.Request) {
	if s.refs == nil {
		writeJSON(w, http.StatusOK, []advisory.Reference{})
		return
	}
	refs, err := s.refs.References(r.Context(), chi.URLParam(r, "entityID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}
	if refs == nil {
		refs = []advisory.Reference{}
	}
	writeJSON(w, http.StatusOK, refs)
}

func (s *Server) handleAddRef(w http.ResponseWriter, r *http.Request) {
	if s.refs == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "advisories disabled",
		})
		return
	}

	var ref advisory.Reference
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
		return
	}
	ref.EntityID = chi.URLParam(r, "entityID")
	if ref.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "name is required",
		})
		return
	}

	id, err := s.refs.AddReference(r.Context(), ref)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}
	ref.ID = id
	writeJSON(w, http.StatusCreated, ref)
}

func (s *Server) handleRemoveRef(w http.ResponseWriter, r *http.Request) {
	if s.refs == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "advisories disabled",
		})
		return
	}
	if err := s.refs.RemoveReference(r.Context(), chi.URLParam(r, "refID")); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WarnError("Could not encode response", err)
	}
}
