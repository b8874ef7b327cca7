// Package advisory raises and clears deprecation advisories for sensor
// entities that are superseded by a richer representation. An advisory is
// either absent or flagged; flagging is idempotent and clearing an absent
// advisory is a no-op.
package advisory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fen-lake/st2mqtt/log"
	"github.com/fen-lake/st2mqtt/sensor"
)

// SeverityWarning is the severity of every deprecation advisory: the
// entity still works, it is just superseded.
const SeverityWarning = "warning"

// Advisory describes one flagged entity deprecation. Severity,
// TranslationKey and Items are derived from the reason and references,
// so surfaces consuming the payload can render it without further
// lookups.
type Advisory struct {
	Key            string      `json:"key"`
	EntityID       string      `json:"entity_id"`
	Reason         string      `json:"reason"`
	Severity       string      `json:"severity"`
	TranslationKey string      `json:"translation_key"`
	Items          string      `json:"items,omitempty"`
	Refs           []Reference `json:"refs,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// derive fills the fields computed from Reason and Refs.
func (a *Advisory) derive() {
	a.Severity = SeverityWarning
	a.TranslationKey = "deprecated_" + a.Reason
	a.Items = renderItems(a.Refs)
}

// renderItems formats the referencing automations and scenes as a
// markdown list, one linked item per line.
func renderItems(refs []Reference) string {
	lines := make([]string, 0, len(refs))
	for _, r := range refs {
		lines = append(lines, fmt.Sprintf("- [%s](/config/%s/edit/%s)", r.Name, r.Kind, r.ID))
	}
	return strings.Join(lines, "\n")
}

// Reference is an external automation or scene known to read an entity.
// Advisories carry references so an operator can see what breaks if the
// deprecated entity goes away.
type Reference struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	EntityID string `json:"entity_id"`
}

// Key returns the advisory key for an entity deprecated for a reason.
func Key(reason, entityID string) string {
	return "deprecated_" + reason + "_" + entityID
}

// Store persists advisories across restarts.
type Store interface {
	Save(ctx context.Context, a *Advisory) error
	Delete(ctx context.Context, key string) error
	ListByEntity(ctx context.Context, entityID string) ([]*Advisory, error)
	List(ctx context.Context) ([]*Advisory, error)
}

// ReferenceStore looks up the automations and scenes that reference an
// entity.
type ReferenceStore interface {
	References(ctx context.Context, entityID string) ([]Reference, error)
}

// Sink delivers advisory state changes to an external surface.
type Sink interface {
	Flag(ctx context.Context, a *Advisory) error
	Clear(ctx context.Context, key string) error
}

// Notifier applies entity lifecycle events to the advisory state.
type Notifier struct {
	store Store
	refs  ReferenceStore
	sink  Sink
}

// NewNotifier returns a notifier writing through store and sink. refs may
// be nil, in which case advisories carry no references.
func NewNotifier(store Store, refs ReferenceStore, sink Sink) *Notifier {
	return &Notifier{store: store, refs: refs, sink: sink}
}

// EntityAdded flags an advisory if the entity is deprecated given its
// device's current status, and otherwise clears any advisory previously
// flagged for the entity. A deprecated entity nothing references is left
// unflagged, since there is nothing actionable for the operator. Flagging
// again with the same reason refreshes the stored advisory without
// raising a new one.
func (n *Notifier) EntityAdded(ctx context.Context, e *sensor.Entity) error {
	reason := e.Deprecation()
	if reason == "" {
		return n.EntityRemoved(ctx, e)
	}

	a := &Advisory{
		Key:       Key(reason, e.UniqueID()),
		EntityID:  e.UniqueID(),
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if n.refs != nil {
		refs, err := n.refs.References(ctx, a.EntityID)
		if err != nil {
			log.WarnError("Could not resolve entity references", err, "entity", a.EntityID)
		} else if len(refs) == 0 {
			return nil
		} else {
			a.Refs = refs
		}
	}
	a.derive()
	if err := n.store.Save(ctx, a); err != nil {
		return err
	}
	log.Info("Advisory flagged", "key", a.Key, "refs", len(a.Refs))
	return n.sink.Flag(ctx, a)
}

// EntityRemoved clears every advisory flagged for the entity.
func (n *Notifier) EntityRemoved(ctx context.Context, e *sensor.Entity) error {
	advs, err := n.store.ListByEntity(ctx, e.UniqueID())
	if err != nil {
		return err
	}
	for _, a := range advs {
		if err := n.store.Delete(ctx, a.Key); err != nil {
			return err
		}
		if err := n.sink.Clear(ctx, a.Key); err != nil {
			return err
		}
		log.Info("Advisory cleared", "key", a.Key)
	}
	return nil
}
