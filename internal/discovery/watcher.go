package discovery

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"hashring/internal/router"
)

// Registry is the membership surface the watcher drives. It is
// satisfied by router.Server.
type Registry interface {
	JoinMember(m router.Member) (int, error)
	LeaveMember(id string) bool
	ListMembers() []router.Member
}

// Watcher polls a resolver and reconciles the registry against the
// resolved membership.
type Watcher struct {
	resolver Resolver
	registry Registry
	service  string
	tag      string
	interval time.Duration
}

// NewWatcher builds a watcher polling the given service every interval.
func NewWatcher(resolver Resolver, registry Registry, service, tag string, interval time.Duration) *Watcher {
	return &Watcher{
		resolver: resolver,
		registry: registry,
		service:  service,
		tag:      tag,
		interval: interval,
	}
}

// Run polls until ctx is cancelled. It reconciles once immediately so
// the ring is populated before the first tick.
func (w *Watcher) Run(ctx context.Context) {
	w.reconcile()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.reconcile()
		}
	}
}

func (w *Watcher) reconcile() {
	resolved, err := w.resolver.Resolve(w.service, w.tag)
	if err != nil {
		// Keep the current membership on catalog errors.
		logrus.WithFields(logrus.Fields{
			"service": w.service,
			"tag":     w.tag,
		}).WithError(err).Warn("membership resolve failed")
		return
	}

	want := make(map[string]router.Member, len(resolved))
	for _, m := range resolved {
		want[m.ID] = m
	}

	current := make(map[string]router.Member)
	for _, m := range w.registry.ListMembers() {
		current[m.ID] = m
	}

	for id, m := range current {
		if _, ok := want[id]; !ok {
			w.registry.LeaveMember(id)
			logrus.WithFields(logrus.Fields{
				"member": id,
				"addr":   m.Addr,
			}).Info("member removed from ring")
		}
	}

	for id, m := range want {
		if registered, ok := current[id]; ok {
			if registered.Addr == m.Addr && registered.VNodes == m.VNodes {
				continue
			}
			// The catalog moved or resized this member under the same
			// service ID. Joining would be a no-op, so replace it.
			w.registry.LeaveMember(id)
			logrus.WithFields(logrus.Fields{
				"member":   id,
				"old_addr": registered.Addr,
				"new_addr": m.Addr,
			}).Info("member changed, replacing ring entries")
		}
		if _, err := w.registry.JoinMember(m); err != nil {
			logrus.WithFields(logrus.Fields{
				"member": id,
				"addr":   m.Addr,
			}).WithError(err).Warn("member join rejected")
		}
	}
}
