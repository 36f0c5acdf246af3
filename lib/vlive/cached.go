package vlive

import (
	"context"
	"log/slog"
)

// Kind identifies a concrete entity type for equality purposes.
type Kind string

const (
	KindPost              Kind = "post"
	KindOfficialVideoPost Kind = "official_video_post"
	KindOfficialVideoLive Kind = "official_video_live"
	KindOfficialVideoVOD  Kind = "official_video_vod"
	KindComment           Kind = "comment"
	KindChannel           Kind = "channel"
	KindGroupedBoards     Kind = "grouped_boards"
	KindSchedule          Kind = "schedule"
)

// Entity is any cached model object. Two entities are equal iff their kind
// and target id match; cache contents are not part of identity.
type Entity interface {
	Kind() Kind
	ID() string
}

// EqualEntities reports whether two entities identify the same remote
// object. A stale cache and a fresh one compare equal.
func EqualEntities(a, b Entity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind() == b.Kind() && a.ID() == b.ID()
}

// cached is the shared core of every model object: a target id, an
// optional session and one wholesale-replaced payload cache.
type cached struct {
	kind    Kind
	id      string
	session *Session
	data    map[string]any
	// fetch retrieves a fresh payload, silently: errors come back as an
	// empty result.
	fetch func(ctx context.Context) (map[string]any, error)
}

// refresh replaces the cache atomically from a fresh fetch. A failed fetch
// is not an error: the previous cache (or the empty one, on first load)
// stays in place and a warning is logged.
func (c *cached) refresh(ctx context.Context) {
	data, err := c.fetch(ctx)
	if err != nil || len(data) == 0 {
		slog.Warn(
			"entity refresh failed, keeping previous data",
			"kind", string(c.kind),
			"id", c.id,
			"err", err,
		)
		return
	}
	c.data = data
}

// adopt installs a payload fetched elsewhere (listing endpoints return
// full item payloads; re-fetching them would be a wasted round trip).
func (c *cached) adopt(payload map[string]any) {
	c.data = payload
}

func (c *cached) lookup(path ...string) any {
	var cur any = c.data
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

func (c *cached) str(path ...string) string {
	s, _ := c.lookup(path...).(string)
	return s
}

func (c *cached) integer(path ...string) int64 {
	// JSON numbers decode as float64
	n, _ := c.lookup(path...).(float64)
	return int64(n)
}

func (c *cached) boolean(path ...string) bool {
	b, _ := c.lookup(path...).(bool)
	return b
}

// object returns a deep copy so callers cannot corrupt the cache through a
// shared map.
func (c *cached) object(path ...string) map[string]any {
	m, ok := c.lookup(path...).(map[string]any)
	if !ok {
		return nil
	}
	copied, _ := deepCopy(m).(map[string]any)
	return copied
}

func (c *cached) has(path ...string) bool {
	return c.lookup(path...) != nil
}

// Payload returns a deep copy of the entire cached payload.
func (c *cached) payload() map[string]any {
	copied, _ := deepCopy(c.data).(map[string]any)
	return copied
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}
