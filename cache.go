package ttcalerts

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/theoremus-urban-solutions/ttc-alerts/internal/metrics"
	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// defaultCacheSize bounds the number of cached extraction results.
const defaultCacheSize = 128

// RecordCache memoizes extraction results by pipeline and input digest.
// Extraction is deterministic for a given season, so identical request
// bodies reuse the records of the first one. Entries are evicted oldest
// first. Extraction metrics count only misses; hits are counted as cache
// lookups.
type RecordCache struct {
	mu      sync.Mutex
	max     int
	metrics *metrics.Metrics
	entries map[string][]record.Alert
	order   []string
}

// NewRecordCache returns a cache holding at most max results. A max below one
// uses the default size. m may be nil.
func NewRecordCache(max int, m *metrics.Metrics) *RecordCache {
	if max < 1 {
		max = defaultCacheSize
	}
	return &RecordCache{max: max, metrics: m, entries: map[string][]record.Alert{}}
}

func (rc *RecordCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func digest(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// GetOrExtract returns the cached records for body, or runs extract and
// caches its result. Errors are never cached. A nil cache always extracts.
func (rc *RecordCache) GetOrExtract(pipeline string, body []byte, extract func() ([]record.Alert, error)) ([]record.Alert, error) {
	if rc == nil {
		return extract()
	}
	key := rc.memoKey(pipeline, digest(body))

	rc.mu.Lock()
	if cached, ok := rc.entries[key]; ok {
		rc.mu.Unlock()
		rc.metrics.ObserveCacheLookup(pipeline, true)
		return cached, nil
	}
	rc.mu.Unlock()
	rc.metrics.ObserveCacheLookup(pipeline, false)

	alerts, err := extract()
	if err != nil {
		return nil, err
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, ok := rc.entries[key]; !ok {
		rc.entries[key] = alerts
		rc.order = append(rc.order, key)
		for len(rc.order) > rc.max {
			delete(rc.entries, rc.order[0])
			rc.order = rc.order[1:]
		}
	}
	return alerts, nil
}

// Len returns the number of cached results.
func (rc *RecordCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}
