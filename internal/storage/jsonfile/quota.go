package jsonfile

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// QuotaCounter tracks how many items were fetched per 24-hour window,
// keyed by the epoch-second start of each bucket. Buckets beyond the
// retention count are pruned oldest-first; the active bucket is never
// touched by a rollover.
type QuotaCounter struct {
	path      string
	buckets   map[string]int
	retention int
}

// NewQuotaCounter opens (or initializes) the counter stored at dir/name.
// retention bounds the number of day-buckets kept; zero or negative
// keeps all.
func NewQuotaCounter(dir, name string, retention int) (*QuotaCounter, error) {
	q := &QuotaCounter{
		path:      join(dir, name),
		buckets:   make(map[string]int),
		retention: retention,
	}

	if _, err := load(q.path, &q.buckets); err != nil {
		return nil, err
	}
	return q, nil
}

// Roll opens a new day-bucket when the latest one started more than 24
// hours ago, pruning buckets beyond retention. It returns the active
// bucket's start time and current count.
func (q *QuotaCounter) Roll(now time.Time) (time.Time, int, error) {
	latest := q.latestKey()

	if now.Add(-24*time.Hour).Unix() > latest {
		q.buckets[strconv.FormatInt(now.Unix(), 10)] = 0
		q.prune()
		if err := save(q.path, q.buckets); err != nil {
			return time.Time{}, 0, err
		}
		latest = now.Unix()
	}

	key := strconv.FormatInt(latest, 10)
	return time.Unix(latest, 0).UTC(), q.buckets[key], nil
}

// Add increments the active bucket by n and persists.
func (q *QuotaCounter) Add(n int) error {
	latest := q.latestKey()
	if latest == 0 {
		return fmt.Errorf("quota counter has no active bucket")
	}

	q.buckets[strconv.FormatInt(latest, 10)] += n
	return save(q.path, q.buckets)
}

// Buckets returns a copy of all retained buckets keyed by start time.
func (q *QuotaCounter) Buckets() map[int64]int {
	out := make(map[int64]int, len(q.buckets))
	for k, v := range q.buckets {
		start, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		out[start] = v
	}
	return out
}

func (q *QuotaCounter) latestKey() int64 {
	var latest int64
	for k := range q.buckets {
		start, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		if start > latest {
			latest = start
		}
	}
	return latest
}

func (q *QuotaCounter) prune() {
	if q.retention <= 0 || len(q.buckets) <= q.retention {
		return
	}

	starts := make([]int64, 0, len(q.buckets))
	for start := range q.Buckets() {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] > starts[j] })

	for _, start := range starts[q.retention:] {
		delete(q.buckets, strconv.FormatInt(start, 10))
	}
}
