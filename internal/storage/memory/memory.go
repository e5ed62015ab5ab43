// Package memory is an in-process store with the same consistency rules as the
// postgres store. Every operation runs under one mutex, so uniqueness and
// capacity checks and the following write are atomic.
package memory

import (
	"sort"
	"sync"
	"time"

	"clubhub/internal/models"

	"github.com/google/uuid"
)

type pair struct {
	userID  string
	otherID string
}

type record[T any] struct {
	value T
	seq   uint64
}

type Storage struct {
	mu  sync.RWMutex
	now func() time.Time
	seq uint64

	users       map[string]record[models.User]
	emails      map[string]string
	clubs       map[string]record[models.Club]
	events      map[string]record[models.Event]
	memberships map[string]record[models.Membership]
	attendances map[string]record[models.Attendance]

	membershipByPair map[pair]string
	attendanceByPair map[pair]string
}

type Option func(*Storage)

// WithClock replaces time.Now for timestamps and derived event status.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

func New(opts ...Option) *Storage {
	s := &Storage{
		now:              time.Now,
		users:            make(map[string]record[models.User]),
		emails:           make(map[string]string),
		clubs:            make(map[string]record[models.Club]),
		events:           make(map[string]record[models.Event]),
		memberships:      make(map[string]record[models.Membership]),
		attendances:      make(map[string]record[models.Attendance]),
		membershipByPair: make(map[pair]string),
		attendanceByPair: make(map[pair]string),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func newID() string {
	return uuid.NewString()
}

// newestFirst orders by timestamp descending, insertion order breaking ties.
func newestFirst[T any](recs []record[T], at func(T) time.Time) {
	sort.SliceStable(recs, func(i, j int) bool {
		ti, tj := at(recs[i].value), at(recs[j].value)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return recs[i].seq > recs[j].seq
	})
}

func oldestFirst[T any](recs []record[T], at func(T) time.Time) {
	sort.SliceStable(recs, func(i, j int) bool {
		ti, tj := at(recs[i].value), at(recs[j].value)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return recs[i].seq < recs[j].seq
	})
}

func values[K comparable, T any](m map[K]record[T]) []record[T] {
	out := make([]record[T], 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	return out
}
