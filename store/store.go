package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	gocachestore "github.com/eko/gocache/lib/v4/store"
	ristrettoStore "github.com/eko/gocache/store/ristretto/v4"
	"go.uber.org/zap"

	"github.com/RalfNorthman/form-and-plot/helpers"
)

const (
	DefaultRistrettoMaxCost     = 1000000
	DefaultRistrettoNumCounters = DefaultRistrettoMaxCost * 10
	DefaultRistrettoBufferItems = 64

	// DefaultRecordExpiration bounds how long accepted measurements stay
	// around. The store is deliberately not durable; this is a working
	// set for recent submissions, not an archive.
	DefaultRecordExpiration = 24 * time.Hour

	recordKeyPrefix = "measurement:"
)

// ErrNotFound is returned when no record exists (or still exists) under
// the requested id.
var ErrNotFound = fmt.Errorf("measurement not found")

// Record is an accepted measurement as kept by the store: parsed numeric
// readings plus submission metadata.
type Record struct {
	ID          string    `json:"id"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Pressure    float64   `json:"pressure"`
	Comment     string    `json:"comment,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Config tunes the underlying Ristretto cache. Zero fields fall back to
// the defaults above.
type Config struct {
	// RistrettoMaxCost is the maximum total cost of the cache; records
	// are stored with cost 1, so this is effectively the max record count.
	RistrettoMaxCost int64

	// RistrettoNumCounters sizes the admission policy's frequency
	// counters; the usual rule of thumb is 10 * MaxCost.
	RistrettoNumCounters int64

	// RistrettoBufferItems configures Ristretto's internal write buffer.
	RistrettoBufferItems int64

	// RecordExpiration is the TTL applied to every stored record.
	RecordExpiration time.Duration
}

// Store holds accepted measurements in memory, JSON-encoded inside a
// Ristretto-backed gocache instance. The id index is kept separately so
// listing stays ordered by insertion; a record that Ristretto has
// meanwhile evicted or expired is simply skipped on reads.
type Store struct {
	config Config

	initOnce sync.Once
	initErr  error
	cache    cache.CacheInterface[[]byte]
	client   *ristretto.Cache

	mu  sync.Mutex
	ids []string
}

// New builds a Store with the given config; nil means all defaults.
func New(config *Config) *Store {
	if config == nil {
		config = &Config{}
	}
	return &Store{config: *config}
}

func (s *Store) init() error {
	s.initOnce.Do(func() {
		client, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: helpers.DefaultInt64(s.config.RistrettoNumCounters, DefaultRistrettoNumCounters),
			MaxCost:     helpers.DefaultInt64(s.config.RistrettoMaxCost, DefaultRistrettoMaxCost),
			BufferItems: helpers.DefaultInt64(s.config.RistrettoBufferItems, DefaultRistrettoBufferItems),
			Metrics:     false,
		})

		if err != nil {
			zap.L().Error("Store: failed to create Ristretto client", zap.Error(err))
			s.initErr = fmt.Errorf("ristretto client initialization failed: %w", err)
			return
		}

		adapter := ristrettoStore.NewRistretto(
			client,
			gocachestore.WithExpiration(helpers.DefaultTimeDuration(
				s.config.RecordExpiration,
				DefaultRecordExpiration,
			)),
		)

		s.client = client
		s.cache = cache.New[[]byte](adapter)
		zap.L().Info("Store: in-memory measurement store initialized")
	})

	return s.initErr
}

// Save stores an accepted measurement under its id and appends the id to
// the listing index.
func (s *Store) Save(ctx context.Context, record Record) error {
	if err := s.init(); err != nil {
		return err
	}

	if record.ID == "" {
		return fmt.Errorf("record id must not be empty")
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := s.cache.Set(ctx, recordKeyPrefix+record.ID, encoded, gocachestore.WithCost(1)); err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}

	// - Ristretto applies writes asynchronously; wait so the record is
	// readable as soon as Save returns.
	s.client.Wait()

	s.mu.Lock()
	s.ids = append(s.ids, record.ID)
	s.mu.Unlock()

	zap.L().Debug("Store: measurement saved", zap.String("id", record.ID))
	return nil
}

// Get returns the record stored under id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	encoded, err := s.cache.Get(ctx, recordKeyPrefix+id)
	if err != nil {
		return nil, ErrNotFound
	}

	var record Record
	if err := json.Unmarshal(encoded, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record %q: %w", id, err)
	}

	return &record, nil
}

// List returns all records still present, in insertion order. Ids whose
// record has been evicted or expired are silently skipped.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	s.mu.Unlock()

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		record, err := s.Get(ctx, id)
		if err != nil {
			continue
		}
		records = append(records, *record)
	}

	return records, nil
}
