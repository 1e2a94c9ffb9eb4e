// Package analysis persists analysis reports as JSON values in the
// key-value store.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kailas-cloud/resumerank/internal/db"
	"github.com/kailas-cloud/resumerank/internal/domain"
	domanalysis "github.com/kailas-cloud/resumerank/internal/domain/analysis"
)

// store is the consumer interface for reports (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/ranking.Repository plus read-side lookups
// for the transport layer.
type Repo struct {
	store     store
	keyPrefix string
	ttl       time.Duration
}

// New creates a report repository. A zero ttl stores reports without
// expiration.
func New(s store, keyPrefix string, ttl time.Duration) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, ttl: ttl}
}

// Save stores a report under its ID.
func (r *Repo) Save(ctx context.Context, report *domanalysis.Report) error {
	data, err := json.Marshal(toDTO(report))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	key := r.reportKey(report.ID())
	if r.ttl > 0 {
		if err := r.store.SetWithTTL(ctx, key, data, r.ttl); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Get returns a report by ID.
func (r *Repo) Get(ctx context.Context, id string) (domanalysis.Report, error) {
	key := r.reportKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domanalysis.Report{}, domain.ErrAnalysisNotFound
		}
		return domanalysis.Report{}, fmt.Errorf("get %s: %w", key, err)
	}

	var dto reportDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domanalysis.Report{}, fmt.Errorf("unmarshal report %s: %w", id, err)
	}
	return fromDTO(dto), nil
}

// List returns all stored reports, newest first. Reports that expire
// between the key scan and the read are skipped.
func (r *Repo) List(ctx context.Context) ([]domanalysis.Report, error) {
	keys, err := r.store.Scan(ctx, r.keyPrefix+"analysis:*")
	if err != nil {
		return nil, fmt.Errorf("scan reports: %w", err)
	}

	reports := make([]domanalysis.Report, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimPrefix(key, r.keyPrefix+"analysis:")
		report, err := r.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrAnalysisNotFound) {
				continue
			}
			return nil, err
		}
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt() > reports[j].CreatedAt()
	})
	return reports, nil
}

// Delete removes a report by ID.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.reportKey(id)

	if _, err := r.store.Get(ctx, key); err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrAnalysisNotFound
		}
		return fmt.Errorf("get %s: %w", key, err)
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

func (r *Repo) reportKey(id string) string {
	return fmt.Sprintf("%sanalysis:%s", r.keyPrefix, id)
}
