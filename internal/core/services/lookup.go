package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
	"github.com/mappingkml/mappingkml-cli/internal/logger"
	"github.com/mappingkml/mappingkml-cli/internal/parsers"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService parses raw user text and fans it out to the cadastre
// connectors. Jurisdictions are queried sequentially: the tool is
// single-user and single-request-at-a-time.
type LookupService struct {
	parsers      map[domain.Jurisdiction]driven.EntryParser
	connectors   map[domain.Jurisdiction]driven.CadastreConnector
	historyStore driven.HistoryStore
}

// NewLookupService creates a lookup service from the available parsers
// and connectors, keyed by jurisdiction.
func NewLookupService(
	entryParsers []driven.EntryParser,
	connectors []driven.CadastreConnector,
) *LookupService {
	s := &LookupService{
		parsers:    make(map[domain.Jurisdiction]driven.EntryParser, len(entryParsers)),
		connectors: make(map[domain.Jurisdiction]driven.CadastreConnector, len(connectors)),
	}
	for _, p := range entryParsers {
		s.parsers[p.Jurisdiction()] = p
	}
	for _, c := range connectors {
		s.connectors[c.Jurisdiction()] = c
	}
	return s
}

// SetHistoryStore enables best-effort search history recording.
// The history store is optional; lookups work without it.
func (s *LookupService) SetHistoryStore(store driven.HistoryStore) {
	s.historyStore = store
}

// Lookup splits, parses and queries the enabled jurisdictions.
// Per-entry parse failures and per-jurisdiction service failures are
// reported inside the result, never as a batch abort.
func (s *LookupService) Lookup(ctx context.Context, raw string, opts driving.LookupOptions) (*domain.LookupResult, error) {
	logger.Section("Parcel Lookup")

	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty input", domain.ErrInvalidInput)
	}

	targets, err := s.resolveTargets(opts.Jurisdictions)
	if err != nil {
		return nil, err
	}
	logger.Debug("Jurisdictions: %v", targets)

	result := &domain.LookupResult{
		ServiceErrors: make(map[domain.Jurisdiction]error),
	}

	// Track per-entry acceptance across jurisdictions: an entry is
	// skipped only when every enabled jurisdiction rejected it.
	entries := parsers.SplitEntries(raw)
	accepted := make(map[string]bool, len(entries))
	firstError := make(map[string]*domain.ParseError, len(entries))

	for _, j := range targets {
		batch := parsers.ParseBulk(raw, s.parsers[j])

		var ids []domain.ParcelIdentifier
		for _, r := range batch {
			if r.OK() {
				accepted[r.Entry] = true
				ids = append(ids, r.Identifiers...)
				continue
			}
			if _, seen := firstError[r.Entry]; !seen {
				firstError[r.Entry] = r.Err
			}
		}
		logger.Debug("%s: %d identifiers from %d entries", j, len(ids), len(batch))

		if len(ids) == 0 {
			continue
		}

		parcels, err := s.connectors[j].Query(ctx, ids)
		if err != nil {
			logger.Warn("%s query failed: %v", j, err)
			result.ServiceErrors[j] = err
			continue
		}
		result.Parcels = append(result.Parcels, parcels...)
	}

	for _, entry := range entries {
		if !accepted[entry] {
			result.Skipped = append(result.Skipped, firstError[entry])
		}
	}

	s.recordHistory(ctx, raw, targets, result)
	return result, nil
}

// ParseOnly runs the parsing layer without any service calls.
func (s *LookupService) ParseOnly(raw string, jurisdiction domain.Jurisdiction) ([]domain.ParseResult, error) {
	parser, ok := s.parsers[jurisdiction]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedJurisdiction, jurisdiction)
	}
	return parsers.ParseBulk(raw, parser), nil
}

// resolveTargets picks the jurisdictions to query, in display order.
func (s *LookupService) resolveTargets(requested []domain.Jurisdiction) ([]domain.Jurisdiction, error) {
	want := make(map[domain.Jurisdiction]bool, len(requested))
	for _, j := range requested {
		if !j.Valid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedJurisdiction, j)
		}
		want[j] = true
	}

	var targets []domain.Jurisdiction
	for _, j := range domain.AllJurisdictions() {
		if len(requested) > 0 && !want[j] {
			continue
		}
		_, hasParser := s.parsers[j]
		_, hasConnector := s.connectors[j]
		if !hasParser || !hasConnector {
			if len(requested) > 0 {
				return nil, fmt.Errorf("%w: %s is not configured", domain.ErrUnsupportedJurisdiction, j)
			}
			continue
		}
		targets = append(targets, j)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no jurisdictions configured", domain.ErrInvalidInput)
	}
	return targets, nil
}

// recordHistory saves lookup metadata. Failures are logged, never fatal.
func (s *LookupService) recordHistory(ctx context.Context, raw string, targets []domain.Jurisdiction, result *domain.LookupResult) {
	if s.historyStore == nil {
		return
	}

	record := &domain.SearchRecord{
		ID:            uuid.New().String(),
		RawInput:      raw,
		Jurisdictions: targets,
		ParcelCount:   len(result.Parcels),
		SkippedCount:  len(result.Skipped),
		CreatedAt:     time.Now(),
	}
	if err := s.historyStore.Record(ctx, record); err != nil {
		logger.Warn("recording search history: %v", err)
	}
}
