package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/crettaz/cartable/internal/domain/agenda"
)

// Fetcher abstracts agenda feed retrieval.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*agenda.Feed, error)
}

// Snapshot is the immutable result of one load cycle. Today is the reference
// calendar day captured when the load began; Subjects covers all loaded
// items, not just the currently filtered view.
type Snapshot struct {
	Items    []agenda.Item
	Subjects []string
	Today    time.Time
}

// AgendaService coordinates feed loading and classification.
type AgendaService struct {
	Fetcher Fetcher
	Now     func() time.Time
}

// NewAgendaService constructs an AgendaService.
func NewAgendaService(fetcher Fetcher, now func() time.Time) AgendaService {
	return AgendaService{Fetcher: fetcher, Now: now}
}

// Load runs one fetch-then-classify cycle. The reference day is read once at
// the start of the cycle. A record that fails to parse aborts the whole load;
// the caller keeps its previous snapshot.
func (s AgendaService) Load(ctx context.Context, url string) (*Snapshot, error) {
	today := agenda.Midnight(s.now())

	feed, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch agenda: %w", err)
	}

	items := make([]agenda.Item, len(feed.Items))
	for i, raw := range feed.Items {
		item, err := agenda.NewItem(raw, today)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items[i] = item
	}

	return &Snapshot{
		Items:    items,
		Subjects: Subjects(items),
		Today:    today,
	}, nil
}

func (s AgendaService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

var subjectLocale = language.MustParse("fr-CH")

// Subjects returns the deduplicated non-empty subjects across all items,
// sorted with French (Swiss) collation.
func Subjects(items []agenda.Item) []string {
	seen := make(map[string]struct{}, len(items))
	subjects := make([]string, 0, len(items))
	for _, item := range items {
		if item.Subject == "" {
			continue
		}
		if _, ok := seen[item.Subject]; ok {
			continue
		}
		seen[item.Subject] = struct{}{}
		subjects = append(subjects, item.Subject)
	}
	// Collators keep internal buffers, so build one per call instead of
	// sharing across overlapping load cycles.
	collate.New(subjectLocale).SortStrings(subjects)
	return subjects
}
