package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crettaz/cartable/internal/domain/agenda"
)

type stubFetcher struct {
	feed    *agenda.Feed
	err     error
	lastURL string
	calls   int
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (*agenda.Feed, error) {
	f.calls++
	f.lastURL = url
	return f.feed, f.err
}

func fixedNow() time.Time {
	return time.Date(2025, time.March, 4, 16, 42, 0, 0, time.UTC)
}

func TestAgendaServiceLoad(t *testing.T) {
	fetcher := &stubFetcher{feed: &agenda.Feed{Items: []agenda.RawRecord{
		{Date: "05.03.25", Due: "08:15", Type: "te", Sub: "Maths"},
		{Date: "05.03.25", Due: "10:00", Type: "dev", Sub: "Allemand"},
		{Date: "06.03.25", Due: "10:00", Type: "dev", Sub: "Économie"},
		{Date: "06.03.25", Due: "11:00", Type: "annonce"},
	}}}
	svc := NewAgendaService(fetcher, fixedNow)

	snap, err := svc.Load(context.Background(), "https://ecole.example/dev.json")
	require.NoError(t, err)
	require.Len(t, snap.Items, 4)

	assert.Equal(t, "https://ecole.example/dev.json", fetcher.lastURL)
	assert.True(t, snap.Today.Equal(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)),
		"today should be the load day at midnight, got %v", snap.Today)

	// Deduplicated, collated, and independent of any filter; the empty
	// subject of the announcement is excluded.
	assert.Equal(t, []string{"Allemand", "Économie", "Maths"}, snap.Subjects)
}

func TestAgendaServiceLoadFetchError(t *testing.T) {
	fetchErr := errors.New("boom")
	svc := NewAgendaService(&stubFetcher{err: fetchErr}, fixedNow)

	snap, err := svc.Load(context.Background(), "https://ecole.example/dev.json")
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, fetchErr)
}

func TestAgendaServiceLoadAbortsOnMalformedRecord(t *testing.T) {
	fetcher := &stubFetcher{feed: &agenda.Feed{Items: []agenda.RawRecord{
		{Date: "05.03.25", Due: "08:15"},
		{Date: "not-a-date", Due: "08:15"},
	}}}
	svc := NewAgendaService(fetcher, fixedNow)

	snap, err := svc.Load(context.Background(), "https://ecole.example/dev.json")
	require.Error(t, err)
	assert.Nil(t, snap, "a malformed record must abort the whole load")
	assert.Contains(t, err.Error(), "record 1")
}

func TestSubjectsDeduplicates(t *testing.T) {
	items := []agenda.Item{
		{Subject: "Maths"},
		{Subject: "Maths"},
		{Subject: "Français"},
		{Subject: ""},
	}
	assert.Equal(t, []string{"Français", "Maths"}, Subjects(items))
}
