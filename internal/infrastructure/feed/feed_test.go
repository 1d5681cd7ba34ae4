package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	var gotAccept, gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotCacheControl = r.Header.Get("Cache-Control")
		_, _ = w.Write([]byte(`{"items":[
			{"date":"05.03.25","due":"08:15","type":"te","sub":"Maths"},
			{"date":"06.03.25","due":"10:00","type":"dev","noClick":true}
		]}`))
	}))
	defer srv.Close()

	feed, err := Client{}.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "no-store", gotCacheControl)
	assert.Equal(t, "05.03.25", feed.Items[0].Date)
	assert.Equal(t, "te", feed.Items[0].Type)
	assert.True(t, feed.Items[1].NoClick)
}

func TestClientFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Client{}.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClientFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":`))
	}))
	defer srv.Close()

	_, err := Client{}.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestClientFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := Client{Timeout: 20 * time.Millisecond}.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}
