package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadAttachesHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body:" + r.Header.Get("X-Token")))
	}))
	defer srv.Close()

	headers := map[string]string{"user-agent": "codeharvest", "X-Token": "abc"}
	d := NewSimpleDownloader(0, headers)
	headers["X-Token"] = "changed"

	page, err := d.Download(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, page.URL)
	assert.Equal(t, http.StatusTeapot, page.StatusCode)
	assert.Equal(t, "body:abc", string(page.Content))
}

func TestDownloadTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()

	d := NewSimpleDownloader(1, nil)
	page, err := d.Download(context.Background(), u)
	require.Error(t, err)
	assert.Zero(t, page.StatusCode)
}

func TestDownloadCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimpleDownloader(0, nil).Download(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDownloadBadURL(t *testing.T) {
	_, err := NewSimpleDownloader(0, nil).Download(context.Background(), "://bad")
	assert.Error(t, err)
}
