package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nearby/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoDownloadErrorRedactsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	photoURL := srv.URL + "/photo?key=SECRET-KEY-123&maxwidth=400&photo_reference=ref1"
	srv.Close()

	client := &http.Client{Timeout: 2 * time.Second}
	_, err := fetchImage(context.Background(), client, photoURL)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
	assert.Contains(t, err.Error(), "photo_reference=ref1")

	msg := loadPhotoCmd(client, photoURL, "ref1", TerminalCapabilities{}, 40, 10)()
	loaded, ok := msg.(model.PhotoLoadedMsg)
	require.True(t, ok)
	require.Error(t, loaded.Err)
	assert.NotContains(t, loaded.Err.Error(), "SECRET-KEY-123")
}
