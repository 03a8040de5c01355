package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nearby/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	granted   bool
	permErr   error
	posErr    error
	coords    model.Coordinates
	positions int
}

func (p *countingProvider) RequestPermission(ctx context.Context) (bool, error) {
	return p.granted, p.permErr
}

func (p *countingProvider) CurrentPosition(ctx context.Context) (model.Coordinates, error) {
	p.positions++
	return p.coords, p.posErr
}

func TestLocateGranted(t *testing.T) {
	p := &countingProvider{granted: true, coords: model.Coordinates{Latitude: 1, Longitude: 2}}
	coords, err := Locate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p.coords, coords)
	assert.Equal(t, 1, p.positions)
}

func TestLocateDeniedNeverReadsPosition(t *testing.T) {
	p := &countingProvider{granted: false}
	_, err := Locate(context.Background(), p)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Zero(t, p.positions)
}

func TestLocateErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Locate(context.Background(), &countingProvider{permErr: boom})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrPermissionDenied)

	_, err = Locate(context.Background(), &countingProvider{granted: true, posErr: boom})
	assert.ErrorIs(t, err, boom)
}

func TestStatic(t *testing.T) {
	coords := model.Coordinates{Latitude: 37.77, Longitude: -122.41}
	got, err := Locate(context.Background(), NewStatic(coords, true))
	require.NoError(t, err)
	assert.Equal(t, coords, got)

	_, err = Locate(context.Background(), NewStatic(coords, false))
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestIPLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","lat":52.52,"lon":13.405}`))
	}))
	defer srv.Close()

	coords, err := Locate(context.Background(), NewIPLookup(srv.URL, true))
	require.NoError(t, err)
	assert.Equal(t, model.Coordinates{Latitude: 52.52, Longitude: 13.405}, coords)
}

func TestIPLookupFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTooManyRequests) }},
		{"api failure", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`nope`)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			_, err := NewIPLookup(srv.URL, true).CurrentPosition(context.Background())
			assert.Error(t, err)
		})
	}
}
