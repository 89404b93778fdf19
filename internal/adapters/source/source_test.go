package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/price_dashboard/internal/adapters/source"
	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PicksImplementation(t *testing.T) {
	assert.IsType(t, &source.HTTPSource{}, source.New("https://example.com/data.csv", time.Second))
	assert.IsType(t, &source.HTTPSource{}, source.New("HTTP://example.com/data.csv", time.Second))
	assert.IsType(t, &source.FileSource{}, source.New("GRETL_TUFE.csv", time.Second))
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.csv":
			_, _ = w.Write([]byte("Tarih,Ekmek\n01/01/2024,10\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	body, err := source.NewHTTPSource(srv.URL+"/ok.csv", srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tarih,Ekmek\n01/01/2024,10\n", string(body))

	_, err = source.NewHTTPSource(srv.URL+"/missing.csv", srv.Client()).Fetch(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestHTTPSource_RejectsOversizedBody(t *testing.T) {
	const csv = "Tarih,Ekmek\n01/01/2024,10\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(csv))
	}))
	defer srv.Close()

	body, err := source.NewHTTPSource(srv.URL, srv.Client()).WithMaxBytes(int64(len(csv))).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csv, string(body), "a body exactly at the limit is served whole")

	_, err = source.NewHTTPSource(srv.URL, srv.Client()).WithMaxBytes(int64(len(csv))-1).Fetch(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := source.NewHTTPSource(url, nil).Fetch(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Tarih\n"), 0o600))

	s := source.NewFileSource(path)
	body, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tarih\n", string(body))
	assert.Equal(t, path, s.Location())

	_, err = source.NewFileSource(filepath.Join(t.TempDir(), "nope.csv")).Fetch(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)
}
