package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/zhvi-animator/internal/config"
)

func newTestConfig(url, filename string) *config.Config {
	return &config.Config{
		Dataset: config.Dataset{
			URL:      url,
			Filename: filename,
		},
	}
}

func TestHTTPFetcher_EnsureLocal(t *testing.T) {
	payload := "RegionName,City,State,2023-01-31\n12345,Springfield,IL,250000\n"

	t.Run("Baixa o dataset quando não há cópia local", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}))
		defer server.Close()

		filename := filepath.Join(t.TempDir(), "zhvi.csv")
		fetcher := NewFetcher(newTestConfig(server.URL, filename))

		path, err := fetcher.EnsureLocal(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, filename, path)

		data, err := os.ReadFile(filename)
		assert.NoError(t, err)
		assert.Equal(t, payload, string(data))
	})

	t.Run("Segunda chamada com cache local não faz nenhuma requisição", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			_, _ = w.Write([]byte(payload))
		}))
		defer server.Close()

		filename := filepath.Join(t.TempDir(), "zhvi.csv")
		fetcher := NewFetcher(newTestConfig(server.URL, filename))

		_, err := fetcher.EnsureLocal(context.Background())
		assert.NoError(t, err)

		_, err = fetcher.EnsureLocal(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Status de erro aborta sem criar arquivo local", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}))
		defer server.Close()

		filename := filepath.Join(t.TempDir(), "zhvi.csv")
		fetcher := NewFetcher(newTestConfig(server.URL, filename))

		_, err := fetcher.EnsureLocal(context.Background())
		assert.Error(t, err)

		_, statErr := os.Stat(filename)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Falha de conexão aborta sem nova tentativa", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // endereço passa a recusar conexões

		filename := filepath.Join(t.TempDir(), "zhvi.csv")
		fetcher := NewFetcher(newTestConfig(server.URL, filename))

		_, err := fetcher.EnsureLocal(context.Background())
		assert.Error(t, err)
	})
}
