package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/zhvi-animator/internal/config"
	"github.com/vfg2006/zhvi-animator/internal/domain"
)

func testSeries(t *testing.T) *domain.RegionSeries {
	t.Helper()

	values := []float64{250000, 255000, 248000, 262000, 270000, 281000}
	series := &domain.RegionSeries{
		RegionCode: 12345,
		RawCode:    "12345",
		City:       "Springfield",
		State:      "IL",
	}

	start := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	for i := range values {
		series.Observations = append(series.Observations, domain.Observation{
			Date:  start.AddDate(0, i, 0),
			Value: &values[i],
		})
	}

	// Observação nula no meio da série não deve impedir a renderização
	series.Observations[2].Value = nil

	return series
}

func newRenderer() *Renderer {
	return NewRenderer(&config.Config{
		Chart: config.Chart{WidthInches: 6, HeightInches: 3.5},
	})
}

func TestRenderer_RenderFrame(t *testing.T) {
	series := testSeries(t)
	bounds, err := domain.NewAxisBounds(series)
	assert.NoError(t, err)

	renderer := newRenderer()
	dir := t.TempDir()

	for _, upTo := range []int{0, 2, len(series.Observations) - 1} {
		path := filepath.Join(dir, "frame.png")

		err := renderer.RenderFrame(series, bounds, upTo, path)
		assert.NoError(t, err)

		file, err := os.Open(path)
		assert.NoError(t, err)

		img, err := png.Decode(file)
		assert.NoError(t, err)
		assert.NoError(t, file.Close())

		// 6x3.5 polegadas a 96 DPI
		assert.Equal(t, 576, img.Bounds().Dx())
		assert.Equal(t, 336, img.Bounds().Dy())
	}
}

func TestRenderer_RenderFrame_IndiceForaDaSerie(t *testing.T) {
	series := testSeries(t)
	bounds, err := domain.NewAxisBounds(series)
	assert.NoError(t, err)

	renderer := newRenderer()
	path := filepath.Join(t.TempDir(), "frame.png")

	assert.Error(t, renderer.RenderFrame(series, bounds, len(series.Observations), path))
	assert.Error(t, renderer.RenderFrame(series, bounds, -1, path))
}
