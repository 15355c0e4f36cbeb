package animating

import (
	"context"

	"github.com/vfg2006/zhvi-animator/internal/domain"
)

// Fetcher garante uma cópia local do dataset e retorna o caminho dela
type Fetcher interface {
	EnsureLocal(ctx context.Context) (string, error)
}

// Extractor isola a série temporal de uma região do dataset
type Extractor interface {
	ExtractSeries(datasetPath, regionCode string) (*domain.RegionSeries, error)
}

// FrameRenderer desenha um quadro da animação como PNG em path
type FrameRenderer interface {
	RenderFrame(series *domain.RegionSeries, bounds domain.AxisBounds, upTo int, path string) error
}

// Encoder grava os quadros renderizados como um único GIF animado
type Encoder interface {
	Encode(framePaths []string, outPath string) error
}
