package animating

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vfg2006/zhvi-animator/internal/config"
	"github.com/vfg2006/zhvi-animator/internal/domain"
	"github.com/vfg2006/zhvi-animator/internal/usecases/sampling"
	"github.com/vfg2006/zhvi-animator/pkg/log"
	"github.com/vfg2006/zhvi-animator/pkg/utils"
)

// A cada quantos quadros renderizados o progresso é registrado no log
const progressLogInterval = 20

// Service orquestra a geração de uma animação: dataset local, extração da
// série, plano de quadros, renderização e codificação do GIF.
type Service struct {
	cfg       *config.Config
	fetcher   Fetcher
	extractor Extractor
	renderer  FrameRenderer
	encoder   Encoder
}

func NewService(
	cfg *config.Config,
	fetcher Fetcher,
	extractor Extractor,
	renderer FrameRenderer,
	encoder Encoder,
) *Service {
	return &Service{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extractor,
		renderer:  renderer,
		encoder:   encoder,
	}
}

// Generate produz o GIF animado do ZHVI para o código de região informado.
// O nome do arquivo de saída usa o código literal como digitado. Qualquer
// falha aborta a execução sem deixar animação parcial; o diretório
// temporário de quadros é removido em todos os caminhos de saída.
func (s *Service) Generate(ctx context.Context, rawCode string) error {
	ctx, _ = log.WithRunID(ctx)
	logger := log.ForContext(ctx).WithField("region_code", rawCode)

	datasetPath, err := s.fetcher.EnsureLocal(ctx)
	if err != nil {
		return err
	}

	logger.Infof("Carregando dados ZHVI de %s...", datasetPath)
	series, err := s.extractor.ExtractSeries(datasetPath, rawCode)
	if err != nil {
		return err
	}

	bounds, err := domain.NewAxisBounds(series)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"points": len(series.Observations),
		"y_min":  utils.RoundWithTwoDecimalPlace(bounds.YMin),
		"y_max":  utils.RoundWithTwoDecimalPlace(bounds.YMax),
	}).Debug("Limites de eixo calculados para a animação")

	plan := sampling.NewPlan(len(series.Observations), s.cfg.Animation.FrameBudget)
	if plan.Stride > 1 {
		logger.Infof("Dataset com %d pontos mensais. Plotando a cada %d pontos na animação.",
			len(series.Observations), plan.Stride)
	}

	tempDir, err := os.MkdirTemp("", "zhvi_frames_")
	if err != nil {
		return fmt.Errorf("erro ao criar diretório temporário de quadros: %w", err)
	}
	defer os.RemoveAll(tempDir)

	logger.Infof("Gerando quadros da animação em %s...", tempDir)

	framePaths, err := s.renderFrames(series, bounds, plan, tempDir, logger)
	if err != nil {
		return err
	}

	outPath := filepath.Join(s.cfg.Animation.OutputDir, fmt.Sprintf("zhvi_animation_%s.gif", rawCode))
	if err := s.encoder.Encode(framePaths, outPath); err != nil {
		return err
	}

	logger.Infof("GIF animado salvo com sucesso como %s", outPath)
	return nil
}

// renderFrames renderiza os quadros amostrados, em ordem, no diretório
// temporário e retorna os caminhos gerados.
func (s *Service) renderFrames(
	series *domain.RegionSeries,
	bounds domain.AxisBounds,
	plan sampling.Plan,
	tempDir string,
	logger log.Logger,
) ([]string, error) {
	framePaths := make([]string, 0, len(plan.Indices))

	for n, idx := range plan.Indices {
		path := filepath.Join(tempDir, fmt.Sprintf("frame_%04d.png", idx))

		if err := s.renderer.RenderFrame(series, bounds, idx, path); err != nil {
			return nil, err
		}
		framePaths = append(framePaths, path)

		if n%progressLogInterval == 0 {
			logger.Infof("  Quadro %d/%d gerado...", n+1, len(plan.Indices))
		}
	}

	return framePaths, nil
}
