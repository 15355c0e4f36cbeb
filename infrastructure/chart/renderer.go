package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/zhvi-animator/internal/config"
	"github.com/vfg2006/zhvi-animator/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Cor da linha do gráfico (dodger blue)
var lineColor = color.RGBA{R: 30, G: 144, B: 255, A: 255}

type Renderer struct {
	width  vg.Length
	height vg.Length
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		width:  vg.Length(cfg.Chart.WidthInches) * vg.Inch,
		height: vg.Length(cfg.Chart.HeightInches) * vg.Inch,
	}
}

// RenderFrame desenha o gráfico de linha com todos os pontos da série do
// índice 0 até upTo, inclusive, e salva como PNG em path. Os limites de
// eixo vêm prontos em bounds e são os mesmos para todos os quadros de uma
// animação; cada chamada é independente e não guarda estado.
func (r *Renderer) RenderFrame(series *domain.RegionSeries, bounds domain.AxisBounds, upTo int, path string) error {
	if upTo < 0 || upTo >= len(series.Observations) {
		return fmt.Errorf("índice de quadro %d fora da série de %d pontos", upTo, len(series.Observations))
	}

	p := plot.New()

	currentMonth := series.Observations[upTo].Date.Format("2006-01")
	p.Title.Text = fmt.Sprintf("Zillow Home Value Index (ZHVI) - CEP %s (%s) - %s",
		series.RawCode, series.Location(), currentMonth)
	p.X.Label.Text = "Ano-Mês"
	p.Y.Label.Text = "Índice de Valor do Imóvel (USD)"

	// Limites fixos: o eixo x cobre o intervalo completo de datas e o
	// eixo y os limites pré-calculados, para um referencial estável
	p.X.Min = float64(bounds.XMin.Unix())
	p.X.Max = float64(bounds.XMax.Unix())
	p.Y.Min = bounds.YMin
	p.Y.Max = bounds.YMax

	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, 0, upTo+1)
	for _, obs := range series.Observations[:upTo+1] {
		if obs.Value == nil {
			continue
		}
		points = append(points, plotter.XY{X: float64(obs.Date.Unix()), Y: *obs.Value})
	}

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return errors.Wrap(err, "erro ao montar a linha do gráfico")
	}
	line.Color = lineColor
	scatter.GlyphStyle.Color = lineColor
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(line, scatter)

	if err := p.Save(r.width, r.height, path); err != nil {
		return errors.Wrapf(err, "erro ao salvar o quadro %s", path)
	}

	return nil
}
