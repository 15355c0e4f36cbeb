package domain

import (
	"fmt"
	"time"
)

// Valor de folga usado quando a série inteira é constante em zero,
// evitando um eixo y degenerado de altura zero.
const zeroSeriesPadding = 10000

// Observation representa um ponto mensal da série. Value é nil quando a
// célula correspondente do dataset está vazia.
type Observation struct {
	Date  time.Time
	Value *float64
}

// RegionSeries é a série temporal extraída para uma região, com os
// atributos descritivos usados nos títulos dos quadros.
type RegionSeries struct {
	RegionCode   int
	RawCode      string // código como digitado pelo usuário
	City         string
	State        string
	Observations []Observation
}

// Location retorna a descrição "Cidade, UF" da região.
func (s *RegionSeries) Location() string {
	return fmt.Sprintf("%s, %s", s.City, s.State)
}

// HasValues indica se existe ao menos uma observação não nula.
func (s *RegionSeries) HasValues() bool {
	for _, obs := range s.Observations {
		if obs.Value != nil {
			return true
		}
	}
	return false
}

// MinMax retorna o menor e o maior valor não nulo da série inteira.
func (s *RegionSeries) MinMax() (min, max float64) {
	first := true
	for _, obs := range s.Observations {
		if obs.Value == nil {
			continue
		}
		v := *obs.Value
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// AxisBounds são os limites de eixo fixos compartilhados por todos os
// quadros de uma animação. São calculados uma única vez, antes da
// renderização, para que o gráfico cresça contra um referencial estável.
type AxisBounds struct {
	XMin time.Time
	XMax time.Time
	YMin float64
	YMax float64
}

// NewAxisBounds calcula os limites de eixo a partir da série completa.
// O eixo y recebe 5% de folga em cada extremo; quando todos os valores
// são iguais a folga vira 10% do valor (ou uma constante, se o valor é zero).
func NewAxisBounds(s *RegionSeries) (AxisBounds, error) {
	if len(s.Observations) == 0 || !s.HasValues() {
		return AxisBounds{}, fmt.Errorf("série sem valores para calcular limites de eixo")
	}

	min, max := s.MinMax()
	padding := (max - min) * 0.05
	if padding == 0 {
		padding = min * 0.1
		if padding == 0 {
			padding = zeroSeriesPadding
		}
	}

	return AxisBounds{
		XMin: s.Observations[0].Date,
		XMax: s.Observations[len(s.Observations)-1].Date,
		YMin: min - padding,
		YMax: max + padding,
	}, nil
}
