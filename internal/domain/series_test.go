package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 {
	return &f
}

func monthly(values []*float64) []Observation {
	start := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	obs := make([]Observation, 0, len(values))
	for i, v := range values {
		obs = append(obs, Observation{Date: start.AddDate(0, i, 0), Value: v})
	}
	return obs
}

func TestNewAxisBounds(t *testing.T) {
	tests := []struct {
		name     string
		values   []*float64
		wantErr  bool
		validate func(t *testing.T, b AxisBounds)
	}{
		{
			name:   "Série com valores distintos - folga de 5% sobre a amplitude",
			values: []*float64{floatPtr(100000), floatPtr(150000), floatPtr(200000)},
			validate: func(t *testing.T, b AxisBounds) {
				// amplitude 100000 -> folga 5000
				assert.InDelta(t, 95000.0, b.YMin, 1e-9)
				assert.InDelta(t, 205000.0, b.YMax, 1e-9)
			},
		},
		{
			name:   "Série constante - folga vira 10% do valor",
			values: []*float64{floatPtr(200000), floatPtr(200000)},
			validate: func(t *testing.T, b AxisBounds) {
				assert.InDelta(t, 180000.0, b.YMin, 1e-9)
				assert.InDelta(t, 220000.0, b.YMax, 1e-9)
			},
		},
		{
			name:   "Série constante em zero - folga vira a constante fixa",
			values: []*float64{floatPtr(0), floatPtr(0)},
			validate: func(t *testing.T, b AxisBounds) {
				assert.InDelta(t, -10000.0, b.YMin, 1e-9)
				assert.InDelta(t, 10000.0, b.YMax, 1e-9)
			},
		},
		{
			name:   "Valores nulos são ignorados no cálculo de mínimo e máximo",
			values: []*float64{nil, floatPtr(100), nil, floatPtr(300), nil},
			validate: func(t *testing.T, b AxisBounds) {
				assert.InDelta(t, 90.0, b.YMin, 1e-9)
				assert.InDelta(t, 310.0, b.YMax, 1e-9)
			},
		},
		{
			name:    "Série totalmente nula - erro",
			values:  []*float64{nil, nil},
			wantErr: true,
		},
		{
			name:    "Série vazia - erro",
			values:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := &RegionSeries{Observations: monthly(tt.values)}

			bounds, err := NewAxisBounds(series)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			// O eixo x cobre sempre o intervalo completo de datas
			assert.Equal(t, series.Observations[0].Date, bounds.XMin)
			assert.Equal(t, series.Observations[len(series.Observations)-1].Date, bounds.XMax)
			tt.validate(t, bounds)
		})
	}
}

func TestRegionSeries_MinMax(t *testing.T) {
	series := &RegionSeries{Observations: monthly([]*float64{
		floatPtr(250000), nil, floatPtr(180000), floatPtr(310000),
	})}

	min, max := series.MinMax()
	assert.Equal(t, 180000.0, min)
	assert.Equal(t, 310000.0, max)
}

func TestRegionSeries_Location(t *testing.T) {
	series := &RegionSeries{City: "Springfield", State: "IL"}
	assert.Equal(t, "Springfield, IL", series.Location())
}

// Propriedade de referencial estável: todos os valores renderizáveis ficam
// dentro dos limites calculados, com a tolerância da folga.
func TestNewAxisBounds_ContainsAllValues(t *testing.T) {
	values := []*float64{
		floatPtr(120000), floatPtr(95000), nil, floatPtr(230000), floatPtr(187500),
	}
	series := &RegionSeries{Observations: monthly(values)}

	bounds, err := NewAxisBounds(series)
	assert.NoError(t, err)

	for _, obs := range series.Observations {
		if obs.Value == nil {
			continue
		}
		assert.GreaterOrEqual(t, *obs.Value, bounds.YMin)
		assert.LessOrEqual(t, *obs.Value, bounds.YMax)
	}
}
