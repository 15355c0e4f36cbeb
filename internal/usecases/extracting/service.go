package extracting

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/zhvi-animator/internal/domain"
	"github.com/vfg2006/zhvi-animator/pkg/utils"
)

// Extractor localiza a linha de uma região no dataset e isola as colunas
// de valor mensal como uma série temporal ordenada.
type Extractor interface {
	ExtractSeries(datasetPath, regionCode string) (*domain.RegionSeries, error)
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// valueColumn associa o índice de uma coluna de valor à data do cabeçalho.
type valueColumn struct {
	index int
	date  time.Time
}

// schema descreve as colunas identificadas no cabeçalho do dataset.
type schema struct {
	regionIdx    int
	cityIdx      int
	stateIdx     int
	valueColumns []valueColumn
}

// ExtractSeries carrega o dataset, encontra a linha da região informada e
// retorna a série temporal ordenada por data, junto com cidade e estado
// para os títulos. A primeira linha que casar com o código é usada; o
// modelo assume códigos únicos no dataset.
func (s *Service) ExtractSeries(datasetPath, regionCode string) (*domain.RegionSeries, error) {
	code, err := strconv.Atoi(regionCode)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRegionCode, "%q", regionCode)
	}

	file, err := os.Open(datasetPath)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o dataset %s", datasetPath)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do dataset")
	}

	sc, err := parseSchema(header)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Dataset com %d colunas de valor mensal", len(sc.valueColumns))

	record, err := findRegionRow(reader, sc, code)
	if err != nil {
		return nil, err
	}

	series := buildSeries(record, sc, code, regionCode)
	if !series.HasValues() {
		return nil, errors.Wrapf(ErrAllValuesNull, "região %s", regionCode)
	}

	return series, nil
}

// parseSchema valida o cabeçalho e separa colunas de atributo das colunas
// de valor. Uma coluna é de valor se, e somente se, o cabeçalho for uma
// data no formato YYYY-MM-DD; a ausência dessas colunas é um erro tipado,
// não um conjunto vazio silencioso.
func parseSchema(header []string) (*schema, error) {
	sc := &schema{regionIdx: -1, cityIdx: -1, stateIdx: -1}

	for i, name := range header {
		if date, ok := utils.ParseColumnDate(name); ok {
			sc.valueColumns = append(sc.valueColumns, valueColumn{index: i, date: date})
			continue
		}

		switch name {
		case "RegionName":
			sc.regionIdx = i
		case "City":
			sc.cityIdx = i
		case "State":
			sc.stateIdx = i
		}
	}

	if sc.regionIdx < 0 {
		return nil, ErrMissingRegionColumn
	}
	if len(sc.valueColumns) == 0 {
		return nil, ErrNoValueColumns
	}

	// As colunas do dataset já vêm em ordem cronológica, mas a invariante
	// de ordenação da série não deve depender disso.
	sort.Slice(sc.valueColumns, func(a, b int) bool {
		return sc.valueColumns[a].date.Before(sc.valueColumns[b].date)
	})

	return sc, nil
}

// findRegionRow percorre as linhas do dataset até encontrar a região.
func findRegionRow(reader *csv.Reader, sc *schema, code int) ([]string, error) {
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil, errors.Wrapf(ErrRegionNotFound, "%d", code)
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha do dataset")
		}

		if sc.regionIdx >= len(record) {
			continue
		}

		rowCode, err := strconv.Atoi(record[sc.regionIdx])
		if err != nil {
			continue
		}

		if rowCode == code {
			return record, nil
		}
	}
}

// buildSeries monta a série temporal da linha encontrada. Células vazias
// ou não numéricas viram observações nulas.
func buildSeries(record []string, sc *schema, code int, rawCode string) *domain.RegionSeries {
	series := &domain.RegionSeries{
		RegionCode:   code,
		RawCode:      rawCode,
		Observations: make([]domain.Observation, 0, len(sc.valueColumns)),
	}

	if sc.cityIdx >= 0 && sc.cityIdx < len(record) {
		series.City = record[sc.cityIdx]
	}
	if sc.stateIdx >= 0 && sc.stateIdx < len(record) {
		series.State = record[sc.stateIdx]
	}

	for _, col := range sc.valueColumns {
		obs := domain.Observation{Date: col.date}

		if col.index < len(record) {
			if value, err := strconv.ParseFloat(record[col.index], 64); err == nil {
				obs.Value = &value
			}
		}

		series.Observations = append(series.Observations, obs)
	}

	return series
}
