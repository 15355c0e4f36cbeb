package extracting

import "errors"

// Erros específicos para o contexto de extração de séries
var (
	// Erros de validação da entrada
	ErrInvalidRegionCode = errors.New("invalid region code format")
	ErrRegionNotFound    = errors.New("region code not found in dataset")

	// Erros de esquema do dataset
	ErrMissingRegionColumn = errors.New("dataset has no RegionName column")
	ErrNoValueColumns      = errors.New("dataset has no date-named value columns")

	// Erros de dados da região
	ErrAllValuesNull = errors.New("all values are null for the matched region")
)
