package ingesting

import (
	"errors"
	"fmt"
	"strings"
)

// Erros base da pipeline de ingestão. Cada erro de validação carrega o
// contexto (linha, coluna, valor) necessário para o autor corrigir o arquivo.
var (
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
	ErrInvalidFormat = errors.New("valor com formato inválido")
	ErrInvalidType   = errors.New("valor com tipo inválido")
	ErrNegativeValue = errors.New("valor negativo não permitido")
	ErrEmptyFile     = errors.New("arquivo sem linhas de dados")
)

// SchemaError indica que o cabeçalho do arquivo não contém todas as colunas
// obrigatórias. É reportado antes de qualquer processamento de linha.
type SchemaError struct {
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumn.Error(), strings.Join(e.MissingColumns, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrMissingColumn
}

// FormatError indica um valor que não pôde ser interpretado (ex.: data
// inválida). Row é o índice da linha de dados, começando em 1 (cabeçalho
// excluído), como o usuário enxerga no arquivo.
type FormatError struct {
	Row    int
	Column string
	Value  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: linha %d, coluna %q, valor %q", ErrInvalidFormat.Error(), e.Row, e.Column, e.Value)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// TypeError indica um valor não numérico em uma coluna numérica.
type TypeError struct {
	Row    int
	Column string
	Value  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: linha %d, coluna %q, valor %q", ErrInvalidType.Error(), e.Row, e.Column, e.Value)
}

func (e *TypeError) Unwrap() error {
	return ErrInvalidType
}

// RangeError indica um valor numérico negativo em impressões, cliques,
// conversões ou custo.
type RangeError struct {
	Row    int
	Column string
	Value  string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: linha %d, coluna %q, valor %q", ErrNegativeValue.Error(), e.Row, e.Column, e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrNegativeValue
}

// IsValidationError verifica se o erro é uma rejeição de validação do arquivo
// (corrigível pelo autor), em oposição a uma falha de banco/infraestrutura.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrEmptyFile)
}
