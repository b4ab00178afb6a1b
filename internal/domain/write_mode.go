package domain

import "fmt"

// WriteMode define como uma ingestão grava no banco: acrescentando linhas ou
// substituindo todo o conjunto existente.
type WriteMode string

const (
	WriteModeAppend  WriteMode = "append"
	WriteModeReplace WriteMode = "replace"
)

// ParseWriteMode valida o modo de escrita informado pelo cliente.
// O valor vazio assume "append", que é o modo menos destrutivo.
func ParseWriteMode(value string) (WriteMode, error) {
	switch WriteMode(value) {
	case WriteModeAppend, "":
		return WriteModeAppend, nil
	case WriteModeReplace:
		return WriteModeReplace, nil
	default:
		return "", fmt.Errorf("modo de escrita inválido: %q (esperado: append ou replace)", value)
	}
}

// IngestResult resume uma execução da pipeline de ingestão.
type IngestResult struct {
	RunID       string    `json:"run_id"`
	Mode        WriteMode `json:"mode"`
	RowsWritten int       `json:"rows_written"`
}
