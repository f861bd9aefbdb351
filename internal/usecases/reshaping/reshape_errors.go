package reshaping

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indica que o dataset largo não contém uma coluna
// obrigatória do schema canônico
var ErrMissingColumn = errors.New("coluna obrigatória ausente no dataset")

// SchemaError identifica qual coluna esperada não foi encontrada. O
// pipeline não consegue prosseguir sem o schema completo, então o erro é
// propagado sem tratamento até o chamador.
type SchemaError struct {
	Err    error  // Erro base
	Column string // Coluna ausente
}

// Error implementa a interface error
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Column)
}

// Unwrap retorna o erro subjacente
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewSchemaError cria um erro de schema para a coluna ausente
func NewSchemaError(column string) *SchemaError {
	return &SchemaError{
		Err:    ErrMissingColumn,
		Column: column,
	}
}
