// file: internals/gateway/gateway.go
package gateway

import (
	"context"
	"errors"
)

/* =========================
   Códigos de error (maquinables)
========================= */

const (
	ErrCodeForeignKey = "foreign_key_violation" // SQLSTATE 23503
	ErrCodeUnique     = "unique_violation"      // SQLSTATE 23505
	ErrCodeNotFound   = "not_found"
	ErrCodeRPC        = "rpc_failed"
	ErrCodeInternal   = "internal"
)

// Error es el error tipado del gateway: un código maquinable + mensaje humano.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf devuelve el código del error, o ErrCodeInternal si no es un *Error.
func CodeOf(err error) string {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ErrCodeInternal
}

func IsForeignKey(err error) bool { return CodeOf(err) == ErrCodeForeignKey }
func IsUnique(err error) bool     { return CodeOf(err) == ErrCodeUnique }
func IsNotFound(err error) bool   { return CodeOf(err) == ErrCodeNotFound }

/* =========================
   Query
========================= */

// Filter: igualdad columna = valor.
type Filter map[string]any

// Search: substring case-insensitive sobre una columna de texto.
type Search struct {
	Column string
	Term   string
}

type Query struct {
	Table   string
	Filters Filter
	Search  *Search
	OrderBy string
	Desc    bool
	Offset  int
	Limit   int // 0 = sin ventana
}

/* =========================
   Store
========================= */

// Store es el contrato del Remote Data Gateway. Se inyecta explícitamente en
// cada service (nada de singletons globales) para que los tests puedan
// sustituirlo por la implementación en memoria.
type Store interface {
	// Select llena dest (slice de modelos) y devuelve el total que matchea
	// filtros+búsqueda, ignorando la ventana offset/limit.
	Select(ctx context.Context, q Query, dest any) (int64, error)
	Insert(ctx context.Context, table string, row any) error
	Update(ctx context.Context, table string, patch map[string]any, filters Filter) error
	Upsert(ctx context.Context, table string, row any, conflictCols, updateCols []string) error
	Delete(ctx context.Context, table string, filters Filter) error
	// RPC invoca una función de Postgres (SELECT fn(...)) y escanea en dest.
	RPC(ctx context.Context, name string, dest any, args ...any) error
	Transaction(ctx context.Context, fn func(Store) error) error
}
