// file: internals/helpers/patch.go
package helper

import "encoding/json"

/*
PatchField es el util de 3 estados para PATCH parciales:
  - campo no enviado   -> Present=false (no tocar la columna)
  - campo con valor    -> Present=true, Value != nil (SET valor)
  - campo enviado null -> Present=true, Value == nil (SET NULL)

Para columnas NOT NULL el controller debe rechazar null antes de ToUpdates.
*/
type PatchField[T any] struct {
	Present bool `json:"-"`
	Value   *T   `json:"-"`
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) IsNull() bool       { return p.Present && p.Value == nil }
func (p PatchField[T]) ShouldUpdate() bool { return p.Present }

// Set vuelca el campo en el mapa de updates respetando los 3 estados.
func Set[T any](updates map[string]any, column string, f *PatchField[T]) {
	if f == nil || !f.Present {
		return
	}
	if f.Value == nil {
		updates[column] = nil
		return
	}
	updates[column] = *f.Value
}
