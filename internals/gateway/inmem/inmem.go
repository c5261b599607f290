// file: internals/gateway/inmem/inmem.go
//
// Implementación en memoria del gateway.Store para tests: filas como mapas
// columna→valor (round-trip JSON contra los modelos), FKs registradas para
// emular SQLSTATE 23503 en deletes, RPCs registradas por nombre y hooks de
// fallo por operación/tabla para forzar fallos parciales.
package inmem

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"aulavirtual_backend/internals/gateway"
)

type foreignKey struct {
	childTable string
	childCol   string
	parentTab  string
	parentCol  string
}

type DB struct {
	mu       sync.Mutex
	tables   map[string][]map[string]any
	fks      []foreignKey
	rpcs     map[string]func(args ...any) (any, error)
	failNext map[string]error
}

var _ gateway.Store = (*DB)(nil)

func New() *DB {
	return &DB{
		tables:   map[string][]map[string]any{},
		rpcs:     map[string]func(args ...any) (any, error){},
		failNext: map[string]error{},
	}
}

/* =========================
   Setup de tests
========================= */

func (d *DB) Seed(table string, rows ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range rows {
		d.tables[table] = append(d.tables[table], toRow(r))
	}
}

func (d *DB) AddForeignKey(childTable, childCol, parentTable, parentCol string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fks = append(d.fks, foreignKey{childTable, childCol, parentTable, parentCol})
}

func (d *DB) RegisterRPC(name string, fn func(args ...any) (any, error)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rpcs[name] = fn
}

// FailNext hace fallar la próxima operación op ("select","insert","update",
// "upsert","delete") sobre la tabla dada.
func (d *DB) FailNext(op, table string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failNext[op+":"+table] = err
}

// Rows devuelve una copia de las filas actuales de la tabla, para asserts.
func (d *DB) Rows(table string) []map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]map[string]any, 0, len(d.tables[table]))
	for _, r := range d.tables[table] {
		out = append(out, copyRow(r))
	}
	return out
}

/* =========================
   gateway.Store
========================= */

func (d *DB) Select(ctx context.Context, q gateway.Query, dest any) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.consumeFail("select", q.Table); err != nil {
		return 0, err
	}

	matched := d.match(q.Table, q.Filters)
	if q.Search != nil && strings.TrimSpace(q.Search.Term) != "" {
		term := strings.ToLower(q.Search.Term)
		kept := matched[:0]
		for _, r := range matched {
			if s, ok := r[q.Search.Column].(string); ok && strings.Contains(strings.ToLower(s), term) {
				kept = append(kept, r)
			}
		}
		matched = kept
	}
	total := int64(len(matched))

	if q.OrderBy != "" {
		col := q.OrderBy
		sort.SliceStable(matched, func(i, j int) bool {
			if q.Desc {
				return lessValue(matched[j][col], matched[i][col])
			}
			return lessValue(matched[i][col], matched[j][col])
		})
	}

	if q.Limit > 0 {
		if q.Offset >= len(matched) {
			matched = nil
		} else {
			end := q.Offset + q.Limit
			if end > len(matched) {
				end = len(matched)
			}
			matched = matched[q.Offset:end]
		}
	}

	if err := scanInto(matched, dest); err != nil {
		return 0, gateway.NewError(gateway.ErrCodeInternal, err.Error())
	}
	return total, nil
}

func (d *DB) Insert(ctx context.Context, table string, row any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.consumeFail("insert", table); err != nil {
		return err
	}
	d.tables[table] = append(d.tables[table], toRow(row))
	return nil
}

func (d *DB) Update(ctx context.Context, table string, patch map[string]any, filters gateway.Filter) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.consumeFail("update", table); err != nil {
		return err
	}
	norm := map[string]any{}
	for k, v := range patch {
		norm[k] = normValue(v)
	}
	for _, r := range d.match(table, filters) {
		for k, v := range norm {
			if v == nil {
				delete(r, k)
				continue
			}
			r[k] = v
		}
	}
	return nil
}

func (d *DB) Upsert(ctx context.Context, table string, row any, conflictCols, updateCols []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.consumeFail("upsert", table); err != nil {
		return err
	}
	nr := toRow(row)
	for _, existing := range d.tables[table] {
		hit := true
		for _, c := range conflictCols {
			if !reflect.DeepEqual(existing[c], nr[c]) {
				hit = false
				break
			}
		}
		if hit {
			for _, c := range updateCols {
				existing[c] = nr[c]
			}
			return nil
		}
	}
	d.tables[table] = append(d.tables[table], nr)
	return nil
}

func (d *DB) Delete(ctx context.Context, table string, filters gateway.Filter) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.consumeFail("delete", table); err != nil {
		return err
	}

	victims := d.match(table, filters)
	for _, fk := range d.fks {
		if fk.parentTab != table {
			continue
		}
		for _, v := range victims {
			pv := v[fk.parentCol]
			for _, child := range d.tables[fk.childTable] {
				if reflect.DeepEqual(child[fk.childCol], pv) {
					return gateway.NewError(gateway.ErrCodeForeignKey, fmt.Sprintf(
						"ERROR: update or delete on table %q violates foreign key constraint on table %q (SQLSTATE 23503)",
						table, fk.childTable))
				}
			}
		}
	}

	kept := d.tables[table][:0]
	for _, r := range d.tables[table] {
		if !matchesFilters(r, filters) {
			kept = append(kept, r)
		}
	}
	d.tables[table] = kept
	return nil
}

func (d *DB) RPC(ctx context.Context, name string, dest any, args ...any) error {
	d.mu.Lock()
	fn, ok := d.rpcs[name]
	d.mu.Unlock()
	if !ok {
		return gateway.NewError(gateway.ErrCodeRPC, "función no registrada: "+name)
	}
	result, err := fn(args...)
	if err != nil {
		return gateway.NewError(gateway.ErrCodeRPC, err.Error())
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return gateway.NewError(gateway.ErrCodeRPC, err.Error())
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return gateway.NewError(gateway.ErrCodeRPC, err.Error())
	}
	return nil
}

// Transaction: snapshot de todas las tablas; si fn falla, se restaura.
func (d *DB) Transaction(ctx context.Context, fn func(gateway.Store) error) error {
	d.mu.Lock()
	snapshot := make(map[string][]map[string]any, len(d.tables))
	for t, rows := range d.tables {
		cp := make([]map[string]any, 0, len(rows))
		for _, r := range rows {
			cp = append(cp, copyRow(r))
		}
		snapshot[t] = cp
	}
	d.mu.Unlock()

	if err := fn(d); err != nil {
		d.mu.Lock()
		d.tables = snapshot
		d.mu.Unlock()
		return err
	}
	return nil
}

/* =========================
   Internos
========================= */

// llamar con d.mu tomado
func (d *DB) consumeFail(op, table string) error {
	key := op + ":" + table
	if err, ok := d.failNext[key]; ok {
		delete(d.failNext, key)
		return err
	}
	return nil
}

// llamar con d.mu tomado
func (d *DB) match(table string, filters gateway.Filter) []map[string]any {
	var out []map[string]any
	for _, r := range d.tables[table] {
		if matchesFilters(r, filters) {
			out = append(out, r)
		}
	}
	return out
}

func matchesFilters(r map[string]any, filters gateway.Filter) bool {
	for col, want := range filters {
		if !reflect.DeepEqual(r[col], normValue(want)) {
			return false
		}
	}
	return true
}

func toRow(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("inmem: fila no serializable: %v", err))
	}
	row := map[string]any{}
	if err := json.Unmarshal(raw, &row); err != nil {
		panic(fmt.Sprintf("inmem: fila no deserializable: %v", err))
	}
	return row
}

func normValue(v any) any {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("inmem: valor no serializable: %v", err))
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("inmem: valor no deserializable: %v", err))
	}
	return out
}

func copyRow(r map[string]any) map[string]any {
	cp := make(map[string]any, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}

func scanInto(rows []map[string]any, dest any) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func lessValue(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
