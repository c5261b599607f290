package inmem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aulavirtual_backend/internals/gateway"
)

type thing struct {
	ID    string  `json:"thing_id"`
	Name  string  `json:"thing_name"`
	Score float64 `json:"thing_score"`
}

func TestSelectFiltersSearchAndWindow(t *testing.T) {
	db := New()
	db.Seed("things",
		thing{ID: "1", Name: "Informe final", Score: 10},
		thing{ID: "2", Name: "informe parcial", Score: 20},
		thing{ID: "3", Name: "Ensayo", Score: 30},
	)

	var rows []thing
	total, err := db.Select(context.Background(), gateway.Query{
		Table:   "things",
		Search:  &gateway.Search{Column: "thing_name", Term: "INFORME"},
		OrderBy: "thing_score",
		Desc:    true,
		Limit:   1,
	}, &rows)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total) // total ignora la ventana
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].ID) // score más alto primero
}

func TestDeleteRespectsForeignKeys(t *testing.T) {
	db := New()
	db.Seed("parents", map[string]any{"parent_id": "p1"})
	db.Seed("children", map[string]any{"child_id": "c1", "child_parent_id": "p1"})
	db.AddForeignKey("children", "child_parent_id", "parents", "parent_id")

	err := db.Delete(context.Background(), "parents", gateway.Filter{"parent_id": "p1"})
	require.Error(t, err)
	assert.True(t, gateway.IsForeignKey(err))
	assert.Len(t, db.Rows("parents"), 1)

	// sin hijos, sí borra
	require.NoError(t, db.Delete(context.Background(), "children", gateway.Filter{"child_id": "c1"}))
	require.NoError(t, db.Delete(context.Background(), "parents", gateway.Filter{"parent_id": "p1"}))
	assert.Empty(t, db.Rows("parents"))
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := New()
	db.Seed("things", thing{ID: "1", Name: "a"})
	db.FailNext("update", "things", gateway.NewError(gateway.ErrCodeInternal, "boom"))

	err := db.Transaction(context.Background(), func(tx gateway.Store) error {
		if err := tx.Insert(context.Background(), "things", thing{ID: "2", Name: "b"}); err != nil {
			return err
		}
		return tx.Update(context.Background(), "things", map[string]any{"thing_name": "z"}, gateway.Filter{"thing_id": "1"})
	})
	require.Error(t, err)
	assert.Len(t, db.Rows("things"), 1) // el insert se revirtió
}

func TestUpsertByConflictColumns(t *testing.T) {
	db := New()
	ctx := context.Background()
	row := map[string]any{"k1": "a", "k2": "b", "val": "v1"}
	require.NoError(t, db.Upsert(ctx, "pairs", row, []string{"k1", "k2"}, []string{"val"}))

	row["val"] = "v2"
	require.NoError(t, db.Upsert(ctx, "pairs", row, []string{"k1", "k2"}, []string{"val"}))

	rows := db.Rows("pairs")
	require.Len(t, rows, 1)
	assert.Equal(t, "v2", rows[0]["val"])
}
