package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const attritionPath = "/admin/attrition_data/api/table_data"

func TestAttritionListsEveryDivision(t *testing.T) {
	r := newTestAPI(t)

	row := mustCreate(t, r, attritionPath+"/2024", map[string]any{
		"division":       "RBA",
		"totalHCNewYear": 40,
		"totalBudgetHC":  45,
		"join":           5,
		"resign":         3,
		"transfer":       1,
	})
	assert.Equal(t, "10%", row["attritionRate"])
	assert.Equal(t, 41.0, row["CurrentHC"])

	rr := do(t, r, http.MethodGet, attritionPath+"/2024", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rows := decode[[]map[string]any](t, rr)
	require.Len(t, rows, 5)

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row["division"].(string))
	}
	assert.Equal(t, []string{"WBGM", "RBA", "BRDS", "TAD", "PPA"}, names)

	assert.Equal(t, "", rows[0]["id"])
	assert.Equal(t, "", rows[0]["attritionRate"])
	assert.Equal(t, 0.0, rows[0]["CurrentHC"])

	assert.Equal(t, row["id"], rows[1]["id"])
	assert.Equal(t, 45.0, rows[1]["totalBudgetHC"])

	rr = do(t, r, http.MethodGet, attritionPath+"/2025", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "", decode[[]map[string]any](t, rr)[1]["id"])
}

func TestAttritionZeroStartAndDuplicates(t *testing.T) {
	r := newTestAPI(t)

	row := mustCreate(t, r, attritionPath+"/2024", map[string]any{"division": "PPA", "join": 2})
	assert.Equal(t, "-%", row["attritionRate"])
	assert.Equal(t, 2.0, row["CurrentHC"])

	rr := do(t, r, http.MethodPost, attritionPath+"/2024", map[string]any{"division": "PPA"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	mustCreate(t, r, attritionPath+"/2023", map[string]any{"division": "PPA"})

	other := mustCreate(t, r, attritionPath+"/2024", map[string]any{"division": "TAD"})
	rr = do(t, r, http.MethodPatch, attritionPath+"/"+other["id"].(string), map[string]any{"division": "PPA"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, r, http.MethodPatch, attritionPath+"/"+row["id"].(string), map[string]any{"totalHCNewYear": 3, "resign": 1})
	require.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())
	patched := decode[map[string]any](t, rr)
	assert.Equal(t, "33.33%", patched["attritionRate"])
	assert.Equal(t, 4.0, patched["CurrentHC"])

	rr = do(t, r, http.MethodPost, attritionPath+"/2024", map[string]any{"division": "Nowhere"})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
