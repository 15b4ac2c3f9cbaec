package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const qaipPath = "/admin/qaip_data/api/table_data"

func TestQAIPLifecycle(t *testing.T) {
	r := newTestAPI(t)

	mustCreate(t, r, employeePath, employeeBody("3001", "Gita"))
	project := createProject(t, r, "Card Operations", 2024)
	createProject(t, r, "Card Operations 2023", 2023)

	row := mustCreate(t, r, qaipPath, map[string]any{
		"QAType":       "Full QA",
		"auditProject": project,
		"TL":           "Gita",
		"divisionHead": "Hendra",
		"result":       "Partially Conforms",
		"category":     "clarity, Others",
		"stage":        "Fieldwork",
		"deliverable":  "1a, 2",
		"QASample":     true,
	})
	assert.Equal(t, "Card Operations", row["auditProject"])
	assert.Equal(t, "Gita", row["TL"])
	assert.Equal(t, "Clarity, Others", row["category"])
	assert.Equal(t, "Fieldwork", row["stage"])
	assert.Equal(t, "1a, 2", row["deliverable"])
	assert.Equal(t, 2.0, row["noOfIssues"])
	assert.Equal(t, true, row["QASample"])

	rr := do(t, r, http.MethodGet, qaipPath+"/2024", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decode[[]map[string]any](t, rr), 1)

	rr = do(t, r, http.MethodGet, qaipPath+"/2023", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[[]map[string]any](t, rr))

	id := row["id"].(string)
	rr = do(t, r, http.MethodPatch, qaipPath+"/"+id, map[string]any{"deliverable": "", "result": "Generally Conforms"})
	require.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())
	patched := decode[map[string]any](t, rr)
	assert.Equal(t, "", patched["deliverable"])
	assert.Equal(t, 0.0, patched["noOfIssues"])
	assert.Equal(t, "Generally Conforms", patched["result"])
	assert.Equal(t, "Clarity, Others", patched["category"])

	rr = do(t, r, http.MethodDelete, qaipPath+"/"+id, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestQAIPValidation(t *testing.T) {
	r := newTestAPI(t)
	project := createProject(t, r, "Card Operations", 2024)

	base := func() map[string]any {
		return map[string]any{"QAType": "Full QA", "auditProject": project, "result": "Generally Conforms"}
	}

	body := base()
	body["QAType"] = "Peer Review"
	rr := do(t, r, http.MethodPost, qaipPath, body)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	body = base()
	body["deliverable"] = "1a, 9z"
	rr = do(t, r, http.MethodPost, qaipPath, body)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Given deliverable (9z) is not allowed", detail(t, rr))

	body = base()
	body["auditProject"] = "abc"
	rr = do(t, r, http.MethodPost, qaipPath, body)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body = base()
	body["TL"] = "Nobody"
	rr = do(t, r, http.MethodPost, qaipPath, body)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, r, http.MethodGet, qaipPath+"/2024", nil)
	assert.Empty(t, decode[[]map[string]any](t, rr))
}
