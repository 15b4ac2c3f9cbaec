package server

import (
	"net/http"
	"testing"

	"ia-admin/internal/database"
	"ia-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csfPath = "/admin/csf_data/api/table_data"

func TestCSFCreateAndAverages(t *testing.T) {
	r := newTestAPI(t)

	mustCreate(t, r, employeePath, employeeBody("2001", "Fajar"))
	project := createProject(t, r, "Lending", 2024)
	other := createProject(t, r, "Old Lending", 2023)

	body := map[string]any{
		"division_by_inv": "RBA",
		"auditProject":    project,
		"TL":              "Fajar",
		"clientName":      "Credit Ops",
		"unitJabatan":     "Head",
		"CSFDate":         "02/10/2024",
		"atp1":            4, "atp2": 4, "atp3": 4, "atp4": 4, "atp5": 4, "atp6": 4,
		"ac1": 3, "ac2": 3, "ac3": 3, "ac4": 3, "ac5": 3, "ac6": 3,
		"paw1": 5, "paw2": 4, "paw3": 3,
	}
	row := mustCreate(t, r, csfPath, body)
	assert.Equal(t, 4.0, row["atpOverall"])
	assert.Equal(t, 3.0, row["acOverall"])
	assert.Equal(t, 4.0, row["pawOverall"])
	assert.Equal(t, 3.67, row["overall"])
	assert.Equal(t, "Fajar", row["TL"])
	assert.Equal(t, "WBGM", row["division_project"])
	assert.Equal(t, "RBA", row["division_by_inv"])
	assert.Equal(t, project, row["auditProject"])
	assert.Equal(t, "02/10/2024", row["CSFDate"])

	body["auditProject"] = other
	mustCreate(t, r, csfPath, body)

	rr := do(t, r, http.MethodGet, csfPath+"/2024", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rows := decode[[]map[string]any](t, rr)
	require.Len(t, rows, 1)
	assert.Equal(t, "Credit Ops", rows[0]["clientName"])

	rr = do(t, r, http.MethodPatch, csfPath+"/"+row["id"].(string), map[string]any{"ac1": 5, "TL": ""})
	require.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())
	patched := decode[map[string]any](t, rr)
	assert.Equal(t, 5.0, patched["ac1"])
	assert.Equal(t, 3.33, patched["acOverall"])
	assert.Equal(t, "", patched["TL"])
	assert.Equal(t, "Credit Ops", patched["clientName"])
}

func TestCSFReferenceErrors(t *testing.T) {
	r := newTestAPI(t)
	project := createProject(t, r, "Lending", 2024)

	cases := []struct {
		name   string
		body   map[string]any
		detail string
	}{
		{"non-numeric project", map[string]any{"division_by_inv": "RBA", "auditProject": "Lending"}, "Audit Project must be an ID"},
		{"missing project", map[string]any{"division_by_inv": "RBA", "auditProject": "999"}, "Audit Project must be an ID of an existing project"},
		{"unknown division", map[string]any{"division_by_inv": "Nowhere", "auditProject": project}, "Div Name not found"},
		{"unknown team leader", map[string]any{"division_by_inv": "RBA", "auditProject": project, "TL": "Ghost"}, "TL (Ghost) not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, r, http.MethodPost, csfPath, tc.body)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, tc.detail, detail(t, rr))
		})
	}

	var count int64
	require.NoError(t, database.DB.Model(&models.CSF{}).Count(&count).Error)
	assert.Zero(t, count)
}
