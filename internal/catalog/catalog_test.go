package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPatients(t *testing.T) {
	all := SearchPatients("", "")
	assert.Len(t, all, len(patients))

	byName := SearchPatients("MARIA", "")
	require.Len(t, byName, 1)
	assert.Equal(t, "p-001", byName[0].ID)

	byCondition := SearchPatients("diabetes", "")
	assert.Len(t, byCondition, 2, "matches Type 2 Diabetes and Prediabetes")

	byEmail := SearchPatients("chen@", "")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "James Chen", byEmail[0].Name)

	moderate := SearchPatients("", RiskModerate)
	for _, p := range moderate {
		assert.Equal(t, RiskModerate, p.Risk)
	}
	assert.Empty(t, SearchPatients("diabetes", RiskLow))
}

func TestSearchLiterature(t *testing.T) {
	got := SearchLiterature("cortisol", "")
	require.Len(t, got, 1)
	assert.Equal(t, "https://doi.org/10.5555/pnn.2021.0510", got[0].DOIURL())

	exercise := SearchLiterature("", "Exercise")
	assert.Len(t, exercise, 2)

	assert.Empty(t, SearchLiterature("cortisol", "exercise"))
	assert.Equal(t, "", Literature{}.DOIURL())
}

func TestSearchSupplementsAndGenetics(t *testing.T) {
	assert.Len(t, SearchSupplements("sleep"), 1)
	assert.NotEmpty(t, SearchSupplements("MINERAL"))
	assert.Len(t, SearchGenetics("rs4680"), 1)
	assert.Empty(t, SearchGenetics("no-such-gene"))
}

func TestClassifyLab(t *testing.T) {
	assert.Equal(t, LabHigh, ClassifyLab("HbA1c", 7.4))
	assert.Equal(t, LabNormal, ClassifyLab("hba1c", 5.0))
	assert.Equal(t, LabLow, ClassifyLab("Vitamin D", 12))
	assert.Equal(t, LabUnknown, ClassifyLab("Unobtainium", 1))
}

func TestLabsForPatient(t *testing.T) {
	labs, err := LabsForPatient("p-001")
	require.NoError(t, err)
	require.NotEmpty(t, labs)
	for _, l := range labs {
		assert.NotEmpty(t, l.Unit)
		assert.NotEqual(t, LabUnknown, l.Status)
	}

	_, err = LabsForPatient("p-999")
	var nf NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "patient", nf.Kind)
}

func TestPatientDetailTabs(t *testing.T) {
	d, err := GetPatientDetail("p-001", TabLabs)
	require.NoError(t, err)
	assert.NotEmpty(t, d.Labs)
	assert.Nil(t, d.Plan)
	assert.Equal(t, 4, d.Flagged)

	d, err = GetPatientDetail("p-001", TabPlan)
	require.NoError(t, err)
	require.NotNil(t, d.Plan)
	assert.Equal(t, "metabolic-reset", d.Plan.ID)

	d, err = GetPatientDetail("p-006", TabPlan)
	require.NoError(t, err)
	assert.Nil(t, d.Plan, "no plan assigned renders empty")

	d, err = GetPatientDetail("p-002", Tab("bogus"))
	require.NoError(t, err)
	assert.Equal(t, TabOverview, d.Tab)
	assert.Empty(t, d.Labs)
	assert.Empty(t, d.Markers)
}

func TestIsAntiCharity(t *testing.T) {
	assert.True(t, IsAntiCharity(AntiCharities[0]))
	assert.False(t, IsAntiCharity("Red Cross"))
}
