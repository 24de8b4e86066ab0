package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"attriview/pkg/parser"
	"attriview/pkg/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixtureHeader = "Age,Attrition,BusinessTravel,Department,DistanceFromHome,Education," +
	"EducationField,EmployeeCount,EnvironmentSatisfaction,Gender,JobInvolvement,JobRole," +
	"JobSatisfaction,MaritalStatus,MonthlyIncome,Over18,PerformanceRating," +
	"RelationshipSatisfaction,StandardHours,TotalWorkingYears,WorkLifeBalance,YearsAtCompany"

var fixtureRows = []string{
	"41,Yes,Travel_Rarely,Sales,1,2,Life Sciences,1,2,Female,3,Sales Executive,4,Single,5993,Y,3,1,80,8,1,6",
	"49,No,Travel_Frequently,Research & Development,8,1,Life Sciences,1,3,Male,2,Research Scientist,2,Married,5130,Y,4,4,80,10,3,10",
	"37,Yes,Travel_Rarely,Research & Development,2,2,Other,1,4,Male,2,Laboratory Technician,3,Single,2090,Y,3,2,80,7,3,0",
	"33,No,Travel_Frequently,Research & Development,3,4,Life Sciences,1,4,Female,3,Research Scientist,3,Married,2909,Y,3,3,80,8,3,8",
	"27,No,Travel_Rarely,Research & Development,2,1,Medical,1,1,Male,3,Laboratory Technician,2,Married,3468,Y,3,4,80,6,2,2",
}

func writeFixture(t *testing.T, rows ...string) string {
	t.Helper()
	if rows == nil {
		rows = fixtureRows
	}
	path := filepath.Join(t.TempDir(), "hr.csv")
	content := fixtureHeader + "\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPipeline_Run(t *testing.T) {
	t.Run("full preparation sequence", func(t *testing.T) {
		ds, err := NewPipeline(zap.NewNop()).Run(writeFixture(t))
		require.NoError(t, err)

		assert.Equal(t, 5, ds.Len())
		for _, col := range schema.ConstantColumnCandidates {
			assert.False(t, ds.HasColumn(col), "%s should be pruned", col)
		}

		education, ok := ds.Column(schema.ColEducation)
		require.True(t, ok)
		assert.Equal(t, []string{"College", "Below College", "College", "Master", "Below College"}, education)

		wlb, _ := ds.Column(schema.ColWorkLifeBalance)
		assert.Equal(t, []string{"Bad", "Better", "Better", "Better", "Good"}, wlb)
	})

	t.Run("missing file is data unavailable", func(t *testing.T) {
		_, err := NewPipeline(zap.NewNop()).Run(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, parser.ErrDataUnavailable)
	})

	t.Run("missing required column is a schema mismatch", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hr.csv")
		require.NoError(t, os.WriteFile(path, []byte("Age,Gender\n41,Female\n"), 0o644))

		_, err := NewPipeline(zap.NewNop()).Run(path)
		assert.ErrorIs(t, err, schema.ErrSchemaMismatch)
	})

	t.Run("out-of-domain ordinal aborts the run", func(t *testing.T) {
		// Education code 9 in the first row.
		bad := strings.Replace(fixtureRows[0], "41,Yes,Travel_Rarely,Sales,1,2,", "41,Yes,Travel_Rarely,Sales,1,9,", 1)

		_, err := NewPipeline(zap.NewNop()).Run(writeFixture(t, bad))
		assert.ErrorIs(t, err, schema.ErrUnmappedCode)
	})

	t.Run("mapping overrides are honored", func(t *testing.T) {
		overrides := map[string]schema.OrdinalMapping{
			schema.ColEducation: {1: "E1", 2: "E2", 3: "E3", 4: "E4", 5: "E5"},
		}
		for col, m := range schema.OrdinalMappings {
			if col != schema.ColEducation {
				overrides[col] = m
			}
		}

		ds, err := NewPipeline(zap.NewNop(), WithMappings(overrides)).Run(writeFixture(t))
		require.NoError(t, err)

		education, _ := ds.Column(schema.ColEducation)
		assert.Equal(t, "E2", education[0])
	})
}
