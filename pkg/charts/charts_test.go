package charts

import (
	"os"
	"path/filepath"
	"testing"

	"attriview/pkg/dataset"
	"attriview/pkg/parser"
	"attriview/pkg/report"
	"attriview/pkg/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixtureCSV = `Age,Attrition,BusinessTravel,Department,DistanceFromHome,Education,EducationField,EmployeeCount,EnvironmentSatisfaction,Gender,JobInvolvement,JobRole,JobSatisfaction,MaritalStatus,MonthlyIncome,Over18,PerformanceRating,RelationshipSatisfaction,StandardHours,TotalWorkingYears,WorkLifeBalance,YearsAtCompany
41,Yes,Travel_Rarely,Sales,1,2,Life Sciences,1,2,Female,3,Sales Executive,4,Single,5993,Y,3,1,80,8,1,6
49,No,Travel_Frequently,Research & Development,8,1,Life Sciences,1,3,Male,2,Research Scientist,2,Married,5130,Y,4,4,80,10,3,10
37,Yes,Travel_Rarely,Research & Development,2,2,Other,1,4,Male,2,Laboratory Technician,3,Single,2090,Y,3,2,80,7,3,0
33,No,Travel_Frequently,Research & Development,3,4,Life Sciences,1,4,Female,3,Research Scientist,3,Married,2909,Y,3,3,80,8,3,8
27,No,Travel_Rarely,Research & Development,2,1,Medical,1,1,Male,3,Laboratory Technician,2,Married,3468,Y,3,4,80,6,2,2
`

func fixture(t *testing.T) (*dataset.Dataset, *report.Summary) {
	t.Helper()
	table, err := parser.Parse([]byte(fixtureCSV))
	require.NoError(t, err)
	ds := dataset.FromTable(table)
	ds.PruneConstants(schema.ConstantColumnCandidates)
	require.NoError(t, ds.RecodeOrdinals(schema.OrdinalMappings))
	summary, err := report.BuildSummary(ds)
	require.NoError(t, err)
	return ds, summary
}

func TestRenderAll(t *testing.T) {
	ds, summary := fixture(t)
	dir := t.TempDir()

	paths, err := NewRenderer(dir, zap.NewNop()).RenderAll(ds, summary)
	require.NoError(t, err)

	// 10 count charts + 5 histograms + violin + box.
	assert.Len(t, paths, len(schema.CategoricalFeatures)+len(schema.NumericFeatures)+2)
	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Greater(t, info.Size(), int64(0), path)
	}

	assert.Contains(t, paths, filepath.Join(dir, "attrition_by_gender.png"))
	assert.Contains(t, paths, filepath.Join(dir, "dist_monthlyincome.png"))
	assert.Contains(t, paths, filepath.Join(dir, "monthlyincome_by_education_violin.png"))
	assert.Contains(t, paths, filepath.Join(dir, "distancefromhome_by_jobrole_box.png"))
}

func TestCountChart(t *testing.T) {
	_, summary := fixture(t)
	dir := t.TempDir()
	r := NewRenderer(dir, zap.NewNop())

	path, err := r.CountChart(summary.Crosstabs[0])
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestBoxChartOrdersOrdinalGroups(t *testing.T) {
	ds, _ := fixture(t)

	groups, err := splitGroups(ds, schema.ColEducation, schema.ColMonthlyIncome)
	require.NoError(t, err)

	var names []string
	for _, g := range groups {
		names = append(names, g.name)
	}
	// Label order, not first-appearance order.
	assert.Equal(t, []string{"Below College", "College", "Master"}, names)
}
