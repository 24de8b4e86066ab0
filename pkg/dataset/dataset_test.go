package dataset

import (
	"testing"

	"attriview/pkg/parser"
	"attriview/pkg/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDataset(t *testing.T, csv string) *Dataset {
	t.Helper()
	table, err := parser.Parse([]byte(csv))
	require.NoError(t, err)
	return FromTable(table)
}

func TestPruneConstants(t *testing.T) {
	t.Run("spec literal: constant column removed", func(t *testing.T) {
		ds := mustDataset(t, "EmployeeCount,Attrition,Education\n1,Yes,3\n1,No,4\n1,Yes,1\n")

		dropped := ds.PruneConstants(schema.ConstantColumnCandidates)

		assert.Equal(t, []string{"EmployeeCount"}, dropped)
		assert.Equal(t, []string{"Attrition", "Education"}, ds.Columns())
		assert.NotContains(t, ds.Record(0), "EmployeeCount")
	})

	t.Run("two distinct values are not pruned", func(t *testing.T) {
		ds := mustDataset(t, "EmployeeCount,Attrition\n1,Yes\n2,No\n")

		dropped := ds.PruneConstants(schema.ConstantColumnCandidates)

		assert.Empty(t, dropped)
		assert.True(t, ds.HasColumn("EmployeeCount"))
	})

	t.Run("idempotent", func(t *testing.T) {
		ds := mustDataset(t, "EmployeeCount,StandardHours,Over18,Attrition\n1,80,Y,Yes\n1,80,Y,No\n")

		first := ds.PruneConstants(schema.ConstantColumnCandidates)
		assert.ElementsMatch(t, []string{"EmployeeCount", "StandardHours", "Over18"}, first)

		second := ds.PruneConstants(schema.ConstantColumnCandidates)
		assert.Empty(t, second)
		assert.Equal(t, []string{"Attrition"}, ds.Columns())
	})
}

func TestRecodeOrdinals(t *testing.T) {
	t.Run("spec literal: education labels", func(t *testing.T) {
		ds := mustDataset(t, "Attrition,Education\nYes,3\nNo,4\nYes,1\n")

		require.NoError(t, ds.RecodeOrdinals(schema.OrdinalMappings))

		col, ok := ds.Column("Education")
		require.True(t, ok)
		assert.Equal(t, []string{"Bachelor", "Master", "Below College"}, col)
	})

	t.Run("all seven columns recoded independently", func(t *testing.T) {
		ds := mustDataset(t,
			"Education,EnvironmentSatisfaction,JobInvolvement,JobSatisfaction,PerformanceRating,RelationshipSatisfaction,WorkLifeBalance\n"+
				"5,4,1,2,3,4,1\n")

		require.NoError(t, ds.RecodeOrdinals(schema.OrdinalMappings))

		rec := ds.Record(0)
		assert.Equal(t, "Doctor", rec["Education"])
		assert.Equal(t, "Very High", rec["EnvironmentSatisfaction"])
		assert.Equal(t, "Low", rec["JobInvolvement"])
		assert.Equal(t, "Medium", rec["JobSatisfaction"])
		assert.Equal(t, "Excellent", rec["PerformanceRating"])
		assert.Equal(t, "Very High", rec["RelationshipSatisfaction"])
		assert.Equal(t, "Bad", rec["WorkLifeBalance"])
	})

	t.Run("out-of-domain code aborts with column and row", func(t *testing.T) {
		ds := mustDataset(t, "Education\n3\n7\n")

		err := ds.RecodeOrdinals(schema.OrdinalMappings)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrUnmappedCode)
		assert.Contains(t, err.Error(), "Education")
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("columns without a table are untouched", func(t *testing.T) {
		ds := mustDataset(t, "Age,Education\n44,2\n")

		require.NoError(t, ds.RecodeOrdinals(schema.OrdinalMappings))

		rec := ds.Record(0)
		assert.Equal(t, "44", rec["Age"])
		assert.Equal(t, "College", rec["Education"])
	})
}

func TestDatasetAccessors(t *testing.T) {
	ds := mustDataset(t, "A,B\n1,x\n2,\n1,x\n")

	t.Run("distinct values in first-appearance order", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2"}, ds.DistinctValues("A"))
		assert.Nil(t, ds.DistinctValues("C"))
	})

	t.Run("null counts", func(t *testing.T) {
		counts := ds.NullCounts()
		assert.Equal(t, 0, counts["A"])
		assert.Equal(t, 1, counts["B"])
	})

	t.Run("duplicate rows", func(t *testing.T) {
		assert.Equal(t, 1, ds.DuplicateRowCount())
	})

	t.Run("head", func(t *testing.T) {
		rows := ds.Head(2)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"1", "x"}, rows[0])

		assert.Len(t, ds.Head(10), 3)
	})

	t.Run("int column", func(t *testing.T) {
		values, err := ds.IntColumn("A")
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 1}, values)

		_, err = ds.IntColumn("B")
		assert.Error(t, err)

		_, err = ds.IntColumn("C")
		assert.ErrorIs(t, err, schema.ErrSchemaMismatch)
	})
}
