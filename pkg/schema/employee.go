package schema

import (
	"fmt"
	"strconv"
)

// Column names of the HR attrition dataset as they appear in the CSV header.
const (
	ColAge                      = "Age"
	ColAttrition                = "Attrition"
	ColBusinessTravel           = "BusinessTravel"
	ColDepartment               = "Department"
	ColDistanceFromHome         = "DistanceFromHome"
	ColEducation                = "Education"
	ColEducationField           = "EducationField"
	ColEmployeeCount            = "EmployeeCount"
	ColEnvironmentSatisfaction  = "EnvironmentSatisfaction"
	ColGender                   = "Gender"
	ColJobInvolvement           = "JobInvolvement"
	ColJobRole                  = "JobRole"
	ColJobSatisfaction          = "JobSatisfaction"
	ColMaritalStatus            = "MaritalStatus"
	ColMonthlyIncome            = "MonthlyIncome"
	ColOver18                   = "Over18"
	ColPerformanceRating        = "PerformanceRating"
	ColRelationshipSatisfaction = "RelationshipSatisfaction"
	ColStandardHours            = "StandardHours"
	ColTotalWorkingYears        = "TotalWorkingYears"
	ColWorkLifeBalance          = "WorkLifeBalance"
	ColYearsAtCompany           = "YearsAtCompany"
)

// AttritionYes and AttritionNo are the two values of the outcome column.
const (
	AttritionYes = "Yes"
	AttritionNo  = "No"
)

// ConstantColumnCandidates are the columns pruned when they carry exactly one
// distinct value across the whole dataset.
var ConstantColumnCandidates = []string{ColEmployeeCount, ColStandardHours, ColOver18}

// RequiredColumns are the columns the analysis reads. Pruning candidates are
// deliberately absent: a pre-pruned input is still valid.
var RequiredColumns = []string{
	ColAge,
	ColAttrition,
	ColBusinessTravel,
	ColDepartment,
	ColDistanceFromHome,
	ColEducation,
	ColEducationField,
	ColEnvironmentSatisfaction,
	ColGender,
	ColJobInvolvement,
	ColJobRole,
	ColJobSatisfaction,
	ColMaritalStatus,
	ColMonthlyIncome,
	ColPerformanceRating,
	ColRelationshipSatisfaction,
	ColTotalWorkingYears,
	ColWorkLifeBalance,
	ColYearsAtCompany,
}

// CategoricalFeatures is the fixed feature list for the categorical-vs-attrition
// breakdowns and count charts.
var CategoricalFeatures = []string{
	ColGender,
	ColMaritalStatus,
	ColDepartment,
	ColJobRole,
	ColEducationField,
	ColBusinessTravel,
	ColJobSatisfaction,
	ColEnvironmentSatisfaction,
	ColWorkLifeBalance,
	ColJobInvolvement,
}

// NumericFeatures is the fixed feature list for the numeric-vs-attrition
// distributions and histograms.
var NumericFeatures = []string{
	ColAge,
	ColMonthlyIncome,
	ColYearsAtCompany,
	ColDistanceFromHome,
	ColTotalWorkingYears,
}

// Employee is the typed view of one cleaned record. Ordinal fields hold their
// descriptive labels, not the raw integer codes.
type Employee struct {
	Age                      int    `json:"age"`
	Attrition                string `json:"attrition"`
	BusinessTravel           string `json:"businessTravel"`
	Department               string `json:"department"`
	DistanceFromHome         int    `json:"distanceFromHome"`
	Education                string `json:"education"`
	EducationField           string `json:"educationField"`
	EnvironmentSatisfaction  string `json:"environmentSatisfaction"`
	Gender                   string `json:"gender"`
	JobInvolvement           string `json:"jobInvolvement"`
	JobRole                  string `json:"jobRole"`
	JobSatisfaction          string `json:"jobSatisfaction"`
	MaritalStatus            string `json:"maritalStatus"`
	MonthlyIncome            int    `json:"monthlyIncome"`
	PerformanceRating        string `json:"performanceRating"`
	RelationshipSatisfaction string `json:"relationshipSatisfaction"`
	TotalWorkingYears        int    `json:"totalWorkingYears"`
	WorkLifeBalance          string `json:"workLifeBalance"`
	YearsAtCompany           int    `json:"yearsAtCompany"`
}

// EmployeeFromRecord builds the typed view of one cleaned record.
// The record must already be recoded: ordinal fields are read as labels.
func EmployeeFromRecord(record map[string]string) (Employee, error) {
	emp := Employee{
		Attrition:                record[ColAttrition],
		BusinessTravel:           record[ColBusinessTravel],
		Department:               record[ColDepartment],
		Education:                record[ColEducation],
		EducationField:           record[ColEducationField],
		EnvironmentSatisfaction:  record[ColEnvironmentSatisfaction],
		Gender:                   record[ColGender],
		JobInvolvement:           record[ColJobInvolvement],
		JobRole:                  record[ColJobRole],
		JobSatisfaction:          record[ColJobSatisfaction],
		MaritalStatus:            record[ColMaritalStatus],
		PerformanceRating:        record[ColPerformanceRating],
		RelationshipSatisfaction: record[ColRelationshipSatisfaction],
		WorkLifeBalance:          record[ColWorkLifeBalance],
	}

	for _, f := range []struct {
		col  string
		dest *int
	}{
		{ColAge, &emp.Age},
		{ColDistanceFromHome, &emp.DistanceFromHome},
		{ColMonthlyIncome, &emp.MonthlyIncome},
		{ColTotalWorkingYears, &emp.TotalWorkingYears},
		{ColYearsAtCompany, &emp.YearsAtCompany},
	} {
		v, err := strconv.Atoi(record[f.col])
		if err != nil {
			return Employee{}, fmt.Errorf("column %s: %q is not an integer", f.col, record[f.col])
		}
		*f.dest = v
	}

	return emp, nil
}
