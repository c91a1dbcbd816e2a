package repository

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"

	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/util"
)

// Enrollment dataset column names, matching the upstream export.
const (
	enrollmentDataset = "enrollment"
	colDegree         = "university_degree"
	colYear           = "year"
	colFemale         = "Female"
	colMale           = "Male"
	colTotal          = "number_of_students"
)

// EnrollmentRepository holds the historical enrollment time series, loaded
// once and read-only afterwards.
type EnrollmentRepository struct {
	records []model.EnrollmentRecord
}

// LoadEnrollment parses the enrollment CSV. The total column is optional;
// when absent the total is the sum of the gender counts.
func LoadEnrollment(r io.Reader, encoding string) (*EnrollmentRepository, error) {
	reader := csv.NewReader(DatasetReader(r, encoding))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &util.SchemaError{Dataset: enrollmentDataset, Column: colDegree}
	}
	idx := headerIndex(header)
	for _, col := range []string{colDegree, colYear, colFemale, colMale} {
		if _, ok := idx[col]; !ok {
			return nil, &util.SchemaError{Dataset: enrollmentDataset, Column: col}
		}
	}
	totalIdx, hasTotal := idx[colTotal]

	var records []model.EnrollmentRecord
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		year, err := parseCount(fields[idx[colYear]], colYear, row)
		if err != nil {
			return nil, err
		}
		female, err := parseCount(fields[idx[colFemale]], colFemale, row)
		if err != nil {
			return nil, err
		}
		male, err := parseCount(fields[idx[colMale]], colMale, row)
		if err != nil {
			return nil, err
		}

		total := female + male
		if hasTotal {
			total, err = parseCount(fields[totalIdx], colTotal, row)
			if err != nil {
				return nil, err
			}
		}

		records = append(records, model.EnrollmentRecord{
			Degree: strings.TrimSpace(fields[idx[colDegree]]),
			Year:   year,
			Female: female,
			Male:   male,
			Total:  total,
		})
	}

	return &EnrollmentRepository{records: records}, nil
}

func NewEnrollmentRepository(records []model.EnrollmentRecord) *EnrollmentRepository {
	return &EnrollmentRepository{records: records}
}

func parseCount(raw, column string, row int) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &util.ParseError{
			Dataset: enrollmentDataset,
			Column:  column,
			Row:     row,
			Value:   trimmed,
			Err:     err,
		}
	}
	return n, nil
}

func (r *EnrollmentRepository) Len() int {
	return len(r.records)
}

// Degrees returns the unique degree names in first-seen order, for the
// degree selector.
func (r *EnrollmentRepository) Degrees() []string {
	seen := make(map[string]struct{})
	var degrees []string
	for _, rec := range r.records {
		if _, ok := seen[rec.Degree]; ok {
			continue
		}
		seen[rec.Degree] = struct{}{}
		degrees = append(degrees, rec.Degree)
	}
	return degrees
}

// GenderBreakdown returns the per-year Female/Male counts for one degree,
// sorted by year. A degree with no rows yields nil.
func (r *EnrollmentRepository) GenderBreakdown(degree string) []model.YearGenderCount {
	var out []model.YearGenderCount
	for _, rec := range r.records {
		if rec.Degree != degree {
			continue
		}
		out = append(out, model.YearGenderCount{
			Year:   rec.Year,
			Female: rec.Female,
			Male:   rec.Male,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Trends returns one year/total series per degree, degrees in first-seen
// order, points sorted by year.
func (r *EnrollmentRepository) Trends() []model.DegreeTrend {
	byDegree := make(map[string][]model.YearCount)
	for _, rec := range r.records {
		byDegree[rec.Degree] = append(byDegree[rec.Degree], model.YearCount{
			Year:  rec.Year,
			Total: rec.Total,
		})
	}

	var trends []model.DegreeTrend
	for _, degree := range r.Degrees() {
		points := byDegree[degree]
		sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
		trends = append(trends, model.DegreeTrend{Degree: degree, Points: points})
	}
	return trends
}
