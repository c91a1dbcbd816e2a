package repository

import (
	"encoding/csv"
	"io"
	"strings"

	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/util"

	"github.com/shopspring/decimal"
)

// Catalog dataset column names. The upstream CSV schema is the compatibility
// contract; do not rename.
const (
	catalogDataset = "catalog"
	colDegreeName  = "University Degree"
	colCategory    = "Category"
	colSkills      = "Skills"
	colMinGrade    = "Min Grade"
)

// CatalogRepository holds the program catalog, loaded once and read-only for
// the lifetime of the process.
type CatalogRepository struct {
	records []model.ProgramRecord
}

// LoadCatalog parses the catalog CSV into an immutable repository. A missing
// required column is a SchemaError, an unparseable grade a ParseError; either
// way no partial catalog is returned.
func LoadCatalog(r io.Reader, encoding string) (*CatalogRepository, error) {
	reader := csv.NewReader(DatasetReader(r, encoding))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &util.SchemaError{Dataset: catalogDataset, Column: colDegreeName}
	}
	idx := headerIndex(header)
	for _, col := range []string{colDegreeName, colCategory, colSkills, colMinGrade} {
		if _, ok := idx[col]; !ok {
			return nil, &util.SchemaError{Dataset: catalogDataset, Column: col}
		}
	}

	var records []model.ProgramRecord
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

		rawGrade := strings.TrimSpace(fields[idx[colMinGrade]])
		minGrade, err := decimal.NewFromString(rawGrade)
		if err != nil {
			return nil, &util.ParseError{
				Dataset: catalogDataset,
				Column:  colMinGrade,
				Row:     row,
				Value:   rawGrade,
				Err:     err,
			}
		}

		records = append(records, model.ProgramRecord{
			DegreeName: strings.TrimSpace(fields[idx[colDegreeName]]),
			Category:   strings.TrimSpace(fields[idx[colCategory]]),
			Skills:     model.SplitTokens(fields[idx[colSkills]]),
			MinGrade:   minGrade,
		})
	}

	return &CatalogRepository{records: records}, nil
}

// NewCatalogRepository builds a repository from already-parsed records.
func NewCatalogRepository(records []model.ProgramRecord) *CatalogRepository {
	return &CatalogRepository{records: records}
}

// Records returns the catalog in load order. Callers must not mutate it.
func (r *CatalogRepository) Records() []model.ProgramRecord {
	return r.records
}

func (r *CatalogRepository) Len() int {
	return len(r.records)
}

// DistinctCategories returns every category present, deduplicated, in
// first-seen order. Feeds the category selector.
func (r *CatalogRepository) DistinctCategories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, rec := range r.records {
		for _, cat := range rec.Categories() {
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			categories = append(categories, cat)
		}
	}
	return categories
}

// SkillsForCategories returns the union of required skills over every record
// belonging to one of the given categories, in first-seen order. An empty
// category selection yields an empty result: the skill vocabulary is derived
// from the category selection.
func (r *CatalogRepository) SkillsForCategories(categories []string) []string {
	if len(categories) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		wanted[strings.TrimSpace(c)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var skills []string
	for _, rec := range r.records {
		if !categoryMatch(rec, wanted) {
			continue
		}
		for _, skill := range rec.Skills {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			skills = append(skills, skill)
		}
	}
	return skills
}

func categoryMatch(rec model.ProgramRecord, wanted map[string]struct{}) bool {
	for _, cat := range rec.Categories() {
		if _, ok := wanted[cat]; ok {
			return true
		}
	}
	return false
}
