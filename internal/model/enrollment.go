package model

// EnrollmentRecord is one row of the enrollment time series: how many
// students were enrolled in a degree in a given year, split by gender.
type EnrollmentRecord struct {
	Degree string `json:"degree"`
	Year   int    `json:"year"`
	Female int    `json:"female"`
	Male   int    `json:"male"`
	Total  int    `json:"total"`
}

// YearGenderCount is one bar group of the gender breakdown chart.
type YearGenderCount struct {
	Year   int `json:"year"`
	Female int `json:"female"`
	Male   int `json:"male"`
}

// YearCount is one point of an enrollment trend line.
type YearCount struct {
	Year  int `json:"year"`
	Total int `json:"total"`
}

// DegreeTrend is the per-degree series behind the trends line chart.
// swagger:model DegreeTrend
type DegreeTrend struct {
	Degree string      `json:"degree"`
	Points []YearCount `json:"points"`
}
