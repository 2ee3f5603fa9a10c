package repo

// ListFilter carries the search term, pagination and sort parameters
// shared by the listing endpoints. Page and Limit are 1-based; Search is
// matched case-insensitively as a substring against each repository's
// fixed set of text columns.
type ListFilter struct {
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// Offset translates the 1-based page into a row offset.
func (f ListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}

// Period selects the grouping granularity of a sales report.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// PeriodTotal is one report group: the period label plus the summed
// quantity and revenue of the sales falling into it.
type PeriodTotal struct {
	Period        string  `json:"period"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}
