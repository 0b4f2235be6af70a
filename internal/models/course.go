package models

type Course struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Credits     int    `db:"credits" json:"credits"`
	Instructor  string `db:"instructor" json:"instructor"`
	Department  string `db:"department" json:"department"`
	StartDate   string `db:"start_date" json:"startDate"`
	EndDate     string `db:"end_date" json:"endDate"`
}
