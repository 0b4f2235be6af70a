package models

// Student mirrors the students table. Dates are stored as-is in text form,
// the way the upstream clients submit them.
type Student struct {
	ID             string `db:"id" json:"id"`
	FirstName      string `db:"first_name" json:"firstName"`
	LastName       string `db:"last_name" json:"lastName"`
	DateOfBirth    string `db:"date_of_birth" json:"dateOfBirth"`
	Email          string `db:"email" json:"email"`
	PhoneNumber    string `db:"phone_number" json:"phoneNumber"`
	Address        string `db:"address" json:"address"`
	EnrollmentDate string `db:"enrollment_date" json:"enrollmentDate"`
	GPA            string `db:"gpa" json:"gpa"`
}
