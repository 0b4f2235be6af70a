package repository

import (
	"database/sql"
	"errors"

	"schoolbackend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type StudentRepository interface {
	Create(student *models.Student) error
	GetByID(id string) (*models.Student, error)
	GetAll() ([]*models.Student, error)
	Update(student *models.Student) (bool, error)
	Delete(id string) (bool, error)
}

type studentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStudentRepository(db *sqlx.DB, logger *zap.Logger) StudentRepository {
	return &studentRepository{db: db, logger: logger}
}

func (r *studentRepository) Create(student *models.Student) error {
	query := `INSERT INTO students (id, first_name, last_name, date_of_birth, email, phone_number, address, enrollment_date, gpa)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(query, student.ID, student.FirstName, student.LastName, student.DateOfBirth,
		student.Email, student.PhoneNumber, student.Address, student.EnrollmentDate, student.GPA)
	return err
}

func (r *studentRepository) GetByID(id string) (*models.Student, error) {
	var student models.Student
	query := `SELECT id, first_name, last_name, date_of_birth, email, phone_number, address, enrollment_date, gpa FROM students WHERE id = $1`
	err := r.db.Get(&student, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) GetAll() ([]*models.Student, error) {
	students := []*models.Student{}
	query := `SELECT id, first_name, last_name, date_of_birth, email, phone_number, address, enrollment_date, gpa FROM students ORDER BY id`
	err := r.db.Select(&students, query)
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Update(student *models.Student) (bool, error) {
	query := `UPDATE students SET first_name = $2, last_name = $3, date_of_birth = $4, email = $5, phone_number = $6, address = $7, enrollment_date = $8, gpa = $9 WHERE id = $1`
	res, err := r.db.Exec(query, student.ID, student.FirstName, student.LastName, student.DateOfBirth,
		student.Email, student.PhoneNumber, student.Address, student.EnrollmentDate, student.GPA)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *studentRepository) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
