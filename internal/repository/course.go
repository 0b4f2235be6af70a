package repository

import (
	"database/sql"
	"errors"

	"schoolbackend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type CourseRepository interface {
	Create(course *models.Course) error
	GetByID(id int64) (*models.Course, error)
	GetAll() ([]*models.Course, error)
	Update(course *models.Course) (bool, error)
	Delete(id int64) (bool, error)
}

type courseRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCourseRepository(db *sqlx.DB, logger *zap.Logger) CourseRepository {
	return &courseRepository{db: db, logger: logger}
}

func (r *courseRepository) Create(course *models.Course) error {
	query := `INSERT INTO courses (title, description, credits, instructor, department, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowx(query, course.Title, course.Description, course.Credits, course.Instructor,
		course.Department, course.StartDate, course.EndDate).Scan(&course.ID)
}

func (r *courseRepository) GetByID(id int64) (*models.Course, error) {
	var course models.Course
	query := `SELECT id, title, description, credits, instructor, department, start_date, end_date FROM courses WHERE id = $1`
	err := r.db.Get(&course, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetAll() ([]*models.Course, error) {
	courses := []*models.Course{}
	query := `SELECT id, title, description, credits, instructor, department, start_date, end_date FROM courses ORDER BY id`
	err := r.db.Select(&courses, query)
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Update(course *models.Course) (bool, error) {
	query := `UPDATE courses SET title = $2, description = $3, credits = $4, instructor = $5, department = $6, start_date = $7, end_date = $8 WHERE id = $1`
	res, err := r.db.Exec(query, course.ID, course.Title, course.Description, course.Credits,
		course.Instructor, course.Department, course.StartDate, course.EndDate)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *courseRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
