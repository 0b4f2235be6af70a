package handler

import (
	"net/http"

	"schoolbackend/internal/models"
	"schoolbackend/internal/notify"
	"schoolbackend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StudentHandler interface {
	CreateStudent(c *gin.Context)
	GetStudents(c *gin.Context)
	GetStudent(c *gin.Context)
	UpdateStudent(c *gin.Context)
	DeleteStudent(c *gin.Context)
}

type studentHandler struct {
	studentRepo repository.StudentRepository
	broadcaster notify.Broadcaster
	logger      *zap.Logger
}

func NewStudentHandler(studentRepo repository.StudentRepository, broadcaster notify.Broadcaster, logger *zap.Logger) StudentHandler {
	return &studentHandler{studentRepo: studentRepo, broadcaster: broadcaster, logger: logger}
}

type StudentRequest struct {
	FirstName      string `json:"firstName" binding:"required,plain"`
	LastName       string `json:"lastName" binding:"required,plain"`
	DateOfBirth    string `json:"dateOfBirth" binding:"plain"`
	Email          string `json:"email" binding:"required,email"`
	PhoneNumber    string `json:"phoneNumber" binding:"plain"`
	Address        string `json:"address" binding:"plain"`
	EnrollmentDate string `json:"enrollmentDate" binding:"plain"`
	GPA            string `json:"gpa" binding:"plain"`
}

// CreateStudent handles POST /api/Students/CreateStudent. The student id is
// the email address.
func (h *studentHandler) CreateStudent(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind student request", zap.Error(err))
		c.JSON(http.StatusBadRequest, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Invalid student request"})
		return
	}

	student := &models.Student{
		ID:             req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		EnrollmentDate: req.EnrollmentDate,
		GPA:            req.GPA,
	}

	if err := h.studentRepo.Create(student); err != nil {
		h.logger.Error("Failed to create student", zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}

	h.broadcaster.Broadcast("studentCreated", student)
	c.JSON(http.StatusCreated, BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Student Created Successfully"})
}

// GetStudents handles GET /api/Students.
func (h *studentHandler) GetStudents(c *gin.Context) {
	students, err := h.studentRepo.GetAll()
	if err != nil {
		h.logger.Error("Failed to retrieve students", zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}

	c.JSON(http.StatusOK, StudentListResponse{
		StudentInfo:  students,
		BaseResponse: BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Successful Fetch"},
	})
}

// GetStudent handles GET /api/Students/:studentId.
func (h *studentHandler) GetStudent(c *gin.Context) {
	studentID := c.Param("studentId")

	student, err := h.studentRepo.GetByID(studentID)
	if err != nil {
		h.logger.Error("Failed to retrieve student", zap.String("studentId", studentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}
	if student == nil {
		c.JSON(http.StatusNotFound, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Student not found"})
		return
	}

	c.JSON(http.StatusOK, student)
}

// UpdateStudent handles PUT /api/Students/:studentId.
func (h *studentHandler) UpdateStudent(c *gin.Context) {
	studentID := c.Param("studentId")

	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind student request", zap.Error(err))
		c.JSON(http.StatusBadRequest, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Invalid student request"})
		return
	}

	student := &models.Student{
		ID:             studentID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		EnrollmentDate: req.EnrollmentDate,
		GPA:            req.GPA,
	}

	updated, err := h.studentRepo.Update(student)
	if err != nil {
		h.logger.Error("Failed to update student", zap.String("studentId", studentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Student not found"})
		return
	}

	h.broadcaster.Broadcast("studentUpdated", student)
	c.JSON(http.StatusOK, BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Student Updated Successfully"})
}

// DeleteStudent handles DELETE /api/Students/:studentId.
func (h *studentHandler) DeleteStudent(c *gin.Context) {
	studentID := c.Param("studentId")

	deleted, err := h.studentRepo.Delete(studentID)
	if err != nil {
		h.logger.Error("Failed to delete student", zap.String("studentId", studentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Student not found"})
		return
	}

	h.broadcaster.Broadcast("studentDeleted", gin.H{"id": studentID})
	c.JSON(http.StatusOK, BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Student Deleted Successfully"})
}
