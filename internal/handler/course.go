package handler

import (
	"net/http"
	"strconv"

	"schoolbackend/internal/models"
	"schoolbackend/internal/notify"
	"schoolbackend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CourseHandler interface {
	CreateCourse(c *gin.Context)
	GetCourses(c *gin.Context)
	GetCourse(c *gin.Context)
	UpdateCourse(c *gin.Context)
	DeleteCourse(c *gin.Context)
}

type courseHandler struct {
	courseRepo  repository.CourseRepository
	broadcaster notify.Broadcaster
	logger      *zap.Logger
}

func NewCourseHandler(courseRepo repository.CourseRepository, broadcaster notify.Broadcaster, logger *zap.Logger) CourseHandler {
	return &courseHandler{courseRepo: courseRepo, broadcaster: broadcaster, logger: logger}
}

type CourseRequest struct {
	Title       string `json:"title" binding:"required,plain"`
	Description string `json:"description" binding:"plain"`
	Credits     int    `json:"credits" binding:"required"`
	Instructor  string `json:"instructor" binding:"plain"`
	Department  string `json:"department" binding:"plain"`
	StartDate   string `json:"startDate" binding:"plain"`
	EndDate     string `json:"endDate" binding:"plain"`
}

func (h *courseHandler) parseCourseID(c *gin.Context) (int64, bool) {
	idStr := c.Param("courseId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("Invalid course ID", zap.String("courseId", idStr))
		c.JSON(http.StatusBadRequest, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Invalid course ID"})
		return 0, false
	}
	return id, true
}

// CreateCourse handles POST /api/Courses/CreateCourse.
func (h *courseHandler) CreateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind course request", zap.Error(err))
		c.JSON(http.StatusBadRequest, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Invalid course request"})
		return
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Credits:     req.Credits,
		Instructor:  req.Instructor,
		Department:  req.Department,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := h.courseRepo.Create(course); err != nil {
		h.logger.Error("Failed to create course", zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}

	h.broadcaster.Broadcast("courseCreated", course)
	c.JSON(http.StatusCreated, BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Course Created Successfully"})
}

// GetCourses handles GET /api/Courses.
func (h *courseHandler) GetCourses(c *gin.Context) {
	courses, err := h.courseRepo.GetAll()
	if err != nil {
		h.logger.Error("Failed to retrieve courses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}

	c.JSON(http.StatusOK, CourseListResponse{
		Courses:      courses,
		BaseResponse: BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Successful Fetch"},
	})
}

// GetCourse handles GET /api/Courses/:courseId.
func (h *courseHandler) GetCourse(c *gin.Context) {
	id, ok := h.parseCourseID(c)
	if !ok {
		return
	}

	course, err := h.courseRepo.GetByID(id)
	if err != nil {
		h.logger.Error("Failed to retrieve course", zap.Int64("courseId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Course not found"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// UpdateCourse handles PUT /api/Courses/:courseId.
func (h *courseHandler) UpdateCourse(c *gin.Context) {
	id, ok := h.parseCourseID(c)
	if !ok {
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind course request", zap.Error(err))
		c.JSON(http.StatusBadRequest, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Invalid course request"})
		return
	}

	course := &models.Course{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Credits:     req.Credits,
		Instructor:  req.Instructor,
		Department:  req.Department,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	updated, err := h.courseRepo.Update(course)
	if err != nil {
		h.logger.Error("Failed to update course", zap.Int64("courseId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Course not found"})
		return
	}

	h.broadcaster.Broadcast("courseUpdated", course)
	c.JSON(http.StatusOK, BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Course Updated Successfully"})
}

// DeleteCourse handles DELETE /api/Courses/:courseId.
func (h *courseHandler) DeleteCourse(c *gin.Context) {
	id, ok := h.parseCourseID(c)
	if !ok {
		return
	}

	deleted, err := h.courseRepo.Delete(id)
	if err != nil {
		h.logger.Error("Failed to delete course", zap.Int64("courseId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, BaseResponse{ResponseCode: CodeServerError, ResponseMessage: "An error occurred, please try again"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, BaseResponse{ResponseCode: CodeFailure, ResponseMessage: "Course not found"})
		return
	}

	h.broadcaster.Broadcast("courseDeleted", gin.H{"id": id})
	c.JSON(http.StatusOK, BaseResponse{ResponseCode: CodeSuccess, ResponseMessage: "Course Deleted Successfully"})
}
