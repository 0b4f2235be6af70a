package handler

import "schoolbackend/internal/models"

// Response codes carried in every business response body. The numeric gate
// rejection code is separate (see middleware.GateResponse).
const (
	CodeSuccess     = "00"
	CodeFailure     = "01"
	CodeServerError = "06"
)

// BaseResponse is the envelope every endpoint returns.
type BaseResponse struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

// LoginResponse adds the issued token on successful login.
type LoginResponse struct {
	Token string `json:"token"`
	BaseResponse
}

type StudentListResponse struct {
	StudentInfo []*models.Student `json:"studentInfo"`
	BaseResponse
}

type CourseListResponse struct {
	Courses []*models.Course `json:"courses"`
	BaseResponse
}
