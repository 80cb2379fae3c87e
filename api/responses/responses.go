package responses

import (
	"io"

	"github.com/littletreasures/hotel-media-repo/common"
)

type EmptyResponse struct{}

// StatusResponse is written as a bare status code without a body.
type StatusResponse struct {
	StatusCode int
}

type DoNotCacheResponse struct {
	Payload interface{}
}

type DownloadResponse struct {
	ContentType       string
	Filename          string
	SizeBytes         int64
	Data              io.ReadCloser
	TargetDisposition string
}

type ErrorResponse struct {
	Code         string `json:"errcode"`
	Message      string `json:"error"`
	InternalCode string `json:"hr_errcode"`
}

func InternalServerError(message string) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeUnknown, message, common.ErrCodeUnknown}
}

func MethodNotAllowed() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeUnknown, "Method Not Allowed", common.ErrCodeMethodNotAllowed}
}

func NotFoundError() *ErrorResponse {
	return &ErrorResponse{common.ErrCodeNotFound, "Not found", common.ErrCodeNotFound}
}

func BadRequest(message string) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeUnknown, message, common.ErrCodeBadRequest}
}

func ServiceUnavailable(message string) *ErrorResponse {
	return &ErrorResponse{common.ErrCodeUnavailable, message, common.ErrCodeUnavailable}
}
