package common

type HrContextKey string

const (
	ContextLogger     HrContextKey = "hr.logger"
	ContextAction     HrContextKey = "hr.action"
	ContextRequestId  HrContextKey = "hr.request_id"
	ContextStatusCode HrContextKey = "hr.status_code"
	ContextStartTime  HrContextKey = "hr.start_time"
)
