package common

const ErrCodeNotFound = "HR_NOT_FOUND"
const ErrCodeMethodNotAllowed = "HR_METHOD_NOT_ALLOWED"
const ErrCodeBadRequest = "HR_BAD_REQUEST"
const ErrCodeUnavailable = "HR_UNAVAILABLE"
const ErrCodeUnknown = "HR_UNKNOWN"
