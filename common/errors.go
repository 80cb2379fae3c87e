package common

import (
	"errors"
)

var ErrImageNotFound = errors.New("image not found")
var ErrImageDecode = errors.New("image could not be decoded")
var ErrStoreUnavailable = errors.New("image store unavailable")
var ErrHotelNotFound = errors.New("hotel not found")
var ErrInvalidName = errors.New("name must not be empty")
var ErrUnsupportedFileVersion = errors.New("only version 1 is supported")
