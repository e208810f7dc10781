package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Dataset loading.
	DatasetUnavailable failure.ErrorCode = "DatasetUnavailable"
	DatasetMalformed   failure.ErrorCode = "DatasetMalformed"
)
