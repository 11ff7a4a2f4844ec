package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidURL          failure.ErrorCode = "InvalidURL"

	// Deal retrieval and normalization.
	NetworkFailure       failure.ErrorCode = "NetworkFailure"       // transport error or non-2xx status
	ParseFailure         failure.ErrorCode = "ParseFailure"         // body is not a deal array
	NumericFormatFailure failure.ErrorCode = "NumericFormatFailure" // price field is not a decimal
	InvalidDealID        failure.ErrorCode = "InvalidDealID"
)
