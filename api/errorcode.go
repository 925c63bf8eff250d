package api

import "github.com/smart-waste/finder-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmptyAddress.Error(),
	}

	errorInternalServer     = errorJSON(999)
	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmptyAddress = errorJSON(1100)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorValidation carries the schema validation failure back to the client
func errorValidation(err error) ErrorResponse {
	return ErrorResponse{
		Code:    1020,
		Message: err.Error(),
	}
}

// errorInsertFailed reports a rejected insert with the database error string
func errorInsertFailed(err error) ErrorResponse {
	return ErrorResponse{
		Code:    1110,
		Message: err.Error(),
	}
}
