package response

// Shared response messages and error codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 1
	NotFoundErrorCode        = 404
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500
)

// Wire formats for Date and DateTime.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
