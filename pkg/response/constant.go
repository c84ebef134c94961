package response

// Messages and codes shared by all handlers.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong, please try again later"

	InternalServerErrorCode = 500
)

// DateTimeFormat is the layout used by the DateTime marshaler.
const DateTimeFormat = "2006-01-02 15:04:05"
