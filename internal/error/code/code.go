package code

// HTTP status codes used by the error-code tables.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing or invalid credentials.
	StatusUnauthorized = 401
	// StatusForbidden - 403: access denied.
	StatusForbidden = 403
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid, malformed or expired token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
	// ErrInvalidID - 400: id path parameter is not a well-formed identifier.
	ErrInvalidID
)

// Admin error codes (101xxx).
const (
	// ErrAdminNotFound - 404: admin does not exist.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 400: admin email is already registered.
	ErrAdminAlreadyExist
	// ErrAdminPasswordIncorrect - 401: wrong email or password.
	ErrAdminPasswordIncorrect
	// ErrEmptyUpdate - 400: update payload carries no fields.
	ErrEmptyUpdate
)

// Inquiry error codes (102xxx).
const (
	// ErrInquiryNotFound - 404: inquiry does not exist.
	ErrInquiryNotFound int = iota + 102000
	// ErrInquiryNoEmail - 400: inquiry has no associated email address.
	ErrInquiryNoEmail
	// ErrMailDelivery - 500: reply email was rejected by the mail relay.
	ErrMailDelivery
)

// FAQ error codes (103xxx).
const (
	// ErrFAQNotFound - 404: FAQ does not exist.
	ErrFAQNotFound int = iota + 103000
)

// Latest-work error codes (104xxx).
const (
	// ErrWorkNotFound - 404: work does not exist.
	ErrWorkNotFound int = iota + 104000
)

// Job error codes (105xxx).
const (
	// ErrJobListingNotFound - 404: job listing does not exist.
	ErrJobListingNotFound int = iota + 105000
	// ErrApplicationNotFound - 404: job application does not exist.
	ErrApplicationNotFound
	// ErrInvalidStatus - 400: application status outside approved/rejected.
	ErrInvalidStatus
	// ErrStatusFinal - 400: application status has already been decided.
	ErrStatusFinal
)

// Database error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
