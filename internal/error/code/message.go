package code

// Error-code to message mapping.
var codeMessageMap = map[int]string{
	// Generic
	ErrSuccess:      "Success",
	ErrUnknown:      "Internal server error",
	ErrBind:         "Invalid request body",
	ErrValidation:   "Request validation failed",
	ErrTokenInvalid:    "Invalid or expired token",
	ErrTooManyRequests: "Too many requests",
	ErrInvalidID:       "Invalid ID format",

	// Admin
	ErrAdminNotFound:          "Admin not found",
	ErrAdminAlreadyExist:      "Admin with this email already exists",
	ErrAdminPasswordIncorrect: "Invalid email or password",
	ErrEmptyUpdate:            "No update data provided",

	// Inquiry
	ErrInquiryNotFound: "Inquiry not found",
	ErrInquiryNoEmail:  "Inquiry has no associated email",
	ErrMailDelivery:    "Failed to send reply",

	// FAQ
	ErrFAQNotFound: "FAQ not found",

	// Latest work
	ErrWorkNotFound: "Work not found",

	// Jobs
	ErrJobListingNotFound:  "Job listing not found",
	ErrApplicationNotFound: "Application not found",
	ErrInvalidStatus:       "Invalid status",
	ErrStatusFinal:         "Application status has already been decided",

	// Database
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// Error-code to HTTP status mapping.
var codeStatusMap = map[int]int{
	// Generic
	ErrSuccess:      StatusOK,
	ErrUnknown:      StatusInternalServerError,
	ErrBind:         StatusBadRequest,
	ErrValidation:   StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrInvalidID:       StatusBadRequest,

	// Admin. Duplicate email is a conflict in the taxonomy but the public
	// contract pins it to 400.
	ErrAdminNotFound:          StatusNotFound,
	ErrAdminAlreadyExist:      StatusBadRequest,
	ErrAdminPasswordIncorrect: StatusUnauthorized,
	ErrEmptyUpdate:            StatusBadRequest,

	// Inquiry
	ErrInquiryNotFound: StatusNotFound,
	ErrInquiryNoEmail:  StatusBadRequest,
	ErrMailDelivery:    StatusInternalServerError,

	// FAQ
	ErrFAQNotFound: StatusNotFound,

	// Latest work
	ErrWorkNotFound: StatusNotFound,

	// Jobs
	ErrJobListingNotFound:  StatusNotFound,
	ErrApplicationNotFound: StatusNotFound,
	ErrInvalidStatus:       StatusBadRequest,
	ErrStatusFinal:         StatusBadRequest,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message registered for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus returns the HTTP status registered for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
