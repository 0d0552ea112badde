package constant

const (
	INVALID_REQUEST     = "Invalid request payload"
	INVALID_TOKEN       = "Invalid or expired token"
	UNAUTHORIZED_ACCESS = "unauthorized access"

	VERIFICATION_SENT    = "Verification email sent"
	VERIFICATION_FAILED  = "Failed to send verification email"
	VERIFICATION_SUBJECT = "Verify your email"
	EMAIL_VERIFIED       = "Email verified successfully"
	VERIFY_FAILED        = "Failed to verify email"
)
