package session

// User-facing strings shown by the login form. Scenario tests assert the
// exact wording, so these are kept verbatim from the product copy.
const (
	MsgUsernameRequired = "Username tidak boleh kosong"
	MsgPasswordRequired = "Password tidak boleh kosong"
	MsgPasswordTooShort = "Password minimal 4 karakter"
	MsgLoginFailed      = "Login gagal. Periksa kembali username dan password."
)

// minPasswordLen is enforced client-side before any network call.
const minPasswordLen = 4

// ValidationError is a field-level rejection raised before a request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateCredentials checks the login form input. The first failing rule
// wins: empty username, empty password, then minimum password length.
func ValidateCredentials(username, password string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: MsgUsernameRequired}
	}
	if password == "" {
		return &ValidationError{Field: "password", Message: MsgPasswordRequired}
	}
	if len(password) < minPasswordLen {
		return &ValidationError{Field: "password", Message: MsgPasswordTooShort}
	}
	return nil
}
