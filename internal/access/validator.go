package access

// Credential is a presented API key that passed validation. It doubles as
// the throttling key, so only valid keys ever reach the Throttler.
type Credential string

// DefaultAPIKey is the single key accepted by the API.
const DefaultAPIKey = "SECRET_KEY_123"

// Validator checks a presented key against one known value.
type Validator struct {
	valid string
}

func NewValidator(valid string) *Validator {
	return &Validator{valid: valid}
}

// Validate returns the credential when presented matches exactly.
// An empty presented value means the header was absent.
func (v *Validator) Validate(presented string) (Credential, error) {
	if presented == "" || presented != v.valid {
		return "", ErrUnauthorized
	}
	return Credential(presented), nil
}
