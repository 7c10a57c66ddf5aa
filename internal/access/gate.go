package access

// DefaultLimit is the lifetime request ceiling applied by AuthAndThrottle.
const DefaultLimit = 5

// CheckFunc is a gate variant: it turns a presented key into a credential
// or returns the first access error encountered.
type CheckFunc func(presented string) (Credential, error)

// Gate composes a Validator and a Throttler.
type Gate struct {
	validator *Validator
	throttler *Throttler
	limit     int
}

func NewGate(validator *Validator, throttler *Throttler, limit int) *Gate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Gate{validator: validator, throttler: throttler, limit: limit}
}

// NewDefaultGate wires the built-in key and limit.
func NewDefaultGate() *Gate {
	return NewGate(NewValidator(DefaultAPIKey), NewThrottler(), DefaultLimit)
}

// AuthOnly validates the key without touching the request counter.
func (g *Gate) AuthOnly(presented string) (Credential, error) {
	return g.validator.Validate(presented)
}

// AuthAndThrottle validates first; only a valid key is counted.
func (g *Gate) AuthAndThrottle(presented string) (Credential, error) {
	cred, _, err := g.Admit(presented)
	return cred, err
}

// Admit is AuthAndThrottle that also reports how many admissions the key
// has left after this request, never negative.
func (g *Gate) Admit(presented string) (Credential, int, error) {
	cred, err := g.validator.Validate(presented)
	if err != nil {
		return "", 0, err
	}

	n, err := g.throttler.Admit(cred, g.limit)
	remaining := max(g.limit-n, 0)
	if err != nil {
		return "", remaining, err
	}
	return cred, remaining, nil
}

func (g *Gate) Limit() int { return g.limit }
