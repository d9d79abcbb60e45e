package booking

// Role of an authenticated actor, supplied by the identity layer. The engine
// trusts it and performs no credential checks of its own.
type Role string

const (
	RoleRenter   Role = "renter"
	RoleOperator Role = "operator"
	RolePayment  Role = "payment"
)

// allowedTargets maps each role to the transition targets it may request.
// Renters may additionally only act on their own reservations; the
// coordinator enforces ownership.
var allowedTargets = map[Role]map[Status]bool{
	RoleOperator: {
		StatusAccepted:  true,
		StatusRefused:   true,
		StatusCancelled: true,
		StatusCompleted: true,
		StatusFailed:    true,
		StatusRefunded:  true,
	},
	RoleRenter: {
		StatusCancelled: true,
	},
	RolePayment: {
		StatusRefunded: true,
	},
}

// Authorize checks whether the role may request a transition to target.
func Authorize(role Role, target Status) error {
	if allowedTargets[role][target] {
		return nil
	}
	return ErrUnauthorized
}
