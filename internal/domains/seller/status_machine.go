package seller

// allowedTransitions is the whitelist of lifecycle moves. A status maps
// to the set of statuses a seller may move to next; terminated maps to
// nothing and is terminal. Self-transitions are never allowed - every
// accepted transition writes an audit record, so an idempotent re-submit
// must be rejected rather than silently absorbed.
var allowedTransitions = map[ShopStatus][]ShopStatus{
	ShopStatusPending:     {ShopStatusActive},
	ShopStatusActive:      {ShopStatusTerminating, ShopStatusSuspended},
	ShopStatusTerminated:  {},
	ShopStatusTerminating: {ShopStatusActive, ShopStatusSuspended, ShopStatusTerminated},
	ShopStatusSuspended:   {ShopStatusActive, ShopStatusTerminating},
}

// ValidateTransition checks a requested lifecycle move.
// Returns ErrUnknownShopStatus when the requested id is outside the
// closed status set, ErrInvalidTransition when the move is not
// whitelisted for the current status.
func ValidateTransition(current, requested ShopStatus) error {
	if !requested.IsKnown() {
		return ErrUnknownShopStatus
	}

	for _, next := range allowedTransitions[current] {
		if next == requested {
			return nil
		}
	}

	return ErrInvalidTransition
}
