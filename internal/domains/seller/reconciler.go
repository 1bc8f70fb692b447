package seller

// MaxManagers is the hard cap on account managers per seller.
const MaxManagers = 3

// ManagerPayload is the manager data supplied by an update request.
type ManagerPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ManagerOpKind tags a planned manager mutation.
type ManagerOpKind int

const (
	ManagerOpUpdate ManagerOpKind = iota
	ManagerOpCreate
	ManagerOpDelete
)

func (k ManagerOpKind) String() string {
	switch k {
	case ManagerOpUpdate:
		return "update"
	case ManagerOpCreate:
		return "create"
	case ManagerOpDelete:
		return "delete"
	}
	return "unknown"
}

// ManagerOp is one step of a reconciliation plan. Payload is zero for
// deletes.
type ManagerOp struct {
	Kind     ManagerOpKind
	Ordering int
	Payload  ManagerPayload
}

// PlanManagerOps diffs the existing ranked manager list (known only by
// its count) against the requested one and returns the mutations that
// turn the former into the latter.
//
// The diff is positional, not identity-based: the op kind depends only
// on relative cardinality. Retained ordering slots 1..min(existing,
// requested) become updates re-ranked from the request, and the
// cardinality difference becomes trailing creates or deletes. The
// resulting orderings are always exactly 1..len(requested).
//
// PlanManagerOps is pure; the caller applies the plan transactionally,
// in the emitted order.
func PlanManagerOps(existingCount int, requested []ManagerPayload) ([]ManagerOp, error) {
	if len(requested) > MaxManagers {
		return nil, ErrTooManyManagers
	}

	requestedCount := len(requested)

	// No managers yet: everything requested is a create.
	if existingCount == 0 {
		ops := make([]ManagerOp, 0, requestedCount)
		for i, payload := range requested {
			ops = append(ops, ManagerOp{Kind: ManagerOpCreate, Ordering: i + 1, Payload: payload})
		}
		return ops, nil
	}

	// Managers exist but none requested: full teardown.
	if requestedCount == 0 {
		ops := make([]ManagerOp, 0, existingCount)
		for ordering := 1; ordering <= existingCount; ordering++ {
			ops = append(ops, ManagerOp{Kind: ManagerOpDelete, Ordering: ordering})
		}
		return ops, nil
	}

	ops := make([]ManagerOp, 0, max(existingCount, requestedCount))

	retained := min(existingCount, requestedCount)
	for i := 0; i < retained; i++ {
		ops = append(ops, ManagerOp{Kind: ManagerOpUpdate, Ordering: i + 1, Payload: requested[i]})
	}

	// Surplus trailing rows go away; deletes come after the re-rank of
	// retained rows because orderings double as primary keys.
	for ordering := retained + 1; ordering <= existingCount; ordering++ {
		ops = append(ops, ManagerOp{Kind: ManagerOpDelete, Ordering: ordering})
	}

	// Extra requested entries continue the ordering sequence.
	for i := retained; i < requestedCount; i++ {
		ops = append(ops, ManagerOp{Kind: ManagerOpCreate, Ordering: i + 1, Payload: requested[i]})
	}

	return ops, nil
}
