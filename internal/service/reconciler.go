package service

import "github.com/truenamepath/truenamepath/models"

// ReconcilePlan is the outcome of diffing a submitted target state against
// the current assignment rows. The four buckets partition the submitted
// list exactly: every submitted change lands in exactly one of them, so
// len(ToCreate)+len(ToUpdate)+len(ToDelete)+len(Unchanged) equals the input
// length.
type ReconcilePlan struct {
	// ToCreate — slots with no current binding that received a name.
	ToCreate []models.AssignmentChange

	// ToUpdate — slots whose current binding points at a different name.
	ToUpdate []models.AssignmentChange

	// ToDelete — currently bound slots submitted with a nil name.
	ToDelete []models.AssignmentChange

	// Unchanged — no-ops: the slot already matches the target, including
	// nil-name submissions against slots that hold no binding.
	Unchanged []models.AssignmentChange
}

// Total returns the number of classified changes across all four buckets.
func (p ReconcilePlan) Total() int {
	return len(p.ToCreate) + len(p.ToUpdate) + len(p.ToDelete) + len(p.Unchanged)
}

// Writes returns how many changes require a storage operation.
func (p ReconcilePlan) Writes() int {
	return len(p.ToCreate) + len(p.ToUpdate) + len(p.ToDelete)
}

// reconcile diffs submitted target state against the current bindings,
// keyed by (context, property) slot. It performs a purely in-memory
// comparison; no storage layer or logger is required because the operation
// is stateless and produces no side effects.
//
// Classification per submitted change:
//   - nil NameID, slot bound       → ToDelete
//   - nil NameID, slot unbound     → Unchanged (deleting the absent is a no-op)
//   - NameID equals current        → Unchanged
//   - slot unbound                 → ToCreate
//   - slot bound to different name → ToUpdate
//
// The diff is what makes a bulk save idempotent: submitting the same target
// state twice classifies everything as Unchanged the second time, producing
// zero writes and leaving created_at timestamps intact.
//
// Ownership of the referenced context and name ids is the caller's to
// verify before applying the plan; reconcile only classifies.
func reconcile(current map[models.AssignmentKey]int64, submitted []models.AssignmentChange) ReconcilePlan {
	var plan ReconcilePlan

	for _, change := range submitted {
		currentNameID, bound := current[change.Key()]

		switch {
		case change.NameID == nil && bound:
			plan.ToDelete = append(plan.ToDelete, change)

		case change.NameID == nil:
			plan.Unchanged = append(plan.Unchanged, change)

		case bound && currentNameID == *change.NameID:
			plan.Unchanged = append(plan.Unchanged, change)

		case !bound:
			plan.ToCreate = append(plan.ToCreate, change)

		default:
			plan.ToUpdate = append(plan.ToUpdate, change)
		}
	}

	return plan
}
