// Package edit is the mutation and constraint engine for courts.
//
// Every edit takes a *court.Court and returns a *court.Court. An accepted edit
// returns a fresh deep copy; the input is never modified. A rejected edit
// returns the input pointer itself, so callers can detect a no-op with a
// pointer comparison or use the ...Result variant, which also reports an
// applied flag:
//
//	next := edit.ToggleGate(c, court.End1, 2)   // silent on rejection
//	next, ok := edit.ToggleGateResult(c, court.End1, 2)
//
// # Constraints
//
//   - Goals never change. Arched panels keep their height.
//   - A section directly next to a goal may not exceed 3m.
//   - Gates, chicanes and mini goals replace plain width-2 panels only.
//   - A chicane needs at least [MinChicaneClearance] of wall between it and
//     the nearest goal, measured by [DistanceToGoal].
//   - Appending sections is limited to standalone end walls, and stops at an
//     end once it finishes with a curved corner.
//
// # Ops
//
// [Op] is a serializable edit request used by design files, the HTTP API and
// the CLI. [Op.Check] explains a rejection as an INVALID_MUTATION error;
// [ApplyAll] applies a list of ops in order.
//
// [Inspect] reports what an editor may offer for a selected section.
package edit
