package models

// stageIndex returns the pipeline position of a stage, or -1 for an unknown
// stage value.
func stageIndex(s Stage) int {
	for i, stage := range Stages {
		if stage == s {
			return i
		}
	}
	return -1
}

// NextStage returns the stage after s, or s itself when s is the final stage
// or unknown.
func NextStage(s Stage) Stage {
	i := stageIndex(s)
	if i < 0 || i >= len(Stages)-1 {
		return s
	}
	return Stages[i+1]
}

// CanTransition reports whether pipeline progress may move from one stage to
// the next for the given action. The rules:
//
//   - only adjacent forward transitions are valid
//   - every stage before `from` must already be completed
//   - `from` must have started (active or completed)
//   - a completed stage is never regressed, so `to` must not be completed
//
// The UI hides controls that would violate these rules; non-UI callers must
// check here before invoking a transition.
func CanTransition(a *Action, from, to Stage) bool {
	if a == nil {
		return false
	}
	fi, ti := stageIndex(from), stageIndex(to)
	if fi < 0 || ti < 0 || ti != fi+1 {
		return false
	}
	for _, earlier := range Stages[:fi] {
		if a.StageStatusOf(earlier) != StageCompleted {
			return false
		}
	}
	switch a.StageStatusOf(from) {
	case StageActive, StageCompleted:
	default:
		return false
	}
	return a.StageStatusOf(to) != StageCompleted
}

// CategoryProgress derives a category's completion ratio from the current
// action list: completed actions over total actions, 0 for an empty category.
// The value is recomputed on demand, never cached.
func CategoryProgress(actions []*Action, categoryID string) float64 {
	var total, completed int
	for _, a := range actions {
		if a.Category != categoryID {
			continue
		}
		total++
		if a.Completed() {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// CanActOn reports whether a recommendation accepts the "act" gesture.
func CanActOn(r *Recommendation) bool {
	return r != nil && r.Status == RecSuggested
}

// CanClose reports whether a recommendation can be dismissed. Closed is
// terminal; nothing reopens it.
func CanClose(r *Recommendation) bool {
	return r != nil && r.Status != RecClosed
}
