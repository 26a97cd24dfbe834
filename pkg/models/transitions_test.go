package models

import (
	"testing"
)

func actionWithStatuses(sources, generation, validation StageStatus) *Action {
	a := NewAction("a1", "Draft summary", "", "facts", PriorityHigh)
	a.StageStatuses[StageSources] = sources
	a.StageStatuses[StageGeneration] = generation
	a.StageStatuses[StageValidation] = validation
	return a
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		action   *Action
		from     Stage
		to       Stage
		expected bool
	}{
		{"sources active to generation", actionWithStatuses(StageActive, StagePending, StagePending), StageSources, StageGeneration, true},
		{"sources completed to generation", actionWithStatuses(StageCompleted, StagePending, StagePending), StageSources, StageGeneration, true},
		{"sources pending blocks generation", actionWithStatuses(StagePending, StagePending, StagePending), StageSources, StageGeneration, false},
		{"generation to validation", actionWithStatuses(StageCompleted, StageCompleted, StagePending), StageGeneration, StageValidation, true},
		{"validation blocked until generation starts", actionWithStatuses(StageCompleted, StagePending, StagePending), StageGeneration, StageValidation, false},
		{"validation blocked by incomplete sources", actionWithStatuses(StageActive, StageActive, StagePending), StageGeneration, StageValidation, false},
		{"no skipping stages", actionWithStatuses(StageActive, StagePending, StagePending), StageSources, StageValidation, false},
		{"no backward transition", actionWithStatuses(StageCompleted, StageActive, StagePending), StageGeneration, StageSources, false},
		{"no regression of completed stage", actionWithStatuses(StageCompleted, StageCompleted, StageCompleted), StageGeneration, StageValidation, false},
		{"unknown stage", actionWithStatuses(StageActive, StagePending, StagePending), Stage("review"), StageGeneration, false},
		{"nil action", nil, StageSources, StageGeneration, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanTransition(tt.action, tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestNextStage(t *testing.T) {
	tests := []struct {
		name     string
		stage    Stage
		expected Stage
	}{
		{"sources advances to generation", StageSources, StageGeneration},
		{"generation advances to validation", StageGeneration, StageValidation},
		{"validation is terminal", StageValidation, StageValidation},
		{"unknown stage unchanged", Stage("review"), Stage("review")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStage(tt.stage); got != tt.expected {
				t.Errorf("NextStage(%s) = %s, want %s", tt.stage, got, tt.expected)
			}
		})
	}
}

func TestCategoryProgress(t *testing.T) {
	done := actionWithStatuses(StageCompleted, StageCompleted, StageCompleted)
	done.Category = "facts"
	active := actionWithStatuses(StageActive, StagePending, StagePending)
	active.Category = "facts"
	other := actionWithStatuses(StageCompleted, StageCompleted, StageCompleted)
	other.Category = "analysis"

	tests := []struct {
		name     string
		actions  []*Action
		category string
		expected float64
	}{
		{"empty list", nil, "facts", 0},
		{"no actions in category", []*Action{other}, "facts", 0},
		{"half complete", []*Action{done, active}, "facts", 0.5},
		{"all complete", []*Action{done}, "facts", 1},
		{"other categories ignored", []*Action{done, active, other}, "facts", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategoryProgress(tt.actions, tt.category)
			if got != tt.expected {
				t.Errorf("CategoryProgress(%q) = %v, want %v", tt.category, got, tt.expected)
			}
			if got < 0 || got > 1 {
				t.Errorf("CategoryProgress(%q) = %v, out of [0,1]", tt.category, got)
			}
		})
	}
}

func TestRecommendationGuards(t *testing.T) {
	tests := []struct {
		name     string
		status   RecommendationStatus
		canAct   bool
		canClose bool
	}{
		{"suggested", RecSuggested, true, true},
		{"in progress", RecInProgress, false, true},
		{"evidence added", RecEvidenceAdded, false, true},
		{"closed is terminal", RecClosed, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Recommendation{ID: "r1", Status: tt.status}
			if got := CanActOn(r); got != tt.canAct {
				t.Errorf("CanActOn(%s) = %v, want %v", tt.status, got, tt.canAct)
			}
			if got := CanClose(r); got != tt.canClose {
				t.Errorf("CanClose(%s) = %v, want %v", tt.status, got, tt.canClose)
			}
		})
	}

	if CanActOn(nil) || CanClose(nil) {
		t.Error("nil recommendation should not accept any gesture")
	}
}

func TestNewActionInitialState(t *testing.T) {
	a := NewAction("a1", "Summarize filings", "desc", "facts", PriorityMedium)

	if a.CurrentStage != StageSources {
		t.Errorf("CurrentStage = %s, want %s", a.CurrentStage, StageSources)
	}
	for _, s := range Stages {
		if a.StageStatusOf(s) != StagePending {
			t.Errorf("stage %s = %s, want pending", s, a.StageStatusOf(s))
		}
	}
	if a.Completed() {
		t.Error("new action should not be completed")
	}
}
