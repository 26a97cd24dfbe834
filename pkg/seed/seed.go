// Package seed provides the mock data the workspace starts with: the memo
// document, the three fixed phases, their seeded actions, and the initial
// recommendations and validation issues. Everything here lives in memory
// only; nothing is written back except the document itself.
package seed

import (
	"github.com/quillforge/sidekick/pkg/models"
	"github.com/quillforge/sidekick/pkg/workflow"
)

// Document returns the seed memo the editor opens with.
func Document() string {
	return `# Acquisition Memo — Meridian Holdings

## Summary
This memo assesses the proposed acquisition of Meridian Holdings and the key
diligence items raised by counsel.

## Facts
Meridian Holdings operates distribution centers in three states. The proposed
purchase price is $42M, subject to a working-capital adjustment.

## Analysis
(placeholder)

## Open Items
- Confirm assignment consent for the Ohio lease.
`
}

// Categories returns the three fixed phases.
func Categories() []*models.Category {
	return []*models.Category{
		{
			ID:          "facts",
			Name:        "Company Facts",
			Description: "Gather and verify the factual record",
			Color:       "#3498db",
		},
		{
			ID:          "analysis",
			Name:        "Legal Analysis",
			Description: "Apply authority to the assembled facts",
			Color:       "#9b59b6",
		},
		{
			ID:          "drafting",
			Name:        "Drafting",
			Description: "Turn analysis into memo sections",
			Color:       "#2ecc71",
		},
	}
}

// Actions returns the seeded workflow actions.
func Actions() []*models.Action {
	summarize := models.NewAction(
		"act-summarize-filings",
		"Summarize recent filings",
		"Produce a one-paragraph summary of Meridian's filings from the last two quarters.",
		"facts",
		models.PriorityHigh,
	)
	summarize.EstimatedDuration = "~3 min"
	summarize.AIReasoning = &models.AIReasoning{
		Trigger:   "Facts section references filings with no summary",
		Reasoning: "A condensed filing summary lets later analysis cite the record directly.",
	}

	exposure := models.NewAction(
		"act-lease-exposure",
		"Assess lease assignment exposure",
		"Analyze whether the Ohio lease consent requirement blocks closing.",
		"analysis",
		models.PriorityMedium,
	)
	exposure.EstimatedDuration = "~5 min"
	exposure.AIReasoning = &models.AIReasoning{
		Trigger:   "Open Items flags an unconfirmed assignment consent",
		Reasoning: "The consent question is the largest open legal risk in the memo.",
	}

	draft := models.NewAction(
		"act-draft-analysis",
		"Draft the Analysis section",
		"Replace the Analysis placeholder with a first full draft.",
		"drafting",
		models.PriorityHigh,
	)
	draft.AIReasoning = &models.AIReasoning{
		Trigger:   "Analysis section contains only a placeholder",
		Reasoning: "The memo cannot circulate until Analysis holds substantive content.",
	}

	return []*models.Action{summarize, exposure, draft}
}

// Recommendations returns the seeded next-step suggestions.
func Recommendations() []*models.Recommendation {
	return []*models.Recommendation{
		{
			ID:       "rec-lease-evidence",
			Title:    "Add the Ohio lease as evidence",
			Intent:   models.IntentAddEvidence,
			Priority: models.PriorityHigh,
			Status:   models.RecSuggested,
			Context: models.RecommendationContext{
				Section:       "Analysis",
				Issue:         "Assignment consent unverified",
				Jurisdictions: []string{"OH"},
			},
		},
		{
			ID:       "rec-draft-summary",
			Title:    "Draft the Summary refresh",
			Intent:   models.IntentDraft,
			Priority: models.PriorityMedium,
			Status:   models.RecSuggested,
			Context: models.RecommendationContext{
				Section: "Summary",
			},
		},
		{
			ID:       "rec-rescore",
			Title:    "Re-score the memo after fixes",
			Intent:   models.IntentReScore,
			Priority: models.PriorityLow,
			Status:   models.RecSuggested,
		},
	}
}

// Issues returns the seeded validation issues.
func Issues() []*models.Issue {
	return []*models.Issue{
		{
			ID:          "iss-analysis-placeholder",
			Title:       "Analysis section is a placeholder",
			Type:        models.IssueUnsupported,
			Severity:    models.SeverityHigh,
			Section:     "Analysis",
			Excerpt:     "(placeholder)",
			FindPattern: "(placeholder)",
			FixOptions: []string{
				"The assignment clause likely requires landlord consent; we recommend conditioning closing on receipt.",
				"Analysis pending counsel review of the assignment clause.",
			},
		},
		{
			ID:          "iss-price-unsupported",
			Title:       "Purchase price lacks a cited source",
			Type:        models.IssueUnsupported,
			Severity:    models.SeverityMedium,
			Section:     "Facts",
			Excerpt:     "The proposed\npurchase price is $42M",
			FindPattern: "$42M, subject to a working-capital adjustment",
			FixOptions: []string{
				"$42M per the draft purchase agreement (v4), subject to a working-capital adjustment",
			},
		},
	}
}

// NewStore builds a store populated with all seed data using the given
// validation scoring policy.
func NewStore(initialScore, fixScoreDelta int) *workflow.Store {
	s := workflow.NewStore(initialScore, fixScoreDelta)
	for _, c := range Categories() {
		s.SeedCategory(c)
	}
	for _, a := range Actions() {
		s.SeedAction(a)
	}
	for _, r := range Recommendations() {
		s.SeedRecommendation(r)
	}
	for _, i := range Issues() {
		s.SeedIssue(i)
	}
	return s
}
