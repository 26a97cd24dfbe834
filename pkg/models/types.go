package models

import "time"

// Stage identifies one step of the per-action pipeline.
type Stage string

const (
	StageSources    Stage = "sources"
	StageGeneration Stage = "generation"
	StageValidation Stage = "validation"
)

// Stages lists the pipeline stages in order.
var Stages = []Stage{StageSources, StageGeneration, StageValidation}

// StageStatus is the state of a single pipeline stage.
type StageStatus string

const (
	StagePending   StageStatus = "pending"
	StageActive    StageStatus = "active"
	StageCompleted StageStatus = "completed"
	StageError     StageStatus = "error"
)

// Priority is the display priority of an action or recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SourceType describes how a source was attached.
type SourceType string

const (
	SourceUpload SourceType = "upload"
	SourceSearch SourceType = "search"
	SourceAPI    SourceType = "api"
	SourceManual SourceType = "manual"
)

// SourceStatus is the state of an attached source.
type SourceStatus string

const (
	SourcePending   SourceStatus = "pending"
	SourceUploading SourceStatus = "uploading"
	SourceReady     SourceStatus = "ready"
	SourceError     SourceStatus = "error"
)

// Source is a file or reference attached to an action's sources stage.
type Source struct {
	ID             string
	Name           string
	Type           SourceType
	Status         SourceStatus
	Size           int64
	UploadProgress int // 0-100
}

// ContentType classifies generated content.
type ContentType string

const (
	ContentSummary        ContentType = "summary"
	ContentAnalysis       ContentType = "analysis"
	ContentRecommendation ContentType = "recommendation"
)

// GeneratedContent holds the output of one generation cycle. Regeneration
// overwrites the previous value.
type GeneratedContent struct {
	ID          string
	Content     string
	Type        ContentType
	GeneratedAt time.Time
	WordCount   int
	Confidence  float64 // 0-1
}

// CheckType classifies a validation result.
type CheckType string

const (
	CheckAccuracy     CheckType = "accuracy"
	CheckCompleteness CheckType = "completeness"
	CheckCompliance   CheckType = "compliance"
	CheckQuality      CheckType = "quality"
)

// CheckStatus is the outcome of a validation check.
type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

// Severity grades validation results and issues.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ValidationResult is one check recorded during the validation stage.
type ValidationResult struct {
	ID       string
	Type     CheckType
	Status   CheckStatus
	Message  string
	Severity Severity
}

// AnalysisStatus is the state of the source sufficiency analysis.
type AnalysisStatus string

const (
	AnalysisRunning      AnalysisStatus = "analyzing"
	AnalysisSufficient   AnalysisStatus = "sufficient"
	AnalysisInsufficient AnalysisStatus = "insufficient"
	AnalysisIrrelevant   AnalysisStatus = "irrelevant"
)

// SourceAnalysis records the simulated sufficiency check over an action's
// attached sources.
type SourceAnalysis struct {
	Status          AnalysisStatus
	Confidence      float64
	RelevanceScore  float64
	Gaps            []string
	Recommendations []string
	AnalyzedAt      time.Time
}

// AIReasoning is static explanatory text attached when an action is created.
// It never changes afterwards.
type AIReasoning struct {
	Trigger   string
	Reasoning string
}

// Action is one unit of assistant work moving through the
// sources -> generation -> validation pipeline.
type Action struct {
	ID                string
	Title             string
	Description       string
	Category          string
	Priority          Priority
	EstimatedDuration string

	// CurrentStage is a display cursor only: the user may inspect any stage
	// tab without that implying pipeline progress.
	CurrentStage Stage

	StageStatuses     map[Stage]StageStatus
	Sources           []Source
	GeneratedContent  *GeneratedContent
	ValidationResults []ValidationResult
	SourceAnalysis    *SourceAnalysis
	AIReasoning       *AIReasoning
	NeedsUserSources  bool
}

// NewAction creates an action in its initial pipeline state: sources stage
// shown, every stage pending.
func NewAction(id, title, description, category string, priority Priority) *Action {
	return &Action{
		ID:                id,
		Title:             title,
		Description:       description,
		Category:          category,
		Priority:          priority,
		EstimatedDuration: "~2 min",
		CurrentStage:      StageSources,
		StageStatuses: map[Stage]StageStatus{
			StageSources:    StagePending,
			StageGeneration: StagePending,
			StageValidation: StagePending,
		},
	}
}

// StageStatusOf returns the status of a stage, defaulting to pending for a
// stage the map has never recorded.
func (a *Action) StageStatusOf(s Stage) StageStatus {
	if st, ok := a.StageStatuses[s]; ok {
		return st
	}
	return StagePending
}

// Completed reports whether the action has reached its terminal state.
func (a *Action) Completed() bool {
	return a.StageStatusOf(StageValidation) == StageCompleted
}

// Category groups actions into a user-visible phase. Categories are seeded
// or appended by the user, never deleted or merged.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string
	Dynamic     bool // user-created rather than seeded
}

// RecommendationIntent classifies what acting on a recommendation does.
type RecommendationIntent string

const (
	IntentAddEvidence  RecommendationIntent = "add_evidence"
	IntentDraft        RecommendationIntent = "draft"
	IntentReAnalyze    RecommendationIntent = "re_analyze"
	IntentReScore      RecommendationIntent = "re_score"
	IntentHousekeeping RecommendationIntent = "housekeeping"
)

// RecommendationStatus is the lifecycle state of a recommendation.
type RecommendationStatus string

const (
	RecSuggested     RecommendationStatus = "suggested"
	RecInProgress    RecommendationStatus = "in_progress"
	RecEvidenceAdded RecommendationStatus = "evidence_added"
	RecReadyToDraft  RecommendationStatus = "ready_to_draft"
	RecBlocked       RecommendationStatus = "blocked"
	RecClosed        RecommendationStatus = "closed"
)

// RecommendationContext anchors a recommendation to document context.
type RecommendationContext struct {
	Section       string
	Issue         string
	Jurisdictions []string
}

// Recommendation is a suggested next step surfaced to the user, independent
// of the stage pipeline.
type Recommendation struct {
	ID       string
	Title    string
	Intent   RecommendationIntent
	Priority Priority
	Status   RecommendationStatus
	Context  RecommendationContext
}

// IssueType classifies a detected document problem.
type IssueType string

const (
	IssueIrrelevant        IssueType = "irrelevant"
	IssueMisinterpretation IssueType = "misinterpretation"
	IssueMisapplication    IssueType = "misapplication"
	IssueUnsupported       IssueType = "unsupported"
)

// Issue is a detected problem in the document with candidate fixes. The
// FindPattern is the literal excerpt used to anchor the fix.
type Issue struct {
	ID          string
	Title       string
	Type        IssueType
	Severity    Severity
	Section     string
	Excerpt     string
	FindPattern string
	FixOptions  []string
}
