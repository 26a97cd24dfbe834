package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quillforge/sidekick/pkg/models"
	"github.com/quillforge/sidekick/pkg/utils"
)

// SourceFile is what the file picker hands over for one attached file.
type SourceFile struct {
	Name string
	Size int64
}

// AttachSources adds uploading sources to the action and marks its sources
// stage active. The returned operation ID identifies the simulated upload;
// the caller drives progress by calling AdvanceUploads on each timer tick.
//
// Attaching also publishes EvidenceAdded: one upload event satisfies every
// in-progress add_evidence recommendation, deliberately unscoped to the
// recommendation that prompted it.
func (s *Store) AttachSources(actionID string, fileList []SourceFile) (opID string, err error) {
	a, err := s.Action(actionID)
	if err != nil {
		return "", err
	}
	if len(fileList) == 0 {
		return "", ErrNoSources
	}
	if a.Completed() {
		return "", ErrInvalidTransition
	}

	for _, f := range fileList {
		a.Sources = append(a.Sources, models.Source{
			ID:     uuid.NewString(),
			Name:   f.Name,
			Type:   models.SourceUpload,
			Status: models.SourceUploading,
			Size:   f.Size,
		})
	}
	a.StageStatuses[models.StageSources] = models.StageActive

	s.bus.Publish(Event{Name: EventEvidenceAdded, ActionID: actionID})

	return s.beginOp(actionID), nil
}

// AdvanceUploads moves every uploading source forward by step percent. When
// all sources reach 100 they become ready and done is true; the caller then
// starts the sufficiency analysis. A stale operation ID is dropped without
// effect.
func (s *Store) AdvanceUploads(actionID, opID string, step int) (done bool, err error) {
	a, err := s.Action(actionID)
	if err != nil {
		return false, err
	}
	if !s.opCurrent(actionID, opID) {
		return false, ErrStaleOperation
	}

	done = true
	for i := range a.Sources {
		src := &a.Sources[i]
		if src.Status != models.SourceUploading {
			continue
		}
		src.UploadProgress += step
		if src.UploadProgress >= 100 {
			src.UploadProgress = 100
			src.Status = models.SourceReady
		} else {
			done = false
		}
	}
	return done, nil
}

// StartAnalysis begins the simulated source-sufficiency analysis once the
// uploads are done. The terminal outcome lands in FinishAnalysis.
func (s *Store) StartAnalysis(actionID string) (opID string, err error) {
	a, err := s.Action(actionID)
	if err != nil {
		return "", err
	}
	if !sourcesReady(a) {
		return "", ErrSourcesNotReady
	}

	a.SourceAnalysis = &models.SourceAnalysis{Status: models.AnalysisRunning}
	return s.beginOp(actionID), nil
}

// FinishAnalysis resolves the analysis to a terminal status. The outcome is
// probabilistic with category-dependent weighting: fact-gathering phases bias
// toward sufficient, everything else toward insufficient. Anything other than
// sufficient raises NeedsUserSources and populates gaps and recommendations.
func (s *Store) FinishAnalysis(actionID, opID string) error {
	a, err := s.Action(actionID)
	if err != nil {
		return err
	}
	if !s.opCurrent(actionID, opID) {
		return ErrStaleOperation
	}
	if a.SourceAnalysis == nil || a.SourceAnalysis.Status != models.AnalysisRunning {
		return ErrInvalidTransition
	}

	status := s.analysisOutcome(a.Category)
	analysis := &models.SourceAnalysis{
		Status:         status,
		Confidence:     0.6 + s.rand.Float64()*0.35,
		RelevanceScore: 0.5 + s.rand.Float64()*0.5,
		AnalyzedAt:     time.Now(),
	}
	if status != models.AnalysisSufficient {
		analysis.Gaps = analysisGaps(status)
		analysis.Recommendations = analysisRecommendations(status)
		a.NeedsUserSources = true
	}
	a.SourceAnalysis = analysis
	return nil
}

// Generate closes out the sources stage and starts content generation. This
// is user-gated: it requires all sources ready and a valid pipeline
// transition. The display cursor follows to the generation tab.
func (s *Store) Generate(actionID string) (opID string, err error) {
	a, err := s.Action(actionID)
	if err != nil {
		return "", err
	}
	if !models.CanTransition(a, models.StageSources, models.StageGeneration) {
		return "", ErrInvalidTransition
	}
	if !sourcesReady(a) {
		return "", ErrSourcesNotReady
	}

	a.StageStatuses[models.StageSources] = models.StageCompleted
	a.StageStatuses[models.StageGeneration] = models.StageActive
	a.CurrentStage = models.StageGeneration
	return s.beginOp(actionID), nil
}

// FinishGeneration populates the generated content and completes the
// generation stage. Regeneration overwrites any previous content. The display
// cursor auto-advances to validation.
func (s *Store) FinishGeneration(actionID, opID string) error {
	a, err := s.Action(actionID)
	if err != nil {
		return err
	}
	if !s.opCurrent(actionID, opID) {
		return ErrStaleOperation
	}
	if a.StageStatusOf(models.StageGeneration) != models.StageActive {
		return ErrInvalidTransition
	}

	content, contentType := generationText(a)
	a.GeneratedContent = &models.GeneratedContent{
		ID:          uuid.NewString(),
		Content:     content,
		Type:        contentType,
		GeneratedAt: time.Now(),
		WordCount:   utils.CountWords(content),
		Confidence:  0.8 + s.rand.Float64()*0.15,
	}
	a.StageStatuses[models.StageGeneration] = models.StageCompleted
	a.CurrentStage = models.StageValidation
	return nil
}

// Validate starts the validation stage. User-gated, reachable once generation
// has completed.
func (s *Store) Validate(actionID string) (opID string, err error) {
	a, err := s.Action(actionID)
	if err != nil {
		return "", err
	}
	if !models.CanTransition(a, models.StageGeneration, models.StageValidation) {
		return "", ErrInvalidTransition
	}
	if a.StageStatusOf(models.StageGeneration) != models.StageCompleted {
		return "", ErrInvalidTransition
	}

	a.StageStatuses[models.StageValidation] = models.StageActive
	return s.beginOp(actionID), nil
}

// FinishValidation records the validation results and completes the action:
// an accuracy pass always, plus a completeness check that passes or warns
// probabilistically. This is the action's natural terminal state.
func (s *Store) FinishValidation(actionID, opID string) error {
	a, err := s.Action(actionID)
	if err != nil {
		return err
	}
	if !s.opCurrent(actionID, opID) {
		return ErrStaleOperation
	}
	if a.StageStatusOf(models.StageValidation) != models.StageActive {
		return ErrInvalidTransition
	}

	results := []models.ValidationResult{{
		ID:       uuid.NewString(),
		Type:     models.CheckAccuracy,
		Status:   models.CheckPass,
		Message:  "Generated content is consistent with the attached sources",
		Severity: models.SeverityLow,
	}}
	completeness := models.ValidationResult{
		ID:       uuid.NewString(),
		Type:     models.CheckCompleteness,
		Status:   models.CheckPass,
		Message:  "All required topics are covered",
		Severity: models.SeverityLow,
	}
	if s.rand.Float64() < 0.3 {
		completeness.Status = models.CheckWarning
		completeness.Message = "Some supporting detail may be thin; consider adding a source"
		completeness.Severity = models.SeverityMedium
	}
	a.ValidationResults = append(results, completeness)
	a.StageStatuses[models.StageValidation] = models.StageCompleted

	s.bus.Publish(Event{Name: EventActionCompleted, ActionID: actionID})
	return nil
}

// Dismiss short-circuits the action to its terminal state without populating
// validation results. Dismissed actions stay in the list for auditability;
// nothing is ever deleted.
func (s *Store) Dismiss(actionID string) error {
	a, err := s.Action(actionID)
	if err != nil {
		return err
	}
	if a.Completed() {
		return ErrInvalidTransition
	}

	a.StageStatuses[models.StageValidation] = models.StageCompleted
	s.beginOp(actionID) // invalidate any in-flight simulated work

	s.bus.Publish(Event{Name: EventActionCompleted, ActionID: actionID})
	return nil
}

// SetCurrentStage moves the display cursor. This is informational only: the
// user may inspect any stage tab without affecting pipeline progress.
func (s *Store) SetCurrentStage(actionID string, stage models.Stage) error {
	a, err := s.Action(actionID)
	if err != nil {
		return err
	}
	a.CurrentStage = stage
	return nil
}

func sourcesReady(a *models.Action) bool {
	if len(a.Sources) == 0 {
		return false
	}
	for _, src := range a.Sources {
		if src.Status != models.SourceReady {
			return false
		}
	}
	return true
}

// analysisOutcome picks the analysis terminal status with category-dependent
// weighting.
func (s *Store) analysisOutcome(categoryID string) models.AnalysisStatus {
	roll := s.rand.Float64()
	if categoryID == "facts" {
		switch {
		case roll < 0.7:
			return models.AnalysisSufficient
		case roll < 0.9:
			return models.AnalysisInsufficient
		default:
			return models.AnalysisIrrelevant
		}
	}
	switch {
	case roll < 0.3:
		return models.AnalysisSufficient
	case roll < 0.85:
		return models.AnalysisInsufficient
	default:
		return models.AnalysisIrrelevant
	}
}

func analysisGaps(status models.AnalysisStatus) []string {
	if status == models.AnalysisIrrelevant {
		return []string{"Attached material does not address the topic under review"}
	}
	return []string{
		"No primary source covers the disputed period",
		"Jurisdiction-specific authority is missing",
	}
}

func analysisRecommendations(status models.AnalysisStatus) []string {
	if status == models.AnalysisIrrelevant {
		return []string{"Replace the attached files with material on the topic"}
	}
	return []string{
		"Upload the underlying agreement or filing",
		"Add at least one authority from the relevant jurisdiction",
	}
}

// generationText builds the simulated content for one generation cycle.
func generationText(a *models.Action) (string, models.ContentType) {
	contentType := models.ContentRecommendation
	switch a.Category {
	case "facts":
		contentType = models.ContentSummary
	case "analysis":
		contentType = models.ContentAnalysis
	}

	body := fmt.Sprintf(
		"Based on %d attached source(s), here is a draft for %q.\n\n"+
			"The record supports the position described in the action. Key points "+
			"are drawn from the uploaded material and organized to slot into the "+
			"memo's existing structure. Review the draft, then insert it into the "+
			"relevant section.",
		len(a.Sources), a.Title)
	return body, contentType
}
