package workflow

import "github.com/quillforge/sidekick/pkg/models"

// ActOnRecommendation moves a suggested recommendation to in_progress.
func (s *Store) ActOnRecommendation(id string) error {
	r, err := s.recommendation(id)
	if err != nil {
		return err
	}
	if !models.CanActOn(r) {
		if r.Status == models.RecClosed {
			return ErrRecommendationClosed
		}
		return ErrInvalidTransition
	}
	r.Status = models.RecInProgress
	return nil
}

// CloseRecommendation dismisses a recommendation. Closed is terminal: a
// closed recommendation is never reopened, not even by a later matching
// evidence event.
func (s *Store) CloseRecommendation(id string) error {
	r, err := s.recommendation(id)
	if err != nil {
		return err
	}
	if !models.CanClose(r) {
		return ErrRecommendationClosed
	}
	r.Status = models.RecClosed
	return nil
}

// onEvidenceAdded reacts to the EvidenceAdded broadcast: every in-progress
// add_evidence recommendation advances to evidence_added, regardless of which
// action the upload landed on. The broadcast is the intended behavior, not
// per-recommendation tracking.
func (s *Store) onEvidenceAdded(Event) {
	for _, r := range s.recommendations {
		if r.Intent == models.IntentAddEvidence && r.Status == models.RecInProgress {
			r.Status = models.RecEvidenceAdded
		}
	}
}

func (s *Store) recommendation(id string) (*models.Recommendation, error) {
	for _, r := range s.recommendations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrRecommendationNotFound
}
