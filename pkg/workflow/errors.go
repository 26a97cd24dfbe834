package workflow

import "errors"

var (
	ErrActionNotFound         = errors.New("action not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrIssueNotFound          = errors.New("issue not found")
	ErrInvalidTransition      = errors.New("stage transition not allowed")
	ErrSourcesNotReady        = errors.New("sources are not ready")
	ErrStaleOperation         = errors.New("operation superseded by a newer one")
	ErrAnchorNotFound         = errors.New("couldn't locate the text to replace")
	ErrRecommendationClosed   = errors.New("recommendation is closed")
	ErrNoFixOption            = errors.New("no such fix option")
	ErrNoSources              = errors.New("no files to attach")
)
