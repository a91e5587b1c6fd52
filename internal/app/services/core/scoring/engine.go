package scoring

import (
	"fmt"
	"time"
)

// Score turns a complete answer set into a Result. It holds no state and is
// safe for concurrent use.
func Score(assessmentType string, answers []Answer, completedAt time.Time) (Result, error) {
	def, ok := definitions[assessmentType]
	if !ok {
		if assessmentType == TypePreAssessment {
			return nil, fmt.Errorf("%w: %s has no score table", ErrUnknownAssessmentType, assessmentType)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssessmentType, assessmentType)
	}

	raw, breakdown, err := Aggregate(*def, answers)
	if err != nil {
		return nil, err
	}

	severity, err := Classify(*def, raw)
	if err != nil {
		return nil, err
	}

	return compose(*def, raw, breakdown, severity, completedAt.UTC()), nil
}

// ComposePreAssessment records the intake form once consent is given.
func ComposePreAssessment(form PreAssessmentForm, completedAt time.Time) (*PreAssessmentResult, error) {
	if !form.HasConsent() {
		return nil, ErrConsentRequired
	}
	return &PreAssessmentResult{Responses: form, Completed: completedAt.UTC()}, nil
}

// Engine binds the pure scoring functions to a clock so callers can inject
// time in tests.
type Engine struct {
	now func() time.Time
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

func (e *Engine) Score(assessmentType string, answers []Answer) (Result, error) {
	return Score(assessmentType, answers, e.now())
}

func (e *Engine) ComposePreAssessment(form PreAssessmentForm) (*PreAssessmentResult, error) {
	return ComposePreAssessment(form, e.now())
}

func (e *Engine) Definition(assessmentType string) (Definition, bool) {
	return Lookup(assessmentType)
}
