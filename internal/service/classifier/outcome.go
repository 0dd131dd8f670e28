package classifier

import "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"

// Reason explains why the remote classifier produced no usable result.
type Reason string

const (
	ReasonDisabled  Reason = "disabled"
	ReasonUpstream  Reason = "upstream"
	ReasonMalformed Reason = "malformed"
	ReasonSchema    Reason = "schema"
	ReasonTimeout   Reason = "timeout"
)

// Outcome is either Available, carrying an assessment and its bundle, or
// unavailable with a Reason. Callers must branch on Available.
type Outcome struct {
	Available       bool
	Reason          Reason
	Assessment      mood.Assessment
	Recommendations mood.Recommendations
}

func available(a mood.Assessment, rec mood.Recommendations) Outcome {
	return Outcome{Available: true, Assessment: a, Recommendations: rec}
}

func unavailable(reason Reason) Outcome {
	return Outcome{Reason: reason}
}
