package model

// AssessmentFormat represents one evaluation mechanism a verb can map to.
type AssessmentFormat struct {
	ID              string
	Name            string
	Category        string
	Scalability     string
	AIRisk          string
	TypicalEvidence []string
}
