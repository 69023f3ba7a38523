package model

// AnalysisEvent is the webhook payload SonarQube Cloud sends when the analysis
// of a branch or pull request completes.
type AnalysisEvent struct {
	Project struct {
		Key  string `json:"key"`
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"project"`
	Branch struct {
		Name string `json:"name"`
		Type string `json:"type"` // "PULL_REQUEST" or "BRANCH"
		URL  string `json:"url"`
	} `json:"branch"`
	QualityGate QualityGate       `json:"qualityGate"`
	Properties  map[string]string `json:"properties"`
}

type QualityGate struct {
	Name       string      `json:"name"`
	Status     string      `json:"status"` // "OK" or "ERROR"
	Conditions []Condition `json:"conditions"`
}

// Condition is one quality gate rule evaluation. Numeric fields arrive as
// strings on the wire.
type Condition struct {
	Metric         string `json:"metric"`
	Status         string `json:"status"`
	Value          string `json:"value"`
	ErrorThreshold string `json:"errorThreshold"`
	Operator       string `json:"operator"` // empty means GREATER_THAN
}
