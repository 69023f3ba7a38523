package helper

import (
	"fmt"
	"strconv"
	"strings"

	"sonar_nim/model"
)

// CommentMarker is the fixed substring used to find a previously posted
// analysis note on a merge request. Changing it orphans every note posted so
// far, so it must stay byte-identical across releases.
const CommentMarker = "SonarCloud Analysis Results"

var grades = map[int]string{1: "A", 2: "B", 3: "C", 4: "D", 5: "E"}

var metricMessages = map[string]string{
	"new_reliability_rating":         "Reliability Rating on New Code is worse than",
	"new_security_rating":            "Security Rating on New Code is worse than",
	"new_maintainability_rating":     "Maintainability Rating on New Code is worse than",
	"new_coverage":                   "Coverage on New Code is below the threshold",
	"new_duplicated_lines_density":   "Duplication on New Code is above the threshold",
	"new_security_hotspots_reviewed": "Security Hotspots reviewed",
}

var operatorMessages = map[string]string{
	"GREATER_THAN": "above the error threshold",
	"LESS_THAN":    "below the error threshold",
}

// Ratings render as letter grades instead of raw numbers.
var ratingMetrics = map[string]bool{
	"new_reliability_rating":     true,
	"new_security_rating":        true,
	"new_maintainability_rating": true,
}

// GenerateComment renders the analysis result as a markdown comment. Output is
// fully determined by the event: the same event always yields the same bytes.
// Only the conditions of the default SonarQube Cloud quality gate get a
// descriptive message; conditions of a custom gate render through the
// raw-metric fallback instead of being dropped.
func GenerateComment(event *model.AnalysisEvent) string {
	var comment strings.Builder
	comment.WriteString("## " + CommentMarker + "\n")
	comment.WriteString(fmt.Sprintf("### %s on branch: %s\n", event.Project.Name, event.Branch.Name))

	gateStatus := "PASSED"
	if event.QualityGate.Status == "ERROR" {
		gateStatus = "FAILED"
	}
	comment.WriteString(fmt.Sprintf("#### Quality Gate Status: %s\n", gateStatus))

	for _, condition := range event.QualityGate.Conditions {
		if condition.Status != "ERROR" {
			continue
		}

		operator := condition.Operator
		if operator == "" {
			operator = "GREATER_THAN"
		}
		message, ok := operatorMessages[operator]
		if !ok {
			message = "unknown operator"
		}
		descriptiveMessage, ok := metricMessages[condition.Metric]
		if !ok {
			descriptiveMessage = condition.Metric
		}

		switch {
		case ratingMetrics[condition.Metric]:
			comment.WriteString(fmt.Sprintf("- %s %s (%s), which is %s of %s\n",
				descriptiveMessage, gradeFor(condition.ErrorThreshold), gradeFor(condition.Value), message, condition.ErrorThreshold))
		case condition.Metric == "new_security_hotspots_reviewed":
			comment.WriteString(fmt.Sprintf("- %s%% of %s (%s%% required)\n",
				condition.Value, descriptiveMessage, condition.ErrorThreshold))
		default:
			comment.WriteString(fmt.Sprintf("- %s (%s), which is %s of %s\n",
				descriptiveMessage, condition.Value, message, condition.ErrorThreshold))
		}
	}

	comment.WriteString(fmt.Sprintf("See detailed results here: %s\n", event.Branch.URL))
	return comment.String()
}

// gradeFor maps a numeric rating (1-5) to its letter grade. Ratings sometimes
// arrive as "4.0" instead of "4"; anything that is not a number in range
// renders as Unknown rather than failing the whole comment.
func gradeFor(value string) string {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if ferr != nil {
			return "Unknown"
		}
		n = int(f)
	}
	grade, ok := grades[n]
	if !ok {
		return "Unknown"
	}
	return grade
}
