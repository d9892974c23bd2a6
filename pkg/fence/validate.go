package fence

import (
	"fmt"
	"strings"
)

// ValidateSegment reports every structural problem with a segment. An
// empty result means the segment is valid.
func ValidateSegment(segment Segment) []string {
	var violations []string

	if segment.Start == nil {
		violations = append(violations, "start point is required")
	}
	if segment.End == nil {
		violations = append(violations, "end point is required")
	}
	if segment.LengthFeet != nil && !(*segment.LengthFeet > 0) {
		violations = append(violations, "length must be greater than 0")
	}
	if c := segment.ConfidenceScore; c != nil && !(*c >= 0 && *c <= 1) {
		violations = append(violations, "confidence score must be between 0 and 1")
	}

	return violations
}

// ValidateProject reports missing project details. An empty result means
// the project header is valid.
func ValidateProject(project Project) []string {
	var violations []string

	if strings.TrimSpace(project.ProjectName) == "" {
		violations = append(violations, "project name is required")
	}
	if strings.TrimSpace(project.ClientName) == "" {
		violations = append(violations, "client name is required")
	}
	if strings.TrimSpace(project.SiteAddress) == "" {
		violations = append(violations, "site address is required")
	}

	return violations
}

// ValidateProjectSegments validates every segment of the project, prefixing
// each violation with the segment's position.
func ValidateProjectSegments(project Project) []string {
	var violations []string
	for i, s := range project.Segments {
		for _, v := range ValidateSegment(s) {
			violations = append(violations, fmt.Sprintf("segment %d: %s", i+1, v))
		}
	}
	return violations
}
