package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/podium/pkg/dataset"
)

// Result represents the outcome of a merge
type Result struct {
	// Legacy is the merged dataset
	Legacy *dataset.Legacy

	// Rows are the result rows synthesized during this merge, in order
	Rows []*dataset.ResultRow

	// Warnings contains non-critical issues
	Warnings []string

	// Metadata about the merge
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the merge process
type ResultMetadata struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Policy    Policy
	Stats     ResultStatistics
}

// ResultStatistics contains counts gathered during the merge
type ResultStatistics struct {
	AthletesMatched int `json:"athletes_matched" yaml:"athletes_matched"`
	AthletesAdded   int `json:"athletes_added" yaml:"athletes_added"`
	NOCsAdded       int `json:"nocs_added" yaml:"nocs_added"`
	Collisions      int `json:"collisions" yaml:"collisions"`

	TeamRows                int `json:"team_rows" yaml:"team_rows"`
	IndividualRows          int `json:"individual_rows" yaml:"individual_rows"`
	UnmatchedRosterAthletes int `json:"unmatched_roster_athletes" yaml:"unmatched_roster_athletes"`
}

// HasWarnings returns true if there were warnings
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a one-line description of the result
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	return fmt.Sprintf("Merge completed: %d athletes matched, %d added, %d result rows (%d team, %d individual)",
		s.AthletesMatched, s.AthletesAdded, s.TeamRows+s.IndividualRows, s.TeamRows, s.IndividualRows)
}

// Report generates a detailed report of the merge
func (r *Result) Report() string {
	var b strings.Builder
	s := r.Metadata.Stats
	fmt.Fprintf(&b, `
Merge Report
============
Duration: %s

Athletes:
---------
Matched: %d
Added: %d
Key collisions: %d
NOCs added: %d

Results:
--------
Team rows: %d
Individual rows: %d
Unmatched roster athletes: %d

`, r.Metadata.Duration, s.AthletesMatched, s.AthletesAdded, s.Collisions, s.NOCsAdded,
		s.TeamRows, s.IndividualRows, s.UnmatchedRosterAthletes)

	if r.HasWarnings() {
		fmt.Fprintf(&b, "Warnings (%d):\n--------------\n", len(r.Warnings))
		for i, w := range r.Warnings {
			fmt.Fprintf(&b, "%d. %s\n", i+1, w)
		}
	}
	return b.String()
}

// ResultBuilder helps construct Result objects
type ResultBuilder struct {
	result *Result
}

// NewResultBuilder creates a new ResultBuilder
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		result: &Result{
			Warnings: []string{},
			Metadata: ResultMetadata{StartTime: now()},
		},
	}
}

// WithLegacy sets the merged dataset
func (b *ResultBuilder) WithLegacy(legacy *dataset.Legacy) *ResultBuilder {
	b.result.Legacy = legacy
	return b
}

// WithRows sets the synthesized rows
func (b *ResultBuilder) WithRows(rows []*dataset.ResultRow) *ResultBuilder {
	b.result.Rows = rows
	return b
}

// WithWarning adds a warning
func (b *ResultBuilder) WithWarning(warning string) *ResultBuilder {
	b.result.Warnings = append(b.result.Warnings, warning)
	return b
}

// WithPolicy records the switches in effect
func (b *ResultBuilder) WithPolicy(p Policy) *ResultBuilder {
	b.result.Metadata.Policy = p
	return b
}

// WithStatistics sets the statistics
func (b *ResultBuilder) WithStatistics(stats ResultStatistics) *ResultBuilder {
	b.result.Metadata.Stats = stats
	return b
}

// Build finalizes the result
func (b *ResultBuilder) Build() *Result {
	b.result.Metadata.EndTime = now()
	b.result.Metadata.Duration = b.result.Metadata.EndTime.Sub(b.result.Metadata.StartTime)
	return b.result
}
