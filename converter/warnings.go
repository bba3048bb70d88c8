package converter

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Warning type constants
const (
	WarningNoResolvableDate = "no_resolvable_date"
	WarningUnparseableTime  = "unparseable_time"
	WarningNoLine           = "no_line"
	WarningNoSummary        = "no_summary"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings during export and outputs consolidated
// summaries. It is not safe for concurrent use; create one per export. A nil
// aggregator discards everything.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w == nil {
		return
	}
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the occurrences of one warning type.
func (w *WarningAggregator) Count(warningType string) int {
	if w == nil || w.warnings[warningType] == nil {
		return 0
	}
	return w.warnings[warningType].count
}

// Types returns the warning types seen, sorted.
func (w *WarningAggregator) Types() []string {
	if w == nil {
		return nil
	}
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// LogAll outputs all collected warnings in consolidated format, one Warn
// entry per warning type.
func (w *WarningAggregator) LogAll(logger *zap.Logger, source, agencyID string) {
	if w == nil || len(w.warnings) == 0 {
		return
	}
	for _, warningType := range w.Types() {
		info := w.warnings[warningType]
		logger.Warn(formatWarningMessage(warningType, source, agencyID, info),
			zap.String("warning", warningType),
			zap.String("source", source),
			zap.Int("occurrences", info.count),
			zap.Strings("examples", info.examples),
		)
	}
}

// formatWarningMessage creates a human-readable warning message
func formatWarningMessage(warningType, source, agencyID string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningNoResolvableDate:
		description = "records with no resolvable date"
		action = "Exporting without a validity period"
	case WarningUnparseableTime:
		description = "records with an unparseable time of day"
		action = "Ignoring the time of day"
	case WarningNoLine:
		description = "records with no line"
		action = "Exporting without an affected line"
	case WarningNoSummary:
		description = "records with nothing to summarize"
		action = "Exporting with an empty summary"
	default:
		description = "unknown issue"
		action = "Exporting with fallback behavior"
	}

	return fmt.Sprintf("Records from %s for agency %s have %s (%d occurrences). %s. Examples: %s",
		source, agencyID, description, info.count, action, strings.Join(info.examples, ", "))
}
