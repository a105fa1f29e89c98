package analysis

import (
	"ImageAnalyzer/internal/entity"
	"fmt"
	"strings"
)

// FilterLabels keeps labels whose confidence is strictly above the threshold,
// preserving their order.
func FilterLabels(labels []entity.Label) []entity.Label {
	filtered := make([]entity.Label, 0, len(labels))
	for _, label := range labels {
		if label.Confidence > ConfidenceThreshold {
			filtered = append(filtered, label)
		}
	}
	return filtered
}

func JoinLabelNames(labels []entity.Label) string {
	names := make([]string, len(labels))
	for i, label := range labels {
		names[i] = label.Name
	}
	return strings.Join(names, LabelSeparator)
}

// SplitTranslation recovers one segment per label from the translated text.
// This relies on the translator keeping the joiner word, which natural
// language translation does not guarantee.
func SplitTranslation(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, TranslatedLabelSeparator)
}

// PairTranslations aligns translated names with labels by index. Without
// strict mode a length mismatch silently truncates to the shorter sequence.
func PairTranslations(labels []entity.Label, names []string, strict bool) ([]entity.TranslatedLabel, error) {
	if strict && len(labels) != len(names) {
		return nil, NewStageError(FormatError, fmt.Errorf("%w: %d labels, %d segments", ErrSegmentMismatch, len(labels), len(names)))
	}

	n := len(labels)
	if len(names) < n {
		n = len(names)
	}

	pairs := make([]entity.TranslatedLabel, n)
	for i := 0; i < n; i++ {
		pairs[i] = entity.TranslatedLabel{
			Label:          labels[i],
			TranslatedName: names[i],
		}
	}
	return pairs, nil
}

func FormatResults(pairs []entity.TranslatedLabel) []string {
	lines := make([]string, len(pairs))
	for i, pair := range pairs {
		lines[i] = fmt.Sprintf("\n %.2f%% de chance de ser do tipo %s", pair.Confidence, pair.TranslatedName)
	}
	return lines
}

func FormatBody(lines []string) string {
	return BodyPrefix + strings.Join(lines, "")
}
