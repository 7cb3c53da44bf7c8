package derive

// SummaryLimit is the number of characters kept by Summarize.
const SummaryLimit = 255

// TruncationMarker is appended to summarized text that was cut.
const TruncationMarker = "..."

// Summarize keeps the first SummaryLimit characters of text and marks the
// cut. Text that is already short enough is returned unchanged, and so is
// text Summarize has already produced.
func Summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= SummaryLimit {
		return text
	}
	return string(runes[:SummaryLimit]) + TruncationMarker
}
