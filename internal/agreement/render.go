package agreement

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var sectionRule = strings.Repeat("=", 70)

// RenderText writes the plain-text report.
func RenderText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Topics with 100% Host Agreement Across All Models:")
	fmt.Fprintln(bw, sectionRule)
	for _, topic := range r.PerfectAgreement {
		fmt.Fprintf(bw, "%s: %d videos, 100%% host agreement\n", topic.Tag, topic.TotalVideos)
	}

	fmt.Fprintln(bw, "\nTopics with 100% Host Disagreement Across All Models:")
	fmt.Fprintln(bw, sectionRule)
	for _, topic := range r.PerfectDisagreement {
		fmt.Fprintf(bw, "%s: %d videos, 100%% host disagreement\n", topic.Tag, topic.TotalVideos)
	}

	fmt.Fprintln(bw, "\nMost Polarizing Topics (Mixed Host Response):")
	fmt.Fprintln(bw, sectionRule)
	for _, topic := range r.Polarizing {
		fmt.Fprintf(bw, "%s: %d videos, %.0f%% mixed responses\n", topic.Tag, topic.TotalVideos, topic.Rate)
	}

	fmt.Fprintln(bw, "\n\nModel Agreement Statistics:")
	fmt.Fprintln(bw, sectionRule)
	fmt.Fprintf(bw, "Videos where all %d models perfectly agree on host response: %s\n",
		len(r.Sources), FormatUnanimity(r.Unanimity))

	return bw.Flush()
}

// FormatUnanimity renders the statistic as "count/total (p.p%)".
func FormatUnanimity(u UnanimityStat) string {
	return fmt.Sprintf("%d/%d (%.1f%%)", u.Unanimous, u.Total, u.Percent())
}
