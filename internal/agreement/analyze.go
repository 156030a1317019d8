package agreement

import (
	"errors"

	"videoinsights/internal/dataset"
)

const (
	DefaultMinVideos           = 3
	DefaultPolarizingThreshold = 50.0
	DefaultTopPolarizing       = 10
)

// Options tunes report eligibility.
type Options struct {
	Sources             []string
	MinVideos           int
	PolarizingThreshold float64
	TopPolarizing       int
}

// DefaultOptions returns the standard four-source report settings.
func DefaultOptions() Options {
	sources := make([]string, len(DefaultSources))
	copy(sources, DefaultSources)
	return Options{
		Sources:             sources,
		MinVideos:           DefaultMinVideos,
		PolarizingThreshold: DefaultPolarizingThreshold,
		TopPolarizing:       DefaultTopPolarizing,
	}
}

// UnanimityStat counts videos whose sources all gave the same host response.
type UnanimityStat struct {
	Unanimous int `json:"unanimous"`
	Total     int `json:"total"`
}

// Percent returns Unanimous as a percentage of Total, or 0 for an empty
// collection.
func (u UnanimityStat) Percent() float64 {
	return rate(u.Unanimous, u.Total)
}

// Unanimity scans every video, independent of tags. Total is the full
// collection size, including videos missing a source.
func Unanimity(videos []*dataset.Video, sources []string) UnanimityStat {
	stat := UnanimityStat{Total: len(videos)}
	for _, video := range videos {
		if HostVerdict(video, sources).Unanimous() {
			stat.Unanimous++
		}
	}
	return stat
}

// Report is the full analysis output.
type Report struct {
	Sources             []string      `json:"sources"`
	MinVideos           int           `json:"min_videos"`
	Topics              int           `json:"topics"`
	VideosConsidered    int           `json:"videos_considered"`
	VideosSkipped       int           `json:"videos_skipped"`
	PerfectAgreement    []RankedTopic `json:"perfect_agreement"`
	PerfectDisagreement []RankedTopic `json:"perfect_disagreement"`
	Polarizing          []RankedTopic `json:"polarizing"`
	Unanimity           UnanimityStat `json:"unanimity"`
	UnanimityPercent    float64       `json:"unanimity_percent"`
}

// Analyze tabulates videos and builds every ranked list.
func Analyze(videos []*dataset.Video, opts Options) (Report, error) {
	if len(opts.Sources) == 0 {
		return Report{}, errors.New("at least one source is required")
	}
	tally, err := Tabulate(videos, opts.Sources)
	if err != nil {
		return Report{}, err
	}
	unanimity := Unanimity(videos, opts.Sources)
	return Report{
		Sources:             opts.Sources,
		MinVideos:           opts.MinVideos,
		Topics:              len(tally.order),
		VideosConsidered:    tally.Considered,
		VideosSkipped:       tally.Skipped,
		PerfectAgreement:    nonNil(tally.PerfectAgreement(opts.MinVideos)),
		PerfectDisagreement: nonNil(tally.PerfectDisagreement(opts.MinVideos)),
		Polarizing:          nonNil(tally.Polarizing(opts.MinVideos, opts.PolarizingThreshold, opts.TopPolarizing)),
		Unanimity:           unanimity,
		UnanimityPercent:    unanimity.Percent(),
	}, nil
}

func nonNil(topics []RankedTopic) []RankedTopic {
	if topics == nil {
		return []RankedTopic{}
	}
	return topics
}
