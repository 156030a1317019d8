package agreement

import (
	"fmt"

	"videoinsights/internal/dataset"
)

// DefaultSources are the four annotation pipelines, in the order their host
// responses are compared.
var DefaultSources = []string{"GPT+Whisper", "Gemma+Whisper", "GPT Vision", "GPT Transcript"}

// Verdict classifies the host responses of one video across every source.
type Verdict int

const (
	// VerdictIncomplete means at least one source has no host_agrees member.
	VerdictIncomplete Verdict = iota
	VerdictAllAgree
	VerdictAllDisagree
	VerdictMixed
)

func (v Verdict) String() string {
	switch v {
	case VerdictAllAgree:
		return "all_agree"
	case VerdictAllDisagree:
		return "all_disagree"
	case VerdictMixed:
		return "mixed"
	default:
		return "incomplete"
	}
}

// Unanimous reports whether every source gave the same host response.
func (v Verdict) Unanimous() bool {
	return v == VerdictAllAgree || v == VerdictAllDisagree
}

// HostVerdict compares the host_agrees flag of every source for video. A
// null flag is a response that is not an agreement.
func HostVerdict(video *dataset.Video, sources []string) Verdict {
	agree, disagree := 0, 0
	for _, label := range sources {
		ann, ok := video.Source(label)
		if !ok || !ann.HasHostAgrees {
			return VerdictIncomplete
		}
		if ann.HostAgreed() {
			agree++
		} else {
			disagree++
		}
	}
	switch {
	case disagree == 0:
		return VerdictAllAgree
	case agree == 0:
		return VerdictAllDisagree
	default:
		return VerdictMixed
	}
}

// TopicStat aggregates the videos on which every source assigned Tag.
type TopicStat struct {
	Tag                    string `json:"tag"`
	TotalVideos            int    `json:"total_videos"`
	HostAgreesAllModels    int    `json:"host_agrees_all_models"`
	HostDisagreesAllModels int    `json:"host_disagrees_all_models"`
	HostMixed              int    `json:"host_mixed"`
}

// Tally holds per-tag statistics in the order tags were first seen.
type Tally struct {
	order []string
	stats map[string]*TopicStat

	// Considered counts videos that had tags from every source.
	Considered int
	// Skipped counts videos missing a source or its tags.
	Skipped int
}

// Tabulate intersects the tag sets of every source per video and credits the
// video's host verdict to each shared tag. Videos missing any source, or a
// source without tags, contribute nothing.
func Tabulate(videos []*dataset.Video, sources []string) (*Tally, error) {
	tally := &Tally{stats: make(map[string]*TopicStat)}
	for _, video := range videos {
		if !video.HasModels() {
			return nil, fmt.Errorf("video %s: missing models", video.ID())
		}
		if err := video.ParseModels(); err != nil {
			return nil, err
		}
		agreed, ok := sharedTags(video, sources)
		if !ok {
			tally.Skipped++
			continue
		}
		tally.Considered++
		if len(agreed) == 0 {
			continue
		}

		verdict := HostVerdict(video, sources)
		for _, tag := range agreed {
			stat := tally.stat(tag)
			stat.TotalVideos++
			switch verdict {
			case VerdictAllAgree:
				stat.HostAgreesAllModels++
			case VerdictAllDisagree:
				stat.HostDisagreesAllModels++
			case VerdictMixed:
				stat.HostMixed++
			}
		}
	}
	return tally, nil
}

// sharedTags returns the tags every source assigned, in the order of the
// first source's list. ok is false when a source or its tags are absent.
func sharedTags(video *dataset.Video, sources []string) ([]string, bool) {
	if len(sources) == 0 {
		return nil, false
	}
	sets := make([]map[string]struct{}, 0, len(sources)-1)
	var first []string
	for i, label := range sources {
		ann, found := video.Source(label)
		if !found || !ann.HasTags {
			return nil, false
		}
		if i == 0 {
			first = ann.Tags
			continue
		}
		set := make(map[string]struct{}, len(ann.Tags))
		for _, tag := range ann.Tags {
			set[tag] = struct{}{}
		}
		sets = append(sets, set)
	}

	seen := make(map[string]struct{}, len(first))
	agreed := make([]string, 0, len(first))
	for _, tag := range first {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		shared := true
		for _, set := range sets {
			if _, ok := set[tag]; !ok {
				shared = false
				break
			}
		}
		if shared {
			agreed = append(agreed, tag)
		}
	}
	return agreed, true
}

func (t *Tally) stat(tag string) *TopicStat {
	if stat, ok := t.stats[tag]; ok {
		return stat
	}
	stat := &TopicStat{Tag: tag}
	t.stats[tag] = stat
	t.order = append(t.order, tag)
	return stat
}

// Stat returns the statistics recorded for tag.
func (t *Tally) Stat(tag string) (TopicStat, bool) {
	stat, ok := t.stats[tag]
	if !ok {
		return TopicStat{}, false
	}
	return *stat, true
}

// Stats returns every tag's statistics in first-seen order.
func (t *Tally) Stats() []TopicStat {
	out := make([]TopicStat, 0, len(t.order))
	for _, tag := range t.order {
		out = append(out, *t.stats[tag])
	}
	return out
}
