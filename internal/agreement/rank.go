package agreement

import "sort"

// RankedTopic is a tag selected for one of the ranked lists together with the
// rate that qualified it, as a percentage of TotalVideos.
type RankedTopic struct {
	TopicStat
	Rate float64 `json:"rate"`
}

func rate(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func (t *Tally) eligible(minVideos int, count func(TopicStat) int, keep func(float64) bool) []RankedTopic {
	var out []RankedTopic
	for _, stat := range t.Stats() {
		if stat.TotalVideos < minVideos {
			continue
		}
		r := rate(count(stat), stat.TotalVideos)
		if keep(r) {
			out = append(out, RankedTopic{TopicStat: stat, Rate: r})
		}
	}
	return out
}

func sortByVideos(topics []RankedTopic) {
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].TotalVideos > topics[j].TotalVideos
	})
}

// PerfectAgreement returns tags seen on at least minVideos videos where every
// one of them had all sources agree with the host, most videos first.
func (t *Tally) PerfectAgreement(minVideos int) []RankedTopic {
	topics := t.eligible(minVideos,
		func(s TopicStat) int { return s.HostAgreesAllModels },
		func(r float64) bool { return r == 100 })
	sortByVideos(topics)
	return topics
}

// PerfectDisagreement is PerfectAgreement for unanimous disagreement.
func (t *Tally) PerfectDisagreement(minVideos int) []RankedTopic {
	topics := t.eligible(minVideos,
		func(s TopicStat) int { return s.HostDisagreesAllModels },
		func(r float64) bool { return r == 100 })
	sortByVideos(topics)
	return topics
}

// Polarizing returns tags seen on at least minVideos videos whose share of
// mixed host responses is at least threshold percent, highest share first.
// A positive limit truncates the list.
func (t *Tally) Polarizing(minVideos int, threshold float64, limit int) []RankedTopic {
	topics := t.eligible(minVideos,
		func(s TopicStat) int { return s.HostMixed },
		func(r float64) bool { return r >= threshold })
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Rate > topics[j].Rate
	})
	if limit > 0 && len(topics) > limit {
		topics = topics[:limit]
	}
	return topics
}
