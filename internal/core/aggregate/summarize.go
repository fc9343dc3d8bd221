package aggregate

import (
	"math"
	"slices"

	"keyword-dashboard/internal/core/domain"
)

// CampaignSummary counts the keywords of one campaign.
type CampaignSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Paused int `json:"paused"`
}

// MatchTypeShare is the number of keywords using a match type and their
// share of all keywords, in percent rounded to one decimal.
type MatchTypeShare struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary holds statistics over a keyword snapshot. TotalKeywords, ByStatus
// and Campaigns count every keyword, Removed included. MatchTypes counts only
// keywords that are not Removed, as a share of TotalKeywords.
type Summary struct {
	TotalKeywords int                                 `json:"totalKeywords"`
	ByStatus      map[domain.Status]int               `json:"byStatus"`
	Campaigns     map[string]CampaignSummary          `json:"campaigns"`
	MatchTypes    map[domain.MatchType]MatchTypeShare `json:"matchTypes"`
	AdGroupCounts map[string]int                      `json:"adGroupCounts"`
	// CampaignNames and AdGroups are distinct values in first-seen order.
	// Empty ad groups are skipped.
	CampaignNames []string `json:"campaignNames"`
	AdGroups      []string `json:"adGroups"`
}

// Summarize computes status, campaign and match-type statistics.
func Summarize(keywords []domain.Keyword) Summary {
	s := Summary{
		TotalKeywords: len(keywords),
		ByStatus:      make(map[domain.Status]int, len(domain.Statuses)),
		Campaigns:     make(map[string]CampaignSummary),
		MatchTypes:    make(map[domain.MatchType]MatchTypeShare, len(domain.MatchTypes)),
		AdGroupCounts: make(map[string]int),
		CampaignNames: []string{},
		AdGroups:      []string{},
	}
	for _, st := range domain.Statuses {
		s.ByStatus[st] = 0
	}
	for _, mt := range domain.MatchTypes {
		s.MatchTypes[mt] = MatchTypeShare{}
	}

	for _, kw := range keywords {
		s.ByStatus[kw.Status]++

		cs, seen := s.Campaigns[kw.Campaign]
		if !seen {
			s.CampaignNames = append(s.CampaignNames, kw.Campaign)
		}
		cs.Total++
		switch kw.Status {
		case domain.StatusActive:
			cs.Active++
		case domain.StatusPaused:
			cs.Paused++
		}
		s.Campaigns[kw.Campaign] = cs

		if kw.Status != domain.StatusRemoved {
			share := s.MatchTypes[kw.MatchType]
			share.Count++
			s.MatchTypes[kw.MatchType] = share
		}

		if kw.AdGroup != "" {
			if _, ok := s.AdGroupCounts[kw.AdGroup]; !ok {
				s.AdGroups = append(s.AdGroups, kw.AdGroup)
			}
			s.AdGroupCounts[kw.AdGroup]++
		}
	}

	for mt, share := range s.MatchTypes {
		share.Percentage = percentage(share.Count, s.TotalKeywords)
		s.MatchTypes[mt] = share
	}
	return s
}

// SortedCampaigns returns the distinct campaign names in lexicographic
// order.
func (s Summary) SortedCampaigns() []string {
	return sortedCopy(s.CampaignNames)
}

// SortedAdGroups returns the distinct non-empty ad groups in lexicographic
// order.
func (s Summary) SortedAdGroups() []string {
	return sortedCopy(s.AdGroups)
}

// percentage returns count/total*100 rounded to one decimal, or 0 when
// total is 0.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

func sortedCopy(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}
