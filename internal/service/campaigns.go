package service

import (
	"sort"
	"strings"

	"github.com/noah-isme/tinta-academy-api/internal/dto"
	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// CampaignFilter narrows the campaign list.
type CampaignFilter struct {
	Search string
	Status string
}

// FilterCampaigns matches search on subject, course name or template name, then status.
func FilterCampaigns(campaigns []models.EmailCampaign, f CampaignFilter) []models.EmailCampaign {
	query := strings.ToLower(f.Search)
	out := make([]models.EmailCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		if query != "" && !containsFold(c.Subject, query) && !containsFold(c.CourseName, query) && !containsFold(c.TemplateName, query) {
			continue
		}
		if active(f.Status) && string(c.Status) != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out
}

var campaignRank = map[models.CampaignStatus]int{
	models.CampaignDraft:     0,
	models.CampaignScheduled: 1,
	models.CampaignSent:      2,
}

func campaignRankOf(s models.CampaignStatus) int {
	if r, ok := campaignRank[s]; ok {
		return r
	}
	return len(campaignRank)
}

// campaignDate is sentAt, else scheduledAt, else "".
func campaignDate(c models.EmailCampaign) string {
	if c.SentAt != "" {
		return c.SentAt
	}
	return c.ScheduledAt
}

// SortCampaigns orders by status (draft, scheduled, sent) then by date descending,
// comparing ISO strings. Undated campaigns trail their status group. The sort is stable.
func SortCampaigns(campaigns []models.EmailCampaign) []models.EmailCampaign {
	out := append([]models.EmailCampaign(nil), campaigns...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := campaignRankOf(out[i].Status), campaignRankOf(out[j].Status)
		if ri != rj {
			return ri < rj
		}
		return campaignDate(out[i]) > campaignDate(out[j])
	})
	return out
}

// CountCampaignsByStatus counts over the unfiltered list.
func CountCampaignsByStatus(campaigns []models.EmailCampaign) dto.CampaignStatusCounts {
	counts := dto.CampaignStatusCounts{All: len(campaigns)}
	for _, c := range campaigns {
		switch c.Status {
		case models.CampaignDraft:
			counts.Draft++
		case models.CampaignScheduled:
			counts.Scheduled++
		case models.CampaignSent:
			counts.Sent++
		}
	}
	return counts
}
