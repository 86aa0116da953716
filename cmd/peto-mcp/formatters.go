package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/peto/internal/models"
)

// formatScrapeResult formats discovery output as markdown
func formatScrapeResult(query string, result *models.ScrapeResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Scrape Results for \"%s\" (%d candidates)\n\n", query, len(result.ScrapedRecruiters)))
	sb.WriteString(fmt.Sprintf("%s\n\n", result.StatusMessage))

	for i, c := range result.ScrapedRecruiters {
		sb.WriteString(fmt.Sprintf("### %d. %s\n", i+1, c.RecruiterName))
		if c.Title != "" {
			sb.WriteString(fmt.Sprintf("**Title:** %s\n", c.Title))
		}
		if c.CompanyName != "" {
			sb.WriteString(fmt.Sprintf("**Company:** %s\n", c.CompanyName))
		}
		sb.WriteString(fmt.Sprintf("**Email:** %s\n", c.Email))
		if c.LinkedInProfileURL != "" {
			sb.WriteString(fmt.Sprintf("**LinkedIn:** %s\n", c.LinkedInProfileURL))
		}
		if c.Notes != "" {
			sb.WriteString(fmt.Sprintf("**Provenance:** %s\n", c.Notes))
		}
		sb.WriteString("\n---\n\n")
	}

	return sb.String()
}

// formatRecruiterList formats saved recruiters as markdown
func formatRecruiterList(recruiters []*models.Recruiter, status string) string {
	var sb strings.Builder
	if status != "" {
		sb.WriteString(fmt.Sprintf("## Saved Recruiters with status %q (%d)\n\n", status, len(recruiters)))
	} else {
		sb.WriteString(fmt.Sprintf("## Saved Recruiters (%d)\n\n", len(recruiters)))
	}

	if len(recruiters) == 0 {
		sb.WriteString("No recruiters found.\n")
		return sb.String()
	}

	for i, r := range recruiters {
		sb.WriteString(fmt.Sprintf("%d. **%s** (%s at %s)\n", i+1, r.RecruiterName, r.Title, r.CompanyName))
		sb.WriteString(fmt.Sprintf("   ID: %s | Status: %s | Email: %s\n", r.ID, r.Status, r.Email))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRecruiter formats a single recruiter as markdown
func formatRecruiter(r *models.Recruiter) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.RecruiterName))
	sb.WriteString(fmt.Sprintf("**ID:** %s\n", r.ID))
	sb.WriteString(fmt.Sprintf("**Company:** %s\n", r.CompanyName))
	sb.WriteString(fmt.Sprintf("**Title:** %s\n", r.Title))
	sb.WriteString(fmt.Sprintf("**Email:** %s\n", r.Email))
	if r.LinkedInProfileURL != "" {
		sb.WriteString(fmt.Sprintf("**LinkedIn:** %s\n", r.LinkedInProfileURL))
	}
	sb.WriteString(fmt.Sprintf("**Status:** %s\n", r.Status))
	if r.LastContacted != nil {
		sb.WriteString(fmt.Sprintf("**Last contacted:** %s\n", r.LastContacted.Format(time.RFC3339)))
	}
	sb.WriteString(fmt.Sprintf("**Created:** %s\n", r.CreatedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("**Updated:** %s\n\n", r.UpdatedAt.Format(time.RFC3339)))

	if r.PersonalizedEmailSubject != "" {
		sb.WriteString("## Personalized Email\n\n")
		sb.WriteString(fmt.Sprintf("**Subject:** %s\n\n", r.PersonalizedEmailSubject))
		sb.WriteString(r.PersonalizedEmailBody)
		sb.WriteString("\n\n")
	}
	if r.Notes != "" {
		sb.WriteString("## Notes\n\n")
		sb.WriteString(r.Notes)
		sb.WriteString("\n")
	}

	return sb.String()
}
