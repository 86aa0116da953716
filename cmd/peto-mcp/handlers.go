package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
	"github.com/ternarybob/peto/internal/models"
)

// handleScrapeRecruiters implements the scrape_recruiters tool
func handleScrapeRecruiters(scraperService interfaces.ScraperService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: query parameter is required"),
				},
			}, nil
		}

		source := models.ScrapeSource(request.GetString("source", ""))
		if source != "" && !source.Valid() {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Error: unknown source %q (use linkedin, company_site, or general_web)", source)),
				},
			}, nil
		}

		result := scraperService.ScrapeRecruiters(ctx, &models.ScrapeRequest{
			Query:      query,
			Source:     source,
			MaxResults: request.GetInt("max_results", 0),
		})

		markdown := formatScrapeResult(query, result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleListRecruiters implements the list_recruiters tool
func handleListRecruiters(storage interfaces.RecruiterStorage, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", 50)
		status := request.GetString("status", "")

		recruiters, err := storage.ListRecruiters()
		if err != nil {
			logger.Error().Err(err).Msg("List recruiters failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("List error: %v", err)),
				},
			}, nil
		}

		if status != "" {
			filtered := recruiters[:0]
			for _, r := range recruiters {
				if string(r.Status) == status {
					filtered = append(filtered, r)
				}
			}
			recruiters = filtered
		}
		if len(recruiters) > limit {
			recruiters = recruiters[:limit]
		}

		markdown := formatRecruiterList(recruiters, status)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleGetRecruiter implements the get_recruiter tool
func handleGetRecruiter(storage interfaces.RecruiterStorage, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		recruiterID, err := request.RequireString("recruiter_id")
		if err != nil || recruiterID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: recruiter_id parameter is required"),
				},
			}, nil
		}

		recruiter, err := storage.GetRecruiter(recruiterID)
		if err != nil {
			logger.Error().Err(err).Str("recruiter_id", recruiterID).Msg("Get recruiter failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Recruiter not found: %v", err)),
				},
			}, nil
		}

		markdown := formatRecruiter(recruiter)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleGetUsage implements the get_usage tool
func handleGetUsage(usageService interfaces.UsageService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		remaining, err := usageService.Remaining()
		if err != nil {
			logger.Error().Err(err).Msg("Usage lookup failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Usage error: %v", err)),
				},
			}, nil
		}

		limit := usageService.Limit()
		markdown := fmt.Sprintf("## AI Usage\n\n**Daily limit:** %d\n**Used today:** %d\n**Remaining:** %d\n",
			limit, limit-remaining, remaining)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}
