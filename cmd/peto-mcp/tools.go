package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createScrapeRecruitersTool returns the scrape_recruiters tool definition
func createScrapeRecruitersTool() mcp.Tool {
	return mcp.NewTool("scrape_recruiters",
		mcp.WithDescription("Discover recruiter contacts on the public web for a company name, search phrase, or careers-page URL"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Company name, free-text query, or a direct http(s) URL to crawl"),
		),
		mcp.WithString("source",
			mcp.Description("Source hint: linkedin, company_site, general_web (default: try all)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum candidates to return (default from config)"),
		),
	)
}

// createListRecruitersTool returns the list_recruiters tool definition
func createListRecruitersTool() mcp.Tool {
	return mcp.NewTool("list_recruiters",
		mcp.WithDescription("List saved recruiters, optionally filtered by outreach status"),
		mcp.WithString("status",
			mcp.Description("Filter: pending, personalized, sent, replied, saved, error"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max results (default: 50)"),
		),
	)
}

// createGetRecruiterTool returns the get_recruiter tool definition
func createGetRecruiterTool() mcp.Tool {
	return mcp.NewTool("get_recruiter",
		mcp.WithDescription("Retrieve a single saved recruiter by ID"),
		mcp.WithString("recruiter_id",
			mcp.Required(),
			mcp.Description("Recruiter ID (format: rec_{uuid})"),
		),
	)
}

// createGetUsageTool returns the get_usage tool definition
func createGetUsageTool() mcp.Tool {
	return mcp.NewTool("get_usage",
		mcp.WithDescription("Report today's AI personalization call usage against the daily limit"),
	)
}
