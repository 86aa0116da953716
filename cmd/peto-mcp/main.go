package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"
	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/services/scraper"
	"github.com/ternarybob/peto/internal/services/usage"
	"github.com/ternarybob/peto/internal/storage/badger"
)

func main() {
	configPath := os.Getenv("PETO_CONFIG")
	if configPath == "" {
		configPath = "peto.toml"
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Console-only logger at warn level so log lines do not pollute the
	// MCP stdio transport
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:       arbor_models.LogWriterTypeConsole,
		TimeFormat: "15:04:05",
	}).WithLevelFromString("warn")

	storageManager, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer storageManager.Close()

	scraperService, err := scraper.NewService(scraper.FromAppConfig(config.Scraper), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize scraper service")
	}

	usageService := usage.NewService(storageManager.UsageStorage(), config.Usage, logger)

	mcpServer := server.NewMCPServer(
		"peto",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createScrapeRecruitersTool(), handleScrapeRecruiters(scraperService, logger))
	mcpServer.AddTool(createListRecruitersTool(), handleListRecruiters(storageManager.RecruiterStorage(), logger))
	mcpServer.AddTool(createGetRecruiterTool(), handleGetRecruiter(storageManager.RecruiterStorage(), logger))
	mcpServer.AddTool(createGetUsageTool(), handleGetUsage(usageService, logger))

	// Blocks on stdio
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
