// Command traqcheck is the terminal client for the TraqCheck recruiter
// service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driven/api"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driven/config/file"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driven/watch"
	"github.com/parassrivastav/traqcheck-cli/internal/adapters/driving/cli"
	"github.com/parassrivastav/traqcheck-cli/internal/core/services"
	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	store, err := file.NewConfigStore(os.Getenv("TRAQCHECK_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if store.Config().Verbose {
		logger.SetVerbose(true)
	}

	cli.SetVersion(version)
	cli.SetConfigStore(store)
	cli.SetBuilder(func(apiBase string) (*cli.Services, error) {
		return buildServices(store, apiBase)
	})

	return cli.Execute()
}

// buildServices wires the HTTP client and core services. The base URL is
// resolved flag over environment over config file.
func buildServices(store *file.ConfigStore, apiBase string) (*cli.Services, error) {
	if apiBase == "" {
		apiBase = os.Getenv("TRAQCHECK_API_BASE")
	}
	if apiBase == "" {
		apiBase = store.Config().APIBaseURL
	}

	client, err := api.NewClient(apiBase)
	if err != nil {
		return nil, fmt.Errorf("configuring API client: %w", err)
	}

	s := &cli.Services{
		Candidate: services.NewCandidateService(client),
		Document:  services.NewDocumentService(client),
		Upload:    services.NewUploadService(client),
	}

	if dir := store.Config().DropDir; dir != "" {
		watcher, err := watch.NewDropWatcher(dir)
		if err != nil {
			// A broken drop dir degrades to manual uploads only.
			logger.Warn("drop watcher disabled: %v", err)
		} else {
			go watcher.Start(context.Background())
			s.Drops = watcher.Events()
		}
	}

	return s, nil
}
