package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/app"
	"github.com/kapu/contract-assistant-go/internal/config"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/util"
)

func main() {
	documentPath := flag.String("document", "", "path to a contract text file to load at startup")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Contract assistant starting...",
		zap.String("log_level", cfg.Logging.Level),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	ctx := context.Background()

	documentID := ""
	if *documentPath != "" {
		documentID, err = loadDocument(ctx, container, *documentPath)
		if err != nil {
			logger.Error("Failed to load document", zap.String("path", *documentPath), zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("Loaded document %q. Ask away.\n\n", filepath.Base(*documentPath))
	} else {
		fmt.Println("No document loaded. General contract questions still work;")
		fmt.Println("restart with -document <path> to analyze a specific file.")
		fmt.Println()
	}

	runREPL(ctx, container, documentID)
}

func loadDocument(ctx context.Context, container *app.Container, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	doc := &domain.Document{
		ID:    uuid.New().String(),
		Title: filepath.Base(path),
		Text:  string(data),
	}
	if err := container.Documents.Put(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID, nil
}

func runREPL(ctx context.Context, container *app.Container, documentID string) {
	sessionID := uuid.New().String()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Print("> ")
	for scanner.Scan() {
		question := strings.TrimSpace(scanner.Text())
		if question == "exit" || question == "quit" {
			break
		}
		if question == "" {
			fmt.Print("> ")
			continue
		}

		response := container.Router.Route(ctx, question, documentID, sessionID)

		fmt.Println()
		fmt.Println(response.Content)
		if len(response.Suggestions) > 0 {
			fmt.Println("\nYou could also ask:")
			for _, suggestion := range response.Suggestions {
				fmt.Printf("  - %s\n", suggestion)
			}
		}
		fmt.Println()
		fmt.Print("> ")
	}

	fmt.Println("\nGoodbye.")
}
