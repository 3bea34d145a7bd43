package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/promptdeck/llmgate/config"
	"github.com/promptdeck/llmgate/gateway"
	"github.com/promptdeck/llmgate/llm"
	gatelogger "github.com/promptdeck/llmgate/logger"
)

const defaultTimeout = 120 * time.Second

func main() {
	// Parse command-line flags
	var (
		configPath = flag.String("config", "models.yaml", "Path to the model configuration file")
		model      = flag.String("model", "", "Model config name to use (required)")
		stream     = flag.Bool("stream", false, "Stream tokens as they arrive")
		think      = flag.Bool("thinking", false, "Request and print the model's reasoning trace")
		listModels = flag.Bool("list-models", false, "List the models the configured vendor offers")
		check      = flag.Bool("check", false, "Test connectivity for the configured model and exit")
		logFile    = flag.String("logfile", "", "Path to log file. If not set, logs to stdout/stderr")
		pretty     = flag.Bool("pretty", false, "Use pretty console output (only valid when logfile is not set)")
	)
	flag.Parse()

	if *logFile != "" && *pretty {
		fmt.Fprintf(os.Stderr, "Error: --logfile and --pretty are mutually exclusive\n")
		os.Exit(1)
	}
	if *model == "" {
		fmt.Fprintf(os.Stderr, "Error: --model is required\n")
		flag.Usage()
		os.Exit(1)
	}

	logger, err := gatelogger.InitWithOptions(*logFile, *pretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	store, err := config.Load(*configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", *configPath).Msg("Failed to load model configuration")
		fmt.Fprintf(os.Stderr, "Cannot load model configuration from %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	svc := gateway.NewDefault(store, logger)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	switch {
	case *check:
		if err := svc.TestConnection(ctx, *model); err != nil {
			fmt.Fprintf(os.Stderr, "Connection test failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("ok")
	case *listModels:
		models, err := svc.FetchModels(ctx, *model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list models: %v\n", err)
			os.Exit(1)
		}
		for _, m := range models {
			fmt.Println(m.ID)
		}
	default:
		prompt := strings.Join(flag.Args(), " ")
		if strings.TrimSpace(prompt) == "" {
			fmt.Fprintf(os.Stderr, "Error: a prompt is required\n")
			os.Exit(1)
		}
		if err := runPrompt(ctx, svc, *model, prompt, *stream, *think); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}

func runPrompt(ctx context.Context, svc *gateway.Service, model, prompt string, stream, think bool) error {
	messages := []llm.Message{llm.NewMessage(llm.RoleUser, prompt)}

	switch {
	case think:
		resp, err := svc.SendMessageWithThinking(ctx, model, messages)
		if err != nil {
			return err
		}
		if resp.HasThinking() {
			fmt.Printf("--- thinking ---\n%s\n--- answer ---\n", resp.Thinking)
		}
		fmt.Println(resp.Content)
	case stream:
		err := svc.SendMessageStream(ctx, model, messages, llm.StreamHandlers{
			OnToken:    func(token string) { fmt.Print(token) },
			OnComplete: func() { fmt.Println() },
		})
		if err != nil {
			return err
		}
	default:
		text, err := svc.SendMessage(ctx, model, messages)
		if err != nil {
			return err
		}
		fmt.Println(text)
	}
	return nil
}
