package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/minsukim/studydiag/internal/diagnosis"
	"github.com/minsukim/studydiag/internal/handler"
	appI18n "github.com/minsukim/studydiag/internal/i18n"
	"github.com/minsukim/studydiag/internal/quiz"
	"github.com/minsukim/studydiag/internal/waitlist"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "studydiag",
		Short: "Study diagnosis and quiz backend",
	}

	serve := serveCmd()
	root.AddCommand(serve, dumpCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `studydiag --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":8080", "HTTP listen address")
	f.StringP("lang", "l", "ko", "Language for user-facing messages (ko, en)")
	f.String("llm-provider", "openai", "Completion provider (openai, gemini, none)")
	f.String("openai-url", "", "OpenAI-compatible API base URL (empty = default)")
	f.String("openai-key", "", "OpenAI API key (empty = fallback diagnosis only)")
	f.String("openai-model", "gpt-4o-mini", "OpenAI model name")
	f.String("gemini-key", "", "Gemini API key (empty = fallback diagnosis only)")
	f.String("gemini-model", "gemini-2.0-flash", "Gemini model name")
	f.String("notion-token", "", "Notion integration token for waitlist signups")
	f.String("notion-database-id", "", "Notion database ID for waitlist signups")
	f.Int("question-time", quiz.DefaultQuestionTime, "Per-question countdown in seconds")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the bundled quiz reference data as JSON",
		RunE:  runDump,
	}
	f := cmd.Flags()
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("STUDYDIAG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("studydiag")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/studydiag")
	v.AddConfigPath("/etc/studydiag")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	bank, err := quiz.LoadBank()
	if err != nil {
		return fmt.Errorf("load quiz bank: %w", err)
	}

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}

	provider, err := buildProvider(cmd.Context(), v)
	if err != nil {
		return fmt.Errorf("create completion provider: %w", err)
	}
	synth := diagnosis.NewSynthesizer(provider)

	var registrar waitlist.Registrar
	if token, dbID := v.GetString("notion-token"), v.GetString("notion-database-id"); token != "" && dbID != "" {
		registrar = waitlist.NewNotionRegistrar(token, dbID)
		slog.Info("waitlist registrar configured")
	} else {
		slog.Info("no waitlist registrar configured, signups are logged only")
	}

	manager := quiz.NewManager(bank, v.GetInt("question-time"))
	h := handler.New(synth, manager, waitlist.NewService(registrar))

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appI18n.Middleware(lang))
	h.Routes(r)

	addr := v.GetString("addr")
	slog.Info("starting server",
		"addr", addr,
		"lang", lang,
		"llm_provider", v.GetString("llm-provider"),
		"questions", len(bank.Questions),
		"question_time", v.GetInt("question-time"),
	)
	return http.ListenAndServe(addr, r)
}

// buildProvider returns nil when no credential is configured; the synthesizer
// then serves fallback reports only.
func buildProvider(ctx context.Context, v *viper.Viper) (diagnosis.Provider, error) {
	switch strings.ToLower(v.GetString("llm-provider")) {
	case "openai":
		key := v.GetString("openai-key")
		if key == "" {
			slog.Info("no OpenAI key configured, serving fallback diagnoses")
			return nil, nil
		}
		return diagnosis.NewOpenAIProvider(v.GetString("openai-url"), key, v.GetString("openai-model")), nil
	case "gemini":
		key := v.GetString("gemini-key")
		if key == "" {
			slog.Info("no Gemini key configured, serving fallback diagnoses")
			return nil, nil
		}
		return diagnosis.NewGeminiProvider(ctx, key, v.GetString("gemini-model"))
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown llm-provider %q", v.GetString("llm-provider"))
	}
}

func runDump(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)

	bank, err := quiz.LoadBank()
	if err != nil {
		return fmt.Errorf("load quiz bank: %w", err)
	}

	data, err := json.MarshalIndent(map[string]any{
		"questions":      bank.Questions,
		"schoolRankings": bank.SchoolRankings,
		"playerRankings": bank.PlayerRankings,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
