package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/benbeisheim/falconchess/internal/command"
	"github.com/benbeisheim/falconchess/internal/config"
	"github.com/benbeisheim/falconchess/internal/controller"
	"github.com/benbeisheim/falconchess/internal/obslog"
	"github.com/benbeisheim/falconchess/internal/service"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", os.Getenv("FALCONCHESS_CONFIG"), "path to a YAML config file")
	scriptPath := flag.String("script", "", "replay a YAML game script and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	if err := obslog.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 2
	}
	defer obslog.Sync()

	logger := obslog.L()
	logger.Debug("config loaded", zap.String("path", *configPath), zap.Int("max_games", cfg.MaxGames))

	// Initialize services
	gameManager := service.NewGameManager(cfg.MaxGames, logger.Named("games"))
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	cli := controller.NewCLIController(gameService, os.Stdout, cfg.Prompt, logger.Named("cli"))

	if *scriptPath != "" {
		script, err := command.LoadScriptFile(*scriptPath)
		if err != nil {
			logger.Error("load script", zap.String("path", *scriptPath), zap.Error(err))
			return 1
		}
		if err := cli.RunScript(script); err != nil {
			logger.Error("script failed", zap.String("name", script.Name), zap.Error(err))
			return 1
		}
		return 0
	}

	if err := cli.Run(os.Stdin); err != nil {
		logger.Error("session ended", zap.Error(err))
		return 1
	}
	return 0
}
