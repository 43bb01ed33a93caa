package main

import (
	"encoding/json"
	"os"

	"marketledger/internal/application/service/market"
	"marketledger/internal/config"
	infrainstruments "marketledger/internal/infrastructure/instruments"
	inframarketdata "marketledger/internal/infrastructure/marketdata"
	"marketledger/internal/infrastructure/pricing"
	"marketledger/internal/interfaces/session"
	applogger "marketledger/internal/logger"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	bootstrap := logrus.New()
	bootstrap.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		bootstrap.Fatalf("failed to load config: %v", err)
	}

	logger, err := applogger.New(cfg.Log)
	if err != nil {
		bootstrap.Fatalf("failed to init logger: %v", err)
	}

	scriptPath := cfg.Session.File
	if len(os.Args) > 1 {
		scriptPath = os.Args[1]
	}
	if scriptPath == "" {
		logger.Fatal("session script is required: pass a path or set SESSION_FILE")
	}

	script, err := session.ParseFile(scriptPath)
	if err != nil {
		logger.Fatalf("failed to read session script: %v", err)
	}
	if script.Market == "" {
		script.Market = cfg.Market.Code
	}

	quotes := pricing.NewTable(decimal.Zero)
	svc, err := market.NewService(infrainstruments.NewRepository(), inframarketdata.NewRepository(), quotes, logger)
	if err != nil {
		logger.Fatalf("failed to init market: %v", err)
	}

	log := logger.WithFields(logrus.Fields{"env": cfg.Env, "market": script.Market})
	log.Infof("replaying session %s", scriptPath)

	report, err := session.NewRunner(svc, quotes, logger).Run(script)
	if err != nil {
		log.Fatalf("session failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Errorf("failed to write report: %v", err)
	}
	log.Info("session finished")
}
