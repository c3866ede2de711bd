package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/MrKriegler/go-home-insurance/internal/catalog"
	"github.com/MrKriegler/go-home-insurance/internal/core"
	"github.com/MrKriegler/go-home-insurance/internal/platform/config"
	"github.com/MrKriegler/go-home-insurance/internal/platform/logging"
	"github.com/MrKriegler/go-home-insurance/internal/store/dynamo"
	"github.com/MrKriegler/go-home-insurance/internal/store/mongo"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env, cfg.LogLevel)

	file := pflag.StringP("file", "f", cfg.PartnersFile, "partner catalogue (YAML)")
	dryRun := pflag.Bool("dry-run", false, "validate the catalogue without writing")
	timeout := pflag.Duration("timeout", 30*time.Second, "overall timeout")
	pflag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := seed(ctx, cfg, log, *file, *dryRun); err != nil {
		log.Error("seeding failed", "err", err)
		os.Exit(1)
	}
	log.Info("done seeding")
}

func seed(ctx context.Context, cfg *config.Config, log *slog.Logger, file string, dryRun bool) error {
	partners, err := catalog.Load(file)
	if err != nil {
		return err
	}
	log.Info("catalogue loaded", "file", file, "partners", len(partners))
	if dryRun {
		return nil
	}

	repo, closeRepo, err := partnerRepo(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	for _, p := range partners {
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert partner %q: %w", p.Code, err)
		}
		log.Info("partner seeded", "code", p.Code, "room_counts", len(p.Offer.PricingMatrix))
	}
	return nil
}

func partnerRepo(ctx context.Context, cfg *config.Config, log *slog.Logger) (core.PartnerRepo, func(), error) {
	switch cfg.DBType {
	case config.DBTypeMongo:
		client, err := mongo.NewClient(ctx, mongo.Config{
			URI:            cfg.MongoURI,
			Database:       cfg.MongoDB,
			ConnectTimeout: time.Duration(cfg.MongoConnectTimeoutSec) * time.Second,
		})
		if err != nil {
			return nil, nil, err
		}
		return mongo.NewPartnerRepo(client.DB, 5*time.Second), func() { _ = client.Close(context.Background()) }, nil
	case config.DBTypeDynamo:
		client, err := dynamo.NewClient(ctx, dynamo.Config{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := dynamo.EnsureTables(ctx, client.DB, log); err != nil {
			return nil, nil, err
		}
		return dynamo.NewPartnerRepo(client.DB), func() {}, nil
	}
	return nil, nil, fmt.Errorf("nothing to seed for DB_TYPE %q", cfg.DBType)
}
