package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrKriegler/go-home-insurance/internal/catalog"
	"github.com/MrKriegler/go-home-insurance/internal/core"
	"github.com/MrKriegler/go-home-insurance/internal/http/health"
	"github.com/MrKriegler/go-home-insurance/internal/platform/config"
	"github.com/MrKriegler/go-home-insurance/internal/store/dynamo"
	"github.com/MrKriegler/go-home-insurance/internal/store/memory"
	"github.com/MrKriegler/go-home-insurance/internal/store/mongo"
)

type store struct {
	partners core.PartnerRepo
	quotes   core.QuoteRepo
	policies core.PolicyRepo
	pinger   health.Pinger
	close    func()
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store, error) {
	switch cfg.DBType {
	case config.DBTypeMongo:
		log.Info("connecting to MongoDB", "db", cfg.MongoDB)
		client, err := mongo.NewClient(ctx, mongoConfig(cfg))
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
			_ = client.Close(context.Background())
			return nil, err
		}
		opTimeout := time.Duration(cfg.MongoOpTimeoutMs) * time.Millisecond
		return &store{
			partners: mongo.NewPartnerRepo(client.DB, opTimeout),
			quotes:   mongo.NewQuoteRepo(client.DB, opTimeout),
			policies: mongo.NewPolicyRepo(client.DB, opTimeout),
			pinger:   client,
			close:    func() { _ = client.Close(context.Background()) },
		}, nil

	case config.DBTypeDynamo:
		log.Info("connecting to DynamoDB", "region", cfg.AWSRegion, "endpoint", cfg.DynamoDBEndpoint)
		client, err := dynamo.NewClient(ctx, dynamoConfig(cfg))
		if err != nil {
			return nil, err
		}
		if err := dynamo.EnsureTables(ctx, client.DB, log); err != nil {
			return nil, err
		}
		return &store{
			partners: dynamo.NewPartnerRepo(client.DB),
			quotes:   dynamo.NewQuoteRepo(client.DB),
			policies: dynamo.NewPolicyRepo(client.DB),
			pinger:   client,
			close:    func() {},
		}, nil

	case config.DBTypeMemory:
		mem := memory.New()
		partners, err := catalog.Load(cfg.PartnersFile)
		if err != nil {
			return nil, fmt.Errorf("load partners for memory store: %w", err)
		}
		for _, p := range partners {
			if err := mem.Partners.Upsert(ctx, p); err != nil {
				return nil, err
			}
		}
		log.Info("using in-memory store", "partners", len(partners))
		return &store{
			partners: mem.Partners,
			quotes:   mem.Quotes,
			policies: mem.Policies,
			pinger:   mem,
			close:    func() {},
		}, nil
	}
	return nil, fmt.Errorf("unknown DB_TYPE %q", cfg.DBType)
}

func mongoConfig(cfg *config.Config) mongo.Config {
	return mongo.Config{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDB,
		ConnectTimeout: time.Duration(cfg.MongoConnectTimeoutSec) * time.Second,
	}
}

func dynamoConfig(cfg *config.Config) dynamo.Config {
	return dynamo.Config{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}
}
