package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

type PartnerRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewPartnerRepo(db *mongodrv.Database, opTimeout time.Duration) *PartnerRepoMongo {
	return &PartnerRepoMongo{
		coll:      db.Collection(ColPartners),
		opTimeout: opTimeout,
	}
}

func (repo *PartnerRepoMongo) GetByCode(ctx context.Context, code string) (core.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	var doc PartnerDoc
	err := repo.coll.FindOne(ctx, bson.M{"_id": code}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Partner{}, fmt.Errorf("%w: %q", core.ErrPartnerNotFound, code)
		}
		return core.Partner{}, fmt.Errorf("partners.findOne: %w", err)
	}
	return fromPartnerDoc(doc)
}

func (repo *PartnerRepoMongo) GetOffer(ctx context.Context, code string) (core.Offer, error) {
	p, err := repo.GetByCode(ctx, code)
	if err != nil {
		return core.Offer{}, err
	}
	return p.Offer, nil
}

// GetOperationCodes only reads the offer's code list.
func (repo *PartnerRepoMongo) GetOperationCodes(ctx context.Context, code string) ([]core.OperationCode, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	var doc struct {
		Offer struct {
			OperationCodes []string `bson:"operation_codes"`
		} `bson:"offer"`
	}
	opts := options.FindOne().SetProjection(bson.M{"offer.operation_codes": 1})
	err := repo.coll.FindOne(ctx, bson.M{"_id": code}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %q", core.ErrPartnerNotFound, code)
		}
		return nil, fmt.Errorf("partners.findOperationCodes: %w", err)
	}

	codes := make([]core.OperationCode, len(doc.Offer.OperationCodes))
	for i, c := range doc.Offer.OperationCodes {
		codes[i] = core.OperationCode(c)
	}
	return codes, nil
}

func (repo *PartnerRepoMongo) Upsert(ctx context.Context, p core.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	_, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": p.Code}, toPartnerDoc(p), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("partners.replace: %w", err)
	}
	return nil
}
