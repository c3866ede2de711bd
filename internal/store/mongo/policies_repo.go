package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

type PolicyRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewPolicyRepo(db *mongodrv.Database, opTimeout time.Duration) *PolicyRepoMongo {
	return &PolicyRepoMongo{
		coll:      db.Collection(ColPolicies),
		opTimeout: opTimeout,
	}
}

func (repo *PolicyRepoMongo) Save(ctx context.Context, policy core.Policy) (core.Policy, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, toPolicyDoc(policy))
	if err != nil {
		if isDuplicateKey(err) {
			return core.Policy{}, fmt.Errorf("%w: %s", core.ErrPolicyExists, policy.ID)
		}
		return core.Policy{}, fmt.Errorf("policies.insert: %w", err)
	}
	return policy, nil
}

func (repo *PolicyRepoMongo) Get(ctx context.Context, id string) (core.Policy, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	var doc PolicyDoc
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Policy{}, fmt.Errorf("%w: %s", core.ErrPolicyNotFound, id)
		}
		return core.Policy{}, fmt.Errorf("policies.findOne: %w", err)
	}
	return fromPolicyDoc(doc)
}

func (repo *PolicyRepoMongo) Update(ctx context.Context, policy core.Policy) error {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": policy.ID}, toPolicyDoc(policy))
	if err != nil {
		return fmt.Errorf("policies.replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", core.ErrPolicyNotFound, policy.ID)
	}
	return nil
}

func (repo *PolicyRepoMongo) IsIDAvailable(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("policies.count: %w", err)
	}
	return n == 0, nil
}

func (repo *PolicyRepoMongo) UpdateAfterPayment(ctx context.Context, id string, paidAt, subscribedAt time.Time, status core.PolicyStatus) error {
	return repo.setFields(ctx, id, bson.M{
		"paid_at":       paidAt,
		"subscribed_at": subscribedAt,
		"status":        string(status),
		"updated_at":    paidAt,
	})
}

func (repo *PolicyRepoMongo) UpdateAfterSignature(ctx context.Context, id string, signedAt time.Time, status core.PolicyStatus) error {
	return repo.setFields(ctx, id, bson.M{
		"signed_at":  signedAt,
		"status":     string(status),
		"updated_at": signedAt,
	})
}

func (repo *PolicyRepoMongo) setFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	res, err := repo.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("policies.update: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", core.ErrPolicyNotFound, id)
	}
	return nil
}
