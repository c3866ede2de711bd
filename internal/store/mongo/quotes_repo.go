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

type QuoteRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewQuoteRepo(db *mongodrv.Database, opTimeout time.Duration) *QuoteRepoMongo {
	return &QuoteRepoMongo{
		coll:      db.Collection(ColQuotes),
		opTimeout: opTimeout,
	}
}

func (repo *QuoteRepoMongo) Save(ctx context.Context, q core.Quote) error {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, toQuoteDoc(q))
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: quote %s", core.ErrConflict, q.ID)
		}
		return fmt.Errorf("quotes.insert: %w", err)
	}
	return nil
}

func (repo *QuoteRepoMongo) Get(ctx context.Context, id string) (core.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	var doc QuoteDoc
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Quote{}, fmt.Errorf("%w: %s", core.ErrQuoteNotFound, id)
		}
		return core.Quote{}, fmt.Errorf("quotes.findOne: %w", err)
	}
	return fromQuoteDoc(doc)
}

// Update replaces the whole document. There is no version check: the last
// writer wins.
func (repo *QuoteRepoMongo) Update(ctx context.Context, q core.Quote) (core.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": q.ID}, toQuoteDoc(q))
	if err != nil {
		return core.Quote{}, fmt.Errorf("quotes.replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return core.Quote{}, fmt.Errorf("%w: %s", core.ErrQuoteNotFound, q.ID)
	}
	return q, nil
}
