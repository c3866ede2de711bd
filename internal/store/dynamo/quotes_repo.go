package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

type QuoteRepo struct {
	client *dynamodb.Client
}

func NewQuoteRepo(client *dynamodb.Client) *QuoteRepo {
	return &QuoteRepo{client: client}
}

func (r *QuoteRepo) Save(ctx context.Context, q core.Quote) error {
	err := r.put(ctx, q, expression.AttributeNotExists(expression.Name("id")))
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: quote %s", core.ErrConflict, q.ID)
		}
		return err
	}
	return nil
}

func (r *QuoteRepo) Get(ctx context.Context, id string) (core.Quote, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableQuotes),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return core.Quote{}, fmt.Errorf("quotes.getItem: %w", err)
	}
	if out.Item == nil {
		return core.Quote{}, fmt.Errorf("%w: %s", core.ErrQuoteNotFound, id)
	}

	var item QuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Quote{}, fmt.Errorf("quotes.unmarshal: %w", err)
	}
	return item.ToCore()
}

func (r *QuoteRepo) Update(ctx context.Context, q core.Quote) (core.Quote, error) {
	err := r.put(ctx, q, expression.AttributeExists(expression.Name("id")))
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return core.Quote{}, fmt.Errorf("%w: %s", core.ErrQuoteNotFound, q.ID)
		}
		return core.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepo) put(ctx context.Context, q core.Quote, cond expression.ConditionBuilder) error {
	av, err := attributevalue.MarshalMap(quoteItemFromCore(q))
	if err != nil {
		return fmt.Errorf("quotes.marshal: %w", err)
	}

	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("quotes.buildExpr: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(TableQuotes),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return err
		}
		return fmt.Errorf("quotes.putItem: %w", err)
	}
	return nil
}
