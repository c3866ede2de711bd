package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

type PolicyRepo struct {
	client *dynamodb.Client
}

func NewPolicyRepo(client *dynamodb.Client) *PolicyRepo {
	return &PolicyRepo{client: client}
}

func policyKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (r *PolicyRepo) Save(ctx context.Context, policy core.Policy) (core.Policy, error) {
	av, err := attributevalue.MarshalMap(policyItemFromCore(policy))
	if err != nil {
		return core.Policy{}, fmt.Errorf("policies.marshal: %w", err)
	}

	cond := expression.AttributeNotExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return core.Policy{}, fmt.Errorf("policies.buildExpr: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(TablePolicies),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return core.Policy{}, fmt.Errorf("%w: %s", core.ErrPolicyExists, policy.ID)
		}
		return core.Policy{}, fmt.Errorf("policies.putItem: %w", err)
	}
	return policy, nil
}

func (r *PolicyRepo) Get(ctx context.Context, id string) (core.Policy, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(TablePolicies),
		Key:            policyKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return core.Policy{}, fmt.Errorf("policies.getItem: %w", err)
	}
	if out.Item == nil {
		return core.Policy{}, fmt.Errorf("%w: %s", core.ErrPolicyNotFound, id)
	}

	var item PolicyItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Policy{}, fmt.Errorf("policies.unmarshal: %w", err)
	}
	return item.ToCore()
}

// Update overwrites the item. No version attribute is checked.
func (r *PolicyRepo) Update(ctx context.Context, policy core.Policy) error {
	av, err := attributevalue.MarshalMap(policyItemFromCore(policy))
	if err != nil {
		return fmt.Errorf("policies.marshal: %w", err)
	}

	cond := expression.AttributeExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("policies.buildExpr: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(TablePolicies),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: %s", core.ErrPolicyNotFound, policy.ID)
		}
		return fmt.Errorf("policies.putItem: %w", err)
	}
	return nil
}

func (r *PolicyRepo) IsIDAvailable(ctx context.Context, id string) (bool, error) {
	expr, err := expression.NewBuilder().WithProjection(expression.NamesList(expression.Name("id"))).Build()
	if err != nil {
		return false, fmt.Errorf("policies.buildExpr: %w", err)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(TablePolicies),
		Key:                      policyKey(id),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("policies.getItem: %w", err)
	}
	return out.Item == nil, nil
}

func (r *PolicyRepo) UpdateAfterPayment(ctx context.Context, id string, paidAt, subscribedAt time.Time, status core.PolicyStatus) error {
	update := expression.Set(
		expression.Name("paid_at"), expression.Value(paidAt.UTC().Format(time.RFC3339Nano)),
	).Set(
		expression.Name("subscribed_at"), expression.Value(subscribedAt.UTC().Format(time.RFC3339Nano)),
	).Set(
		expression.Name("status"), expression.Value(string(status)),
	).Set(
		expression.Name("updated_at"), expression.Value(paidAt.UTC().Format(time.RFC3339Nano)),
	)
	return r.updateFields(ctx, id, update)
}

func (r *PolicyRepo) UpdateAfterSignature(ctx context.Context, id string, signedAt time.Time, status core.PolicyStatus) error {
	update := expression.Set(
		expression.Name("signed_at"), expression.Value(signedAt.UTC().Format(time.RFC3339Nano)),
	).Set(
		expression.Name("status"), expression.Value(string(status)),
	).Set(
		expression.Name("updated_at"), expression.Value(signedAt.UTC().Format(time.RFC3339Nano)),
	)
	return r.updateFields(ctx, id, update)
}

func (r *PolicyRepo) updateFields(ctx context.Context, id string, update expression.UpdateBuilder) error {
	cond := expression.AttributeExists(expression.Name("id"))
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("policies.buildExpr: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(TablePolicies),
		Key:                       policyKey(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: %s", core.ErrPolicyNotFound, id)
		}
		return fmt.Errorf("policies.updateItem: %w", err)
	}
	return nil
}
