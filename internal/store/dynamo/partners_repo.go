package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

type PartnerRepo struct {
	client *dynamodb.Client
}

func NewPartnerRepo(client *dynamodb.Client) *PartnerRepo {
	return &PartnerRepo{client: client}
}

func partnerKey(code string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"code": &types.AttributeValueMemberS{Value: code},
	}
}

func (r *PartnerRepo) GetByCode(ctx context.Context, code string) (core.Partner, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(TablePartners),
		Key:            partnerKey(code),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return core.Partner{}, fmt.Errorf("partners.getItem: %w", err)
	}
	if out.Item == nil {
		return core.Partner{}, fmt.Errorf("%w: %q", core.ErrPartnerNotFound, code)
	}

	var item PartnerItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.Partner{}, fmt.Errorf("partners.unmarshal: %w", err)
	}
	return item.ToCore()
}

func (r *PartnerRepo) GetOffer(ctx context.Context, code string) (core.Offer, error) {
	p, err := r.GetByCode(ctx, code)
	if err != nil {
		return core.Offer{}, err
	}
	return p.Offer, nil
}

// GetOperationCodes projects only the code list.
func (r *PartnerRepo) GetOperationCodes(ctx context.Context, code string) ([]core.OperationCode, error) {
	proj := expression.NamesList(expression.Name("code"), expression.Name("operation_codes"))
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return nil, fmt.Errorf("partners.buildExpr: %w", err)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(TablePartners),
		Key:                      partnerKey(code),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("partners.getItem: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("%w: %q", core.ErrPartnerNotFound, code)
	}

	var item struct {
		OperationCodes []string `dynamodbav:"operation_codes"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("partners.unmarshal: %w", err)
	}
	return operationCodes(item.OperationCodes), nil
}

func (r *PartnerRepo) Upsert(ctx context.Context, p core.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(partnerItemFromCore(p))
	if err != nil {
		return fmt.Errorf("partners.marshal: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(TablePartners),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("partners.putItem: %w", err)
	}
	return nil
}
