package repository

import (
	"context"
	"errors"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDebitosTableName = "debitos"
	debitosLicitacaoIDIndex = "licitacao_id-index"
)

type debitItem struct {
	ID                string  `dynamodbav:"id"`
	LicitacaoID       string  `dynamodbav:"licitacao_id"`
	ClienteID         string  `dynamodbav:"cliente_id"`
	ClienteNome       string  `dynamodbav:"cliente_nome"`
	Descricao         string  `dynamodbav:"descricao"`
	Valor             float64 `dynamodbav:"valor"`
	Status            string  `dynamodbav:"status"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// DebitDynamoRepository persists debits in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: licitacao_id-index (PK: licitacao_id)

type DebitDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IDebitRepository = (*DebitDynamoRepository)(nil)

func NewDebitDynamoRepository(ddb DynamoAPI) *DebitDynamoRepository {
	return &DebitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEBITOS_TABLE", defaultDebitosTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *DebitDynamoRepository) Create(ctx context.Context, d entities.Debit) (entities.Debit, error) {
	av, err := attributevalue.MarshalMap(toDebitItem(d))
	if err != nil {
		return entities.Debit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Debit{}, err
	}
	return d, nil
}

func (r *DebitDynamoRepository) GetByID(ctx context.Context, id string) (entities.Debit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Debit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Debit{}, nil
	}

	var it debitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Debit{}, err
	}
	return fromDebitItem(it), nil
}

// GetByBidID returns the debit of a licitação, or a zero Debit when none was raised.
func (r *DebitDynamoRepository) GetByBidID(ctx context.Context, bidID string) (entities.Debit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(debitosLicitacaoIDIndex),
		KeyConditionExpression: aws.String("licitacao_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: bidID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Debit{}, err
	}
	if len(out.Items) == 0 {
		return entities.Debit{}, nil
	}

	var it debitItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Debit{}, err
	}
	return fromDebitItem(it), nil
}

func (r *DebitDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DebitStatus, providerPaymentID string) (entities.Debit, error) {
	set := &setBuilder{}
	set.add("status", string(status))
	if providerPaymentID != "" {
		set.add("provider_payment_id", providerPaymentID)
	}
	set.add("updated_at", r.now().Format(time.RFC3339Nano))
	expr, values, names, err := set.build()
	if err != nil {
		return entities.Debit{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Debit{}, nil
		}
		return entities.Debit{}, err
	}

	var it debitItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Debit{}, err
	}
	return fromDebitItem(it), nil
}

func toDebitItem(d entities.Debit) debitItem {
	return debitItem{
		ID:                d.ID,
		LicitacaoID:       d.LicitacaoID,
		ClienteID:         d.ClienteID,
		ClienteNome:       d.ClienteNome,
		Descricao:         d.Descricao,
		Valor:             d.Valor,
		Status:            string(d.Status),
		ProviderPaymentID: d.ProviderPaymentID,
		CreatedAt:         d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDebitItem(it debitItem) entities.Debit {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Debit{
		ID:                it.ID,
		LicitacaoID:       it.LicitacaoID,
		ClienteID:         it.ClienteID,
		ClienteNome:       it.ClienteNome,
		Descricao:         it.Descricao,
		Valor:             it.Valor,
		Status:            entities.DebitStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
