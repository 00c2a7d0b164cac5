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

const defaultLicitacoesTableName = "licitacoes"

// DynamoAPI is the subset of the DynamoDB client used by the repositories.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

type bidItem struct {
	ID          string `dynamodbav:"id"`
	Numero      string `dynamodbav:"numero"`
	ClienteID   string `dynamodbav:"cliente_id"`
	ClienteNome string `dynamodbav:"cliente_nome"`
	Orgao       string `dynamodbav:"orgao,omitempty"`
	Objeto      string `dynamodbav:"objeto,omitempty"`
	Modalidade  string `dynamodbav:"modalidade,omitempty"`
	Status      string `dynamodbav:"status"`

	ValorCobrado          float64  `dynamodbav:"valor_cobrado"`
	ValorReferenciaEdital *float64 `dynamodbav:"valor_referencia_edital,omitempty"`

	ItensProposta            []entities.ProposalItem `dynamodbav:"itens_proposta"`
	DisputaConfig            *entities.DisputeConfig `dynamodbav:"disputa_config,omitempty"`
	DisputaLog               *entities.DisputeLog    `dynamodbav:"disputa_log,omitempty"`
	ObservacoesPropostaFinal string                  `dynamodbav:"observacoes_proposta_final,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BidDynamoRepository persists licitações in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Items, dispute config and dispute log are nested maps/lists of the same item, so a patch is
// a single UpdateItem and lands atomically.

type BidDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

func NewBidDynamoRepository(ddb DynamoAPI) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LICITACOES_TABLE", defaultLicitacoesTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *BidDynamoRepository) Create(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	av, err := attributevalue.MarshalMap(toBidItem(b))
	if err != nil {
		return entities.Bid{}, err
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
		return entities.Bid{}, err
	}
	return b, nil
}

func (r *BidDynamoRepository) Get(ctx context.Context, id string) (entities.Bid, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bid{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func (r *BidDynamoRepository) List(ctx context.Context) ([]entities.Bid, error) {
	var bids []entities.Bid
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it bidItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			bids = append(bids, fromBidItem(it))
		}
	}
	return bids, nil
}

// Patch applies every non-nil field of the patch in one UpdateItem. A missing licitação
// yields a zero Bid; an empty patch is a plain read.
func (r *BidDynamoRepository) Patch(ctx context.Context, id string, patch entities.BidPatch) (entities.Bid, error) {
	if patch.IsEmpty() {
		return r.Get(ctx, id)
	}
	expr, values, names, err := buildBidUpdate(patch, r.now())
	if err != nil {
		return entities.Bid{}, err
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
			return entities.Bid{}, nil
		}
		return entities.Bid{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

// buildBidUpdate renders the SET expression of a patch. updated_at is always written.
func buildBidUpdate(p entities.BidPatch, now time.Time) (string, map[string]types.AttributeValue, map[string]string, error) {
	set := &setBuilder{}
	if p.Status != nil {
		set.add("status", string(*p.Status))
	}
	if p.ValorCobrado != nil {
		set.add("valor_cobrado", *p.ValorCobrado)
	}
	if p.ValorReferenciaEdital != nil {
		set.add("valor_referencia_edital", *p.ValorReferenciaEdital)
	}
	if p.ItensProposta != nil {
		set.add("itens_proposta", *p.ItensProposta)
	}
	if p.DisputaConfig != nil {
		set.add("disputa_config", *p.DisputaConfig)
	}
	if p.DisputaLog != nil {
		set.add("disputa_log", *p.DisputaLog)
	}
	if p.ObservacoesPropostaFinal != nil {
		set.add("observacoes_proposta_final", *p.ObservacoesPropostaFinal)
	}
	set.add("updated_at", now.UTC().Format(time.RFC3339Nano))
	return set.build()
}

func toBidItem(b entities.Bid) bidItem {
	items := b.ItensProposta
	if items == nil {
		items = []entities.ProposalItem{}
	}
	return bidItem{
		ID:                       b.ID,
		Numero:                   b.Numero,
		ClienteID:                b.ClienteID,
		ClienteNome:              b.ClienteNome,
		Orgao:                    b.Orgao,
		Objeto:                   b.Objeto,
		Modalidade:               b.Modalidade,
		Status:                   string(b.Status),
		ValorCobrado:             b.ValorCobrado,
		ValorReferenciaEdital:    b.ValorReferenciaEdital,
		ItensProposta:            items,
		DisputaConfig:            b.DisputaConfig,
		DisputaLog:               b.DisputaLog,
		ObservacoesPropostaFinal: b.ObservacoesPropostaFinal,
		CreatedAt:                b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBidItem(it bidItem) entities.Bid {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	items := it.ItensProposta
	if items == nil {
		items = []entities.ProposalItem{}
	}
	return entities.Bid{
		ID:                       it.ID,
		Numero:                   it.Numero,
		ClienteID:                it.ClienteID,
		ClienteNome:              it.ClienteNome,
		Orgao:                    it.Orgao,
		Objeto:                   it.Objeto,
		Modalidade:               it.Modalidade,
		Status:                   entities.BidStatus(it.Status),
		ValorCobrado:             it.ValorCobrado,
		ValorReferenciaEdital:    it.ValorReferenciaEdital,
		ItensProposta:            items,
		DisputaConfig:            it.DisputaConfig,
		DisputaLog:               it.DisputaLog,
		ObservacoesPropostaFinal: it.ObservacoesPropostaFinal,
		CreatedAt:                createdAt,
		UpdatedAt:                updatedAt,
	}
}
