package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"assessoria_licitacoes/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table keyed by "id" that understands the SET expressions and
// existence conditions the repositories emit.
type fakeDynamo struct {
	mu      sync.Mutex
	items   map[string]map[string]types.AttributeValue
	updates []*dynamodb.UpdateItemInput
	failOn  string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(m map[string]types.AttributeValue) string {
	if s, ok := m["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "put" {
		return nil, errors.New("put failed")
	}
	id := keyOf(in.Item)
	if _, ok := f.items[id]; ok && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, in)
	item, ok := f.items[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, clause := range strings.Split(expr, ", ") {
		parts := strings.Split(clause, " = ")
		item[in.ExpressionAttributeNames[parts[0]]] = in.ExpressionAttributeValues[parts[1]]
	}
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := in.ExpressionAttributeValues[":lid"].(*types.AttributeValueMemberS).Value
	out := &dynamodb.QueryOutput{}
	for _, it := range f.items {
		if v, ok := it["licitacao_id"].(*types.AttributeValueMemberS); ok && v.Value == want {
			out.Items = append(out.Items, it)
		}
	}
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.ScanOutput{}
	for _, it := range f.items {
		out.Items = append(out.Items, it)
	}
	return out, nil
}

var repoT0 = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func sampleBid() entities.Bid {
	ref := 10000.0
	return entities.Bid{
		ID:                    "bid-1",
		Numero:                "PE 12/2025",
		ClienteID:             "cli-1",
		ClienteNome:           "ACME",
		Status:                entities.BidStatusAguardandoDisputa,
		ValorCobrado:          1500,
		ValorReferenciaEdital: &ref,
		ItensProposta: []entities.ProposalItem{
			{ID: "it-1", Descricao: "Notebook", Unidade: "UN", Quantidade: 10},
		},
		CreatedAt: repoT0,
		UpdatedAt: repoT0,
	}
}

func TestBidDynamoRepository_CreateGetPatch(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewBidDynamoRepository(ddb)
	repo.now = func() time.Time { return repoT0.Add(time.Minute) }
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleBid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, sampleBid()); err == nil {
		t.Fatalf("duplicate create must fail")
	}

	got, err := repo.Get(ctx, "bid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Numero != "PE 12/2025" || len(got.ItensProposta) != 1 || *got.ValorReferenciaEdital != 10000 || !got.CreatedAt.Equal(repoT0) {
		t.Fatalf("unexpected bid: %+v", got)
	}

	start := repoT0
	status := entities.BidStatusEmDisputa
	log := entities.DisputeLog{IniciadaEm: &start, Mensagens: []entities.DisputeMessage{{ID: "m1", Texto: "lance", Timestamp: repoT0}}}
	updated, err := repo.Patch(ctx, "bid-1", entities.BidPatch{
		Status:        &status,
		DisputaConfig: &entities.DisputeConfig{LimiteTipo: entities.LimitTypePercentual, LimiteValor: 15, ValorCalculadoAteOndePodeChegar: 8500},
		DisputaLog:    &log,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != entities.BidStatusEmDisputa || updated.DisputaConfig.ValorCalculadoAteOndePodeChegar != 8500 {
		t.Fatalf("unexpected patched bid: %+v", updated)
	}
	if updated.DisputaLog == nil || !updated.DisputaLog.IniciadaEm.Equal(repoT0) || len(updated.DisputaLog.Mensagens) != 1 {
		t.Fatalf("dispute log must round-trip: %+v", updated.DisputaLog)
	}
	if !updated.UpdatedAt.Equal(repoT0.Add(time.Minute)) {
		t.Fatalf("updated_at must be written, got %v", updated.UpdatedAt)
	}
	if len(ddb.updates) != 1 {
		t.Fatalf("patch must be a single UpdateItem, got %d", len(ddb.updates))
	}

	missing, err := repo.Patch(ctx, "bid-9", entities.BidPatch{Status: &status})
	if err != nil || missing.ID != "" {
		t.Fatalf("missing bid must yield zero value, got %+v err=%v", missing, err)
	}

	same, err := repo.Patch(ctx, "bid-1", entities.BidPatch{})
	if err != nil || same.Status != entities.BidStatusEmDisputa {
		t.Fatalf("empty patch must return the stored bid, got %+v err=%v", same, err)
	}
	if len(ddb.updates) != 2 {
		t.Fatalf("empty patch must not write, got %d updates", len(ddb.updates))
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("unexpected list err=%v len=%d", err, len(all))
	}
}

func TestBidDynamoRepository_NoItemsIsEmptyList(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewBidDynamoRepository(ddb)
	ctx := context.Background()

	// a record written without the itens_proposta attribute
	ddb.items["bid-1"] = map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "bid-1"},
		"numero": &types.AttributeValueMemberS{Value: "PE 12/2025"},
		"status": &types.AttributeValueMemberS{Value: string(entities.BidStatusEmAnalise)},
	}
	got, err := repo.Get(ctx, "bid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ItensProposta == nil || len(got.ItensProposta) != 0 {
		t.Fatalf("expected an empty item list, got %#v", got.ItensProposta)
	}
}

func TestBuildBidUpdate(t *testing.T) {
	obs := "validade 60 dias"
	expr, values, names, err := buildBidUpdate(entities.BidPatch{ObservacoesPropostaFinal: &obs}, repoT0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expr != "SET #observacoes_proposta_final = :observacoes_proposta_final, #updated_at = :updated_at" {
		t.Fatalf("unexpected expression %q", expr)
	}
	if len(values) != 2 || names["#updated_at"] != "updated_at" {
		t.Fatalf("unexpected values=%v names=%v", values, names)
	}
}

func TestDebitDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewDebitDynamoRepository(ddb)
	ctx := context.Background()

	none, err := repo.GetByBidID(ctx, "bid-1")
	if err != nil || none.ID != "" {
		t.Fatalf("expected no debit, got %+v err=%v", none, err)
	}

	d := entities.Debit{ID: "deb-1", LicitacaoID: "bid-1", Valor: 1500, Status: entities.DebitStatusPendente, CreatedAt: repoT0, UpdatedAt: repoT0}
	if _, err := repo.Create(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byBid, err := repo.GetByBidID(ctx, "bid-1")
	if err != nil || byBid.ID != "deb-1" || byBid.Valor != 1500 {
		t.Fatalf("unexpected debit %+v err=%v", byBid, err)
	}

	paid, err := repo.UpdateStatus(ctx, "deb-1", entities.DebitStatusPago, "pay-1")
	if err != nil || paid.Status != entities.DebitStatusPago || paid.ProviderPaymentID != "pay-1" {
		t.Fatalf("unexpected debit %+v err=%v", paid, err)
	}

	missing, err := repo.UpdateStatus(ctx, "deb-9", entities.DebitStatusPago, "")
	if err != nil || missing.ID != "" {
		t.Fatalf("missing debit must yield zero value, got %+v err=%v", missing, err)
	}
}
