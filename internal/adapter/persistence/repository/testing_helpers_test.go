package repository

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated SQLite database with foreign keys enforced. A
// single connection keeps transactions and plain queries on the same handle.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "crm.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

var gsiKeys = map[string]string{
	flowEventsEntityKeyIndex: "entity_key",
	flowEventsFeedIndex:      "feed",
	paymentsInvoiceIDIndex:   "invoice_id",
}

// fakeDynamo keeps items in memory and answers the single-key GSI queries the
// repositories issue.
type fakeDynamo struct {
	mu       sync.Mutex
	items    []map[string]types.AttributeValue
	putErr   error
	queryErr error
	lastPut  *dynamodb.PutItemInput
	lastQry  *dynamodb.QueryInput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPut = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := attrString(in.Item["id"])
	for _, it := range f.items {
		if attrString(it["id"]) == id {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items = append(f.items, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQry = in
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	attr := gsiKeys[*in.IndexName]
	var want string
	for _, v := range in.ExpressionAttributeValues {
		want = attrString(v)
	}

	var out []map[string]types.AttributeValue
	for _, it := range f.items {
		if attrString(it[attr]) == want {
			out = append(out, it)
		}
	}
	desc := in.ScanIndexForward != nil && !*in.ScanIndexForward
	sort.SliceStable(out, func(i, j int) bool {
		a, b := attrString(out[i]["created_at"]), attrString(out[j]["created_at"])
		if desc {
			return a > b
		}
		return a < b
	})
	if in.Limit != nil && int(*in.Limit) < len(out) {
		out = out[:*in.Limit]
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}

func attrString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	default:
		return ""
	}
}
