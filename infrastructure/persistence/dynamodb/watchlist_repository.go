package dynamodb

import (
	"context"
	"errors"

	"gamewatch-backend/application/ports"
	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/core/valueobjects"
	pkgerrors "gamewatch-backend/pkg/errors"
	"gamewatch-backend/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// WatchlistRepository implements ports.WatchlistRepository on the
// Watchlist table. Items are keyed (user_id, game_id); the game_id
// secondary index serves the delete cascade.
type WatchlistRepository struct {
	client    *dynamodb.Client
	tableName string
	gameIndex string
	logger    *zap.Logger
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(client *dynamodb.Client, tableName, gameIndex string, logger *zap.Logger) ports.WatchlistRepository {
	return &WatchlistRepository{
		client:    client,
		tableName: tableName,
		gameIndex: gameIndex,
		logger:    logger,
	}
}

// watchlistItem represents the DynamoDB item structure for an entry
type watchlistItem struct {
	UserID  string `dynamodbav:"user_id"`
	GameID  string `dynamodbav:"game_id"`
	Status  string `dynamodbav:"status"`
	AddedAt string `dynamodbav:"added_at,omitempty"`
}

func toWatchlistItem(entry *entities.WatchlistEntry) watchlistItem {
	return watchlistItem{
		UserID:  entry.UserID,
		GameID:  entry.GameID,
		Status:  string(entry.Status),
		AddedAt: utils.FormatRFC3339(entry.AddedAt),
	}
}

func (i watchlistItem) toEntity() *entities.WatchlistEntry {
	return &entities.WatchlistEntry{
		UserID:  i.UserID,
		GameID:  i.GameID,
		Status:  valueobjects.WatchStatus(i.Status),
		AddedAt: utils.ParseRFC3339(i.AddedAt),
	}
}

// Create inserts an entry, rejecting a duplicate (user, game) pair
func (r *WatchlistRepository) Create(ctx context.Context, entry *entities.WatchlistEntry) error {
	av, err := attributevalue.MarshalMap(toWatchlistItem(entry))
	if err != nil {
		return pkgerrors.NewDatabaseError("failed to marshal watchlist entry", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(user_id) AND attribute_not_exists(game_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return pkgerrors.NewConflictError("watchlist entry already exists")
		}
		r.logger.Error("Failed to create watchlist entry",
			zap.Error(err),
			zap.String("userID", entry.UserID),
			zap.String("gameID", entry.GameID),
		)
		return pkgerrors.NewDatabaseError("failed to create watchlist entry", err)
	}

	return nil
}

// Get returns the entry for (user, game) or a not-found error
func (r *WatchlistRepository) Get(ctx context.Context, userID, gameID string) (*entities.WatchlistEntry, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       watchlistKey(userID, gameID),
	})
	if err != nil {
		r.logger.Error("Failed to get watchlist entry",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("gameID", gameID),
		)
		return nil, pkgerrors.NewDatabaseError("failed to get watchlist entry", err)
	}
	if out.Item == nil {
		return nil, pkgerrors.NewNotFoundError("watchlist entry")
	}

	var item watchlistItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("failed to unmarshal watchlist entry", err)
	}

	return item.toEntity(), nil
}

// UpdateStatus overwrites the status unconditionally. The write creates
// the item if it is absent, matching a last-write-wins progress model.
func (r *WatchlistRepository) UpdateStatus(ctx context.Context, userID, gameID string, status valueobjects.WatchStatus) error {
	update := expression.Set(expression.Name("status"), expression.Value(string(status)))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return pkgerrors.NewDatabaseError("failed to build update expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       watchlistKey(userID, gameID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		r.logger.Error("Failed to update watchlist status",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("gameID", gameID),
		)
		return pkgerrors.NewDatabaseError("failed to update watchlist status", err)
	}

	return nil
}

// Delete removes the entry; deleting an absent entry succeeds
func (r *WatchlistRepository) Delete(ctx context.Context, userID, gameID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       watchlistKey(userID, gameID),
	})
	if err != nil {
		r.logger.Error("Failed to delete watchlist entry",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("gameID", gameID),
		)
		return pkgerrors.NewDatabaseError("failed to delete watchlist entry", err)
	}

	return nil
}

// ListByUser returns every entry on a user's watchlist
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string) ([]*entities.WatchlistEntry, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(userID))
	return r.query(ctx, keyCond, nil, "userID", userID)
}

// ListByGame returns every entry referencing a game via the game_id index
func (r *WatchlistRepository) ListByGame(ctx context.Context, gameID string) ([]*entities.WatchlistEntry, error) {
	keyCond := expression.Key("game_id").Equal(expression.Value(gameID))
	return r.query(ctx, keyCond, aws.String(r.gameIndex), "gameID", gameID)
}

func (r *WatchlistRepository) query(ctx context.Context, keyCond expression.KeyConditionBuilder, indexName *string, logKey, logValue string) ([]*entities.WatchlistEntry, error) {
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("failed to build query expression", err)
	}

	entries := make([]*entities.WatchlistEntry, 0)
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 indexName,
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			r.logger.Error("Failed to query watchlist",
				zap.Error(err),
				zap.String(logKey, logValue),
			)
			return nil, pkgerrors.NewDatabaseError("failed to query watchlist", err)
		}

		var items []watchlistItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, pkgerrors.NewDatabaseError("failed to unmarshal watchlist entries", err)
		}
		for _, item := range items {
			entries = append(entries, item.toEntity())
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return entries, nil
}

func watchlistKey(userID, gameID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
		"game_id": &types.AttributeValueMemberS{Value: gameID},
	}
}
