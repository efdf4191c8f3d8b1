package dynamodb

import (
	"context"
	"errors"

	"gamewatch-backend/application/ports"
	"gamewatch-backend/domain/core/entities"
	pkgerrors "gamewatch-backend/pkg/errors"
	"gamewatch-backend/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// counterKey is the reserved Games item holding the id allocation counter.
// It never represents a game and is filtered out of listings.
const counterKey = "COUNTER"

// transactChunkSize is the DynamoDB TransactWriteItems limit
const transactChunkSize = 25

// GameRepository implements ports.GameRepository on the Games table
type GameRepository struct {
	client         *dynamodb.Client
	tableName      string
	watchlistTable string
	logger         *zap.Logger
}

// NewGameRepository creates a new game repository.
// watchlistTable is needed for the delete cascade, which removes the
// game and its watchlist references in the same transactions.
func NewGameRepository(client *dynamodb.Client, tableName, watchlistTable string, logger *zap.Logger) ports.GameRepository {
	return &GameRepository{
		client:         client,
		tableName:      tableName,
		watchlistTable: watchlistTable,
		logger:         logger,
	}
}

// gameItem represents the DynamoDB item structure for a game
type gameItem struct {
	GameID        string  `dynamodbav:"game_id"`
	Title         string  `dynamodbav:"title"`
	Genre         string  `dynamodbav:"genre"`
	ReleaseDate   string  `dynamodbav:"release_date"`
	ImageURL      string  `dynamodbav:"image_url"`
	Description   string  `dynamodbav:"description"`
	ReviewsCount  int     `dynamodbav:"reviews_count"`
	AverageRating float64 `dynamodbav:"average_rating"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

func toGameItem(game *entities.Game) gameItem {
	return gameItem{
		GameID:        game.ID,
		Title:         game.Title,
		Genre:         game.Genre,
		ReleaseDate:   game.ReleaseDate,
		ImageURL:      game.ImageURL,
		Description:   game.Description,
		ReviewsCount:  game.ReviewsCount,
		AverageRating: game.AverageRating,
		CreatedAt:     utils.FormatRFC3339(game.CreatedAt),
	}
}

func (i gameItem) toEntity() *entities.Game {
	return &entities.Game{
		ID:            i.GameID,
		Title:         i.Title,
		Genre:         i.Genre,
		ReleaseDate:   i.ReleaseDate,
		ImageURL:      i.ImageURL,
		Description:   i.Description,
		ReviewsCount:  i.ReviewsCount,
		AverageRating: i.AverageRating,
		CreatedAt:     utils.ParseRFC3339(i.CreatedAt),
	}
}

// NextID increments the counter item and returns the new value.
// The ADD update is atomic on the store side, so concurrent allocations
// never observe the same value; it also creates the counter item on
// first use.
func (r *GameRepository) NextID(ctx context.Context) (string, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"game_id": &types.AttributeValueMemberS{Value: counterKey},
		},
		UpdateExpression: aws.String("ADD next_id :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		r.logger.Error("Failed to allocate game id", zap.Error(err))
		return "", pkgerrors.NewDatabaseError("failed to allocate game id", err)
	}

	next, ok := out.Attributes["next_id"].(*types.AttributeValueMemberN)
	if !ok {
		return "", pkgerrors.NewDatabaseError("id counter returned no numeric value", nil)
	}

	return next.Value, nil
}

// Create writes a new game, guarded against id reuse
func (r *GameRepository) Create(ctx context.Context, game *entities.Game) error {
	av, err := attributevalue.MarshalMap(toGameItem(game))
	if err != nil {
		return pkgerrors.NewDatabaseError("failed to marshal game", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(game_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return pkgerrors.NewConflictError("game already exists")
		}
		r.logger.Error("Failed to create game", zap.Error(err), zap.String("gameID", game.ID))
		return pkgerrors.NewDatabaseError("failed to create game", err)
	}

	return nil
}

// GetByID returns a game or a not-found error
func (r *GameRepository) GetByID(ctx context.Context, gameID string) (*entities.Game, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"game_id": &types.AttributeValueMemberS{Value: gameID},
		},
	})
	if err != nil {
		r.logger.Error("Failed to get game", zap.Error(err), zap.String("gameID", gameID))
		return nil, pkgerrors.NewDatabaseError("failed to get game", err)
	}
	if out.Item == nil || gameID == counterKey {
		return nil, pkgerrors.NewNotFoundError("game")
	}

	var item gameItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("failed to unmarshal game", err)
	}

	return item.toEntity(), nil
}

// List returns every game, skipping the counter item
func (r *GameRepository) List(ctx context.Context) ([]*entities.Game, error) {
	filter := expression.Name("game_id").NotEqual(expression.Value(counterKey))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("failed to build scan expression", err)
	}

	games := make([]*entities.Game, 0)
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			r.logger.Error("Failed to list games", zap.Error(err))
			return nil, pkgerrors.NewDatabaseError("failed to list games", err)
		}

		var items []gameItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, pkgerrors.NewDatabaseError("failed to unmarshal games", err)
		}
		for _, item := range items {
			games = append(games, item.toEntity())
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return games, nil
}

// Update overwrites the mutable attributes of an existing game. The
// aggregates and created_at are not touched, so a concurrent stats
// recomputation cannot be lost to a title edit.
func (r *GameRepository) Update(ctx context.Context, game *entities.Game) error {
	update := expression.
		Set(expression.Name("title"), expression.Value(game.Title)).
		Set(expression.Name("genre"), expression.Value(game.Genre)).
		Set(expression.Name("release_date"), expression.Value(game.ReleaseDate)).
		Set(expression.Name("image_url"), expression.Value(game.ImageURL)).
		Set(expression.Name("description"), expression.Value(game.Description))
	cond := expression.AttributeExists(expression.Name("game_id"))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return pkgerrors.NewDatabaseError("failed to build update expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"game_id": &types.AttributeValueMemberS{Value: game.ID},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return pkgerrors.NewNotFoundError("game")
		}
		r.logger.Error("Failed to update game", zap.Error(err), zap.String("gameID", game.ID))
		return pkgerrors.NewDatabaseError("failed to update game", err)
	}

	return nil
}

// UpdateStats writes the derived aggregates onto an existing game
func (r *GameRepository) UpdateStats(ctx context.Context, gameID string, reviewsCount int, averageRating float64) error {
	update := expression.
		Set(expression.Name("reviews_count"), expression.Value(reviewsCount)).
		Set(expression.Name("average_rating"), expression.Value(averageRating))
	cond := expression.AttributeExists(expression.Name("game_id"))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return pkgerrors.NewDatabaseError("failed to build stats expression", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"game_id": &types.AttributeValueMemberS{Value: gameID},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return pkgerrors.NewNotFoundError("game")
		}
		r.logger.Error("Failed to update game stats", zap.Error(err), zap.String("gameID", gameID))
		return pkgerrors.NewDatabaseError("failed to update game stats", err)
	}

	return nil
}

// DeleteCascade removes the game record and every watchlist entry
// referencing it, in transactions of at most 25 items. The game record
// goes in the first chunk so a partial failure leaves at worst orphaned
// watchlist entries, never a deleted watchlist with a live game.
func (r *GameRepository) DeleteCascade(ctx context.Context, gameID string, entries []*entities.WatchlistEntry) error {
	items := make([]types.TransactWriteItem, 0, len(entries)+1)
	items = append(items, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"game_id": &types.AttributeValueMemberS{Value: gameID},
			},
		},
	})
	for _, entry := range entries {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.watchlistTable),
				Key: map[string]types.AttributeValue{
					"user_id": &types.AttributeValueMemberS{Value: entry.UserID},
					"game_id": &types.AttributeValueMemberS{Value: entry.GameID},
				},
			},
		})
	}

	for start := 0; start < len(items); start += transactChunkSize {
		end := start + transactChunkSize
		if end > len(items) {
			end = len(items)
		}

		_, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items[start:end],
		})
		if err != nil {
			r.logger.Error("Failed to delete game cascade chunk",
				zap.Error(err),
				zap.String("gameID", gameID),
				zap.Int("chunk", start/transactChunkSize),
			)
			return pkgerrors.NewDatabaseError("failed to delete game", err)
		}
	}

	return nil
}
