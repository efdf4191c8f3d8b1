package dynamodb

import (
	"context"

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

// ReviewRepository implements ports.ReviewRepository on the Reviews table.
// Items are keyed (user_id, game_id); per-game reads go through the
// game_id secondary index.
type ReviewRepository struct {
	client    *dynamodb.Client
	tableName string
	gameIndex string
	logger    *zap.Logger
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(client *dynamodb.Client, tableName, gameIndex string, logger *zap.Logger) ports.ReviewRepository {
	return &ReviewRepository{
		client:    client,
		tableName: tableName,
		gameIndex: gameIndex,
		logger:    logger,
	}
}

// reviewItem represents the DynamoDB item structure for a review
type reviewItem struct {
	UserID        string  `dynamodbav:"user_id"`
	GameID        string  `dynamodbav:"game_id"`
	Rating        int     `dynamodbav:"rating"`
	Comment       string  `dynamodbav:"comment"`
	Platform      string  `dynamodbav:"platform"`
	PlaytimeHours float64 `dynamodbav:"playtime_hours"`
	Username      string  `dynamodbav:"username,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at,omitempty"`
}

func toReviewItem(review *entities.Review) reviewItem {
	return reviewItem{
		UserID:        review.UserID,
		GameID:        review.GameID,
		Rating:        review.Rating.Int(),
		Comment:       review.Comment,
		Platform:      string(review.Platform),
		PlaytimeHours: review.PlaytimeHours,
		Username:      review.Username,
		CreatedAt:     utils.FormatRFC3339(review.CreatedAt),
	}
}

func (i reviewItem) toEntity() *entities.Review {
	return &entities.Review{
		UserID:        i.UserID,
		GameID:        i.GameID,
		Rating:        valueobjects.Rating(i.Rating),
		Comment:       i.Comment,
		Platform:      valueobjects.Platform(i.Platform),
		PlaytimeHours: i.PlaytimeHours,
		Username:      i.Username,
		CreatedAt:     utils.ParseRFC3339(i.CreatedAt),
	}
}

// Put writes or overwrites the single review for (user, game)
func (r *ReviewRepository) Put(ctx context.Context, review *entities.Review) error {
	av, err := attributevalue.MarshalMap(toReviewItem(review))
	if err != nil {
		return pkgerrors.NewDatabaseError("failed to marshal review", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("Failed to put review",
			zap.Error(err),
			zap.String("userID", review.UserID),
			zap.String("gameID", review.GameID),
		)
		return pkgerrors.NewDatabaseError("failed to put review", err)
	}

	return nil
}

// Get returns the review for (user, game) or a not-found error
func (r *ReviewRepository) Get(ctx context.Context, userID, gameID string) (*entities.Review, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       reviewKey(userID, gameID),
	})
	if err != nil {
		r.logger.Error("Failed to get review",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("gameID", gameID),
		)
		return nil, pkgerrors.NewDatabaseError("failed to get review", err)
	}
	if out.Item == nil {
		return nil, pkgerrors.NewNotFoundError("review")
	}

	var item reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("failed to unmarshal review", err)
	}

	return item.toEntity(), nil
}

// Delete removes the review for (user, game). The store treats deleting
// an absent item as success; existence checks belong to the caller.
func (r *ReviewRepository) Delete(ctx context.Context, userID, gameID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       reviewKey(userID, gameID),
	})
	if err != nil {
		r.logger.Error("Failed to delete review",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("gameID", gameID),
		)
		return pkgerrors.NewDatabaseError("failed to delete review", err)
	}

	return nil
}

// ListByGame returns every review for a game via the game_id index
func (r *ReviewRepository) ListByGame(ctx context.Context, gameID string) ([]*entities.Review, error) {
	keyCond := expression.Key("game_id").Equal(expression.Value(gameID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("failed to build query expression", err)
	}

	reviews := make([]*entities.Review, 0)
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(r.gameIndex),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			r.logger.Error("Failed to list reviews by game",
				zap.Error(err),
				zap.String("gameID", gameID),
			)
			return nil, pkgerrors.NewDatabaseError("failed to list reviews", err)
		}

		var items []reviewItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, pkgerrors.NewDatabaseError("failed to unmarshal reviews", err)
		}
		for _, item := range items {
			reviews = append(reviews, item.toEntity())
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return reviews, nil
}

func reviewKey(userID, gameID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
		"game_id": &types.AttributeValueMemberS{Value: gameID},
	}
}
