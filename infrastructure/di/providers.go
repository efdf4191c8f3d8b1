package di

import (
	"context"
	"fmt"

	"gamewatch-backend/application/ports"
	"gamewatch-backend/application/services"
	"gamewatch-backend/infrastructure/config"
	"gamewatch-backend/infrastructure/messaging/eventbridge"
	"gamewatch-backend/infrastructure/persistence/dynamodb"
	"gamewatch-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates a metrics instance. The CloudWatch client is
// withheld when metrics are disabled, which turns emission into a no-op.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("GameWatch/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil, logger)
	}
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideGameRepository creates a game repository
func ProvideGameRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.GameRepository {
	return dynamodb.NewGameRepository(client, cfg.GamesTable, cfg.WatchlistTable, logger)
}

// ProvideReviewRepository creates a review repository
func ProvideReviewRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ReviewRepository {
	return dynamodb.NewReviewRepository(client, cfg.ReviewsTable, cfg.ReviewsByGameIndex, logger)
}

// ProvideWatchlistRepository creates a watchlist repository
func ProvideWatchlistRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.WatchlistRepository {
	return dynamodb.NewWatchlistRepository(client, cfg.WatchlistTable, cfg.WatchlistByGameIndex, logger)
}

// ProvideUserRepository creates a user repository
func ProvideUserRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.UserRepository {
	return dynamodb.NewUserRepository(client, cfg.UsersTable, logger)
}

// ProvideEventBus creates an event bus
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideStatsService creates the stats recomputation service
func ProvideStatsService(
	reviewRepo ports.ReviewRepository,
	gameRepo ports.GameRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.StatsService {
	return services.NewStatsService(reviewRepo, gameRepo, metrics, logger)
}

// ProvideGameService creates the game service
func ProvideGameService(
	gameRepo ports.GameRepository,
	watchlistRepo ports.WatchlistRepository,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.GameService {
	return services.NewGameService(gameRepo, watchlistRepo, eventBus, metrics, logger)
}

// ProvideReviewService creates the review service
func ProvideReviewService(
	reviewRepo ports.ReviewRepository,
	watchlistRepo ports.WatchlistRepository,
	userRepo ports.UserRepository,
	stats *services.StatsService,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *services.ReviewService {
	return services.NewReviewService(reviewRepo, watchlistRepo, userRepo, stats, eventBus, logger)
}

// ProvideWatchlistService creates the watchlist service
func ProvideWatchlistService(
	watchlistRepo ports.WatchlistRepository,
	gameRepo ports.GameRepository,
	userRepo ports.UserRepository,
	logger *zap.Logger,
) *services.WatchlistService {
	return services.NewWatchlistService(watchlistRepo, gameRepo, userRepo, logger)
}
