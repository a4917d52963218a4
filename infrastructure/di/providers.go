package di

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"inkwell/application/ports"
	"inkwell/application/store"
	"inkwell/infrastructure/auth/localauth"
	"inkwell/infrastructure/auth/supabaseauth"
	"inkwell/infrastructure/config"
	"inkwell/infrastructure/persistence/dynamodb"
	"inkwell/infrastructure/persistence/localstore"
	"inkwell/infrastructure/persistence/memory"
	"inkwell/pkg/auth"
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// provideStorage selects the durable-storage driver. The returned closer
// is nil for drivers without resources to release.
func provideStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.Storage, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageBolt:
		s, err := localstore.Open(cfg.BoltPath, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.StorageDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, nil, fmt.Errorf("load AWS config: %w", err)
		}
		client := awsdynamodb.NewFromConfig(awsCfg)
		return dynamodb.NewStore(client, cfg.DynamoDBTable, logger), nil, nil

	case config.StorageMemory:
		return memory.NewStore(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func provideIdentityProvider(ctx context.Context, cfg *config.Config, storage ports.Storage, logger *zap.Logger) (ports.IdentityProvider, error) {
	switch cfg.AuthProvider {
	case config.AuthSupabase:
		return supabaseauth.NewProvider(cfg.SupabaseURL, cfg.SupabaseKey, logger)

	case config.AuthLocal:
		return localauth.NewProvider(
			ctx,
			storage,
			provideVerifier(cfg),
			store.SampleUsers(),
			cfg.MockLatency,
			logger,
		)

	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.AuthProvider)
	}
}

func provideVerifier(cfg *config.Config) auth.CredentialVerifier {
	if cfg.PasswordScheme == config.PasswordBcrypt {
		return auth.NewBcryptVerifier(0)
	}
	return auth.NewStaticVerifier(cfg.SharedPassword)
}

func provideTokenIssuer(cfg *config.Config) (*auth.TokenIssuer, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		// Development convenience only; Validate rejects this in production.
		secret = "development-secret-change-in-production"
	}
	return auth.NewTokenIssuer(secret, cfg.JWTIssuer, cfg.TokenTTL)
}
