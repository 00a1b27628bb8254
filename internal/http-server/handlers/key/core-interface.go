package key

import "context"

type Core interface {
	GenerateApiKey(ctx context.Context, username string) (string, error)
}
