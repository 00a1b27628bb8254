package core

import (
	"SkyCherry/entity"
	"context"
	"fmt"
)

func (c *Core) AuthenticateByToken(ctx context.Context, token string) (*entity.UserAuth, error) {
	if c.authKey != "" && token == c.authKey {
		return &entity.UserAuth{Username: entity.MasterUser, Token: token}, nil
	}

	c.mu.RLock()
	username, ok := c.keys[token]
	c.mu.RUnlock()
	if ok {
		return &entity.UserAuth{Username: username, Token: token}, nil
	}

	if c.repo == nil {
		return nil, fmt.Errorf("repository is not set")
	}

	user, err := c.repo.CheckApiKey(ctx, token)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.keys[token] = user.Username
	c.mu.Unlock()

	return user, nil
}

func (c *Core) GenerateApiKey(ctx context.Context, username string) (string, error) {
	if c.repo == nil {
		return "", fmt.Errorf("repository is not set")
	}

	apiKey, err := c.repo.GenerateApiKey(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to generate API key: %w", err)
	}

	c.mu.Lock()
	c.keys[apiKey] = username
	c.mu.Unlock()

	return apiKey, nil
}
