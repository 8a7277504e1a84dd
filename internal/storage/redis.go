package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"boxdrop/internal/domain"
)

type boxRepository struct {
	conn *Connector
}

func NewBoxRepository(conn *Connector) domain.BoxRepository {
	return &boxRepository{conn: conn}
}

// Insert stores the box under its code. SetNX doubles as the unique-key
// constraint: a second box with the same code surfaces as ErrCodeTaken.
func (r *boxRepository) Insert(ctx context.Context, box *domain.Box) error {
	client, err := r.conn.Client(ctx)
	if err != nil {
		return err
	}
	doc, err := json.Marshal(box)
	if err != nil {
		return fmt.Errorf("marshal box: %w", err)
	}
	ttl := time.Until(box.DeleteAfter)
	if ttl <= 0 {
		return fmt.Errorf("box %s expires in the past", box.Code)
	}
	ok, err := client.SetNX(ctx, boxKey(box.Code), doc, ttl).Result()
	if err != nil {
		return fmt.Errorf("store box: %w", err)
	}
	if !ok {
		return domain.ErrCodeTaken
	}
	return nil
}

func (r *boxRepository) FindByCode(ctx context.Context, code string) (*domain.Box, error) {
	client, err := r.conn.Client(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := client.Get(ctx, boxKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrBoxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch box: %w", err)
	}
	var box domain.Box
	if err := json.Unmarshal(doc, &box); err != nil {
		return nil, fmt.Errorf("unmarshal box: %w", err)
	}
	return &box, nil
}

func boxKey(code string) string { return "box:" + code }
