package domain

import "context"

type Service interface {
	List(ctx context.Context, category string) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
}
