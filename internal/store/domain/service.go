package domain

import "context"

type Service interface {
	List(ctx context.Context) ([]Store, error)
	Get(ctx context.Context, id int64) (*Store, error)
}
