package database

import (
	"context"
	stderrors "errors"
	"fmt"

	"tourism-webapp/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// translate maps driver errors onto the application error taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, mongo.ErrNoDocuments):
		return errors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", errors.ErrDuplicateKey, err)
	case mongo.IsNetworkError(err),
		mongo.IsTimeout(err),
		stderrors.Is(err, context.DeadlineExceeded),
		stderrors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("server side problem occured while database call: %w", err)
}

func notFound(kind string, key string, err error) error {
	err = translate(err)
	if errors.IsNotFound(err) {
		return fmt.Errorf("%s %v: %w", kind, key, err)
	}
	return err
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	result := []T{}
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, translate(err)
		}
		result = append(result, item)
	}
	if err := cur.Err(); err != nil {
		return nil, translate(err)
	}
	return result, nil
}
