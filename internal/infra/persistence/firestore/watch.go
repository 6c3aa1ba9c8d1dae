// Package firestore implements the repositories on top of Cloud Firestore live queries.
package firestore

import (
	"context"

	"elevenstore/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// watchQuery feeds every document change of q to handle, batch by batch in
// delivery order. It returns nil once ctx is cancelled.
func watchQuery(ctx context.Context, q firestore.Query, handle func(ctx context.Context, kind entity.ChangeKind, doc *firestore.DocumentSnapshot)) error {
	it := q.Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
				return nil
			}

			return errors.Wrap(err, "snapshot stream failed")
		}

		for _, change := range snap.Changes {
			kind, ok := changeKind(change.Kind)
			if !ok {
				continue
			}
			handle(ctx, kind, change.Doc)
		}
	}
}

func changeKind(kind firestore.DocumentChangeKind) (entity.ChangeKind, bool) {
	switch kind {
	case firestore.DocumentAdded:
		return entity.ChangeAdded, true
	case firestore.DocumentModified:
		return entity.ChangeModified, true
	case firestore.DocumentRemoved:
		return entity.ChangeRemoved, true
	default:
		return 0, false
	}
}
