// Package firestore implements the persistence layer on the managed
// Firestore document store.
package firestore

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"cloud.google.com/go/firestore"
)

// Params holds dependencies for the Firestore client, injected by Fx.
type Params struct {
	fx.In

	Lc  fx.Lifecycle
	Ctx context.Context
	App *firebase.App
}

// New creates the Firestore client from the shared Firebase app and ties its
// shutdown to the application lifecycle.
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
