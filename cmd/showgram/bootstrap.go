package main

import (
	"context"
	"fmt"

	"showgram/internal/store"
)

// bootstrap seeds the lookup tables the catalog depends on. Safe to run on
// every start.
func bootstrap(ctx context.Context, dataStore *store.Store) error {
	if err := dataStore.EnsureLookupRows(ctx); err != nil {
		return fmt.Errorf("seed lookup rows: %w", err)
	}
	return nil
}
