package services

import (
	"context"
	"fmt"

	"recordbook/internal/storage"
)

// CreateStoresUpgrade returns an upgrade routine that creates each named
// object store not yet present. Existing stores and their records are kept.
func CreateStoresUpgrade(storeNames ...string) storage.UpgradeFunc {
	return func(ctx context.Context, h storage.UpgradeHandle) error {
		existing, err := h.ObjectStoreNames(ctx)
		if err != nil {
			return fmt.Errorf("failed to list object stores: %w", err)
		}

		present := make(map[string]bool, len(existing))
		for _, name := range existing {
			present[name] = true
		}

		for _, name := range storeNames {
			if present[name] {
				continue
			}
			if err := h.CreateObjectStore(ctx, name); err != nil {
				return fmt.Errorf("failed to create object store %q: %w", name, err)
			}
			present[name] = true
		}
		return nil
	}
}
