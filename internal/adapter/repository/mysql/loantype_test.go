package mysql

import (
	"context"
	"testing"

	typeDomain "loanledger-backend/internal/domain/loantype"
)

func TestLoanTypeRepository_SeedAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanTypeRepository(db)
	ctx := context.Background()

	if err := repo.Seed(ctx, typeDomain.Defaults()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("types = %d, want 4", len(all))
	}
	if all[0].Name != "Personal" || !all[0].MaxAmount.Equal(d("50000")) {
		t.Fatalf("first type %+v", all[0])
	}

	got, err := repo.GetByID(ctx, all[1].ID)
	if err != nil || got.Name != "Gold" {
		t.Fatalf("GetByID: %+v err %v", got, err)
	}
}

func TestLoanTypeRepository_SeedIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanTypeRepository(db)
	ctx := context.Background()

	if err := repo.Seed(ctx, typeDomain.Defaults()); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	// a second seed must not duplicate the catalog
	if err := repo.Seed(ctx, typeDomain.Defaults()); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 4 {
		t.Fatalf("types after reseed = %d err %v", len(all), err)
	}
}
