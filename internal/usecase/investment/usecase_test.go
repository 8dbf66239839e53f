package investment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"brickvest-backend/internal/adapter/repository/mysql"
	"brickvest-backend/internal/auth"
	domain "brickvest-backend/internal/domain/investment"
	"brickvest-backend/internal/domain/user"
	"brickvest-backend/internal/testutil/testdb"
	"brickvest-backend/pkg/id"
)

func TestListMine(t *testing.T) {
	repo := mysql.NewInvestmentRepository(testdb.Open(t))
	uc := NewUsecase(repo)
	ctx := context.Background()

	seed := func(investorID, dealID string, amount int64) {
		if err := repo.Create(ctx, &domain.Investment{
			InvestmentID: id.NewID32(),
			InvestorID:   investorID,
			DealID:       dealID,
			Amount:       decimal.NewFromInt(amount),
			Status:       domain.StatusCompleted,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	seed("inv-1", "deal-1", 3000)
	seed("inv-1", "deal-2", 500)
	seed("inv-2", "deal-1", 7000)

	investor := auth.Principal{UserID: "inv-1", Role: user.RoleInvestor}
	rows, err := uc.ListMine(ctx, investor)
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.DealID == "" || r.InvestmentID == "" {
			t.Errorf("incomplete dto: %+v", r)
		}
	}

	other := auth.Principal{UserID: "inv-3", Role: user.RoleInvestor}
	rows, err = uc.ListMine(ctx, other)
	if err != nil {
		t.Fatalf("ListMine empty: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}
