package uowmock

import (
	"context"
	"errors"

	"brickvest-backend/internal/domain/pending"
	"brickvest-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPendingTxFn func(ctx context.Context, pendingID string, fn func(r uow.Repos, p *pending.PendingTransaction) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinPendingTx(fn func(context.Context, string, func(uow.Repos, *pending.PendingTransaction) error) error) *UoW {
	m.WithinPendingTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinPendingTx(ctx context.Context, pendingID string, fn func(r uow.Repos, p *pending.PendingTransaction) error) error {
	if m.WithinPendingTxFn != nil {
		return m.WithinPendingTxFn(ctx, pendingID, fn)
	}
	return errUnimplemented
}
