package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory ledger database. Begin takes the store lock for
// the life of the transaction, which stands in for the partner row lock, and
// snapshots state so Rollback can restore it.
type memStore struct {
	mu       sync.Mutex
	balances map[uuid.UUID]decimal.Decimal
	wallet   map[uuid.UUID][]domain.WalletTransaction
	ledger   []domain.Transaction
	orders   map[uuid.UUID]*domain.Order

	failCreate error
}

func newMemStore() *memStore {
	return &memStore{
		balances: map[uuid.UUID]decimal.Decimal{},
		wallet:   map[uuid.UUID][]domain.WalletTransaction{},
		orders:   map[uuid.UUID]*domain.Order{},
	}
}

func (s *memStore) addPartner(balance string) uuid.UUID {
	id := uuid.New()
	s.balances[id] = dec(balance)
	return id
}

func (s *memStore) balance(id uuid.UUID) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[id]
}

func (s *memStore) walletEntries(id uuid.UUID) []domain.WalletTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WalletTransaction(nil), s.wallet[id]...)
}

func (s *memStore) ledgerRows(id uuid.UUID) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, t := range s.ledger {
		if t.PartnerID == id {
			out = append(out, t)
		}
	}
	return out
}

type memSnapshot struct {
	balances map[uuid.UUID]decimal.Decimal
	wallet   map[uuid.UUID][]domain.WalletTransaction
	ledger   []domain.Transaction
	orders   map[uuid.UUID]domain.Order
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		balances: make(map[uuid.UUID]decimal.Decimal, len(s.balances)),
		wallet:   make(map[uuid.UUID][]domain.WalletTransaction, len(s.wallet)),
		ledger:   append([]domain.Transaction(nil), s.ledger...),
		orders:   make(map[uuid.UUID]domain.Order, len(s.orders)),
	}
	for k, v := range s.balances {
		snap.balances[k] = v
	}
	for k, v := range s.wallet {
		snap.wallet[k] = append([]domain.WalletTransaction(nil), v...)
	}
	for k, v := range s.orders {
		snap.orders[k] = *v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.balances = snap.balances
	s.wallet = snap.wallet
	s.ledger = snap.ledger
	s.orders = make(map[uuid.UUID]*domain.Order, len(snap.orders))
	for k, v := range snap.orders {
		o := v
		s.orders[k] = &o
	}
}

// Begin implements ports.DBTransactor.
func (s *memStore) Begin(_ context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	return &memTx{store: s, snap: s.snapshot()}, nil
}

type memTx struct {
	pgx.Tx
	store *memStore
	snap  memSnapshot
	done  bool
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.restore(t.snap)
	t.store.mu.Unlock()
	return nil
}

// memPartnerRepo implements ports.PartnerRepository over memStore. Methods
// taking a pgx.Tx assume the caller holds the store lock.
type memPartnerRepo struct{ s *memStore }

func (r memPartnerRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Partner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.load(id), nil
}

func (r memPartnerRepo) GetByIDForUpdate(_ context.Context, _ pgx.Tx, id uuid.UUID) (*domain.Partner, error) {
	return r.load(id), nil
}

func (r memPartnerRepo) load(id uuid.UUID) *domain.Partner {
	bal, ok := r.s.balances[id]
	if !ok {
		return nil
	}
	return &domain.Partner{ID: id, Name: "partner", Wallet: domain.PartnerWallet{CommissionBalance: bal}}
}

func (r memPartnerRepo) UpdateCommissionBalance(_ context.Context, _ pgx.Tx, id uuid.UUID, balance decimal.Decimal) error {
	if _, ok := r.s.balances[id]; !ok {
		return errors.New("partner not found")
	}
	if balance.IsNegative() {
		return fmt.Errorf("check constraint: commission_balance %s < 0", balance)
	}
	r.s.balances[id] = balance
	return nil
}

func (r memPartnerRepo) AppendWalletTransaction(_ context.Context, _ pgx.Tx, entry *domain.WalletTransaction) error {
	r.s.wallet[entry.PartnerID] = append(r.s.wallet[entry.PartnerID], *entry)
	return nil
}

func (r memPartnerRepo) ListWalletTransactions(_ context.Context, partnerID uuid.UUID, limit int) ([]domain.WalletTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entries := r.s.wallet[partnerID]
	out := make([]domain.WalletTransaction, 0, len(entries))
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

func (r memPartnerRepo) WalletNet(_ context.Context, partnerID uuid.UUID) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	net := decimal.Zero
	for _, e := range r.s.wallet[partnerID] {
		if e.TransactionCategory == domain.WalletCategoryCommission {
			net = net.Add(e.SignedAmount())
		}
	}
	return net, nil
}

func (r memPartnerRepo) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(r.s.balances))
	for id := range r.s.balances {
		ids = append(ids, id)
	}
	return ids, nil
}

// memTxRepo implements ports.TransactionRepository over memStore.
type memTxRepo struct{ s *memStore }

func (r memTxRepo) Create(_ context.Context, _ pgx.Tx, t *domain.Transaction) error {
	if r.s.failCreate != nil {
		return r.s.failCreate
	}
	r.s.ledger = append(r.s.ledger, *t)
	return nil
}

func (r memTxRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.ledger {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (r memTxRepo) ListByPartner(_ context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Transaction
	for _, t := range r.s.ledger {
		if t.PartnerID == params.PartnerID && (params.Type == nil || t.TransactionType == *params.Type) {
			out = append(out, t)
		}
	}
	return out, int64(len(out)), nil
}

func (r memTxRepo) NetByPartner(_ context.Context, partnerID uuid.UUID) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	net := decimal.Zero
	for _, t := range r.s.ledger {
		if t.PartnerID == partnerID && t.Status == domain.TransactionStatusCompleted {
			net = net.Add(t.Amount)
		}
	}
	return net, nil
}

// memOrderRepo implements ports.OrderRepository over memStore.
type memOrderRepo struct{ s *memStore }

func (r memOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.copyOf(id), nil
}

func (r memOrderRepo) GetByIDForUpdate(_ context.Context, _ pgx.Tx, id uuid.UUID) (*domain.Order, error) {
	return r.copyOf(id), nil
}

func (r memOrderRepo) copyOf(id uuid.UUID) *domain.Order {
	o, ok := r.s.orders[id]
	if !ok {
		return nil
	}
	cp := *o
	return &cp
}

func (r memOrderRepo) SaveCommission(_ context.Context, _ pgx.Tx, order *domain.Order) error {
	o, ok := r.s.orders[order.ID]
	if !ok {
		return errors.New("order not found")
	}
	o.Items = order.Items
	o.Commission.Rate = order.Commission.Rate
	o.Commission.Amount = order.Commission.Amount
	o.Commission.IsApplied = order.Commission.IsApplied
	o.Commission.AppliedAt = order.Commission.AppliedAt
	return nil
}

func (r memOrderRepo) UpdateStatus(_ context.Context, _ pgx.Tx, id uuid.UUID, status domain.OrderStatus) error {
	o, ok := r.s.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.Status = status
	return nil
}

func (r memOrderRepo) MarkCommissionApplied(_ context.Context, id uuid.UUID, appliedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.Commission.IsApplied = true
	o.Commission.AppliedAt = &appliedAt
	return nil
}

// memRuleRepo never has a configured rule, so the default rate table applies.
type memRuleRepo struct{}

func (memRuleRepo) FindEffective(context.Context, uuid.UUID, domain.Category, domain.OrderType) (*domain.CommissionRule, error) {
	return nil, nil
}
