package usecase

import (
	"context"
	"sync"

	"github.com/oplata-app/escrow-service/internal/domain"
)

// In-memory order repository with the same guarded-update semantics as the
// postgres implementation.
type fakeOrderRepo struct {
	mu           sync.Mutex
	orders       map[string]*domain.Order
	transactions []*domain.Transaction
	auditLog     []*domain.AuditLogEntry
	disputes     []*domain.Dispute
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (f *fakeOrderRepo) CreateOrder(order *domain.Order, audit *domain.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *order
	f.orders[order.ID] = &copied
	f.auditLog = append(f.auditLog, audit)
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) GetOrders(filters domain.OrderFilters) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []*domain.Order
	for _, order := range f.orders {
		if filters.UserID != "" && order.BuyerID != filters.UserID && order.SellerID != filters.UserID {
			continue
		}
		copied := *order
		orders = append(orders, &copied)
	}
	return orders, nil
}

func (f *fakeOrderRepo) CountOrders() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(orderID string, fromStatus, toStatus domain.OrderStatus, audit *domain.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.Status != fromStatus {
		return domain.ErrInvalidState
	}
	order.Status = toStatus
	f.auditLog = append(f.auditLog, audit)
	return nil
}

func (f *fakeOrderRepo) AttachPayment(orderID string, fromStatus domain.OrderStatus, paymentID, paymentURL string, txn *domain.Transaction, audit *domain.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.Status != fromStatus {
		return domain.ErrInvalidState
	}
	order.Status = domain.StatusPending
	order.PaymentID = paymentID
	order.PaymentURL = paymentURL
	f.transactions = append(f.transactions, txn)
	f.auditLog = append(f.auditLog, audit)
	return nil
}

func (f *fakeOrderRepo) CompleteOrder(orderID string, txn *domain.Transaction, audit *domain.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.Status != domain.StatusDelivered {
		return domain.ErrInvalidState
	}
	order.Status = domain.StatusCompleted
	f.transactions = append(f.transactions, txn)
	f.auditLog = append(f.auditLog, audit)
	return nil
}

func (f *fakeOrderRepo) OpenDispute(orderID string, dispute *domain.Dispute, audit *domain.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = domain.StatusDispute
	f.disputes = append(f.disputes, dispute)
	f.auditLog = append(f.auditLog, audit)
	return nil
}

func (f *fakeOrderRepo) MarkOrderPaid(orderID string, audit *domain.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.Status != domain.StatusPending {
		return domain.ErrInvalidState
	}
	order.Status = domain.StatusPaid
	f.auditLog = append(f.auditLog, audit)
	return nil
}

type fakeDisputeRepo struct {
	orderRepo *fakeOrderRepo
}

func (f *fakeDisputeRepo) GetDisputeByOrderID(orderID string) (*domain.Dispute, error) {
	f.orderRepo.mu.Lock()
	defer f.orderRepo.mu.Unlock()
	for _, dispute := range f.orderRepo.disputes {
		if dispute.OrderID == orderID {
			return dispute, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

type fakeLedgerRepo struct {
	orderRepo *fakeOrderRepo
}

func (f *fakeLedgerRepo) GetOrderTransactions(orderID string) ([]*domain.Transaction, error) {
	f.orderRepo.mu.Lock()
	defer f.orderRepo.mu.Unlock()
	var transactions []*domain.Transaction
	for _, txn := range f.orderRepo.transactions {
		if txn.OrderID == orderID {
			transactions = append(transactions, txn)
		}
	}
	return transactions, nil
}

func (f *fakeLedgerRepo) GetOrderAuditLog(orderID string) ([]*domain.AuditLogEntry, error) {
	f.orderRepo.mu.Lock()
	defer f.orderRepo.mu.Unlock()
	var entries []*domain.AuditLogEntry
	for _, entry := range f.orderRepo.auditLog {
		if entry.OrderID == orderID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) CreateUser(user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdateProfile(userID string, username, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}
	return nil
}

func (f *fakeUserRepo) GetUserByID(userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByTelegramID(telegramID int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.TelegramID == telegramID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Fake gateway recording calls, used by payment usecase tests.
type fakeGateway struct {
	mu          sync.Mutex
	createCalls int
	getCalls    int
	createFn    func(input domain.CreatePaymentInput) (*domain.Payment, error)
	getFn       func(paymentID string) (*domain.Payment, error)
}

func (f *fakeGateway) CreatePayment(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	return f.createFn(input)
}

func (f *fakeGateway) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	f.mu.Lock()
	f.getCalls++
	f.mu.Unlock()
	return f.getFn(paymentID)
}
