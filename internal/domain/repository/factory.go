package repository

// Factory describes access to the record stores.
//
// Every lookup returns errors.ErrNotFound when the store has no row for the user.
type Factory interface {
	Users() UserRepository
	Payments() PaymentRepository
	Debts() DebtRepository
	Histories() HistoryRepository
	Mixes() MixRepository
}
