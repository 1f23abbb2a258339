package services

// Response messages. Each operation starts from its error-in-<op> default
// and swaps in a specific message as it progresses.
const (
	ErrCreatingUser = "error in creating user"
	ErrGettingUsers = "error in getting users"
	ErrUpdatingUser = "error in updating user"
	ErrDeletingUser = "error in deleting user"
	UserCreated     = "user created successfully"
	UserUpdated     = "user updated successfully"
	UserDeleted     = "user deleted successfully"
	UserFound       = "user found"
	NoUserFound     = "no user found"

	ErrCreatingBook = "error in creating book"
	ErrGettingBooks = "error in getting books"
	ErrUpdatingBook = "error in updating book"
	ErrDeletingBook = "error in deleting book"
	BookCreated     = "book created successfully"
	BookUpdated     = "book updated successfully"
	BookDeleted     = "book deleted successfully"
	BookFound       = "book found"
	NoBookFound     = "no book found"

	ErrCreatingTransaction   = "error in creating transaction"
	ErrGettingTransactions   = "error in getting transactions"
	ErrUpdatingTransaction   = "error in updating transaction"
	ErrDeletingTransaction   = "error in deleting transaction"
	TransactionAlreadyExists = "transaction already exists"
	TransactionCreated       = "transaction created successfully"
	TransactionUpdated       = "transaction updated successfully"
	TransactionDeleted       = "transaction deleted successfully"
	TransactionFound         = "transaction found"
	NoTransactionFound       = "no transaction found"
)
