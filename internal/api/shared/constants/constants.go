package constants

const (
	DEFAULT_PAGE                = 1
	DEFAULT_DISTRIBUTIONS_LIMIT = 10
	MAX_DISTRIBUTIONS_LIMIT     = 100
	DEFAULT_TRANSACTIONS_LIMIT  = 20
	MAX_TRANSACTIONS_LIMIT      = 100
	MAX_CLAIM_DISTRIBUTIONS     = 50
	MAX_NOTES_LENGTH            = 1000
)
