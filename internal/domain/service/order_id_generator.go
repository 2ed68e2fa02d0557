package service

// OrderIDGenerator produces candidate human-facing order codes. Candidates may
// collide; uniqueness is decided by the ledger.
type OrderIDGenerator interface {
	Generate() (string, error)
}
