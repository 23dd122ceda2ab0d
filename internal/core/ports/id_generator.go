package ports

// IdentifierGenerator produces identifiers for new records.
// Next returns a string guaranteed unique among all identifiers the
// generator has produced during the process lifetime.
type IdentifierGenerator interface {
	Next() string
}
