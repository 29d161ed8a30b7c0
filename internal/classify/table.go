package classify

// TableConfig lists the named types the classifier should recognize, grouped
// by capability. Names are written as they appear in schemas ("time.Time",
// "big.Int", "Money").
type TableConfig struct {
	// Enums are named types registered as enum types.
	Enums []string
	// KnownImmutables are value types treated as immutable by convention.
	// Generated code compares them via Cmp and renders them via String,
	// the contract the big.* numerics share.
	KnownImmutables []string
	// Cloneables are named types providing a Clone capability. A registered
	// cloneable must also have an Equal method; generated equality calls it.
	Cloneables []string
	// DateLikes are date/time types; copy semantics match Cloneables.
	// Generated code compares them via Equal and hashes them via UnixNano,
	// the time.Time contract.
	DateLikes []string
	// UserImmutables are classes declared structurally immutable, including
	// classes synthesized earlier. Generated equality calls their Equal
	// method, which every synthesized class carries.
	UserImmutables []string
}

// Table is the immutable classification table consulted for named types.
// A Table is never mutated after construction; derivation methods return
// copies, so independent syntheses can share one safely.
type Table struct {
	enums          map[string]struct{}
	knownImmutable map[string]struct{}
	cloneables     map[string]struct{}
	dateLikes      map[string]struct{}
	userImmutable  map[string]struct{}
}

// NewTable builds a Table from an explicit configuration.
func NewTable(cfg TableConfig) Table {
	return Table{
		enums:          toSet(cfg.Enums),
		knownImmutable: toSet(cfg.KnownImmutables),
		cloneables:     toSet(cfg.Cloneables),
		dateLikes:      toSet(cfg.DateLikes),
		userImmutable:  toSet(cfg.UserImmutables),
	}
}

// DefaultTable returns the table shipped with the tool: arbitrary-precision
// numerics as known-immutable (treated immutable by convention, mirroring the
// documented BigInteger/BigDecimal caveat) and time.Time as date-like.
func DefaultTable() Table {
	return NewTable(TableConfig{
		KnownImmutables: []string{"big.Int", "big.Float", "big.Rat"},
		DateLikes:       []string{"time.Time"},
	})
}

// Extend returns a derived table with the additional names merged in.
func (t Table) Extend(cfg TableConfig) Table {
	out := Table{
		enums:          cloneSet(t.enums, cfg.Enums),
		knownImmutable: cloneSet(t.knownImmutable, cfg.KnownImmutables),
		cloneables:     cloneSet(t.cloneables, cfg.Cloneables),
		dateLikes:      cloneSet(t.dateLikes, cfg.DateLikes),
		userImmutable:  cloneSet(t.userImmutable, cfg.UserImmutables),
	}

	return out
}

// WithUserImmutable returns a derived table that additionally recognizes the
// given names as user-immutable. Batch synthesis uses this to pre-register
// every class in the batch before classifying any of them.
func (t Table) WithUserImmutable(names ...string) Table {
	return t.Extend(TableConfig{UserImmutables: names})
}

// IsEnum reports whether name is a registered enum type.
func (t Table) IsEnum(name string) bool {
	_, ok := t.enums[name]
	return ok
}

// IsKnownImmutable reports whether name is a known-immutable value type.
func (t Table) IsKnownImmutable(name string) bool {
	_, ok := t.knownImmutable[name]
	return ok
}

// IsCloneable reports whether name provides a Clone capability.
func (t Table) IsCloneable(name string) bool {
	_, ok := t.cloneables[name]
	return ok
}

// IsDateLike reports whether name is a registered date-like type.
func (t Table) IsDateLike(name string) bool {
	_, ok := t.dateLikes[name]
	return ok
}

// IsUserImmutable reports whether name is declared structurally immutable.
func (t Table) IsUserImmutable(name string) bool {
	_, ok := t.userImmutable[name]
	return ok
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return set
}

func cloneSet(base map[string]struct{}, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(extra))
	for n := range base {
		set[n] = struct{}{}
	}

	for _, n := range extra {
		set[n] = struct{}{}
	}

	return set
}
