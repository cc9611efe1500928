package router

// DefaultVNodes is the number of ring identities a member gets when it
// does not ask for a specific count.
const DefaultVNodes = 128

// Member is a physical cluster member tracked by the router. VNodes is the
// number of ring identities the member occupies; it is fixed when the
// member joins because the same count is needed to remove the identities
// again.
type Member struct {
	ID     string
	Addr   string
	VNodes int
}
