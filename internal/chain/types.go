package chain

type WriteRecord struct {
	ID    string
	Key   []byte
	Value []byte
}

type QueryResult struct {
	ID    string
	Key   []byte
	Value []byte
}

// Position is the static chain topology seen from one node. An empty address
// means there is no neighbour on that side.
type Position struct {
	NextAddr string
	PrevAddr string
}

type Role string

const (
	RoleHead   Role = "head"
	RoleMiddle Role = "middle"
	RoleTail   Role = "tail"
	RoleSingle Role = "single"
)

func (p Position) Role() Role {
	switch {
	case p.NextAddr == "" && p.PrevAddr == "":
		return RoleSingle
	case p.PrevAddr == "":
		return RoleHead
	case p.NextAddr == "":
		return RoleTail
	default:
		return RoleMiddle
	}
}

type NodeStatus struct {
	Role     Role
	NextAddr string
	PrevAddr string
	Sent     []string
	Pending  []string
}
