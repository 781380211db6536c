package domain

import "strconv"

// DatacenterID identifies a shard of the remote service.
type DatacenterID int

// Production datacenters.
const (
	DC1 DatacenterID = 1
	DC2 DatacenterID = 2
	DC3 DatacenterID = 3
	DC4 DatacenterID = 4
	DC5 DatacenterID = 5
)

// Valid reports whether the id can address a datacenter.
func (id DatacenterID) Valid() bool {
	return id > 0
}

func (id DatacenterID) String() string {
	return "dc" + strconv.Itoa(int(id))
}
