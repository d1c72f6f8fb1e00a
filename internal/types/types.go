package types

// Kind identifies the link type of a network device.
type Kind string

const (
	KindPhysical Kind = "physical"
	KindLoopback Kind = "loopback"
	KindDummy    Kind = "dummy"
	KindBridge   Kind = "bridge"
)

// Family identifies an IP address family.
type Family int

const (
	FamilyV4 Family = 4
	FamilyV6 Family = 6
)

func (f Family) String() string {
	if f == FamilyV6 {
		return "inet6"
	}
	return "inet"
}

// LinkInfo contains L1 link settings as reported by the driver.
type LinkInfo struct {
	Speed   uint32 // Mb/s, 0 if unknown
	Duplex  string // "full", "half", "unknown"
	Autoneg bool
}
