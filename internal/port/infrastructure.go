// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"time"

	"netifctl/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
)

// AttributeStore is a port for kernel virtual-filesystem attribute files
// (sysfs and procfs). It performs no validation; typed accessors built on
// top of it validate and convert before writing.
type AttributeStore interface {
	// Read returns the attribute value with the trailing newline stripped
	Read(path string) (string, error)

	// Write stores the raw attribute value
	Write(path, value string) error
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool

	// RemoveFile deletes a file; a missing file is not an error
	RemoveFile(filename string) error
}

// Supervisor is a port for pid-file based control of external daemons.
type Supervisor interface {
	// Start launches the binary as a detached background process bound to
	// the given pid file
	Start(pidFile, binary string, args []string) error

	// Stop terminates the process referenced by the pid file
	Stop(pidFile string) error
}

// DHCPProber is a port for one-shot DHCPv4 server discovery.
type DHCPProber interface {
	// Probe performs a DISCOVER/OFFER/REQUEST/ACK exchange and returns the ACK
	Probe(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error)
}

// HardwareInfo is a port for L1 link settings queries.
type HardwareInfo interface {
	// LinkInfo returns speed/duplex/autoneg for the interface
	LinkInfo(interfaceName string) (*types.LinkInfo, error)

	// Close releases the underlying handle
	Close()
}
