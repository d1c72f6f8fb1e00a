// Package dhclient manages the lifecycle of an external ISC dhclient
// process per interface and address family: config rendering, supervised
// start/stop, and artifact cleanup.
package dhclient

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"netifctl/internal/pkg/logging"
	"netifctl/internal/port"
	"netifctl/internal/types"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBasePath is the artifact path prefix; per-interface files are
	// derived from it as <base>_<ifname>.<ext>.
	DefaultBasePath = "/var/lib/dhcp/dhclient"

	// DefaultBinary is the dhclient executable started for each lease.
	DefaultBinary = "/sbin/dhclient"

	// defaultSettleDelay is the IPv6 duplicate-address-detection grace
	// period waited before handing the interface to the client.
	defaultSettleDelay = 5 * time.Second
)

// Options configures a lease controller. Zero values select the defaults
// above and the system hostname.
type Options struct {
	BasePath    string
	Binary      string
	Hostname    string
	SettleDelay time.Duration

	settleDelaySet bool
}

// WithSettleDelay returns a copy of the options with an explicit DAD settle
// delay, allowing tests to disable the wait.
func (o Options) WithSettleDelay(d time.Duration) Options {
	o.SettleDelay = d
	o.settleDelaySet = true
	return o
}

// Deps are the infrastructure ports the controller drives.
type Deps struct {
	Files      port.FileManager
	Supervisor port.Supervisor
	Attrs      port.AttributeStore
}

// Controller drives one dhclient instance for one (interface, family) pair.
// There is no stored state flag: the pid file is the sole source of truth
// for whether the client is active, which keeps the controller tolerant of
// external state drift.
type Controller struct {
	ifname string
	family types.Family
	deps   Deps
	opts   Options

	configFile string
	pidFile    string
	leaseFile  string

	log *logrus.Entry
}

// New creates a lease controller and derives the deterministic artifact
// paths for the (interface, family) pair.
func New(ifname string, family types.Family, deps Deps, opts Options) *Controller {
	if opts.BasePath == "" {
		opts.BasePath = DefaultBasePath
	}
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.SettleDelay == 0 && !opts.settleDelaySet {
		opts.SettleDelay = defaultSettleDelay
	}

	base := opts.BasePath + "_" + ifname
	c := &Controller{
		ifname: ifname,
		family: family,
		deps:   deps,
		opts:   opts,
		log:    logging.WithComponentAndInterface("dhclient", ifname).WithField("family", family.String()),
	}
	if family == types.FamilyV6 {
		c.configFile = base + ".v6conf"
		c.pidFile = base + ".v6pid"
		c.leaseFile = base + ".v6leases"
	} else {
		c.configFile = base + ".conf"
		c.pidFile = base + ".pid"
		c.leaseFile = base + ".leases"
	}
	return c
}

// ConfigFile returns the derived client configuration path.
func (c *Controller) ConfigFile() string { return c.configFile }

// PidFile returns the derived pid file path.
func (c *Controller) PidFile() string { return c.pidFile }

// LeaseFile returns the derived lease database path.
func (c *Controller) LeaseFile() string { return c.leaseFile }

// Active reports whether a client appears to be running: the pid file
// exists and contains a parseable integer. Orphaned pid files from a dead
// client still read as active until Deactivate cleans them up.
func (c *Controller) Active() bool {
	data, err := c.deps.Files.ReadFile(c.pidFile)
	if err != nil {
		return false
	}
	_, err = strconv.Atoi(strings.TrimSpace(string(data)))
	return err == nil
}

// Activate renders the client configuration and launches the supervised
// dhclient process. For IPv6 it first waits out the DAD grace period and
// disables router-advertisement acceptance, since the client now owns
// address configuration. Launch failure propagates; there is no retry and
// no timeout on lease acquisition.
func (c *Controller) Activate() error {
	text, err := renderConfig(c.family, c.ifname, c.hostname())
	if err != nil {
		return err
	}
	if err := c.deps.Files.WriteFile(c.configFile, []byte(text), 0644); err != nil {
		return err
	}

	if c.family == types.FamilyV6 {
		time.Sleep(c.opts.SettleDelay)
		if err := c.deps.Attrs.Write(c.acceptRAPath(), "0"); err != nil {
			return err
		}
	}

	args := []string{
		c.familyFlag(), "-nw",
		"-cf", c.configFile,
		"-pf", c.pidFile,
		"-lf", c.leaseFile,
		c.ifname,
	}
	c.log.WithField("pid_file", c.pidFile).Info("Starting dhclient")
	if err := c.deps.Supervisor.Start(c.pidFile, c.opts.Binary, args); err != nil {
		return fmt.Errorf("failed to start dhclient on %s: %w", c.ifname, err)
	}
	return nil
}

// Deactivate stops the supervised client and removes its artifacts. If no
// pid file exists the controller is already inactive and this is a no-op.
// The process is stopped before file cleanup so a still-running client
// cannot recreate the lease file after deletion.
func (c *Controller) Deactivate() error {
	if !c.deps.Files.FileExists(c.pidFile) {
		c.log.Debug("No dhclient pid file, nothing to stop")
		return nil
	}

	c.log.Info("Stopping dhclient")
	if err := c.deps.Supervisor.Stop(c.pidFile); err != nil {
		return fmt.Errorf("failed to stop dhclient on %s: %w", c.ifname, err)
	}

	if c.family == types.FamilyV6 {
		if err := c.deps.Attrs.Write(c.acceptRAPath(), "1"); err != nil {
			return err
		}
	}

	for _, f := range []string{c.configFile, c.pidFile, c.leaseFile} {
		if err := c.deps.Files.RemoveFile(f); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) familyFlag() string {
	if c.family == types.FamilyV6 {
		return "-6"
	}
	return "-4"
}

func (c *Controller) acceptRAPath() string {
	return fmt.Sprintf("/proc/sys/net/ipv6/conf/%s/accept_ra", c.ifname)
}

func (c *Controller) hostname() string {
	if c.opts.Hostname != "" {
		return c.opts.Hostname
	}
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return "localhost"
}
