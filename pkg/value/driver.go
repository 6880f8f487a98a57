package value

import (
	"sync"
	"time"
)

var (
	driverMu      sync.Mutex
	activeDrivers = make(map[*Driver]struct{})
)

// Driver calls a callback on each frame while active.
//
// Driver is the low-level timing primitive behind animated value actions.
// Drivers are advanced by the host's frame loop via [StepDrivers]; nothing
// in this package spawns goroutines or blocks, so animation progression is
// fully owned by whoever pumps the frames.
type Driver struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewDriver creates a new driver with the given callback.
func NewDriver(callback func(elapsed time.Duration)) *Driver {
	return &Driver{
		callback: callback,
	}
}

// Start activates the driver.
func (d *Driver) Start() {
	if d.isActive {
		return
	}
	d.isActive = true
	d.start = Now()
	driverMu.Lock()
	activeDrivers[d] = struct{}{}
	driverMu.Unlock()
}

// Stop deactivates the driver.
func (d *Driver) Stop() {
	if !d.isActive {
		return
	}
	d.isActive = false
	driverMu.Lock()
	delete(activeDrivers, d)
	driverMu.Unlock()
}

// IsActive returns whether the driver is currently running.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// Elapsed returns the time since the driver started.
func (d *Driver) Elapsed() time.Duration {
	if !d.isActive {
		return 0
	}
	return Now().Sub(d.start)
}

// StepDrivers advances all active drivers.
// This should be called once per frame by the host's frame loop.
func StepDrivers() {
	driverMu.Lock()
	if len(activeDrivers) == 0 {
		driverMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	drivers := make([]*Driver, 0, len(activeDrivers))
	for driver := range activeDrivers {
		drivers = append(drivers, driver)
	}
	driverMu.Unlock()

	for _, driver := range drivers {
		if driver.isActive && driver.callback != nil {
			elapsed := Now().Sub(driver.start)
			driver.callback(elapsed)
		}
	}
}

// HasActiveDrivers returns true if any drivers are active.
func HasActiveDrivers() bool {
	driverMu.Lock()
	defer driverMu.Unlock()
	return len(activeDrivers) > 0
}
