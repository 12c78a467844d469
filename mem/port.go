package mem

import "sync"

// InFunc is a host-supplied callback invoked synchronously by IN. Returning
// ok == false leaves the accumulator unchanged.
type InFunc func(device byte) (value byte, ok bool)

// OutFunc is a host-supplied callback invoked synchronously by OUT with the
// device number and the value of A. It returns nothing.
type OutFunc func(device byte, value byte)

// portOut is the (active, device, value) mailbox OUT publishes into and the
// host drains via GetPortOut/ClearPortOut.
type portOut struct {
	active bool
	device byte
	value  byte
}

// portSurface is the only part of a Bus that may be touched from outside
// the Cpu driver goroutine (a peripheral thread writing port-in latches or
// draining the OUT mailbox), so every access goes through mu.
type portSurface struct {
	mu sync.Mutex

	in  [256]byte
	out portOut

	inFn  InFunc
	outFn OutFunc
}

// SetPortIn sets the latch sampled by the next IN for device.
func (b *Bus) SetPortIn(device byte, value byte) {
	b.ports.mu.Lock()
	defer b.ports.mu.Unlock()
	b.ports.in[device] = value
}

// SetInCallback registers a callback that IN consults instead of the latch
// table. Passing nil reverts to latch mode.
func (b *Bus) SetInCallback(fn InFunc) {
	b.ports.mu.Lock()
	defer b.ports.mu.Unlock()
	b.ports.inFn = fn
}

// SetOutCallback registers a callback that OUT invokes instead of publishing
// to the mailbox. Passing nil reverts to mailbox mode.
func (b *Bus) SetOutCallback(fn OutFunc) {
	b.ports.mu.Lock()
	defer b.ports.mu.Unlock()
	b.ports.outFn = fn
}

// GetPortOut returns the last OUT event, if the mailbox is active.
func (b *Bus) GetPortOut() (device byte, value byte, ok bool) {
	b.ports.mu.Lock()
	defer b.ports.mu.Unlock()
	if !b.ports.out.active {
		return 0, 0, false
	}
	return b.ports.out.device, b.ports.out.value, true
}

// ClearPortOut empties the OUT mailbox.
func (b *Bus) ClearPortOut() {
	b.ports.mu.Lock()
	defer b.ports.mu.Unlock()
	b.ports.out = portOut{}
}

// In is the Cpu-facing entry point for IN device: callback mode takes
// priority over the latch table. ok is false only when a registered
// callback declines to produce a value, in which case the Cpu leaves the
// accumulator unchanged.
func (b *Bus) In(device byte) (value byte, ok bool) {
	b.ports.mu.Lock()
	defer b.ports.mu.Unlock()
	if b.ports.inFn != nil {
		return b.ports.inFn(device)
	}
	return b.ports.in[device], true
}

// Out is the Cpu-facing entry point for OUT device,value: callback mode
// takes priority over the mailbox.
func (b *Bus) Out(device byte, value byte) {
	b.ports.mu.Lock()
	defer b.ports.mu.Unlock()
	if b.ports.outFn != nil {
		b.ports.outFn(device, value)
		return
	}
	b.ports.out = portOut{active: true, device: device, value: value}
}
