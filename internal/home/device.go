// Package home models the smart-home side of jarvis: the device
// inventory, the control state machine and the bounded security journal.
package home

import (
	"strings"

	"github.com/kelleyblackmore/jarvis-mcp/internal/store"
)

// DeviceType classifies a device.
type DeviceType string

const (
	TypeLight      DeviceType = "light"
	TypeThermostat DeviceType = "thermostat"
	TypeLock       DeviceType = "lock"
	TypeCamera     DeviceType = "camera"
	TypeSpeaker    DeviceType = "speaker"
	TypeBlinds     DeviceType = "blinds"
)

// DeviceTypes lists all device types.
func DeviceTypes() []DeviceType {
	return []DeviceType{TypeLight, TypeThermostat, TypeLock, TypeCamera, TypeSpeaker, TypeBlinds}
}

// ParseDeviceType normalizes and validates a device type string.
func ParseDeviceType(s string) (DeviceType, bool) {
	t := DeviceType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeLight, TypeThermostat, TypeLock, TypeCamera, TypeSpeaker, TypeBlinds:
		return t, true
	}
	return "", false
}

// Status is a device power state.
type Status string

const (
	StatusOn      Status = "on"
	StatusOff     Status = "off"
	StatusUnknown Status = "unknown"
)

// Device is one controllable smart-home unit.
type Device struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     DeviceType `json:"type"`
	Status   Status     `json:"status"`
	Room     string     `json:"room"`
	Settings Settings   `json:"settings,omitempty"`
}

// Devices is the device inventory.
type Devices struct {
	*store.Store[Device]
}

// NewDevices creates an empty inventory.
func NewDevices() (*Devices, error) {
	st, err := store.New(store.Config[Device]{
		Prefix:   "device_",
		AssignID: func(d *Device, id string) { d.ID = id },
		Clone: func(d Device) Device {
			d.Settings = d.Settings.Clone()
			return d
		},
	})
	if err != nil {
		return nil, err
	}
	return &Devices{Store: st}, nil
}

// Filtered returns devices matching the optional room and type filters.
// Room comparison is case-insensitive; an empty filter matches everything.
func (d *Devices) Filtered(room string, typ DeviceType) []Device {
	var preds []func(Device) bool
	if room != "" {
		want := strings.ToLower(strings.TrimSpace(room))
		preds = append(preds, func(dev Device) bool {
			return strings.ToLower(dev.Room) == want
		})
	}
	if typ != "" {
		preds = append(preds, func(dev Device) bool {
			return dev.Type == typ
		})
	}
	return d.List(preds...)
}

// OfType returns all devices of one type, insertion order.
func (d *Devices) OfType(typ DeviceType) []Device {
	return d.List(func(dev Device) bool { return dev.Type == typ })
}
