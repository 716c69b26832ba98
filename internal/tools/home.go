package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/store"
)

// Tool name constants for the smart-home toolset.
const (
	// SmartHomeListName is the tool name for listing devices.
	SmartHomeListName = "jarvis_smart_home_list"
	// SmartHomeControlName is the tool name for controlling one device.
	SmartHomeControlName = "jarvis_smart_home_control"
	// SecurityStatusName is the tool name for the security summary.
	SecurityStatusName = "jarvis_security_status"
	// SecurityLockdownName is the tool name for the lockdown transition.
	SecurityLockdownName = "jarvis_security_lockdown"
)

// Home implements the smart-home and security tools.
type Home struct {
	controller *home.Controller
	devices    *home.Devices
	logger     log.Logger
}

// NewHome creates a Home toolset instance.
func NewHome(controller *home.Controller, devices *home.Devices, logger log.Logger) (*Home, error) {
	if controller == nil {
		return nil, fmt.Errorf("device controller is required")
	}
	if devices == nil {
		return nil, fmt.Errorf("device inventory is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Home{controller: controller, devices: devices, logger: logger}, nil
}

// SmartHomeList returns devices, optionally narrowed by room and type.
func (h *Home) SmartHomeList(_ context.Context, in SmartHomeListInput) Result {
	h.logger.Debug("SmartHomeList called", "room", in.Room, "type", in.Type)

	var typ home.DeviceType
	if in.Type != "" {
		parsed, ok := home.ParseDeviceType(in.Type)
		if !ok {
			return errorResult(ErrCodeValidation, fmt.Sprintf("invalid device type %q; valid values: %s",
				in.Type, strings.Join(stringsOf(home.DeviceTypes()), ", ")))
		}
		typ = parsed
	}

	devices := h.devices.Filtered(in.Room, typ)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"count":   len(devices),
			"devices": devices,
		},
	}
}

// SmartHomeControl applies one action to one device, with an optional
// settings patch merged on top of whatever the device already carries.
func (h *Home) SmartHomeControl(_ context.Context, in SmartHomeControlInput) Result {
	h.logger.Debug("SmartHomeControl called", "deviceId", in.DeviceID, "action", in.Action)

	id := strings.TrimSpace(in.DeviceID)
	if id == "" {
		return errorResult(ErrCodeValidation, "deviceId is required")
	}
	action, ok := home.ParseAction(in.Action)
	if !ok {
		return errorResult(ErrCodeValidation, fmt.Sprintf("invalid action %q; valid values: %s",
			in.Action, strings.Join(stringsOf(home.Actions()), ", ")))
	}

	device, err := h.controller.Control(id, action, in.Settings)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.logger.Warn("control rejected: unknown device", "deviceId", id)
			return errorResult(ErrCodeNotFound, fmt.Sprintf("device not found: %s", id))
		}
		return errorResult(ErrCodeExecution, err.Error())
	}

	h.logger.Debug("SmartHomeControl succeeded", "deviceId", device.ID, "status", device.Status)
	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"message": fmt.Sprintf("%s is now %s.", device.Name, device.Status),
			"device":  device,
		},
	}
}

// SecurityStatus reports the aggregate security posture.
func (h *Home) SecurityStatus(_ context.Context, _ SecurityStatusInput) Result {
	h.logger.Debug("SecurityStatus called")
	report := h.controller.SecurityReport()
	return Result{
		Status: StatusSuccess,
		Data:   report,
	}
}

// SecurityLockdown engages the composite lockdown transition. Without
// confirm=true it is a no-op that says so; this is a safety gate, not
// an error.
func (h *Home) SecurityLockdown(_ context.Context, in SecurityLockdownInput) Result {
	h.logger.Debug("SecurityLockdown called", "confirm", in.Confirm)

	report := h.controller.Lockdown(in.Confirm)
	if !report.Confirmed {
		return Result{
			Status: StatusSuccess,
			Data: map[string]any{
				"report":  report,
				"message": "Lockdown not confirmed. Call again with confirm=true to engage.",
			},
		}
	}

	return Result{
		Status: StatusSuccess,
		Data: map[string]any{
			"report": report,
			"message": fmt.Sprintf("Security lockdown engaged: %d locks secured, %d cameras activated.",
				report.LocksSecured, report.CamerasActivated),
		},
	}
}

// RegisterHome adds the smart-home tools to the registry.
func RegisterHome(r *Registry, h *Home) error {
	if r == nil {
		return fmt.Errorf("registry is required")
	}
	if h == nil {
		return fmt.Errorf("home toolset is required")
	}

	listSchema, err := inputSchema[SmartHomeListInput](
		withEnum("type", stringsOf(home.DeviceTypes())...))
	if err != nil {
		return fmt.Errorf("schema for %s: %w", SmartHomeListName, err)
	}
	if err := Add(r, SmartHomeListName,
		"List smart-home devices with their status, room and settings, optionally narrowed by room (case-insensitive) and type.",
		listSchema, h.SmartHomeList); err != nil {
		return err
	}

	controlSchema, err := inputSchema[SmartHomeControlInput](
		withEnum("action", stringsOf(home.Actions())...),
		withObjectProperty("settings",
			"Setting keys to merge into the device; values are strings or numbers or booleans"))
	if err != nil {
		return fmt.Errorf("schema for %s: %w", SmartHomeControlName, err)
	}
	if err := Add(r, SmartHomeControlName,
		"Turn a device on or off or toggle it, optionally merging settings such as brightness or temperature. Toggling an unknown-state device turns it on.",
		controlSchema, h.SmartHomeControl); err != nil {
		return err
	}

	statusSchema, err := inputSchema[SecurityStatusInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", SecurityStatusName, err)
	}
	if err := Add(r, SecurityStatusName,
		"Summarize the security posture: SECURE or ATTENTION_NEEDED, lock and camera counts, and recent alert entries.",
		statusSchema, h.SecurityStatus); err != nil {
		return err
	}

	lockdownSchema, err := inputSchema[SecurityLockdownInput]()
	if err != nil {
		return fmt.Errorf("schema for %s: %w", SecurityLockdownName, err)
	}
	if err := Add(r, SecurityLockdownName,
		"Engage a full security lockdown: every lock on and locked, every camera on and recording with motion detection. Requires confirm=true.",
		lockdownSchema, h.SecurityLockdown); err != nil {
		return err
	}

	return nil
}
