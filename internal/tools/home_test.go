package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kelleyblackmore/jarvis-mcp/internal/home"
)

func deviceNamed(t *testing.T, devices *home.Devices, name string) home.Device {
	t.Helper()
	all, err := devices.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for _, dev := range all {
		if dev.Name == name {
			return dev
		}
	}
	t.Fatalf("no device named %q", name)
	return home.Device{}
}

func TestSmartHomeList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("all devices", func(t *testing.T) {
		data := dataMap(t, f.registry.Invoke(ctx, SmartHomeListName, json.RawMessage(`{}`)))
		if data["count"] != 8 {
			t.Errorf("count = %v, want 8", data["count"])
		}
	})
	t.Run("room is case-insensitive", func(t *testing.T) {
		data := dataMap(t, f.registry.Invoke(ctx, SmartHomeListName,
			json.RawMessage(`{"room":"LIVING ROOM"}`)))
		devices := data["devices"].([]home.Device)
		if len(devices) == 0 {
			t.Fatal("no devices in the living room")
		}
		for _, dev := range devices {
			if !strings.EqualFold(dev.Room, "living room") {
				t.Errorf("device %q is in %q", dev.Name, dev.Room)
			}
		}
	})
	t.Run("by type", func(t *testing.T) {
		data := dataMap(t, f.registry.Invoke(ctx, SmartHomeListName,
			json.RawMessage(`{"type":"lock"}`)))
		if data["count"] != 2 {
			t.Errorf("count = %v, want 2 locks", data["count"])
		}
	})
	t.Run("type outside enum", func(t *testing.T) {
		result := f.registry.Invoke(ctx, SmartHomeListName,
			json.RawMessage(`{"type":"drone"}`))
		if result.Status != StatusError || result.Error.Code != ErrCodeValidation {
			t.Errorf("result = %+v, want validation error", result)
		}
	})
}

func TestSmartHomeControl(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	lamp := deviceNamed(t, f.devices, "Bedroom Light")

	t.Run("turn on", func(t *testing.T) {
		result := f.registry.Invoke(ctx, SmartHomeControlName,
			json.RawMessage(`{"deviceId":"`+lamp.ID+`","action":"on"}`))
		data := dataMap(t, result)
		dev := data["device"].(home.Device)
		if dev.Status != home.StatusOn {
			t.Errorf("Status = %q, want on", dev.Status)
		}
		msg, _ := data["message"].(string)
		if !strings.Contains(msg, "Bedroom Light") {
			t.Errorf("message = %q, want the device named", msg)
		}
	})
	t.Run("settings accumulate across calls", func(t *testing.T) {
		f.registry.Invoke(ctx, SmartHomeControlName,
			json.RawMessage(`{"deviceId":"`+lamp.ID+`","action":"set","settings":{"brightness":25}}`))
		result := f.registry.Invoke(ctx, SmartHomeControlName,
			json.RawMessage(`{"deviceId":"`+lamp.ID+`","action":"set","settings":{"color":"warm"}}`))
		dev := dataMap(t, result)["device"].(home.Device)
		if n, ok := dev.Settings["brightness"].Number(); !ok || n != 25 {
			t.Errorf("brightness = %v, want 25 preserved", dev.Settings["brightness"])
		}
		if s, ok := dev.Settings["color"].Text(); !ok || s != "warm" {
			t.Errorf("color = %v, want warm", dev.Settings["color"])
		}
	})
	t.Run("unknown device", func(t *testing.T) {
		result := f.registry.Invoke(ctx, SmartHomeControlName,
			json.RawMessage(`{"deviceId":"device_missing","action":"on"}`))
		if result.Status != StatusError || result.Error.Code != ErrCodeNotFound {
			t.Fatalf("result = %+v, want not-found error", result)
		}
		if !strings.Contains(result.Error.Message, "device_missing") {
			t.Errorf("Error.Message = %q, want the id named", result.Error.Message)
		}
	})
	t.Run("action outside enum", func(t *testing.T) {
		result := f.registry.Invoke(ctx, SmartHomeControlName,
			json.RawMessage(`{"deviceId":"`+lamp.ID+`","action":"dim"}`))
		if result.Status != StatusError || result.Error.Code != ErrCodeValidation {
			t.Errorf("result = %+v, want validation error", result)
		}
	})
	t.Run("settings must be scalars", func(t *testing.T) {
		result := f.registry.Invoke(ctx, SmartHomeControlName,
			json.RawMessage(`{"deviceId":"`+lamp.ID+`","action":"set","settings":{"scenes":["dusk"]}}`))
		if result.Status != StatusError || result.Error.Code != ErrCodeValidation {
			t.Errorf("result = %+v, want validation error", result)
		}
	})
}

func TestSecurityStatusTool(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result := f.registry.Invoke(ctx, SecurityStatusName, nil)
	if result.Status != StatusSuccess {
		t.Fatalf("result = %+v, want success", result)
	}
	report, ok := result.Data.(home.SecurityReport)
	if !ok {
		t.Fatalf("Data type = %T, want home.SecurityReport", result.Data)
	}
	if report.Overall != home.OverallSecure {
		t.Errorf("Overall = %q, want %q on the default inventory", report.Overall, home.OverallSecure)
	}
	if report.Locks != 2 || report.LocksSecured != 2 {
		t.Errorf("locks = %d/%d, want 2/2", report.LocksSecured, report.Locks)
	}

	camera := deviceNamed(t, f.devices, "Front Door Camera")
	f.registry.Invoke(ctx, SmartHomeControlName,
		json.RawMessage(`{"deviceId":"`+camera.ID+`","action":"off"}`))

	report = f.registry.Invoke(ctx, SecurityStatusName, nil).Data.(home.SecurityReport)
	if report.Overall != home.OverallAttention {
		t.Errorf("Overall = %q after camera off, want %q", report.Overall, home.OverallAttention)
	}
}

func TestSecurityLockdownTool(t *testing.T) {
	t.Run("not confirmed", func(t *testing.T) {
		f := newFixture(t)
		result := f.registry.Invoke(context.Background(), SecurityLockdownName,
			json.RawMessage(`{"confirm":false}`))
		data := dataMap(t, result)
		report := data["report"].(home.LockdownReport)
		if report.Confirmed {
			t.Error("report.Confirmed = true, want false")
		}
		msg, _ := data["message"].(string)
		if !strings.Contains(msg, "confirm") {
			t.Errorf("message = %q, want a confirm hint", msg)
		}
		if got := len(f.journal.Recent(10)); got != 0 {
			t.Errorf("journal has %d entries, want none without confirmation", got)
		}
	})
	t.Run("confirmed", func(t *testing.T) {
		f := newFixture(t)
		result := f.registry.Invoke(context.Background(), SecurityLockdownName,
			json.RawMessage(`{"confirm":true}`))
		data := dataMap(t, result)
		report := data["report"].(home.LockdownReport)
		if !report.Confirmed || report.LocksSecured != 2 || report.CamerasActivated != 1 {
			t.Errorf("report = %+v, want confirmed with 2 locks and 1 camera", report)
		}
		alerts := f.journal.Recent(10, home.SeverityAlert)
		if len(alerts) != 1 {
			t.Errorf("journal has %d alert entries, want exactly 1", len(alerts))
		}
	})
	t.Run("confirm is required", func(t *testing.T) {
		f := newFixture(t)
		result := f.registry.Invoke(context.Background(), SecurityLockdownName,
			json.RawMessage(`{}`))
		if result.Status != StatusError || result.Error.Code != ErrCodeValidation {
			t.Errorf("result = %+v, want validation error", result)
		}
	})
}
