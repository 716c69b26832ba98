package home

// Aggregate security posture values.
const (
	OverallSecure    = "SECURE"
	OverallAttention = "ATTENTION_NEEDED"
)

// recentAlertCount is how many alert/critical entries ride along with a
// security report.
const recentAlertCount = 5

// SecurityReport is the read-only security posture summary.
type SecurityReport struct {
	Overall       string     `json:"overall_status"`
	Locks         int        `json:"locks"`
	LocksSecured  int        `json:"locks_secured"`
	Cameras       int        `json:"cameras"`
	CamerasActive int        `json:"cameras_active"`
	RecentAlerts  []LogEntry `json:"recent_alerts"`
}

// SecurityReport computes the aggregate posture: secure iff every lock is
// on or explicitly locked and every camera is on. Empty inventories are
// vacuously secure.
func (c *Controller) SecurityReport() SecurityReport {
	locks := c.devices.OfType(TypeLock)
	cameras := c.devices.OfType(TypeCamera)

	report := SecurityReport{
		Overall:      OverallSecure,
		Locks:        len(locks),
		Cameras:      len(cameras),
		RecentAlerts: c.journal.Recent(recentAlertCount, SeverityAlert, SeverityCritical),
	}
	for _, lock := range locks {
		if lockSecured(lock) {
			report.LocksSecured++
		} else {
			report.Overall = OverallAttention
		}
	}
	for _, camera := range cameras {
		if camera.Status == StatusOn {
			report.CamerasActive++
		} else {
			report.Overall = OverallAttention
		}
	}
	return report
}

// lockSecured reports whether a lock counts as secured: powered on, or
// explicitly locked via settings.
func lockSecured(d Device) bool {
	if d.Status == StatusOn {
		return true
	}
	if v, ok := d.Settings["locked"]; ok {
		if locked, ok := v.Flag(); ok {
			return locked
		}
	}
	return false
}
