package attachment

import (
	"regexp"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// DetectDevice classifies a User-Agent header as mobile or desktop.
func DetectDevice(userAgent string) domain.Device {
	if mobileUA.MatchString(userAgent) {
		return domain.DeviceMobile
	}
	return domain.DeviceDesktop
}
