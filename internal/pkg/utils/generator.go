package utils

import (
	"fmt"
	"mindcheck-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.New().String(), "-", "")
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateReportObjectName names a patient report object, unique per export.
func GenerateReportObjectName(patientID string, now time.Time) string {
	return fmt.Sprintf(constvars.ReportObjectPathFormat, patientID, now.UTC().Format("20060102T150405Z")+"-"+uuid.New().String()[:8])
}
