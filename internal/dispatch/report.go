package dispatch

import (
	"fmt"
	"strconv"
	"strings"
)

const reportTemplate = `━━━━━━━━ 🚨 INCIDENT RESPONSE REPORT ━━━━━━━━

🔥 Incident Type : %s
📍 Location      : %s, %s
⚠ Severity      : %s

🚒 Vehicle       : %s
👨‍🚒 Officers    : %s

🛣 AI Route      : %s
⏱ ETA           : %d minutes

🧰 Equipment Used:
%s
💧 Water Used: %s Liters

🕒 Timeline:
%s

✅ Status: INCIDENT SUCCESSFULLY RESOLVED
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
`

// FormatReport renders the fixed-template dispatch report for a record.
// The timeline lines are the staged narrative produced by the orchestrator.
// Pure string substitution, no validation.
func FormatReport(rec Record, timeline []string) string {
	return fmt.Sprintf(reportTemplate,
		rec.IncidentType,
		formatNumber(rec.Latitude),
		formatNumber(rec.Longitude),
		rec.Severity,
		rec.Vehicle,
		strings.Join(rec.Officers, ", "),
		rec.RouteLabel,
		rec.ETAMinutes,
		strings.Join(rec.Equipment, ", "),
		formatNumber(rec.WaterLiters),
		strings.Join(timeline, "\n"),
	)
}

// formatNumber renders a float without a trailing ".0" for whole values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
