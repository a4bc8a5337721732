package retention

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	cryptoutil "hrm-retention/internal/platform/crypto"
)

// ReportWriter persists the count-only summary of a run as a JSON artifact,
// optionally accompanied by a one-page PDF. When the crypto service is
// configured both artifacts are written encrypted with an .enc suffix.
type ReportWriter struct {
	dir    string
	pdf    bool
	crypto *cryptoutil.Service
}

func NewReportWriter(dir string, pdf bool, crypto *cryptoutil.Service) *ReportWriter {
	return &ReportWriter{dir: dir, pdf: pdf, crypto: crypto}
}

type reportPayload struct {
	RunID       string    `json:"runId"`
	CompletedAt time.Time `json:"completedAt"`
	Summary     Summary   `json:"summary"`
}

func (w *ReportWriter) Write(runID string, completedAt time.Time, summary Summary) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", err
	}

	payload, err := json.MarshalIndent(reportPayload{
		RunID:       runID,
		CompletedAt: completedAt,
		Summary:     summary,
	}, "", "  ")
	if err != nil {
		return "", err
	}

	reportPath, err := w.writeArtifact(filepath.Join(w.dir, runID+".json"), payload)
	if err != nil {
		return "", err
	}

	if w.pdf {
		if err := w.writePDF(runID, completedAt, summary); err != nil {
			return "", err
		}
	}
	return reportPath, nil
}

func (w *ReportWriter) writeArtifact(path string, data []byte) (string, error) {
	if w.crypto != nil && w.crypto.Configured() {
		sealed, err := w.crypto.Seal(data)
		if err != nil {
			return "", err
		}
		path += ".enc"
		data = sealed
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func (w *ReportWriter) writePDF(runID string, completedAt time.Time, summary Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Retention Run Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Run: %s", runID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Completed: %s", completedAt.Format("2006-01-02 15:04:05 MST")))
	pdf.Ln(10)

	lines := []struct {
		label string
		count int64
	}{
		{"Audit logs deleted", summary.DeletedAuditLogs},
		{"Attendance records deleted", summary.DeletedAttendance},
		{"Payroll records deleted", summary.DeletedPayroll},
		{"Payroll overrides deleted", summary.DeletedPayrollOverrides},
		{"Employees anonymized", summary.AnonymizedEmployees},
		{"Offboarding tasks deleted", summary.DeletedOffboardingTasks},
		{"Offboarding processes deleted", summary.DeletedOffboardingProcesses},
	}
	for _, line := range lines {
		pdf.Cell(0, 8, fmt.Sprintf("%s: %d", line.label, line.count))
		pdf.Ln(7)
	}

	path := filepath.Join(w.dir, runID+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return err
	}

	if w.crypto != nil && w.crypto.Configured() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sealed, err := w.crypto.Seal(data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path+".enc", sealed, 0o600); err != nil {
			return err
		}
		return os.Remove(path)
	}
	return nil
}
