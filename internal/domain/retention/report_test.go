package retention

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cryptoutil "hrm-retention/internal/platform/crypto"
)

func TestReportWriterPlainJSON(t *testing.T) {
	dir := t.TempDir()
	svc, err := cryptoutil.New("")
	require.NoError(t, err)

	summary := Summary{DeletedAuditLogs: 3, AnonymizedEmployees: 1}
	completedAt := time.Date(2030, time.January, 1, 4, 0, 0, 0, time.UTC)

	path, err := NewReportWriter(dir, false, svc).Write("run-1", completedAt, summary)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "run-1.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload reportPayload
	require.NoError(t, json.Unmarshal(data, &payload))
	require.Equal(t, "run-1", payload.RunID)
	require.Equal(t, summary, payload.Summary)
}

func TestReportWriterEncrypted(t *testing.T) {
	dir := t.TempDir()
	key := hex.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	svc, err := cryptoutil.New(key)
	require.NoError(t, err)

	path, err := NewReportWriter(dir, false, svc).Write("run-2", time.Now(), Summary{DeletedPayroll: 9})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".json.enc"))

	sealed, err := os.ReadFile(path)
	require.NoError(t, err)

	opened, err := svc.Open(sealed)
	require.NoError(t, err)

	var payload reportPayload
	require.NoError(t, json.Unmarshal(opened, &payload))
	require.Equal(t, int64(9), payload.Summary.DeletedPayroll)
}

func TestReportWriterPDF(t *testing.T) {
	dir := t.TempDir()
	svc, err := cryptoutil.New("")
	require.NoError(t, err)

	_, err = NewReportWriter(dir, true, svc).Write("run-3", time.Now(), Summary{})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "run-3.pdf"))
	require.NoError(t, err)
}
