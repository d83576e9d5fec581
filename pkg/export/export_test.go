package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Préstamo", "Caja", "Estado"},
		Rows: []map[string]string{
			{"Préstamo": "p-1", "Caja": "CAJ-ELEC-001", "Estado": "ACTIVO"},
			{"Préstamo": "p-2", "Caja": "CAJ-ELEC-002", "Estado": "DEVUELTO"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Contains(t, string(out), "CAJ-ELEC-001")
	assert.Contains(t, string(out), "Préstamo,Caja,Estado")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Reporte de préstamos")
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
