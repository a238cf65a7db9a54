package roster

import (
	"bytes"
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestTemplate(t *testing.T) {
	data, err := Template()
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "hostel", rows[1][7])
}

func TestExport(t *testing.T) {
	students := []*model.Student{
		{RegisterNumber: "21CS001", Name: "Asha", ResidenceType: model.ResidenceHostel, HostelName: "A", Password: "secret1"},
		nil,
		{RegisterNumber: "21CS002", Name: "Bala", ResidenceType: model.ResidenceDayScholar, Blocked: true},
	}

	data, err := Export(students)
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 3)
	assert.Equal(t, "blocked", rows[0][len(rows[0])-1])
	assert.Equal(t, "21CS001", rows[1][0])
	assert.Equal(t, "no", rows[1][10])
	assert.Equal(t, "yes", rows[2][10])
	assert.NotContains(t, rows[1], "secret1")
}
