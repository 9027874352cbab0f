package cli

import (
	"testing"

	"github.com/alexanderramin/admissions/internal/cli/formatter"
	"github.com/alexanderramin/admissions/internal/roster"
	"github.com/alexanderramin/admissions/internal/teatest"
	"github.com/alexanderramin/admissions/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func testBook(t *testing.T) *roster.Book {
	return testutil.NewTestBook(t)
}

func newTestBrowser(t *testing.T, tag language.Tag) (*teatest.Driver, *browserModel) {
	t.Helper()
	m := newBrowserModel(testBook(t), formatter.LabelsFor(tag))
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	return d, m
}

func TestBrowser_StartsOnFirstDepartment(t *testing.T) {
	d, m := newTestBrowser(t, language.English)

	assert.Equal(t, "N701", m.current().Code)
	view := d.View()
	assert.Contains(t, view, "[N701]")
	assert.Contains(t, view, "半導體系統工程學研究所")
	assert.Contains(t, view, "Admitted 1")
	assert.Len(t, m.table.Rows(), 72)
}

func TestBrowser_NextAndPrevRerenderTable(t *testing.T) {
	d, m := newTestBrowser(t, language.English)

	d.Press(tea.KeyRight)
	assert.Equal(t, "N702", m.current().Code)
	assert.Len(t, m.table.Rows(), 43)
	assert.Contains(t, d.View(), "高頻脈衝學研究所")

	d.PressKey('l')
	assert.Equal(t, "N703", m.current().Code)
	assert.Len(t, m.table.Rows(), 19)

	d.PressKey('h')
	assert.Equal(t, "N702", m.current().Code)
}

func TestBrowser_WrapsAround(t *testing.T) {
	d, m := newTestBrowser(t, language.English)

	d.Press(tea.KeyLeft)
	assert.Equal(t, "N704", m.current().Code)
	assert.Len(t, m.table.Rows(), 21)

	d.Press(tea.KeyTab)
	assert.Equal(t, "N701", m.current().Code)
}

func TestBrowser_RowsMatchRoster(t *testing.T) {
	_, m := newTestBrowser(t, language.TraditionalChinese)

	entry, ok := m.dir.Lookup("N701")
	require.True(t, ok)
	rows := m.table.Rows()
	require.Len(t, rows, len(entry.Candidates))
	assert.Equal(t, entry.Candidates[0].ID, rows[0][1])
	assert.Equal(t, "正取 1", rows[0][3])
	assert.Equal(t, "備取 1", rows[20][3])
}

func TestBrowser_SelectCode(t *testing.T) {
	_, m := newTestBrowser(t, language.English)

	require.NoError(t, m.selectCode("n703"))
	assert.Equal(t, "N703", m.current().Code)

	err := m.selectCode("N999")
	require.Error(t, err)
	assert.ErrorIs(t, err, roster.ErrUnknownDepartment)
}

func TestBrowser_QuitWithQ(t *testing.T) {
	d, _ := newTestBrowser(t, language.English)

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestBrowser_CursorMovesWithinTable(t *testing.T) {
	d, m := newTestBrowser(t, language.English)

	d.Press(tea.KeyDown)
	d.Press(tea.KeyDown)
	assert.Equal(t, 2, m.table.Cursor())

	d.Press(tea.KeyRight)
	assert.Equal(t, 0, m.table.Cursor(), "switching department resets the cursor")
}
