package formatter

import (
	"fmt"

	"github.com/alexanderramin/admissions/internal/domain"
	"golang.org/x/text/language"
)

// Labels is a display-string catalog for one language.
type Labels struct {
	Lang language.Tag

	AdmittedRank   string // format with the 1-based rank
	WaitlistedRank string
	Preference     string // format with the preference rank

	Reported            string
	Absent              string
	ReportWithdrawn     string
	WaitingForPromotion string
	WaitingWithdrawn    string

	ColPosition   string
	ColID         string
	ColName       string
	ColRank       string
	ColReport     string
	ColWaiting    string
	ColPreference string

	ColCode     string
	ColDept     string
	ColAccepted string
	ColWaitlist string
	ColTotal    string

	DepartmentsTitle string
	SelectPrompt     string
}

var englishLabels = Labels{
	Lang:                language.English,
	AdmittedRank:        "Admitted %d",
	WaitlistedRank:      "Waitlisted %d",
	Preference:          "Preference %d",
	Reported:            "Reported",
	Absent:              "Absent",
	ReportWithdrawn:     "Withdrawn",
	WaitingForPromotion: "Waiting for promotion",
	WaitingWithdrawn:    "Withdrawn",
	ColPosition:         "#",
	ColID:               "ID",
	ColName:             "NAME",
	ColRank:             "RANK",
	ColReport:           "REPORT",
	ColWaiting:          "WAITING",
	ColPreference:       "PREFERENCE",
	ColCode:             "CODE",
	ColDept:             "DEPARTMENT",
	ColAccepted:         "ADMITTED",
	ColWaitlist:         "WAITLIST",
	ColTotal:            "TOTAL",
	DepartmentsTitle:    "Departments",
	SelectPrompt:        "Which department?",
}

var chineseLabels = Labels{
	Lang:                language.TraditionalChinese,
	AdmittedRank:        "正取 %d",
	WaitlistedRank:      "備取 %d",
	Preference:          "志願 %d",
	Reported:            "已報到",
	Absent:              "未報到",
	ReportWithdrawn:     "放棄",
	WaitingForPromotion: "等待遞補",
	WaitingWithdrawn:    "放棄",
	ColPosition:         "序號",
	ColID:               "准考證號",
	ColName:             "姓名",
	ColRank:             "錄取別",
	ColReport:           "報到狀態",
	ColWaiting:          "遞補狀態",
	ColPreference:       "備註",
	ColCode:             "代碼",
	ColDept:             "系所",
	ColAccepted:         "正取名額",
	ColWaitlist:         "備取名額",
	ColTotal:            "合計",
	DepartmentsTitle:    "系所列表",
	SelectPrompt:        "請選擇系所",
}

// LabelsFor returns the catalog for tag, defaulting to English.
func LabelsFor(tag language.Tag) Labels {
	if tag == language.TraditionalChinese {
		return chineseLabels
	}
	return englishLabels
}

// Rank returns the localized rank label, e.g. "Admitted 3" or "備取 12".
func (l Labels) Rank(c domain.Candidate) string {
	if c.IsAdmitted() {
		return fmt.Sprintf(l.AdmittedRank, c.RankNumber())
	}
	return fmt.Sprintf(l.WaitlistedRank, c.RankNumber())
}

// PreferenceLabel returns the localized preference label.
func (l Labels) PreferenceLabel(c domain.Candidate) string {
	return fmt.Sprintf(l.Preference, c.PreferenceRank)
}

// Report returns the localized report status; empty for waitlisted candidates.
func (l Labels) Report(s domain.ReportStatus) string {
	switch s {
	case domain.ReportReported:
		return l.Reported
	case domain.ReportAbsent:
		return l.Absent
	case domain.ReportWithdrawn:
		return l.ReportWithdrawn
	default:
		return ""
	}
}

// Waiting returns the localized waiting status; empty for admitted candidates.
func (l Labels) Waiting(s domain.WaitingStatus) string {
	switch s {
	case domain.WaitingForPromotion:
		return l.WaitingForPromotion
	case domain.WaitingWithdrawn:
		return l.WaitingWithdrawn
	default:
		return ""
	}
}

// RosterHeaders returns the seven roster column titles.
func (l Labels) RosterHeaders() []string {
	return []string{l.ColPosition, l.ColID, l.ColName, l.ColRank, l.ColReport, l.ColWaiting, l.ColPreference}
}

// RosterRow returns the plain (unstyled) cells for one candidate.
func (l Labels) RosterRow(c domain.Candidate) []string {
	return []string{
		fmt.Sprintf("%d", c.Position),
		c.ID,
		c.Name,
		l.Rank(c),
		l.Report(c.ReportStatus),
		l.Waiting(c.WaitingStatus),
		l.PreferenceLabel(c),
	}
}
