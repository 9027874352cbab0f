package domain

type AdmissionType string

const (
	Admitted   AdmissionType = "admitted"
	Waitlisted AdmissionType = "waitlisted"
)

type ReportStatus string

const (
	ReportNone      ReportStatus = ""
	ReportReported  ReportStatus = "reported"
	ReportAbsent    ReportStatus = "absent"
	ReportWithdrawn ReportStatus = "withdrawn"
)

type WaitingStatus string

const (
	WaitingNone         WaitingStatus = ""
	WaitingForPromotion WaitingStatus = "waiting_for_promotion"
	WaitingWithdrawn    WaitingStatus = "withdrawn"
)

// DisplayClass is the row highlight a renderer applies to a candidate.
type DisplayClass string

const (
	DisplayNormal DisplayClass = ""
	DisplayOk     DisplayClass = "ok"
	DisplayWarn   DisplayClass = "warn"
	DisplayErr    DisplayClass = "err"
)
