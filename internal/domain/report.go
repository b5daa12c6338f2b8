package domain

// ReportMessage viaja por la cola de reportes hacia el worker de correo.
type ReportMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type OvertimeReportMailData struct {
	Body        string `json:"body"`
	GeneratedAt string `json:"generatedAt"`
}
