package handler

type ContextKey string

var (
	ShiftRecordCtx ContextKey = "shiftRecord"
)
