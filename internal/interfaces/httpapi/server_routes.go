package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster", handler.GetTeamRoster)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}/evaluations", handler.ListPlayerEvaluations)
	mux.HandleFunc("GET /v1/players/{playerID}/assessments", handler.ListPlayerAssessments)
	mux.HandleFunc("GET /v1/tryouts", handler.ListTryouts)
}

func registerCaptureRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/evaluations/unassigned", handler.CaptureEvaluation)
	mux.HandleFunc("POST /v1/assessments/unassigned", handler.CaptureAssessment)
}

func registerInternalSyncRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunAutoSync)))
	mux.Handle("GET /v1/internal/sync/status", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.GetAutoSyncStatus)))
}
