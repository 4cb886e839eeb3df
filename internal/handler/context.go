package handler

type ContextKey string

var (
	SessionCtx ContextKey = "session"
	RequestCtx ContextKey = "ongoingRequest"
)
