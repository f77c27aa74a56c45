package constants

// Centralized constants for env keys, routes and shared messages.
const (
	// Environment variable keys
	EnvConfigPath = "VENUS_CONFIG"
	EnvDBPath     = "VENUS_DB"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteVersion       = "/version"
	RouteLeaderboard   = "/leaderboard"
	RouteSessions      = "/sessions"
	RouteSessionByCode = "/sessions/:sessionCode"
	RouteSessionAction = "/sessions/:sessionCode/action"
	RouteSessionSkip   = "/sessions/:sessionCode/skip"
	RouteSessionEnd    = "/sessions/:sessionCode/end"
	RouteSessionStream = "/sessions/:sessionCode/stream"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidSessionID  = "Invalid session code"
	ErrSessionNotFound   = "Session not found"
	ErrInvalidConfig     = "Session configuration outside allowed ranges"
	ErrFailedCreate      = "Failed to create session"
	ErrFailedUpdate      = "Failed to update session"
	ErrFailedFetchBoard  = "Failed to fetch leaderboard"
	ErrSessionNotPlaying = "Session is not in progress"
	ErrActionRejected    = "Action rejected"
	ErrSkipRejected      = "Skip rejected"
)

// Logging field names
const (
	LogFieldSessionID = "session_id"
	LogFieldJoinCode  = "join_code"
	LogFieldAction    = "action"
	LogFieldMonth     = "month"
	LogFieldSerial    = "turn_serial"
	LogFieldAddr      = "addr"
	LogFieldWorker    = "worker"
)
