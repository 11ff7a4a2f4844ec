package logx

const (
	FieldAppName        = "app-name"
	FieldAppVersion     = "app-version"
	FieldCacheHit       = "cache-hit"
	FieldChatID         = "chat-id"
	FieldDealCount      = "deal-count"
	FieldDealID         = "deal-id"
	FieldDurationMs     = "duration-ms"
	FieldError          = "error"
	FieldHTTPMethod     = "http-method"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldIP             = "ip"
	FieldQuery          = "query"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseBytes  = "response-bytes"
	FieldResponseStatus = "response-status"
	FieldStack          = "stack"
	FieldStrategy       = "strategy"
	FieldTraceID        = "trace-id"
	FieldURL            = "url"
)
