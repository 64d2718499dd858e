package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Top-level keys. Every record carries the first three; request, response and
// error hold the structured sub-objects below.
const (
	KeyEnvironment = "environment"
	KeyService     = "service"
	KeyVersion     = "version"
	KeyRequest     = "request"
	KeyResponse    = "response"
	KeyError       = "error"
	KeyStatusCode  = "statusCode"
	KeyRequestID   = "requestId"
)

type RequestInfo struct {
	Method        string
	Path          string
	URL           string
	UserAgent     string
	IP            string
	ContentLength string
}

func (r RequestInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("method", r.Method)
	if r.Path != "" {
		enc.AddString("path", r.Path)
	}
	if r.URL != "" {
		enc.AddString("url", r.URL)
	}
	if r.UserAgent != "" {
		enc.AddString("userAgent", r.UserAgent)
	}
	enc.AddString("ip", r.IP)
	if r.ContentLength != "" {
		enc.AddString("contentLength", r.ContentLength)
	}
	return nil
}

type ResponseInfo struct {
	StatusCode    int
	ContentLength int64
	Duration      time.Duration
}

func (r ResponseInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("statusCode", r.StatusCode)
	enc.AddInt64("contentLength", r.ContentLength)
	enc.AddString("duration", FormatDuration(r.Duration))
	return nil
}

type ErrorInfo struct {
	Message string
	Stack   string
	Code    string
}

func (e ErrorInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.Message)
	if e.Stack != "" {
		enc.AddString("stack", e.Stack)
	}
	if e.Code != "" {
		enc.AddString("code", e.Code)
	}
	return nil
}

// FormatDuration renders whole milliseconds, e.g. "37ms".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func Request(info RequestInfo) zap.Field {
	return zap.Object(KeyRequest, info)
}

func Response(info ResponseInfo) zap.Field {
	return zap.Object(KeyResponse, info)
}

func Err(info ErrorInfo) zap.Field {
	return zap.Object(KeyError, info)
}

func StatusCode(status int) zap.Field {
	return zap.Int(KeyStatusCode, status)
}

func RequestID(id string) zap.Field {
	return zap.String(KeyRequestID, id)
}
