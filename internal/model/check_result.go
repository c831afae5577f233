package model

import (
	"strings"
	"time"
)

type CheckResult struct {
	ProdID  string
	Time    time.Time
	Latency time.Duration
	Code    int
	Body    string
}

// IsAvailable is a raw substring test; the vendor's response schema is not
// known, so the body is not parsed.
func (c *CheckResult) IsAvailable() bool {
	return strings.Contains(c.Body, "available") || strings.Contains(c.Body, "可用")
}
