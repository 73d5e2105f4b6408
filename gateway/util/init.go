package util

import (
	"net/http"
	"time"

	"github.com/flowcanvas/gateway/common/config"
)

var HTTPClient *http.Client
var ImpatientHTTPClient *http.Client

func init() {
	timeout := time.Duration(config.RelayTimeout) * time.Second
	if config.RelayTimeout <= 0 {
		timeout = 90 * time.Second
	}
	HTTPClient = &http.Client{
		Timeout: timeout,
	}
	ImpatientHTTPClient = &http.Client{
		Timeout: 5 * time.Second,
	}
}

// AttemptTimeout 单次上游请求的硬超时
func AttemptTimeout() time.Duration {
	if config.RelayTimeout <= 0 {
		return 90 * time.Second
	}
	return time.Duration(config.RelayTimeout) * time.Second
}

// ProbeTimeout 状态/内容探测这类轻量 GET 的超时，不跟生成请求共用大预算
func ProbeTimeout() time.Duration {
	return 5 * time.Second
}
