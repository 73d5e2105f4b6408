package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flowcanvas/gateway/common/config"
	"github.com/flowcanvas/gateway/common/logger"
	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/pkg/errors"
)

// GeneralErrorResponse 上游错误信息的常见落点，按优先级探测
type GeneralErrorResponse struct {
	Error    model.Error `json:"error"`
	Message  string      `json:"message"`
	Msg      string      `json:"msg"`
	Err      string      `json:"err"`
	ErrorMsg string      `json:"error_msg"`
	Detail   string      `json:"detail"`
}

func (e GeneralErrorResponse) ToMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != "" {
		return e.Err
	}
	if e.ErrorMsg != "" {
		return e.ErrorMsg
	}
	if e.Detail != "" {
		return e.Detail
	}
	return ""
}

// ParseLenientBody 宽松解析响应体
// 空 -> nil；合法 JSON -> 解析值；其余 -> RawPayload，绝不因为非 JSON 而失败
func ParseLenientBody(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	var parsed any
	if err := json.Unmarshal(trimmed, &parsed); err == nil {
		return parsed
	}
	return model.RawPayload{Raw: string(body)}
}

// CallUpstream 执行一次上游调用
// 固定携带 Bearer 凭证；单次调用受 AttemptTimeout 硬超时约束，超时会取消在途请求
func CallUpstream(ctx context.Context, fullRequestURL string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode) {
	return callUpstream(ctx, HTTPClient, AttemptTimeout(), fullRequestURL, method, payload)
}

// ProbeUpstream 轻量探测调用，走 5 秒预算的快速客户端
// 状态/内容查询响应很小，拖到大超时只会拖慢轮询方
func ProbeUpstream(ctx context.Context, fullRequestURL string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode) {
	return callUpstream(ctx, ImpatientHTTPClient, ProbeTimeout(), fullRequestURL, method, payload)
}

func callUpstream(ctx context.Context, client *http.Client, timeout time.Duration, fullRequestURL string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode) {
	if config.ProviderAPIKey == "" {
		return nil, model.ConfigurationError("PROVIDER_API_KEY is not configured")
	}

	var bodyReader io.Reader
	switch v := payload.(type) {
	case nil:
	case []byte:
		bodyReader = bytes.NewReader(v)
	case json.RawMessage:
		bodyReader = bytes.NewReader(v)
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, model.ErrorWrapper(errors.Wrap(err, "marshal request body"), "marshal_failed", http.StatusInternalServerError)
		}
		bodyReader = bytes.NewReader(data)
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, method, fullRequestURL, bodyReader)
	if err != nil {
		return nil, model.ErrorWrapper(errors.Wrap(err, "new request"), "new_request_failed", http.StatusInternalServerError)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.ProviderAPIKey)

	resp, err := client.Do(req)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return nil, model.TransportError(
				fmt.Sprintf("upstream timeout after %s: %s", timeout, fullRequestURL),
				http.StatusGatewayTimeout)
		}
		return nil, model.TransportError(errors.Wrap(err, "upstream request failed").Error(), http.StatusBadGateway)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, model.TransportError(errors.Wrap(err, "read response body").Error(), http.StatusBadGateway)
	}

	parsed := ParseLenientBody(body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := upstreamMessage(body)
		if message == "" {
			message = fmt.Sprintf("request failed: %d", resp.StatusCode)
		}
		if config.DebugEnabled {
			logger.Debugf(ctx, "upstream %d from %s: %s", resp.StatusCode, fullRequestURL, truncateForLog(body))
		}
		return nil, model.UpstreamError(message, resp.StatusCode)
	}

	return &model.ProviderCallResult{
		StatusCode: resp.StatusCode,
		Body:       body,
		Parsed:     parsed,
		OK:         true,
	}, nil
}

func upstreamMessage(body []byte) string {
	var errResponse GeneralErrorResponse
	if err := json.Unmarshal(body, &errResponse); err != nil {
		return ""
	}
	return errResponse.ToMessage()
}

func truncateForLog(body []byte) string {
	s := string(body)
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 512 {
		return s[:512] + "...[truncated]"
	}
	return s
}
