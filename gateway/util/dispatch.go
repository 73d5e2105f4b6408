package util

import (
	"context"
	"net/http"

	"github.com/flowcanvas/gateway/common/config"
	"github.com/flowcanvas/gateway/common/logger"
	"github.com/flowcanvas/gateway/gateway/model"
)

// Dispatcher 按顺序在多个 base 上投递同一个逻辑调用
// 池在进程启动时确定，请求期间只读
type Dispatcher struct {
	Bases []string
}

func NewDispatcher() (*Dispatcher, *model.ErrorWithStatusCode) {
	bases, err := ParseEndpointPool(config.ProviderBaseURLs)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{Bases: bases}, nil
}

type upstreamCall func(ctx context.Context, fullRequestURL string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode)

// Dispatch 逐个 base 尝试，成功立即返回
// 只有可重试失败才落到下一个 base；显式的客户端错误不会被盲目重试掩盖
func (d *Dispatcher) Dispatch(ctx context.Context, logicalPath string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode) {
	return d.dispatch(ctx, CallUpstream, logicalPath, method, payload)
}

func (d *Dispatcher) dispatch(ctx context.Context, call upstreamCall, logicalPath string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode) {
	var lastErr *model.ErrorWithStatusCode
	for _, base := range d.Bases {
		result, err := call(ctx, ResolveURL(base, logicalPath), method, payload)
		if err == nil {
			return result, nil
		}
		if !model.IsRetryable(err) {
			return nil, err
		}
		logger.Warnf(ctx, "endpoint %s failed (%s), trying next base", base, err.Message)
		lastErr = err
	}
	if lastErr == nil {
		// 池非空时不可能走到这里
		lastErr = model.TransportError("all endpoints failed", http.StatusBadGateway)
	}
	return nil, lastErr
}

// DispatchPaths 路径级回退：同一能力可能暴露在多个路由形态下（legacy 与带版本号的）
// 按顺序尝试每个候选路径，每次路径尝试内部都走完整的 base 级回退
func (d *Dispatcher) DispatchPaths(ctx context.Context, logicalPaths []string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode) {
	return d.dispatchPaths(ctx, CallUpstream, logicalPaths, method, payload)
}

// ProbePaths 回退语义与 DispatchPaths 一致，但走 5 秒预算的快速客户端
// 用于状态/内容探测这类小响应 GET
func (d *Dispatcher) ProbePaths(ctx context.Context, logicalPaths []string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode) {
	return d.dispatchPaths(ctx, ProbeUpstream, logicalPaths, method, payload)
}

func (d *Dispatcher) dispatchPaths(ctx context.Context, call upstreamCall, logicalPaths []string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode) {
	var lastErr *model.ErrorWithStatusCode
	for _, path := range logicalPaths {
		result, err := d.dispatch(ctx, call, path, method, payload)
		if err == nil {
			return result, nil
		}
		logger.Debugf(ctx, "path %s failed (%s), trying next candidate", path, err.Message)
		lastErr = err
	}
	if lastErr == nil {
		lastErr = model.TransportError("no candidate paths to dispatch", http.StatusBadGateway)
	}
	return nil, lastErr
}
