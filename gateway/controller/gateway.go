package controller

import (
	"context"

	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/flowcanvas/gateway/gateway/util"
)

// upstreamDispatcher 抽出来方便测试时替换为桩实现
type upstreamDispatcher interface {
	Dispatch(ctx context.Context, logicalPath string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode)
	DispatchPaths(ctx context.Context, logicalPaths []string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode)
	ProbePaths(ctx context.Context, logicalPaths []string, method string, payload any) (*model.ProviderCallResult, *model.ErrorWithStatusCode)
}

// Gateway 统一生成入口，无状态除了进程内的任务登记表
type Gateway struct {
	dispatcher upstreamDispatcher
	tasks      *taskStore
}

func New() (*Gateway, *model.ErrorWithStatusCode) {
	dispatcher, err := util.NewDispatcher()
	if err != nil {
		return nil, err
	}
	return &Gateway{
		dispatcher: dispatcher,
		tasks:      newTaskStore(),
	}, nil
}
