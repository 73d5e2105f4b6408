package controller

import (
	"sync"

	"github.com/flowcanvas/gateway/gateway/channel"
	"github.com/flowcanvas/gateway/gateway/model"
)

// taskStore 进程内任务登记表
// 记两件事：任务创建时的模型家族（省去轮询时的探测）和已到达的终态（保证幂等）
type taskStore struct {
	mu       sync.RWMutex
	families map[string]channel.ModelFamily
	terminal map[string]*model.CanonicalVideoTask
}

func newTaskStore() *taskStore {
	return &taskStore{
		families: make(map[string]channel.ModelFamily),
		terminal: make(map[string]*model.CanonicalVideoTask),
	}
}

func (s *taskStore) rememberFamily(taskID string, family channel.ModelFamily) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.families[taskID] = family
}

func (s *taskStore) familyOf(taskID string) (channel.ModelFamily, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	family, ok := s.families[taskID]
	return family, ok
}

// rememberTerminal 只登记终态；处理中的结果不缓存，下次轮询必须真实查询
func (s *taskStore) rememberTerminal(taskID string, task *model.CanonicalVideoTask) {
	if !task.Status.Terminal() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminal[taskID] = task
}

func (s *taskStore) terminalOf(taskID string) (*model.CanonicalVideoTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.terminal[taskID]
	return task, ok
}
