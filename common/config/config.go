package config

import (
	"os"
	"strings"

	"github.com/flowcanvas/gateway/common/env"
	"github.com/google/uuid"
)

var SystemName = "FlowCanvas Gateway"
var ServiceName = env.String("SERVICE_NAME", "flowcanvas-gateway")
var InstanceId = strings.Split(uuid.New().String(), "-")[0]

var Port = env.String("PORT", "3000")

var DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"

// 上游供应商配置
// ProviderBaseURLs 支持逗号分隔的多个基础地址，按顺序做故障转移
var ProviderAPIKey = os.Getenv("PROVIDER_API_KEY")
var ProviderBaseURLs = env.String("PROVIDER_BASE_URLS", "")

// RelayTimeout 单次上游请求的硬超时，unit is second
var RelayTimeout = env.Int("RELAY_TIMEOUT", 90)

// 视频默认参数，与前端模型目录保持一致
var DefaultVideoDuration = env.Int("DEFAULT_VIDEO_DURATION", 5)
var DefaultVideoRatio = env.String("DEFAULT_VIDEO_RATIO", "16:9")
