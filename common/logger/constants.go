package logger

import "os"

const RequestIdKey = "X-Request-Id"

var LogDir = os.Getenv("LOG_DIR")
