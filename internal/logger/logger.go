package logger

import "go.uber.org/zap"

// Log — общий операционный логгер процесса
var Log *zap.Logger

func init() {
	Log = zap.Must(zap.NewProduction())
}

// Init переинициализирует логгер (например, для dev-конфигурации)
func Init(development bool) {
	if development {
		Log = zap.Must(zap.NewDevelopment())
		return
	}
	Log = zap.Must(zap.NewProduction())
}

// Sugar возвращает sugared-вариант логгера
func Sugar() *zap.SugaredLogger {
	return Log.Sugar()
}
