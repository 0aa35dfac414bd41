package util

const (
	// LogTimestampFormat 与旧版 Python 服务写入的 str(datetime.now()) 保持一致
	LogTimestampFormat = "2006-01-02 15:04:05.000000"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// gin 上下文键
const (
	ContextUserKey = "user"
)
