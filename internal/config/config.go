package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Source string

const (
	SourceFile Source = "file"
	SourceSQL  Source = "sql"
)

type Config struct {
	HTTPAddr string

	QuestionsSource Source
	QuestionsFile   string

	DBDriver string
	DBDSN    string

	CORSOrigins []string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func FromEnv() Config {
	return Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8000"),
		QuestionsSource: Source(envOr("QUESTIONS_SOURCE", string(SourceFile))),
		QuestionsFile:   envOr("QUESTIONS_FILE", "data.json"),
		DBDriver:        envOr("DB_DRIVER", "sqlite"),
		DBDSN:           envOr("DB_DSN", ""),
		CORSOrigins:     csvOr("CORS_ORIGINS", "*"),
		RequestTimeout:  envSeconds("REQUEST_TIMEOUT_SEC", 30),
		ShutdownTimeout: envSeconds("SHUTDOWN_TIMEOUT_SEC", 10),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envSeconds(k string, def int) time.Duration {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil || n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
