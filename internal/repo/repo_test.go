package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSSLMode(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://u:p@db/airlift", "postgres://u:p@db/airlift?sslmode=require"},
		{"postgresql://db/airlift?connect_timeout=5", "postgresql://db/airlift?connect_timeout=5&sslmode=require"},
		{"user=postgres dbname=airlift", "user=postgres dbname=airlift sslmode=require"},
		{"postgres://db/airlift?sslmode=disable", "postgres://db/airlift?sslmode=disable"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, withSSLMode(tt.dsn), tt.dsn)
	}
}
