// pkg/adapter/http/matcher_test.go
package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionMatcher(t *testing.T) {
	tests := []struct {
		name       string
		exclusions []string
		excluded   []string
		kept       []string
	}{
		{
			name:     "no exclusions",
			kept:     []string{"/", "/metrics", "/internal/health"},
			excluded: nil,
		},
		{
			name:       "defaults",
			exclusions: []string{"/internal/*", "/metrics"},
			excluded:   []string{"/metrics", "/internal/health", "/internal/ready", "/internal/logging"},
			kept:       []string{"/v1/match", "/internal", "/internal/a/b", "/metrics/extra"},
		},
		{
			name:       "literal segments are case sensitive",
			exclusions: []string{"/api/users"},
			excluded:   []string{"/api/users"},
			kept:       []string{"/API/users", "/api/Users", "/test%20path"},
		},
		{
			name:       "wildcards cover one segment each",
			exclusions: []string{"/api/*/users/*/posts/*", "/api/v1/users/*/profile"},
			excluded:   []string{"/api/v1/users/123/posts/456", "/api/v2/users/7/posts/8", "/api/v1/users/123/profile"},
			kept:       []string{"/api/v1/users/123/settings", "/api/v1/users/123/posts", "/api/v1/users"},
		},
		{
			name:       "root",
			exclusions: []string{"/"},
			excluded:   []string{"/", ""},
			kept:       []string{"/a"},
		},
		{
			name:       "request paths are cleaned",
			exclusions: []string{"/test/path"},
			excluded:   []string{"/test/path/", "/test//path", "/test/./path", "test/path", "/test/x/../path"},
			kept:       []string{"/test/path/more"},
		},
		{
			name:       "exclusions are cleaned too",
			exclusions: []string{"internal//*/"},
			excluded:   []string{"/internal/health"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatcher(tt.exclusions)
			for _, p := range tt.excluded {
				assert.True(t, m.Matches(p), "%q should be excluded by %v", p, tt.exclusions)
			}
			for _, p := range tt.kept {
				assert.False(t, m.Matches(p), "%q should not be excluded by %v", p, tt.exclusions)
			}
		})
	}
}
