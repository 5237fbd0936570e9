//go:build tools

package tools

// Development tools, not compiled into any binary:
//   - github.com/matryer/moq regenerates the *_mock_test.go files
//   - github.com/pressly/goose/v3/cmd/goose for ad-hoc migration work
//     (intakectl migrate covers the normal path)
