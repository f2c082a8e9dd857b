package handler

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeSavePath(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain filename", "resume.pdf", filepath.Join(resumeUploadDir, "resume.pdf")},
		{"parent traversal stripped", "../../etc/passwd.pdf", filepath.Join(resumeUploadDir, "passwd.pdf")},
		{"absolute path stripped", "/tmp/evil.pdf", filepath.Join(resumeUploadDir, "evil.pdf")},
		{"nested path stripped", "a/b/c.pdf", filepath.Join(resumeUploadDir, "c.pdf")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resumeSavePath(tc.filename)
			assert.Equal(t, tc.want, got)
			assert.True(t, strings.HasPrefix(filepath.Clean(got), filepath.Clean(resumeUploadDir)))
		})
	}
}
