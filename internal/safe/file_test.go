package safe

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	regular := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(regular, []byte("format: json\n"), 0o600))

	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(regular, link))

	tests := []struct {
		name    string
		path    string
		opts    *Options
		want    string
		wantErr error
	}{
		{name: "regular file", path: regular, want: "format: json\n"},
		{name: "follows symlink", path: link, want: "format: json\n"},
		{name: "rejects symlink", path: link, opts: &Options{RejectSymlinks: true}, wantErr: ErrSymlink},
		{name: "rejects directory", path: dir, wantErr: ErrNotRegular},
		{name: "rejects large file", path: regular, opts: &Options{MaxSize: 4}, wantErr: ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path, tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}

	_, err := ReadFile(filepath.Join(dir, "missing"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cpu.pb.gz")
	require.NoError(t, os.WriteFile(path, []byte("profile"), 0o600))

	f, err := Open(path, &Options{MaxSize: 1 << 10})
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "profile", string(data))

	_, err = Open(dir, nil)
	assert.ErrorIs(t, err, ErrNotRegular)
}
