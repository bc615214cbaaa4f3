package domain_test

import (
	"testing"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlakeURL(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.FlakeURL
		wantErr bool
	}{
		{in: "", want: "."},
		{in: "  github:juspay/omnix  ", want: "github:juspay/omnix"},
		{in: ".#default.docs", want: ".#default.docs"},
		{in: "a b", wantErr: true},
		{in: "#default", wantErr: true},
		{in: ".#a#b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseFlakeURL(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidFlakeURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlakeURL_SplitAttr(t *testing.T) {
	tests := []struct {
		in        domain.FlakeURL
		wantBase  domain.FlakeURL
		wantAttrs []string
	}{
		{in: ".", wantBase: "."},
		{in: ".#", wantBase: "."},
		{in: "github:a/b#default", wantBase: "github:a/b", wantAttrs: []string{"default"}},
		{in: "./x#release.cli", wantBase: "./x", wantAttrs: []string{"release", "cli"}},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			base, attrs := tt.in.SplitAttr()
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantAttrs, attrs)
		})
	}
}

func TestFlakeURL_WithAttr(t *testing.T) {
	assert.Equal(t, domain.FlakeURL(".#om"), domain.FlakeURL(".#ci").WithAttr("om"))
	assert.Equal(t, domain.FlakeURL("github:a/b"), domain.FlakeURL("github:a/b#x").WithAttr(""))
}

func TestFlakeURL_LocalPath(t *testing.T) {
	tests := []struct {
		in     domain.FlakeURL
		want   string
		wantOK bool
	}{
		{in: ".", want: ".", wantOK: true},
		{in: "./sub#default", want: "./sub", wantOK: true},
		{in: "/abs/path", want: "/abs/path", wantOK: true},
		{in: "path:../up", want: "../up", wantOK: true},
		{in: "path:./x?rev=abc"},
		{in: "github:juspay/omnix"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, ok := tt.in.LocalPath()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlakeURL_SubFlake(t *testing.T) {
	tests := []struct {
		base domain.FlakeURL
		dir  string
		want domain.FlakeURL
	}{
		{base: ".", dir: ".", want: "."},
		{base: ".#default", dir: "", want: "."},
		{base: ".", dir: "doc", want: "./doc"},
		{base: "./proj", dir: "./doc", want: "./proj/doc"},
		{base: "/abs", dir: "doc", want: "/abs/doc"},
		{base: "path:/abs", dir: "doc", want: "path:/abs/doc"},
		{base: "github:a/b", dir: "doc", want: "github:a/b?dir=doc"},
		{base: "github:a/b?ref=main#x", dir: "doc", want: "github:a/b?ref=main&dir=doc"},
	}

	for _, tt := range tests {
		t.Run(tt.base.String()+"/"+tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.SubFlake(tt.dir))
		})
	}
}

func TestFlakeURL_Dir(t *testing.T) {
	tests := []struct {
		in   domain.FlakeURL
		want string
	}{
		{in: "github:org/repo", want: ""},
		{in: "github:org/repo/abc?dir=sub", want: "sub"},
		{in: "git+file:///src/repo?ref=main&dir=nested/pkg#docs", want: "nested/pkg"},
		{in: "path:.", want: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Dir())
		})
	}
}

func TestStoreFlake(t *testing.T) {
	assert.Equal(t, domain.FlakeURL("/nix/store/prj-source"), domain.StoreFlake("/nix/store/prj-source", ""))
	assert.Equal(t, domain.FlakeURL("path:/nix/store/prj-source?dir=sub"), domain.StoreFlake("/nix/store/prj-source", "sub"))
	assert.Equal(t, domain.FlakeURL("path:/nix/store/prj-source?dir=sub#dev"),
		domain.StoreFlake("/nix/store/prj-source", "sub").WithAttr("dev"))
}
