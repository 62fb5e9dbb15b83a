package authsession_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wemolhq/wemolkit/pkg/authsession"
)

func TestClient_InferUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		want        *authsession.UserInfo
		wantPrimary bool
	}{
		{
			name: "both markers absent",
			raw:  "",
			want: nil,
		},
		{
			name: "unrelated cookies only",
			raw:  "theme=dark; lang=en",
			want: nil,
		},
		{
			name:        "both markers present prefers primary",
			raw:         "ant_uid=alice; ant_uid_sys=sys1",
			want:        &authsession.UserInfo{ID: "alice", DisplayName: "User"},
			wantPrimary: true,
		},
		{
			name:        "primary only",
			raw:         "ant_uid=alice",
			want:        &authsession.UserInfo{ID: "alice", DisplayName: "User"},
			wantPrimary: true,
		},
		{
			name: "secondary only",
			raw:  "ant_uid_sys=sys1",
			want: &authsession.UserInfo{ID: "sys1", DisplayName: "User"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newOfflineFixture(t, tt.raw)

			got := f.client.InferUser()
			if tt.want == nil {
				assert.Nil(t, got)
				assert.False(t, f.client.IsLoggedIn())
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.wantPrimary, got.Primary)
			assert.True(t, f.client.IsLoggedIn())
		})
	}
}

func TestClient_InferUser_DisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "first alternate cookie wins",
			raw:  "ant_uid=alice; ant_name=Alice; ant_nickname=Al",
			want: "Alice",
		},
		{
			name: "falls through to next alternate",
			raw:  "ant_uid=alice; ant_nickname=Al",
			want: "Al",
		},
		{
			name: "placeholder when nothing resolves",
			raw:  "ant_uid=alice",
			want: "User",
		},
		{
			name: "degenerate placeholder-plus-digits discarded",
			raw:  "ant_uid=alice; ant_name=User12345; ant_nickname=Al",
			want: "Al",
		},
		{
			name: "bare placeholder value discarded",
			raw:  "ant_uid=alice; ant_name=User",
			want: "User",
		},
		{
			name: "placeholder prefix with letters kept",
			raw:  "ant_uid=alice; ant_name=Userland",
			want: "Userland",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newOfflineFixture(t, tt.raw)

			got := f.client.InferUser()
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.DisplayName)
		})
	}
}

func TestClient_InferUser_MarkersNotReadable(t *testing.T) {
	t.Parallel()

	f := newOfflineFixture(t, "ant_uid=alice; ant_uid_sys=sys1",
		authsession.WithMarkersReadable(false))

	assert.Nil(t, f.client.InferUser())
	assert.False(t, f.client.IsLoggedIn())
}
